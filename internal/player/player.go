package player

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

// ErrNoSource is returned by Play when nothing has been loaded.
var ErrNoSource = errors.New("no source loaded")

// DefaultTickInterval is how often a playing Player reports its position.
const DefaultTickInterval = 250 * time.Millisecond

var (
	speakerMu          sync.Mutex
	speakerInitialized bool
	speakerSampleRate  beep.SampleRate
)

// Player is a Transport backed by the system speaker.
// Relative sources are resolved against the music directory given to New.
type Player struct {
	mu       sync.Mutex
	root     string
	state    State
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	streamer beep.StreamSeekCloser
	format   beep.Format
	file     *os.File
	duration time.Duration
	level    float64
	gen      int

	listeners listeners
	done      chan struct{}
	closeOnce sync.Once
}

// New creates a Player and starts its position ticker.
func New(root string) *Player {
	p := &Player{
		root:  root,
		state: Stopped,
		level: 1,
		done:  make(chan struct{}),
	}
	go p.tickLoop(DefaultTickInterval)
	return p
}

// Subscribe registers l for transport feedback.
func (p *Player) Subscribe(l Listener) func() {
	return p.listeners.add(l)
}

// Load stops the current source and opens src paused at position zero.
// The previous source is stopped even when src cannot be opened.
func (p *Player) Load(src string) error {
	path := p.resolve(src)

	p.mu.Lock()
	p.stopLocked()

	if !IsMusicFile(path) {
		p.mu.Unlock()
		return fmt.Errorf("unsupported format: %s", filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		p.mu.Unlock()
		return err
	}
	streamer, format, err := decode(f, path)
	if err != nil {
		f.Close()
		p.mu.Unlock()
		return err
	}
	if err := initSpeaker(format.SampleRate); err != nil {
		streamer.Close()
		f.Close()
		p.mu.Unlock()
		return err
	}

	var out beep.Streamer = streamer
	if format.SampleRate != speakerSampleRate {
		out = beep.Resample(4, format.SampleRate, speakerSampleRate, streamer)
	}

	p.file = f
	p.streamer = streamer
	p.format = format
	p.duration = format.SampleRate.D(streamer.Len())
	p.ctrl = &beep.Ctrl{Streamer: out, Paused: true}
	p.volume = &effects.Volume{
		Streamer: p.ctrl,
		Base:     2,
		Volume:   levelToVolume(p.level),
		Silent:   p.level <= 0,
	}
	p.state = Paused
	p.startLocked()
	d := p.duration
	p.mu.Unlock()

	p.listeners.metadataLoaded(d)
	return nil
}

// startLocked hands the volume chain to the speaker with a completion
// callback tagged by generation, so a cleared stream cannot report Ended
// for a newer one.
func (p *Player) startLocked() {
	p.gen++
	gen := p.gen
	speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
		// The speaker lock is held here; leave it before touching listeners.
		go p.finished(gen)
	})))
}

func (p *Player) finished(gen int) {
	p.mu.Lock()
	if gen != p.gen || p.streamer == nil {
		p.mu.Unlock()
		return
	}
	p.state = Ended
	p.mu.Unlock()

	p.listeners.ended()
}

// Play resumes the loaded source. A source that ended is restarted from
// its current position.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return ErrNoSource
	}
	speaker.Lock()
	p.ctrl.Paused = false
	speaker.Unlock()
	if p.state == Ended {
		p.startLocked()
	}
	p.state = Playing
	return nil
}

// Pause pauses playback. No-op unless playing.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.state.CanPause() || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// SetPosition seeks to pos, clamped to the source length.
func (p *Player) SetPosition(pos time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil {
		return
	}
	n := p.format.SampleRate.N(pos)
	n = max(n, 0)
	n = min(n, max(p.streamer.Len()-1, 0))

	speaker.Lock()
	_ = p.streamer.Seek(n)
	speaker.Unlock()
}

// Position returns the current playback position.
func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.positionLocked()
}

func (p *Player) positionLocked() time.Duration {
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.format.SampleRate.D(p.streamer.Position())
	speaker.Unlock()
	return pos
}

// Duration returns the length of the loaded source.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.duration
}

// State returns the transport state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Close stops playback and the position ticker.
func (p *Player) Close() error {
	p.closeOnce.Do(func() {
		close(p.done)
		p.mu.Lock()
		p.stopLocked()
		p.mu.Unlock()
	})
	return nil
}

func (p *Player) stopLocked() {
	if p.state == Stopped {
		return
	}
	p.gen++
	speaker.Clear()

	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}
	p.ctrl = nil
	p.volume = nil
	p.duration = 0
	p.state = Stopped
}

func (p *Player) tickLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-p.done:
			return
		case <-ticker.C:
			p.mu.Lock()
			playing := p.state == Playing
			pos := p.positionLocked()
			p.mu.Unlock()
			if playing {
				p.listeners.timeUpdate(pos)
			}
		}
	}
}

func (p *Player) resolve(src string) string {
	src = strings.TrimPrefix(src, "file://")
	if p.root == "" || filepath.IsAbs(src) {
		return src
	}
	return filepath.Join(p.root, src)
}

func initSpeaker(sr beep.SampleRate) error {
	speakerMu.Lock()
	defer speakerMu.Unlock()
	if speakerInitialized {
		return nil
	}
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		return err
	}
	speakerSampleRate = sr
	speakerInitialized = true
	return nil
}
