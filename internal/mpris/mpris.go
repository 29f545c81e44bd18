//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/encore/internal/playback"
)

// Adapter exposes a playback controller as an MPRIS media player over D-Bus.
type Adapter struct {
	server *server.Server
}

// New creates and starts a new MPRIS adapter. Relative cover and track
// sources are resolved against root.
func New(ctrl Controller, root string) (*Adapter, error) {
	a := &Adapter{
		server: server.NewServer("encore", &rootAdapter{}, &playerAdapter{ctrl: ctrl, root: root}),
	}

	// Start the server in background
	go func() {
		_ = a.server.Listen()
	}()

	return a, nil
}

// Close stops the adapter and releases D-Bus resources.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

// rootAdapter implements OrgMprisMediaPlayer2Adapter.
type rootAdapter struct{}

func (r *rootAdapter) Raise() error {
	return nil // Not supported
}

func (r *rootAdapter) Quit() error {
	return nil // Not supported - app manages its own lifecycle
}

func (r *rootAdapter) CanQuit() (bool, error) {
	return false, nil
}

func (r *rootAdapter) CanRaise() (bool, error) {
	return false, nil
}

func (r *rootAdapter) HasTrackList() (bool, error) {
	return false, nil
}

func (r *rootAdapter) Identity() (string, error) {
	return "Encore", nil
}

//nolint:revive // Method name required by interface.
func (r *rootAdapter) SupportedUriSchemes() ([]string, error) {
	return []string{"file"}, nil
}

func (r *rootAdapter) SupportedMimeTypes() ([]string, error) {
	return []string{"audio/mpeg", "audio/flac", "audio/mp3"}, nil
}

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter and the
// loop status and shuffle extensions. Every request becomes an action.
type playerAdapter struct {
	ctrl Controller
	root string
}

func (p *playerAdapter) Next() error {
	p.ctrl.Dispatch(playback.NextSong{})
	return nil
}

func (p *playerAdapter) Previous() error {
	p.ctrl.Dispatch(playback.PreviousSong{})
	return nil
}

func (p *playerAdapter) Pause() error {
	if p.ctrl.State().Playing {
		p.ctrl.Dispatch(playback.TogglePlay{})
	}
	return nil
}

func (p *playerAdapter) PlayPause() error {
	p.ctrl.Dispatch(playback.TogglePlay{})
	return nil
}

// Stop pauses and rewinds; there is no separate stopped state.
func (p *playerAdapter) Stop() error {
	if err := p.Pause(); err != nil {
		return err
	}
	p.ctrl.Dispatch(playback.Seek{Position: 0})
	return nil
}

func (p *playerAdapter) Play() error {
	if !p.ctrl.State().Playing {
		p.ctrl.Dispatch(playback.TogglePlay{})
	}
	return nil
}

func (p *playerAdapter) Seek(offset types.Microseconds) error {
	s := p.ctrl.State()
	if s.Current == nil {
		return nil
	}
	pos := max(s.Position+time.Duration(offset)*time.Microsecond, 0)
	if s.Duration > 0 && pos > s.Duration {
		p.ctrl.Dispatch(playback.NextSong{})
		return nil
	}
	p.ctrl.Dispatch(playback.Seek{Position: pos})
	return nil
}

func (p *playerAdapter) SetPosition(trackID string, position types.Microseconds) error {
	s := p.ctrl.State()
	if s.Current == nil || trackID != formatTrackID(s.Current.ID) {
		return nil // Stale request for another track
	}
	p.ctrl.Dispatch(playback.Seek{Position: time.Duration(position) * time.Microsecond})
	return nil
}

//nolint:revive // Method name required by interface.
func (p *playerAdapter) OpenUri(_ string) error {
	return nil // Not supported
}

func (p *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	switch p.ctrl.State().Status() {
	case playback.StatusPlaying:
		return types.PlaybackStatusPlaying, nil
	case playback.StatusPaused:
		return types.PlaybackStatusPaused, nil
	case playback.StatusEmpty:
		return types.PlaybackStatusStopped, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (p *playerAdapter) Rate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) SetRate(_ float64) error {
	return nil // Not supported
}

func (p *playerAdapter) Metadata() (types.Metadata, error) {
	s := p.ctrl.State()
	track := s.Current
	if track == nil {
		return types.Metadata{}, nil
	}

	length := track.Duration
	if s.Duration > 0 {
		length = s.Duration
	}
	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(track.ID)),
		Length:  types.Microseconds(length.Microseconds()),
		Title:   track.Title,
		Artist:  []string{track.Artist},
		Album:   track.Album,
	}
	if track.Genre != "" {
		meta.Genre = []string{track.Genre}
	}
	if art := ArtURL(p.root, *track); art != "" {
		meta.ArtUrl = art
	}

	return meta, nil
}

func (p *playerAdapter) Volume() (float64, error) {
	return p.ctrl.State().Volume, nil
}

func (p *playerAdapter) SetVolume(v float64) error {
	p.ctrl.Dispatch(playback.SetVolume{Volume: v})
	return nil
}

func (p *playerAdapter) Position() (int64, error) {
	return p.ctrl.State().Position.Microseconds(), nil
}

func (p *playerAdapter) MinimumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) MaximumRate() (float64, error) {
	return 1.0, nil
}

func (p *playerAdapter) CanGoNext() (bool, error) {
	s := p.ctrl.State()
	return s.Current != nil && s.Queue.Len() > 1, nil
}

func (p *playerAdapter) CanGoPrevious() (bool, error) {
	return p.ctrl.State().Current != nil, nil
}

func (p *playerAdapter) CanPlay() (bool, error) {
	return p.ctrl.State().Current != nil, nil
}

func (p *playerAdapter) CanPause() (bool, error) {
	return p.ctrl.State().Current != nil, nil
}

func (p *playerAdapter) CanSeek() (bool, error) {
	return p.ctrl.State().Current != nil, nil
}

func (p *playerAdapter) CanControl() (bool, error) {
	return true, nil
}

// LoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
func (p *playerAdapter) LoopStatus() (types.LoopStatus, error) {
	return loopStatus(p.ctrl.State().Repeat), nil
}

// SetLoopStatus implements OrgMprisMediaPlayer2PlayerAdapterLoopStatus.
// The repeat mode only cycles, so it is advanced until it matches.
func (p *playerAdapter) SetLoopStatus(status types.LoopStatus) error {
	want, ok := repeatMode(status)
	if !ok {
		return fmt.Errorf("unknown loop status %q", status)
	}
	for range 3 {
		if p.ctrl.State().Repeat == want {
			return nil
		}
		p.ctrl.Dispatch(playback.CycleRepeat{})
	}
	return nil
}

// Shuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) Shuffle() (bool, error) {
	return p.ctrl.State().Shuffle, nil
}

// SetShuffle implements OrgMprisMediaPlayer2PlayerAdapterShuffle.
func (p *playerAdapter) SetShuffle(shuffle bool) error {
	if p.ctrl.State().Shuffle != shuffle {
		p.ctrl.Dispatch(playback.ToggleShuffle{})
	}
	return nil
}

func loopStatus(m playback.RepeatMode) types.LoopStatus {
	switch m {
	case playback.RepeatOne:
		return types.LoopStatusTrack
	case playback.RepeatAll:
		return types.LoopStatusPlaylist
	case playback.RepeatOff:
		return types.LoopStatusNone
	}
	return types.LoopStatusNone
}

func repeatMode(s types.LoopStatus) (playback.RepeatMode, bool) {
	switch s {
	case types.LoopStatusNone:
		return playback.RepeatOff, true
	case types.LoopStatusTrack:
		return playback.RepeatOne, true
	case types.LoopStatusPlaylist:
		return playback.RepeatAll, true
	}
	return playback.RepeatOff, false
}

func formatTrackID(id string) string {
	h := fnv.New64a()
	h.Write([]byte(id))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
