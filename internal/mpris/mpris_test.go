//go:build linux

package mpris

import (
	"testing"
	"time"

	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/encore/internal/catalog"
	"github.com/llehouerou/encore/internal/playback"
	"github.com/llehouerou/encore/internal/player"
)

var queue = []catalog.Track{
	{ID: "1", Title: "One", Artist: "A", Album: "X", Genre: "Pop", Duration: 3 * time.Minute, Source: "1.mp3"},
	{ID: "2", Title: "Two", Artist: "A", Album: "X", Duration: 4 * time.Minute, Source: "2.mp3"},
}

func newTestAdapter(t *testing.T) (*playerAdapter, *playback.Controller) {
	t.Helper()
	ctrl := playback.NewController(player.NewMock())
	t.Cleanup(func() { _ = ctrl.Close() })
	return &playerAdapter{ctrl: ctrl}, ctrl
}

func TestPlayerAdapter_Empty(t *testing.T) {
	p, _ := newTestAdapter(t)

	status, _ := p.PlaybackStatus()
	if status != types.PlaybackStatusStopped {
		t.Errorf("PlaybackStatus() = %v, want Stopped", status)
	}
	meta, _ := p.Metadata()
	if meta.Title != "" {
		t.Errorf("Metadata().Title = %q, want empty", meta.Title)
	}
	if ok, _ := p.CanPlay(); ok {
		t.Error("CanPlay() = true with nothing loaded")
	}
	if err := p.Seek(types.Microseconds(time.Second.Microseconds())); err != nil {
		t.Errorf("Seek() error = %v", err)
	}
}

func TestPlayerAdapter_Transport(t *testing.T) {
	p, ctrl := newTestAdapter(t)
	ctrl.Dispatch(playback.PlaySong{Track: queue[0], Queue: queue})

	if status, _ := p.PlaybackStatus(); status != types.PlaybackStatusPlaying {
		t.Errorf("PlaybackStatus() = %v, want Playing", status)
	}

	_ = p.Pause()
	if ctrl.State().Playing {
		t.Error("Pause() should pause")
	}
	_ = p.Pause()
	if ctrl.State().Playing {
		t.Error("Pause() twice should stay paused")
	}

	_ = p.Play()
	_ = p.Play()
	if !ctrl.State().Playing {
		t.Error("Play() should resume")
	}

	_ = p.Next()
	if got := ctrl.State().Current.ID; got != "2" {
		t.Errorf("after Next() current = %q, want 2", got)
	}
	_ = p.Previous()
	if got := ctrl.State().Current.ID; got != "1" {
		t.Errorf("after Previous() current = %q, want 1", got)
	}

	_ = p.PlayPause()
	if status, _ := p.PlaybackStatus(); status != types.PlaybackStatusPaused {
		t.Errorf("PlaybackStatus() = %v, want Paused", status)
	}
}

func TestPlayerAdapter_SeekAndStop(t *testing.T) {
	p, ctrl := newTestAdapter(t)
	ctrl.Dispatch(playback.PlaySong{Track: queue[0], Queue: queue})

	_ = p.Seek(types.Microseconds((30 * time.Second).Microseconds()))
	if got := ctrl.State().Position; got != 30*time.Second {
		t.Errorf("Position = %v, want 30s", got)
	}
	_ = p.Seek(types.Microseconds((-time.Minute).Microseconds()))
	if got := ctrl.State().Position; got != 0 {
		t.Errorf("Position = %v, want clamped to 0", got)
	}

	_ = p.SetPosition(formatTrackID("2"), types.Microseconds((time.Minute).Microseconds()))
	if got := ctrl.State().Position; got != 0 {
		t.Errorf("SetPosition for another track moved to %v", got)
	}
	_ = p.SetPosition(formatTrackID("1"), types.Microseconds((time.Minute).Microseconds()))
	if got, _ := p.Position(); got != time.Minute.Microseconds() {
		t.Errorf("Position() = %d, want %d", got, time.Minute.Microseconds())
	}

	_ = p.Stop()
	s := ctrl.State()
	if s.Playing || s.Position != 0 {
		t.Errorf("after Stop() playing=%v position=%v, want paused at 0", s.Playing, s.Position)
	}
}

func TestPlayerAdapter_Metadata(t *testing.T) {
	p, ctrl := newTestAdapter(t)
	ctrl.Dispatch(playback.PlaySong{Track: queue[0], Queue: queue})

	meta, err := p.Metadata()
	if err != nil {
		t.Fatalf("Metadata() error = %v", err)
	}
	if meta.Title != "One" || meta.Album != "X" {
		t.Errorf("Metadata() = %+v", meta)
	}
	if len(meta.Artist) != 1 || meta.Artist[0] != "A" {
		t.Errorf("Metadata().Artist = %v", meta.Artist)
	}
	if len(meta.Genre) != 1 || meta.Genre[0] != "Pop" {
		t.Errorf("Metadata().Genre = %v", meta.Genre)
	}
	if want := types.Microseconds((3 * time.Minute).Microseconds()); meta.Length != want {
		t.Errorf("Metadata().Length = %d, want %d", meta.Length, want)
	}
	if string(meta.TrackId) != formatTrackID("1") {
		t.Errorf("Metadata().TrackId = %q", meta.TrackId)
	}

	ctrl.Dispatch(playback.SetDuration{Duration: 181 * time.Second})
	meta, _ = p.Metadata()
	if want := types.Microseconds((181 * time.Second).Microseconds()); meta.Length != want {
		t.Errorf("Metadata().Length = %d, want transport duration %d", meta.Length, want)
	}
}

func TestPlayerAdapter_Volume(t *testing.T) {
	p, ctrl := newTestAdapter(t)

	_ = p.SetVolume(0.25)
	if v, _ := p.Volume(); v != 0.25 {
		t.Errorf("Volume() = %v, want 0.25", v)
	}
	_ = p.SetVolume(2)
	if v := ctrl.State().Volume; v != 1 {
		t.Errorf("Volume = %v, want clamped to 1", v)
	}
}

func TestPlayerAdapter_SetLoopStatus(t *testing.T) {
	tests := []struct {
		status types.LoopStatus
		want   playback.RepeatMode
	}{
		{types.LoopStatusTrack, playback.RepeatOne},
		{types.LoopStatusPlaylist, playback.RepeatAll},
		{types.LoopStatusNone, playback.RepeatOff},
		{types.LoopStatusTrack, playback.RepeatOne},
	}

	p, ctrl := newTestAdapter(t)
	for _, tt := range tests {
		if err := p.SetLoopStatus(tt.status); err != nil {
			t.Fatalf("SetLoopStatus(%v) error = %v", tt.status, err)
		}
		if got := ctrl.State().Repeat; got != tt.want {
			t.Errorf("SetLoopStatus(%v): Repeat = %v, want %v", tt.status, got, tt.want)
		}
		if got, _ := p.LoopStatus(); got != tt.status {
			t.Errorf("LoopStatus() = %v, want %v", got, tt.status)
		}
	}

	if err := p.SetLoopStatus("Sometimes"); err == nil {
		t.Error("SetLoopStatus with unknown status should fail")
	}
}

func TestPlayerAdapter_SetShuffle(t *testing.T) {
	p, _ := newTestAdapter(t)

	for _, want := range []bool{true, true, false, false} {
		_ = p.SetShuffle(want)
		if got, _ := p.Shuffle(); got != want {
			t.Errorf("Shuffle() = %v, want %v", got, want)
		}
	}
}
