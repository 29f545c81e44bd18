package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/encore/internal/keymap"
	"github.com/llehouerou/encore/internal/playback"
)

const (
	seekStep   = 5 * time.Second
	volumeStep = 0.05
)

// dispatch sends a to the playback engine and keeps the returned snapshot.
func (m *Model) dispatch(a playback.Action) {
	m.state = m.Playback.Dispatch(a)
}

// handlePlaybackAction handles transport keys. They work on every page.
func (m *Model) handlePlaybackAction(a keymap.Action) (bool, tea.Cmd) {
	s := m.state
	switch a {
	case keymap.ActionPlayPause:
		switch {
		case s.Current != nil:
			m.dispatch(playback.TogglePlay{})
		case !s.Queue.IsEmpty():
			m.dispatch(playback.JumpTo{Index: 0})
		}
	case keymap.ActionNextTrack:
		if s.Current != nil {
			m.dispatch(playback.NextSong{})
		}
	case keymap.ActionPrevTrack:
		if s.Current != nil {
			m.dispatch(playback.PreviousSong{})
		}
	case keymap.ActionSeekForward:
		m.seek(seekStep)
	case keymap.ActionSeekBack:
		m.seek(-seekStep)
	case keymap.ActionVolumeUp:
		m.dispatch(playback.SetVolume{Volume: s.Volume + volumeStep})
	case keymap.ActionVolumeDown:
		m.dispatch(playback.SetVolume{Volume: s.Volume - volumeStep})
	case keymap.ActionMute:
		m.dispatch(playback.SetVolume{Volume: m.mute.Toggle(s.Volume)})
	case keymap.ActionCycleRepeat:
		m.dispatch(playback.CycleRepeat{})
		return true, m.setStatus("Repeat: "+m.state.Repeat.String(), false)
	case keymap.ActionToggleShuffle:
		m.dispatch(playback.ToggleShuffle{})
		if m.state.Shuffle {
			return true, m.setStatus("Shuffle on", false)
		}
		return true, m.setStatus("Shuffle off", false)
	case keymap.ActionLikeCurrent:
		if s.Current == nil {
			return true, nil
		}
		return true, m.toggleLike(s.Current.ID)
	default:
		return false, nil
	}
	return true, nil
}

// seek moves the playback position by delta, clamped to the track.
func (m *Model) seek(delta time.Duration) {
	s := m.state
	if s.Current == nil {
		return
	}
	d := s.Duration
	if d <= 0 {
		d = s.Current.Duration
	}
	pos := max(s.Position+delta, 0)
	if d > 0 {
		pos = min(pos, d)
	}
	m.dispatch(playback.Seek{Position: pos})
}

func (m *Model) toggleLike(trackID string) tea.Cmd {
	m.dispatch(playback.ToggleLike{TrackID: trackID})
	if m.state.IsLiked(trackID) {
		return m.setStatus("Added to Liked Songs", false)
	}
	return m.setStatus("Removed from Liked Songs", false)
}
