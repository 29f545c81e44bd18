// Package app is the terminal user interface. It turns key presses into
// playback actions and collection mutations and renders the snapshots it
// gets back.
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/encore/internal/playback"
	"github.com/llehouerou/encore/internal/playlists"
)

// Message category interfaces for type-based routing in Update().
// External messages (from other packages) cannot implement these interfaces,
// so they are handled separately in the Update() switch.

// PlaybackMessage is implemented by messages coming from the playback engine.
type PlaybackMessage interface {
	tea.Msg
	playbackMessage()
}

// CollectionMessage is implemented by messages coming from the playlist store.
type CollectionMessage interface {
	tea.Msg
	collectionMessage()
}

// TickMsg is sent periodically to refresh the player bar.
type TickMsg time.Time

func (TickMsg) playbackMessage() {}

// StateChangedMsg wraps a playback state change.
type StateChangedMsg playback.StateChange

func (StateChangedMsg) playbackMessage() {}

// TrackChangedMsg is sent when the current track identity changes.
type TrackChangedMsg playback.TrackChange

func (TrackChangedMsg) playbackMessage() {}

// PlaybackErrorMsg reports a transport failure.
type PlaybackErrorMsg playback.ErrorEvent

func (PlaybackErrorMsg) playbackMessage() {}

// NotifiedMsg reports the id of the desktop notification for the current
// track, so the next one replaces it.
type NotifiedMsg struct {
	ID  uint32
	Err error
}

// PlaybackClosedMsg is sent when the playback subscription ends.
type PlaybackClosedMsg struct{}

func (PlaybackClosedMsg) playbackMessage() {}

// PlaylistsChangedMsg carries the collection after a mutation.
type PlaylistsChangedMsg playlists.Snapshot

func (PlaylistsChangedMsg) collectionMessage() {}

// PlaylistsClosedMsg is sent when the store subscription ends.
type PlaylistsClosedMsg struct{}

func (PlaylistsClosedMsg) collectionMessage() {}

// ClearStatusMsg clears the status line if no newer message replaced it.
type ClearStatusMsg struct {
	Version int
}
