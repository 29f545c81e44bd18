// internal/playback/state.go
package playback

import (
	"slices"
	"time"

	"github.com/llehouerou/encore/internal/catalog"
	"github.com/llehouerou/encore/internal/playlist"
)

// DefaultVolume is the volume of a fresh session.
const DefaultVolume = 0.7

// Status is the coarse playback status derived from a State.
//
//	Empty ──PlaySong/JumpTo──► Playing ◄──TogglePlay──► Paused
//	  ▲                          │                        │
//	  └──────DequeueAt(last)─────┴────────────────────────┘
type Status int

const (
	StatusEmpty Status = iota
	StatusPaused
	StatusPlaying
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "Empty"
	case StatusPaused:
		return "Paused"
	case StatusPlaying:
		return "Playing"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a track is loaded (playing or paused).
func (s Status) IsActive() bool {
	return s == StatusPlaying || s == StatusPaused
}

// RepeatMode defines the repeat behavior.
type RepeatMode int

const (
	RepeatOff RepeatMode = iota
	RepeatAll
	RepeatOne
)

// String returns the repeat mode name.
func (m RepeatMode) String() string {
	switch m {
	case RepeatOff:
		return "Off"
	case RepeatAll:
		return "All"
	case RepeatOne:
		return "One"
	default:
		return "Unknown"
	}
}

// Next returns the mode following m in the cycle off, all, one.
func (m RepeatMode) Next() RepeatMode {
	switch m {
	case RepeatOff:
		return RepeatAll
	case RepeatAll:
		return RepeatOne
	default:
		return RepeatOff
	}
}

// State is an immutable snapshot of the playback engine. Apply never
// modifies a State in place; slices held by a State must not be mutated.
type State struct {
	// Current is nil only in the Empty status.
	Current  *catalog.Track
	Playing  bool
	Queue    playlist.Queue
	Volume   float64
	Position time.Duration
	// Duration is reported by the transport once the source is loaded.
	Duration time.Duration
	Shuffle  bool
	Repeat   RepeatMode
	// Recent is most-recent-first, unique by id, capped at playlist.MaxRecent.
	Recent []catalog.Track
	// Liked holds track ids in the order they were liked.
	Liked []string
}

// NewState returns the state of a fresh session.
func NewState() State {
	return State{Volume: DefaultVolume}
}

// Status reports the coarse playback status.
func (s State) Status() Status {
	switch {
	case s.Current == nil:
		return StatusEmpty
	case s.Playing:
		return StatusPlaying
	default:
		return StatusPaused
	}
}

// Index returns the queue position of the current track.
func (s State) Index() int {
	return s.Queue.Index()
}

// IsLiked reports whether the track id is in the liked set.
func (s State) IsLiked(trackID string) bool {
	return slices.Contains(s.Liked, trackID)
}

// IsCurrent reports whether the track id is the current track.
func (s State) IsCurrent(trackID string) bool {
	return s.Current != nil && s.Current.ID == trackID
}

// Progress returns the position as a fraction of the duration in [0,1].
func (s State) Progress() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return min(max(float64(s.Position)/float64(s.Duration), 0), 1)
}
