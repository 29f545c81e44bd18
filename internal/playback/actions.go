package playback

import (
	"time"

	"github.com/llehouerou/encore/internal/catalog"
)

// Action is a discrete request to the playback engine. The set of actions
// is closed: only the types declared in this package implement it.
type Action interface {
	action()
}

// PlaySong replaces the queue and starts playing Track. A nil Queue plays
// Track alone. Track must be a member of Queue.
type PlaySong struct {
	Track catalog.Track
	Queue []catalog.Track
}

// TogglePlay flips between playing and paused.
type TogglePlay struct{}

// NextSong advances the queue. Past the end it wraps with RepeatAll and
// stops otherwise.
type NextSong struct{}

// PreviousSong steps back through the queue, always wrapping.
type PreviousSong struct{}

// SetVolume sets the volume, clamped to [0,1].
type SetVolume struct {
	Volume float64
}

// SetPosition records the transport position.
type SetPosition struct {
	Position time.Duration
}

// Seek moves playback to Position.
type Seek struct {
	Position time.Duration
}

// SetDuration records the duration reported by the transport.
type SetDuration struct {
	Duration time.Duration
}

// ToggleShuffle flips the shuffle flag. The queue order is not changed.
type ToggleShuffle struct{}

// CycleRepeat advances the repeat mode: off, all, one, off.
type CycleRepeat struct{}

// ToggleLike adds TrackID to the liked set, or removes it if present.
type ToggleLike struct {
	TrackID string
}

// EnqueueAppend adds Track to the end of the queue.
type EnqueueAppend struct {
	Track catalog.Track
}

// DequeueAt removes the queue entry at Index.
type DequeueAt struct {
	Index int
}

// JumpTo plays the queue entry at Index.
type JumpTo struct {
	Index int
}

// TrackEnded is dispatched when the transport reaches the end of the
// current source.
type TrackEnded struct{}

func (PlaySong) action()      {}
func (TogglePlay) action()    {}
func (NextSong) action()      {}
func (PreviousSong) action()  {}
func (SetVolume) action()     {}
func (SetPosition) action()   {}
func (Seek) action()          {}
func (SetDuration) action()   {}
func (ToggleShuffle) action() {}
func (CycleRepeat) action()   {}
func (ToggleLike) action()    {}
func (EnqueueAppend) action() {}
func (DequeueAt) action()     {}
func (JumpTo) action()        {}
func (TrackEnded) action()    {}

// ActionName returns a short name for logging.
func ActionName(a Action) string {
	switch a.(type) {
	case PlaySong:
		return "play_song"
	case TogglePlay:
		return "toggle_play"
	case NextSong:
		return "next_song"
	case PreviousSong:
		return "previous_song"
	case SetVolume:
		return "set_volume"
	case SetPosition:
		return "set_position"
	case Seek:
		return "seek"
	case SetDuration:
		return "set_duration"
	case ToggleShuffle:
		return "toggle_shuffle"
	case CycleRepeat:
		return "cycle_repeat"
	case ToggleLike:
		return "toggle_like"
	case EnqueueAppend:
		return "enqueue_append"
	case DequeueAt:
		return "dequeue_at"
	case JumpTo:
		return "jump_to"
	case TrackEnded:
		return "track_ended"
	default:
		return "unknown"
	}
}
