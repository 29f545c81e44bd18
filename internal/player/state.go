// internal/player/state.go
package player

// State represents the transport state machine.
//
//	┌──────────┐      load       ┌──────────┐
//	│  Stopped │ ───────────────▶│  Paused  │◀─┐
//	└──────────┘                 └──────────┘  │
//	                               │      ▲    │ pause
//	                          play │      │    │
//	                               ▼      │    │
//	┌──────────┐     ends        ┌──────────┐  │
//	│  Ended   │◀────────────────│  Playing │──┘
//	└──────────┘                 └──────────┘
//	     │            play             ▲
//	     └─────────────────────────────┘
//
// Load from any state replaces the source and lands in Paused.
type State int

const (
	Stopped State = iota
	Playing
	Paused
	Ended
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case Ended:
		return "Ended"
	default:
		return "Unknown"
	}
}

// IsActive returns true if a source is loaded and not finished.
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}

// CanPause returns true if the state allows pausing.
func (s State) CanPause() bool {
	return s == Playing
}

// CanPlay returns true if a loaded source can be started.
func (s State) CanPlay() bool {
	return s == Paused || s == Ended
}
