package playback

import "github.com/llehouerou/encore/internal/catalog"

// StateChange is emitted after every applied action.
type StateChange struct {
	Previous State
	Current  State
	Action   Action
}

// TrackChange is emitted when the identity of the current track changes.
//
// Emitted by PlaySong, JumpTo, NextSong and PreviousSong when they land on
// a different track, and by DequeueAt when it reassigns or clears the
// current track. Seeking and pausing never emit it.
type TrackChange struct {
	Previous *catalog.Track
	Current  *catalog.Track
	Index    int
}

// ErrorEvent is emitted when the transport rejects a request.
// The engine state is left as it was.
type ErrorEvent struct {
	Operation string // e.g. "load track", "start playback"
	Source    string // audio source if applicable
	Err       error
}
