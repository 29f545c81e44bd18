package app

import (
	"github.com/llehouerou/encore/internal/playback"
	"github.com/llehouerou/encore/internal/state"
)

// PlaybackController is the part of the playback engine the UI drives.
type PlaybackController interface {
	State() playback.State
	Dispatch(playback.Action) playback.State
	Subscribe() *playback.Subscription
}

// SessionSaver persists the listening session.
type SessionSaver interface {
	SaveSession(s state.Session)
}

// Verify implementations at compile time.
var (
	_ PlaybackController = (*playback.Controller)(nil)
	_ SessionSaver       = (state.Interface)(nil)
)
