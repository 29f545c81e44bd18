package mpris

import "github.com/llehouerou/encore/internal/playback"

// Controller is the part of playback.Controller the adapter drives.
type Controller interface {
	State() playback.State
	Dispatch(a playback.Action) playback.State
}

var _ Controller = (*playback.Controller)(nil)
