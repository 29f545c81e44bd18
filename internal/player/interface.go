// internal/player/interface.go
package player

import "time"

// Listener receives feedback from a transport. Nil callbacks are skipped.
//
// TimeUpdate may fire at any rate and is not guaranteed to advance by a
// fixed step. MetadataLoaded fires once per successful Load. Ended fires
// when the loaded source plays to completion.
type Listener struct {
	TimeUpdate     func(pos time.Duration)
	MetadataLoaded func(duration time.Duration)
	Ended          func()
}

// Transport is the single live audio resource driven by the playback engine.
// Play, Pause, SetVolume and SetPosition are requests: a transport may
// silently fail to honour them.
type Transport interface {
	Load(src string) error
	Play() error
	Pause()
	SetVolume(level float64)
	SetPosition(pos time.Duration)
	Position() time.Duration
	Duration() time.Duration
	Subscribe(l Listener) (unsubscribe func())
	Close() error
}

// Verify Player implements Transport at compile time.
var _ Transport = (*Player)(nil)
