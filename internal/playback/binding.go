package playback

import (
	"time"

	"github.com/llehouerou/encore/internal/player"
)

// queued is an action waiting in the drain queue. Transport feedback keeps
// the listener generation it was produced under and is dropped on dequeue
// if the listener was replaced in the meantime.
type queued struct {
	action   Action
	gen      uint64
	feedback bool
}

// bind replaces the transport listener with one registered under gen.
// Callbacks from a listener whose generation is no longer current are
// ignored, so a transport that delivers an event late cannot act on the
// wrong track.
func (c *Controller) bind(gen uint64) {
	c.bindMu.Lock()
	defer c.bindMu.Unlock()

	c.mu.Lock()
	superseded := gen != c.gen
	c.mu.Unlock()
	if superseded {
		return
	}

	if c.unbind != nil {
		c.unbind()
	}
	c.unbind = c.transport.Subscribe(player.Listener{
		TimeUpdate: func(pos time.Duration) {
			c.feedback(gen, SetPosition{Position: pos})
		},
		MetadataLoaded: func(d time.Duration) {
			c.feedback(gen, SetDuration{Duration: d})
		},
		Ended: func() {
			c.feedback(gen, TrackEnded{})
		},
	})
}

// release removes the transport listener without installing a new one.
func (c *Controller) release() {
	c.mu.Lock()
	c.gen++
	c.mu.Unlock()

	c.bindMu.Lock()
	defer c.bindMu.Unlock()
	if c.unbind != nil {
		c.unbind()
		c.unbind = nil
	}
}

func (c *Controller) feedback(gen uint64, a Action) {
	c.enqueue(queued{action: a, gen: gen, feedback: true})
}

// rebinds reports whether moving from prev to cur needs a fresh listener.
func rebinds(prev, cur State) bool {
	return !sameTrack(prev.Current, cur.Current) || prev.Repeat != cur.Repeat
}
