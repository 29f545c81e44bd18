package playback

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/llehouerou/encore/internal/catalog"
	"github.com/llehouerou/encore/internal/errmsg"
	"github.com/llehouerou/encore/internal/player"
)

// Controller owns the playback state and the audio transport.
//
// Every action, whether it comes from the UI, a desktop integration or the
// transport itself, goes through Dispatch. Actions are applied one at a
// time in arrival order; an action dispatched while another is being
// processed (including from inside a transport callback) is queued and
// applied by the goroutine already draining the queue.
type Controller struct {
	mu       sync.Mutex
	state    State
	pending  []queued
	draining bool
	closed   bool
	gen      uint64 // generation of the live listener, guarded by mu

	transport player.Transport
	logger    *log.Logger

	bindMu sync.Mutex
	unbind func()

	subsMu sync.RWMutex
	subs   []*Subscription
}

// Option configures a Controller.
type Option func(*Controller)

// WithState starts the controller from s instead of NewState().
// A restored state is always paused.
func WithState(s State) Option {
	return func(c *Controller) {
		s.Playing = false
		c.state = s
	}
}

// WithLogger sets the logger used to report transport failures.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		c.logger = l
	}
}

// NewController creates a controller driving t. The transport is bound
// immediately and, when the initial state has a current track, its source
// is loaded paused.
func NewController(t player.Transport, opts ...Option) *Controller {
	c := &Controller{
		state:     NewState(),
		transport: t,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.transport.SetVolume(c.state.Volume)
	c.gen = 1
	c.bind(c.gen)
	if cur := c.state.Current; cur != nil {
		if err := c.transport.Load(cur.Source); err != nil {
			c.fail(errmsg.OpPlaybackLoad, cur.Source, err)
		} else if c.state.Position > 0 {
			c.transport.SetPosition(c.state.Position)
		}
	}
	return c
}

// State returns the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Dispatch applies a and reconciles the transport. It returns the state
// after a when the call drained the queue itself, or the current snapshot
// when a was queued behind an action in progress.
func (c *Controller) Dispatch(a Action) State {
	return c.enqueue(queued{action: a})
}

func (c *Controller) enqueue(q queued) State {
	c.mu.Lock()
	if c.closed || (q.feedback && q.gen != c.gen) {
		defer c.mu.Unlock()
		return c.state
	}
	c.pending = append(c.pending, q)
	if c.draining {
		defer c.mu.Unlock()
		return c.state
	}

	c.draining = true
	for len(c.pending) > 0 {
		next := c.pending[0]
		c.pending = c.pending[1:]
		if next.feedback && next.gen != c.gen {
			continue
		}
		prev := c.state
		cur := Apply(prev, next.action)
		c.state = cur
		gen := uint64(0)
		if rebinds(prev, cur) {
			c.gen++
			gen = c.gen
		}
		c.mu.Unlock()

		if _, tick := next.action.(SetPosition); !tick {
			c.logger.Debug("dispatch", "action", ActionName(next.action), "status", cur.Status())
		}
		c.sync(prev, cur, next.action, gen)
		c.publish(prev, cur, next.action)

		c.mu.Lock()
	}
	c.pending = nil
	c.draining = false
	defer c.mu.Unlock()
	return c.state
}

// sync issues the transport requests that make it follow cur. A non-zero
// gen is the listener generation committed with cur.
func (c *Controller) sync(prev, cur State, a Action, gen uint64) {
	changed := !sameTrack(prev.Current, cur.Current)

	if gen != 0 {
		c.bind(gen)
	}

	if prev.Volume != cur.Volume {
		c.transport.SetVolume(cur.Volume)
	}

	loaded := false
	if cur.Current != nil && (changed || startsTrack(a)) {
		src := cur.Current.Source
		if err := c.transport.Load(src); err != nil {
			// The transport has dropped the previous source; there is
			// nothing to start until the next load.
			c.fail(errmsg.OpPlaybackLoad, src, err)
			return
		}
		loaded = true
	}

	if !loaded && cur.Current != nil {
		switch a.(type) {
		case Seek:
			c.transport.SetPosition(cur.Position)
		case NextSong, PreviousSong, TrackEnded:
			if cur.Position == 0 {
				c.transport.SetPosition(0)
			}
		}
	}

	want := cur.Playing && cur.Current != nil
	had := prev.Playing && prev.Current != nil
	_, ended := a.(TrackEnded)
	switch {
	case want && (!had || loaded || ended):
		if err := c.transport.Play(); err != nil {
			c.fail(errmsg.OpPlaybackStart, cur.Current.Source, err)
		}
	case !want && had:
		c.transport.Pause()
	}
}

func (c *Controller) publish(prev, cur State, a Action) {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()

	for _, sub := range c.subs {
		sub.sendState(StateChange{Previous: prev, Current: cur, Action: a})
	}
	if sameTrack(prev.Current, cur.Current) {
		return
	}
	e := TrackChange{Previous: prev.Current, Current: cur.Current, Index: cur.Queue.Index()}
	for _, sub := range c.subs {
		sub.sendTrack(e)
	}
}

// fail logs a rejected transport request and reports it to subscribers.
// The state is not rolled back.
func (c *Controller) fail(op errmsg.Op, src string, err error) {
	c.logger.Error(errmsg.FormatWith(op, src, err))

	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	e := ErrorEvent{Operation: string(op), Source: src, Err: err}
	for _, sub := range c.subs {
		sub.sendError(e)
	}
}

// Subscribe creates a new event subscription.
func (c *Controller) Subscribe() *Subscription {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	sub := newSubscription()
	c.subs = append(c.subs, sub)
	return sub
}

// Close unbinds the transport, closes it and ends all subscriptions.
// Actions dispatched after Close are ignored.
func (c *Controller) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	c.release()
	err := c.transport.Close()

	c.subsMu.Lock()
	for _, sub := range c.subs {
		sub.close()
	}
	c.subs = nil
	c.subsMu.Unlock()

	return err
}

// startsTrack reports whether a restarts the current source from the top
// even when the track identity is unchanged.
func startsTrack(a Action) bool {
	switch a.(type) {
	case PlaySong, JumpTo:
		return true
	default:
		return false
	}
}

func sameTrack(a, b *catalog.Track) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.ID == b.ID
}
