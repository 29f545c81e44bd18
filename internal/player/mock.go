// internal/player/mock.go
package player

import (
	"sync"
	"time"
)

// Mock is a test double for Transport. It records every request and lets
// tests fire feedback events, including through listeners that have
// already been unsubscribed.
type Mock struct {
	mu         sync.Mutex
	state      State
	src        string
	position   time.Duration
	duration   time.Duration
	volume     float64
	loadErr    error
	playErr    error
	loadCalls  []string
	playCalls  int
	pauseCalls int
	seekCalls  []time.Duration
	volCalls   []float64
	subscribed []Listener
	closed     bool

	listeners listeners
}

// NewMock creates a new mock transport for testing.
func NewMock() *Mock {
	return &Mock{state: Stopped, volume: 1}
}

func (m *Mock) Load(src string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadCalls = append(m.loadCalls, src)
	if m.loadErr != nil {
		m.src = ""
		m.position = 0
		m.state = Stopped
		return m.loadErr
	}
	m.src = src
	m.position = 0
	m.state = Paused
	return nil
}

func (m *Mock) Play() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playCalls++
	if m.playErr != nil {
		return m.playErr
	}
	if m.src == "" {
		return ErrNoSource
	}
	m.state = Playing
	return nil
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pauseCalls++
	if m.state == Playing {
		m.state = Paused
	}
}

func (m *Mock) SetVolume(level float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volume = ClampVolume(level)
	m.volCalls = append(m.volCalls, level)
}

func (m *Mock) SetPosition(pos time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = pos
	m.seekCalls = append(m.seekCalls, pos)
}

func (m *Mock) Position() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func (m *Mock) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration
}

func (m *Mock) Subscribe(l Listener) func() {
	m.mu.Lock()
	m.subscribed = append(m.subscribed, l)
	m.mu.Unlock()
	return m.listeners.add(l)
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.state = Stopped
	return nil
}

// Test helpers

func (m *Mock) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Mock) Source() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.src
}

func (m *Mock) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

func (m *Mock) SetLoadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr = err
}

func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

func (m *Mock) SetDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duration = d
}

func (m *Mock) LoadCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.loadCalls...)
}

func (m *Mock) PlayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCalls
}

func (m *Mock) PauseCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pauseCalls
}

func (m *Mock) SeekCalls() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.seekCalls...)
}

func (m *Mock) VolumeCalls() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.volCalls...)
}

// Subscribed returns every listener ever registered, including removed ones.
func (m *Mock) Subscribed() []Listener {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Listener(nil), m.subscribed...)
}

// ActiveListeners returns the number of listeners still registered.
func (m *Mock) ActiveListeners() int {
	return m.listeners.len()
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// SimulateTimeUpdate reports pos to the active listeners.
func (m *Mock) SimulateTimeUpdate(pos time.Duration) {
	m.mu.Lock()
	m.position = pos
	m.mu.Unlock()
	m.listeners.timeUpdate(pos)
}

// SimulateMetadataLoaded reports d to the active listeners.
func (m *Mock) SimulateMetadataLoaded(d time.Duration) {
	m.mu.Lock()
	m.duration = d
	m.mu.Unlock()
	m.listeners.metadataLoaded(d)
}

// SimulateEnded reports the end of the source to the active listeners.
func (m *Mock) SimulateEnded() {
	m.mu.Lock()
	m.state = Ended
	m.mu.Unlock()
	m.listeners.ended()
}

// Verify Mock implements Transport at compile time.
var _ Transport = (*Mock)(nil)
