package player

import (
	"maps"
	"slices"
	"sync"
	"time"
)

// listeners is a registry of transport listeners shared by Player and Mock.
type listeners struct {
	mu   sync.Mutex
	next int
	m    map[int]Listener
}

// add registers l and returns a function that removes it. The returned
// function is safe to call more than once.
func (ls *listeners) add(l Listener) func() {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	if ls.m == nil {
		ls.m = make(map[int]Listener)
	}
	id := ls.next
	ls.next++
	ls.m[id] = l

	var once sync.Once
	return func() {
		once.Do(func() {
			ls.mu.Lock()
			delete(ls.m, id)
			ls.mu.Unlock()
		})
	}
}

func (ls *listeners) len() int {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return len(ls.m)
}

// snapshot copies the registered listeners so callbacks run without the lock.
func (ls *listeners) snapshot() []Listener {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	out := make([]Listener, 0, len(ls.m))
	for _, id := range slices.Sorted(maps.Keys(ls.m)) {
		out = append(out, ls.m[id])
	}
	return out
}

func (ls *listeners) timeUpdate(pos time.Duration) {
	for _, l := range ls.snapshot() {
		if l.TimeUpdate != nil {
			l.TimeUpdate(pos)
		}
	}
}

func (ls *listeners) metadataLoaded(d time.Duration) {
	for _, l := range ls.snapshot() {
		if l.MetadataLoaded != nil {
			l.MetadataLoaded(d)
		}
	}
}

func (ls *listeners) ended() {
	for _, l := range ls.snapshot() {
		if l.Ended != nil {
			l.Ended()
		}
	}
}
