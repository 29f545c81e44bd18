package playlist

import (
	"slices"
	"testing"
)

func TestNewQueue(t *testing.T) {
	q := NewQueue(nil, 3)

	if q.Len() != 0 {
		t.Errorf("Len() = %d, want 0", q.Len())
	}
	if q.Index() != 0 {
		t.Errorf("Index() = %d, want 0", q.Index())
	}
	if _, ok := q.Current(); ok {
		t.Error("Current() should report no track for empty queue")
	}
}

func TestNewQueue_ClampsIndex(t *testing.T) {
	tests := []struct {
		index int
		want  int
	}{
		{-2, 0},
		{1, 1},
		{9, 2},
	}
	for _, tt := range tests {
		q := NewQueue(tracks("a", "b", "c"), tt.index)
		if q.Index() != tt.want {
			t.Errorf("NewQueue(_, %d).Index() = %d, want %d", tt.index, q.Index(), tt.want)
		}
	}
}

func TestQueue_IsValue(t *testing.T) {
	q := NewQueue(tracks("a", "b"), 0)

	next, _ := q.Next(false)
	added := q.Add(Track{ID: "c"})

	if q.Index() != 0 || q.Len() != 2 {
		t.Errorf("receiver changed: index=%d len=%d", q.Index(), q.Len())
	}
	if next.Index() != 1 {
		t.Errorf("next.Index() = %d, want 1", next.Index())
	}
	if added.Len() != 3 {
		t.Errorf("added.Len() = %d, want 3", added.Len())
	}
}

func TestQueue_Next(t *testing.T) {
	tests := []struct {
		name      string
		n, index  int
		wrap      bool
		wantIndex int
		wantOK    bool
	}{
		{"middle", 3, 0, false, 1, true},
		{"at end no wrap", 3, 2, false, 2, false},
		{"at end wrap", 3, 2, true, 0, true},
		{"single no wrap", 1, 0, false, 0, false},
		{"empty", 0, 0, true, 0, false},
	}

	ids := []string{"a", "b", "c"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQueue(tracks(ids[:tt.n]...), tt.index)
			got, ok := q.Next(tt.wrap)
			if ok != tt.wantOK {
				t.Errorf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got.Index() != tt.wantIndex {
				t.Errorf("Index() = %d, want %d", got.Index(), tt.wantIndex)
			}
		})
	}
}

func TestQueue_Previous(t *testing.T) {
	q := NewQueue(tracks("a", "b", "c"), 1)
	if got := q.Previous().Index(); got != 0 {
		t.Errorf("Previous from 1 = %d, want 0", got)
	}

	q = NewQueue(tracks("a", "b", "c"), 0)
	if got := q.Previous().Index(); got != 2 {
		t.Errorf("Previous from 0 = %d, want 2 (wrap)", got)
	}

	q = NewQueue(tracks("a"), 0)
	if got := q.Previous().Index(); got != 0 {
		t.Errorf("Previous on single = %d, want 0", got)
	}
}

func TestQueue_JumpTo(t *testing.T) {
	q := NewQueue(tracks("a", "b", "c"), 0)

	got, ok := q.JumpTo(2)
	if !ok || got.Index() != 2 {
		t.Errorf("JumpTo(2) = %d, %v", got.Index(), ok)
	}
	if _, ok := q.JumpTo(3); ok {
		t.Error("JumpTo(3) should fail")
	}
}

func TestQueue_RemoveAt(t *testing.T) {
	tests := []struct {
		name      string
		index     int
		remove    int
		wantIDs   []string
		wantIndex int
		wantOK    bool
	}{
		{"before current", 2, 0, []string{"b", "c"}, 1, true},
		{"after current", 0, 2, []string{"a", "b"}, 0, true},
		{"current middle", 1, 1, []string{"a", "c"}, 1, true},
		{"current last", 2, 2, []string{"a", "b"}, 1, true},
		{"out of range", 1, 5, []string{"a", "b", "c"}, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQueue(tracks("a", "b", "c"), tt.index)
			got, ok := q.RemoveAt(tt.remove)
			if ok != tt.wantOK {
				t.Errorf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !slices.Equal(IDs(got.Tracks()), tt.wantIDs) {
				t.Errorf("IDs = %v, want %v", IDs(got.Tracks()), tt.wantIDs)
			}
			if got.Index() != tt.wantIndex {
				t.Errorf("Index() = %d, want %d", got.Index(), tt.wantIndex)
			}
		})
	}
}

func TestQueue_RemoveAt_LastTrack(t *testing.T) {
	q := NewQueue(tracks("a"), 0)

	got, ok := q.RemoveAt(0)

	if !ok {
		t.Fatal("RemoveAt(0) should succeed")
	}
	if !got.IsEmpty() {
		t.Errorf("Len() = %d, want 0", got.Len())
	}
	if got.Index() != 0 {
		t.Errorf("Index() = %d, want 0", got.Index())
	}
}
