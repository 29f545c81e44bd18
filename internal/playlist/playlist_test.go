//nolint:goconst // test file with repeated string literals
package playlist

import (
	"slices"
	"testing"
	"time"
)

func tracks(ids ...string) []Track {
	out := make([]Track, len(ids))
	for i, id := range ids {
		out[i] = Track{ID: id, Title: "Song " + id, Duration: time.Minute}
	}
	return out
}

func TestAppend_NeverAliases(t *testing.T) {
	backing := make([]Track, 2, 8)
	copy(backing, tracks("a", "b"))

	first := Append(backing, Track{ID: "c"})
	second := Append(backing, Track{ID: "d"})

	if !slices.Equal(IDs(first), []string{"a", "b", "c"}) {
		t.Errorf("first = %v, want [a b c]", IDs(first))
	}
	if !slices.Equal(IDs(second), []string{"a", "b", "d"}) {
		t.Errorf("second = %v, want [a b d]", IDs(second))
	}
	if got := backing[:3][2].ID; got != "" {
		t.Errorf("spare capacity of the input was written: %q", got)
	}

	first[0].ID = "x"
	if backing[0].ID != "a" {
		t.Error("result shares storage with the input")
	}
}

func TestAppend_Empty(t *testing.T) {
	got := Append(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("Append(nil) = %#v, want empty non-nil slice", got)
	}
}

func TestAddUnique(t *testing.T) {
	list := tracks("a", "b")

	got, ok := AddUnique(list, Track{ID: "c"})
	if !ok {
		t.Fatal("AddUnique should add a new id")
	}
	if !slices.Equal(IDs(got), []string{"a", "b", "c"}) {
		t.Errorf("IDs = %v, want [a b c]", IDs(got))
	}

	got, ok = AddUnique(got, Track{ID: "a"})
	if ok {
		t.Error("AddUnique should not add a duplicate id")
	}
	if len(got) != 3 {
		t.Errorf("len = %d, want 3", len(got))
	}
}

func TestRemoveAt(t *testing.T) {
	list := tracks("a", "b", "c")

	got, ok := RemoveAt(list, 1)
	if !ok {
		t.Fatal("RemoveAt(1) should succeed")
	}
	if !slices.Equal(IDs(got), []string{"a", "c"}) {
		t.Errorf("IDs = %v, want [a c]", IDs(got))
	}
	if !slices.Equal(IDs(list), []string{"a", "b", "c"}) {
		t.Errorf("input modified: %v", IDs(list))
	}

	for _, i := range []int{-1, 3} {
		if _, ok := RemoveAt(list, i); ok {
			t.Errorf("RemoveAt(%d) should fail", i)
		}
	}
}

func TestRemoveID(t *testing.T) {
	list := []Track{{ID: "a"}, {ID: "b"}, {ID: "a"}}

	got, ok := RemoveID(list, "a")
	if !ok {
		t.Fatal("RemoveID should report a removal")
	}
	if !slices.Equal(IDs(got), []string{"b"}) {
		t.Errorf("IDs = %v, want [b]", IDs(got))
	}

	if _, ok := RemoveID(list, "zzz"); ok {
		t.Error("RemoveID of unknown id should report no change")
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
		wantOK   bool
	}{
		{"forward", 0, 2, []string{"b", "c", "a", "d"}, true},
		{"backward", 3, 1, []string{"a", "d", "b", "c"}, true},
		{"same index", 1, 1, []string{"a", "b", "c", "d"}, true},
		{"from out of range", 4, 0, []string{"a", "b", "c", "d"}, false},
		{"to out of range", 0, -1, []string{"a", "b", "c", "d"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := tracks("a", "b", "c", "d")
			got, ok := Move(list, tt.from, tt.to)
			if ok != tt.wantOK {
				t.Errorf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !slices.Equal(IDs(got), tt.want) {
				t.Errorf("IDs = %v, want %v", IDs(got), tt.want)
			}
			if !slices.Equal(IDs(list), []string{"a", "b", "c", "d"}) {
				t.Errorf("input modified: %v", IDs(list))
			}
		})
	}
}

func TestPushRecent(t *testing.T) {
	recent := PushRecent(nil, Track{ID: "a"})
	recent = PushRecent(recent, Track{ID: "b"})
	recent = PushRecent(recent, Track{ID: "a"})

	if !slices.Equal(IDs(recent), []string{"a", "b"}) {
		t.Errorf("IDs = %v, want [a b]", IDs(recent))
	}
}

func TestPushRecent_Cap(t *testing.T) {
	var recent []Track
	for i := range MaxRecent + 10 {
		recent = PushRecent(recent, Track{ID: string(rune('A' + i))})
	}

	if len(recent) != MaxRecent {
		t.Fatalf("len = %d, want %d", len(recent), MaxRecent)
	}
	if want := string(rune('A' + MaxRecent + 9)); recent[0].ID != want {
		t.Errorf("recent[0] = %q, want %q", recent[0].ID, want)
	}

	seen := make(map[string]bool)
	for _, tr := range recent {
		if seen[tr.ID] {
			t.Errorf("duplicate id %q", tr.ID)
		}
		seen[tr.ID] = true
	}
}

func TestPushRecent_FullListKeepsNewEntryUnique(t *testing.T) {
	var recent []Track
	for i := range MaxRecent {
		recent = PushRecent(recent, Track{ID: string(rune('A' + i))})
	}
	last := recent[len(recent)-1].ID

	recent = PushRecent(recent, Track{ID: last})

	if len(recent) != MaxRecent {
		t.Errorf("len = %d, want %d", len(recent), MaxRecent)
	}
	if recent[0].ID != last {
		t.Errorf("recent[0] = %q, want %q", recent[0].ID, last)
	}
}
