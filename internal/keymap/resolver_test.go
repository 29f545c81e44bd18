package keymap

import (
	"slices"
	"testing"
)

func TestResolver_FirstBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionDelete, []string{"d"}, "Remove track", "playlist-track"},
		{ActionDelete, []string{"d", "delete"}, "Remove from queue", "queue"},
		{ActionNewPlaylist, []string{"n"}, "New playlist", "playlist"},
		{ActionSearch, []string{"n"}, "Search", "global"},
	})

	tests := []struct {
		key  string
		want Action
	}{
		{"d", ActionDelete},
		{"delete", ActionDelete},
		{"n", ActionNewPlaylist},
		{"z", ""},
	}
	for _, tt := range tests {
		if got := r.Resolve(tt.key); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionSelect, []string{"enter"}, "Play/open", "navigator"},
		{ActionSelect, []string{"enter", "o"}, "Jump to track", "queue"},
	})

	if got := r.KeysFor(ActionSelect); !slices.Equal(got, []string{"enter", "o"}) {
		t.Errorf("KeysFor(select) = %v, want [enter o]", got)
	}
	if got := r.KeysFor(ActionQuit); got != nil {
		t.Errorf("KeysFor(quit) = %v, want nil", got)
	}
}

func TestDefault_EveryBindingReachable(t *testing.T) {
	r := Default()
	for _, b := range Bindings {
		for _, key := range b.Keys {
			if got := r.Resolve(key); got != b.Action {
				t.Errorf("key %q resolves to %q, want %q", key, got, b.Action)
			}
		}
		if len(r.KeysFor(b.Action)) == 0 {
			t.Errorf("no keys listed for %q", b.Action)
		}
	}
}
