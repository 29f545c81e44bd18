package keymap

import (
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectMinLength int
	}{
		{"global context", "global", 5},
		{"playback context", "playback", 5},
		{"navigator context", "navigator", 5},
		{"queue context", "queue", 2},
		{"playlist context", "playlist", 3},
		{"playlist-track context", "playlist-track", 3},
		{"unknown context returns empty", "unknown", 0},
		{"empty context returns empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if tt.expectMinLength == 0 && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}
			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d", tt.context, len(result), tt.expectMinLength)
			}
			for _, binding := range result {
				if binding.Context != tt.context {
					t.Errorf("binding context = %q, want %q", binding.Context, tt.context)
				}
			}
		})
	}
}

// Keys shared between contexts must resolve to the same action, since the
// resolver keeps a single action per key.
func TestBindings_NoConflictingKeys(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range Bindings {
		if len(b.Keys) == 0 {
			t.Errorf("binding %q has no keys", b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding %q has no description", b.Action)
		}
		for _, key := range b.Keys {
			if prev, ok := seen[key]; ok && prev != b.Action {
				t.Errorf("key %q bound to both %q and %q", key, prev, b.Action)
			}
			seen[key] = b.Action
		}
	}
}

func TestDefault(t *testing.T) {
	r := Default()

	tests := []struct {
		key  string
		want Action
	}{
		{" ", ActionPlayPause},
		{"enter", ActionSelect},
		{"n", ActionNewPlaylist},
		{"J", ActionMoveItemDown},
		{"f", ActionToggleLike},
		{"F", ActionLikeCurrent},
		{"esc", ActionBack},
		{"?", ActionHelp},
		{"x", ""},
	}

	for _, tt := range tests {
		if got := r.Resolve(tt.key); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}
