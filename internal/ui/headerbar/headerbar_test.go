package headerbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRender(t *testing.T) {
	if got := Render(TabHome, 10); got != "" {
		t.Errorf("Render() on narrow terminal = %q, want empty", got)
	}

	out := Render(TabQueue, 120)
	for _, want := range []string{"F1 Playlists", "F2 Search", "F5 Queue"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() missing %q in %q", want, out)
		}
	}
	if w := lipgloss.Width(out); w > 120 {
		t.Errorf("Render() width = %d, want at most 120", w)
	}
}
