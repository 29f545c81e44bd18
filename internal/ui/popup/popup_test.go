package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestCenter(t *testing.T) {
	got := Center("ab\ncd", 10, 6)
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")

	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 2 padding + 2 content", len(lines))
	}
	if lines[2] != "    ab" || lines[3] != "    cd" {
		t.Errorf("content lines = %q, %q", lines[2], lines[3])
	}
}

func TestRenderBordered_FitsScreen(t *testing.T) {
	content := strings.Repeat("x", 200)
	got := RenderBordered(content, 80, 24, SizeAuto)

	for i, line := range strings.Split(got, "\n") {
		if w := ansi.StringWidth(line); w > 80 {
			t.Errorf("line %d width = %d, want <= 80", i, w)
		}
	}
}

func TestCompose(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		overlay string
		width   int
		want    string
	}{
		{
			name:    "replaces the middle",
			base:    "aaaaaaaaaa\nbbbbbbbbbb",
			overlay: "\n   XYZ",
			width:   10,
			want:    "aaaaaaaaaa\nbbbXYZbbbb",
		},
		{
			name:    "pads short base lines",
			base:    "ab",
			overlay: "    Z",
			width:   6,
			want:    "ab  Z ",
		},
		{
			name:    "ignores lines past the base",
			base:    "abc",
			overlay: "\nXYZ",
			width:   3,
			want:    "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compose(tt.base, tt.overlay, tt.width); got != tt.want {
				t.Errorf("Compose() = %q, want %q", got, tt.want)
			}
		})
	}
}
