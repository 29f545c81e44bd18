package render

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain title", "Paper Boats", "Paper Boats"},
		{"tab kept", "Side A\tIntro", "Side A\tIntro"},
		{"newline dropped", "Neon\nHarbor", "NeonHarbor"},
		{"escape dropped", "\x1b[31mRed", "[31mRed"},
		{"nbsp becomes space", "Afterglow\u00a0Avenue", "Afterglow Avenue"},
		{"invalid byte dropped", "Lo\xffw Tide", "Low Tide"},
		{"accents untouched", "Café Noir", "Café Noir"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"Willow", 10, "Willow"},
		{"Willow", 6, "Willow"},
		{"Midnight Static", 11, "Midnight..."},
		{"Midnight Static", 3, "..."},
		{"", 4, ""},
		{"夜の海の歌", 7, "夜の..."},
	}
	for _, tt := range tests {
		if got := Truncate(tt.input, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestTruncateEllipsis(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"Low Tide", 8, "Low Tide"},
		{"Low Tide Lullaby", 8, "Low Tid…"},
		{"Low Tide", 1, "…"},
	}
	for _, tt := range tests {
		if got := TruncateEllipsis(tt.input, tt.width); got != tt.want {
			t.Errorf("TruncateEllipsis(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestTruncateAndPad_ExactWidth(t *testing.T) {
	for _, s := range []string{"", "Glass", "Glass Cathedral Overture", "夜の海の歌"} {
		for _, width := range []int{4, 9, 20} {
			got := TruncateAndPad(s, width)
			if w := runewidth.StringWidth(got); w != width {
				t.Errorf("TruncateAndPad(%q, %d) has width %d", s, width, w)
			}
		}
	}
}

func TestRow(t *testing.T) {
	if got := Row("Queue", "3 songs", 20); got != "Queue        3 songs" {
		t.Errorf("Row = %q", got)
	}
	if got := Row("Queue", "3 songs", 5); got != "Queue 3 songs" {
		t.Errorf("Row overflow = %q, want a single space gap", got)
	}
}

func TestSeparatorAndEmptyLine(t *testing.T) {
	if got := Separator(3); got != "───" {
		t.Errorf("Separator(3) = %q", got)
	}
	if got := EmptyLine(2); got != "  " {
		t.Errorf("EmptyLine(2) = %q", got)
	}
	if got := Separator(0); got != "" {
		t.Errorf("Separator(0) = %q", got)
	}
}
