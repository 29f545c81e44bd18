package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScan_SkipsUndecodableFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "Willow Lane"), 0o755); err != nil {
		t.Fatal(err)
	}
	for name, data := range map[string][]byte{
		"notes.txt":              []byte("not music"),
		"Willow Lane/broken.mp3": nil,
		"cover.jpg":              {0xff, 0xd8},
	} {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o600); err != nil {
			t.Fatal(err)
		}
	}

	c, skipped, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan() error: %v", err)
	}
	if len(c.Tracks()) != 0 {
		t.Errorf("got %d tracks, want 0", len(c.Tracks()))
	}
	if len(skipped) != 1 || filepath.Base(skipped[0]) != "broken.mp3" {
		t.Errorf("skipped = %v, want only broken.mp3", skipped)
	}
}

func TestScan_MissingDir(t *testing.T) {
	if _, _, err := Scan(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Scan() of a missing directory should fail")
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Willow Lane", "willow-lane"},
		{"  Neon -- Harbor!! ", "neon-harbor"},
		{"Café Noir 2", "café-noir-2"},
		{"???", "unknown"},
	}
	for _, tt := range tests {
		if got := slug(tt.in); got != tt.want {
			t.Errorf("slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
