//go:build linux

package notify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/llehouerou/encore/internal/catalog"
)

func TestIcon(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "album"), 0o755); err != nil {
		t.Fatal(err)
	}
	track := catalog.Track{ID: "1", Title: "Song", Source: "album/01-song.mp3"}

	if got := Icon(dir, track); got != "" {
		t.Errorf("Icon() = %q, want empty without cover", got)
	}

	coverPath := filepath.Join(dir, "album", "cover.jpg")
	if err := os.WriteFile(coverPath, []byte{0xFF, 0xD8, 0xFF}, 0o600); err != nil {
		t.Fatal(err)
	}
	if got, want := Icon(dir, track), "file://"+coverPath; got != want {
		t.Errorf("Icon() = %q, want %q", got, want)
	}

	track.Cover = "https://example.com/cover.jpg"
	if got := Icon(dir, track); got != track.Cover {
		t.Errorf("Icon() = %q, want the web cover %q", got, track.Cover)
	}
}
