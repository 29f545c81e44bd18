//go:build linux

package mpris

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/llehouerou/encore/internal/catalog"
)

// coverNames lists common album art filenames in priority order.
var coverNames = []string{
	"cover.jpg", "cover.png", "cover.jpeg",
	"folder.jpg", "folder.png", "folder.jpeg",
	"album.jpg", "album.png", "album.jpeg",
	"front.jpg", "front.png", "front.jpeg",
}

// FindAlbumArt looks for album art in the same directory as the track.
// Returns the path to the art file, or empty string if not found.
func FindAlbumArt(trackPath string) string {
	dir := filepath.Dir(trackPath)
	for _, name := range coverNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ArtURL returns the art URL for t: its catalog cover when that is a web
// URL or an existing file, otherwise art found next to its audio source.
// Relative paths are resolved against root.
func ArtURL(root string, t catalog.Track) string {
	if strings.HasPrefix(t.Cover, "http://") || strings.HasPrefix(t.Cover, "https://") {
		return t.Cover
	}
	if t.Cover != "" {
		if path := resolve(root, t.Cover); fileExists(path) {
			return "file://" + path
		}
	}
	if t.Source != "" {
		if path := FindAlbumArt(resolve(root, t.Source)); path != "" {
			return "file://" + path
		}
	}
	return ""
}

func resolve(root, ref string) string {
	ref = strings.TrimPrefix(ref, "file://")
	if root == "" || filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(root, ref)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
