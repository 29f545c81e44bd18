//go:build linux

package notify

import (
	"github.com/llehouerou/encore/internal/catalog"
	"github.com/llehouerou/encore/internal/mpris"
)

// Icon returns the cover art of t for use as a notification icon, or ""
// when there is none. Relative paths are resolved against root.
func Icon(root string, t catalog.Track) string {
	return mpris.ArtURL(root, t)
}
