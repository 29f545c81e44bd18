//go:build !linux

package notify

import "github.com/llehouerou/encore/internal/catalog"

// Icon returns empty on non-Linux platforms.
// Desktop notifications are only supported on Linux via D-Bus.
func Icon(_ string, _ catalog.Track) string {
	return ""
}
