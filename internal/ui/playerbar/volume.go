package playerbar

import (
	"fmt"

	"github.com/llehouerou/encore/internal/playback"
)

// RenderVolume renders the volume indicator, e.g. "vol 70%" or "muted".
func RenderVolume(volume float64) string {
	if volume <= 0 {
		return dimStyle().Render("muted")
	}
	return timeStyle().Render(fmt.Sprintf("vol %3d%%", int(volume*100+0.5)))
}

// Mute remembers the volume in effect before muting.
type Mute struct {
	previous float64
}

// Toggle returns the volume to apply: zero when current is audible, or the
// remembered level when current is already muted.
func (m *Mute) Toggle(current float64) float64 {
	if current > 0 {
		m.previous = current
		return 0
	}
	if m.previous <= 0 {
		return playback.DefaultVolume
	}
	return m.previous
}
