package playerbar

import (
	"strings"
	"time"
)

const minBarWidth = 5

// RenderProgressBar renders a line-style bar of exactly width cells.
func RenderProgressBar(position, duration time.Duration, width int) string {
	width = max(width, 0)
	var ratio float64
	if duration > 0 {
		ratio = min(max(float64(position)/float64(duration), 0), 1)
	}
	filled := int(float64(width) * ratio)

	return filledStyle().Render(strings.Repeat("━", filled)) +
		emptyStyle().Render(strings.Repeat("─", width-filled))
}
