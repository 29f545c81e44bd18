package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatTime renders a playback position as m:ss, or h:mm:ss from one hour.
// Negative durations render as 0:00.
func FormatTime(d time.Duration) string {
	if d < 0 {
		return "0:00"
	}
	total := int(d / time.Second)
	h, m, s := total/3600, total%3600/60, total%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatDuration renders a collection length such as "1 hr 23 min",
// "2 hr" or "47 min". Seconds are dropped.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		return "0 min"
	}
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%d hr %d min", h, m)
	case h > 0:
		return fmt.Sprintf("%d hr", h)
	default:
		return fmt.Sprintf("%d min", m)
	}
}

// FormatCount renders follower and play counts compactly: 1.2K, 3.4M.
// Counts below a thousand are printed in full.
func FormatCount(n int) string {
	switch {
	case n >= 1_000_000:
		return compact(float64(n)/1_000_000) + "M"
	case n >= 1_000:
		return compact(float64(n)/1_000) + "K"
	default:
		return humanize.Comma(int64(n))
	}
}

func compact(v float64) string {
	return strings.TrimSuffix(strconv.FormatFloat(v, 'f', 1, 64), ".0")
}

// FormatAgo renders a timestamp relative to now, e.g. "3 days ago".
// The zero time renders as an empty string.
func FormatAgo(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.Time(t)
}
