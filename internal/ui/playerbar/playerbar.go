// Package playerbar renders the now-playing bar at the bottom of the screen.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/encore/internal/playback"
	"github.com/llehouerou/encore/internal/ui/render"
)

// Height is the rendered height: top border, content, bottom border.
const Height = 3

const (
	playSymbol  = "▶"
	pauseSymbol = "⏸"
)

// State holds everything needed to render the player bar.
type State struct {
	Title    string
	Artist   string
	Album    string
	Playing  bool
	Position time.Duration
	Duration time.Duration
	Volume   float64
	Shuffle  bool
	Repeat   playback.RepeatMode
	Liked    bool
	Index    int // 0-based position in the queue
	QueueLen int
}

// NewState extracts the bar state from a playback snapshot.
// Returns an empty State when nothing is current.
func NewState(s playback.State) State {
	if s.Current == nil {
		return State{}
	}
	d := s.Duration
	if d <= 0 {
		d = s.Current.Duration
	}
	return State{
		Title:    s.Current.Title,
		Artist:   s.Current.Artist,
		Album:    s.Current.Album,
		Playing:  s.Playing,
		Position: s.Position,
		Duration: d,
		Volume:   s.Volume,
		Shuffle:  s.Shuffle,
		Repeat:   s.Repeat,
		Liked:    s.IsLiked(s.Current.ID),
		Index:    s.Index(),
		QueueLen: s.Queue.Len(),
	}
}

// Empty reports whether there is no track to show.
func (s State) Empty() bool {
	return s.Title == "" && s.Duration == 0
}

// Render returns the player bar for the given width, or an empty string
// when nothing is current.
func Render(s State, width int) string {
	if s.Empty() {
		return ""
	}
	innerWidth := max(width-6, 0) // border and padding

	status := playSymbol
	if !s.Playing {
		status = pauseSymbol
	}

	title := s.Title
	if title == "" {
		title = "Unknown Track"
	}
	var info []string
	if s.Artist != "" {
		info = append(info, s.Artist)
	}
	if s.Album != "" {
		info = append(info, s.Album)
	}

	right := strings.Join([]string{
		modes(s),
		RenderVolume(s.Volume),
	}, "   ")
	timeStr := render.FormatTime(s.Position) + " / " + render.FormatTime(s.Duration)

	const sep = "   "
	fixed := lipgloss.Width(status) + 2 + lipgloss.Width(timeStr) + lipgloss.Width(right) + 3*len(sep)
	available := innerWidth - fixed - minBarWidth

	// Title first, then artist and album with whatever room is left.
	head := render.TruncateEllipsis(title, max(available, 8))
	styledHead := titleStyle().Render(head)
	if rest := available - lipgloss.Width(head) - len(sep); rest > 8 && len(info) > 0 {
		tail := render.TruncateEllipsis(strings.Join(info, " · "), rest)
		styledHead += sep + artistStyle().Render(tail)
	}

	barWidth := max(innerWidth-lipgloss.Width(styledHead)-fixed, minBarWidth)
	bar := RenderProgressBar(s.Position, s.Duration, barWidth)

	var b strings.Builder
	b.WriteString(styledHead)
	b.WriteString(sep)
	b.WriteString(status)
	b.WriteString("  ")
	b.WriteString(bar)
	b.WriteString(sep)
	b.WriteString(timeStyle().Render(timeStr))
	b.WriteString(sep)
	b.WriteString(right)

	return barStyle().Padding(0, 2).Width(max(width-2, 0)).Render(b.String())
}

// modes renders the shuffle, repeat and like indicators, dimmed when off.
func modes(s State) string {
	shuffle := dimStyle().Render("⇄")
	if s.Shuffle {
		shuffle = activeStyle().Render("⇄")
	}

	var repeat string
	switch s.Repeat {
	case playback.RepeatAll:
		repeat = activeStyle().Render("↻")
	case playback.RepeatOne:
		repeat = activeStyle().Render("↻1")
	case playback.RepeatOff:
		repeat = dimStyle().Render("↻")
	}

	like := dimStyle().Render("♡")
	if s.Liked {
		like = likedStyle().Render("♥")
	}

	pos := ""
	if s.QueueLen > 0 {
		pos = dimStyle().Render(fmt.Sprintf("%d/%d", s.Index+1, s.QueueLen)) + " "
	}
	return pos + shuffle + " " + repeat + " " + like
}
