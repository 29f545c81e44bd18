// Package tracklist renders a bordered, scrollable list of rows with a
// header. It is used for every list page: playlists, playlist tracks,
// albums, search results and the queue.
package tracklist

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/encore/internal/ui"
	"github.com/llehouerou/encore/internal/ui/cursor"
	"github.com/llehouerou/encore/internal/ui/render"
	"github.com/llehouerou/encore/internal/ui/styles"
)

const (
	playingSymbol = "▶"
	likedSymbol   = "♥"
	detailWidth   = 9
)

// Row is one line of the list.
type Row struct {
	Title    string
	Subtitle string // shown in the second column
	Detail   string // right-aligned, typically a duration
	Playing  bool
	Liked    bool
	Dimmed   bool
}

// View describes what to render.
type View struct {
	Title   string
	Info    string // right side of the header
	Rows    []Row
	Cursor  cursor.Cursor
	Focused bool
	Empty   string // shown when there are no rows
}

// ListHeight returns the number of rows that fit in a panel of the given
// total height.
func ListHeight(height int) int {
	return max(height-ui.PanelOverhead, 0)
}

// Render draws the panel at exactly width x height cells.
func Render(v View, width, height int) string {
	if width < 10 || height <= ui.PanelOverhead {
		return ""
	}
	innerWidth := width - ui.BorderWidth
	listHeight := ListHeight(height)

	header := render.Row(
		headerStyle().Render(render.TruncateEllipsis(v.Title, max(innerWidth-lipgloss.Width(v.Info)-1, 1))),
		infoStyle().Render(v.Info),
		innerWidth,
	)

	lines := make([]string, 0, listHeight)
	if len(v.Rows) == 0 && v.Empty != "" {
		lines = append(lines, emptyStyle().Render(render.TruncateAndPad("  "+v.Empty, innerWidth)))
	}
	start, end := v.Cursor.VisibleRange(len(v.Rows), listHeight)
	for i := start; i < end; i++ {
		isCursor := v.Focused && i == v.Cursor.Pos()
		lines = append(lines, renderRow(v.Rows[i], isCursor, innerWidth))
	}
	for len(lines) < listHeight {
		lines = append(lines, render.EmptyLine(innerWidth))
	}

	content := header + "\n" + render.Separator(innerWidth) + "\n" + strings.Join(lines, "\n")
	return styles.PanelStyle(v.Focused).Width(innerWidth).Render(content)
}

// renderRow lays out marker, title, subtitle and detail columns.
func renderRow(r Row, isCursor bool, width int) string {
	prefix := "  "
	if r.Playing {
		prefix = playingSymbol + " "
	}
	like := "  "
	if r.Liked {
		like = likedSymbol + " "
	}

	contentWidth := max(width-lipgloss.Width(prefix)-lipgloss.Width(like)-detailWidth, 0)
	titleWidth := contentWidth
	subtitleWidth := 0
	if r.Subtitle != "" {
		titleWidth = contentWidth / 2
		subtitleWidth = contentWidth - titleWidth
	}

	title := render.TruncateAndPad(r.Title, titleWidth)
	subtitle := render.TruncateAndPad(r.Subtitle, subtitleWidth)
	detail := render.Truncate(r.Detail, detailWidth-1)
	detail = strings.Repeat(" ", detailWidth-1-lipgloss.Width(detail)) + detail + " "

	style := rowStyle(r, isCursor)
	likeStyle := style
	if r.Liked {
		likeStyle = likedStyle().Inherit(style)
	}
	return style.Render(prefix) + likeStyle.Render(like) + style.Render(title+subtitle+detail)
}

func rowStyle(r Row, isCursor bool) lipgloss.Style {
	switch {
	case isCursor && r.Playing:
		return cursorStyle().Inherit(playingStyle())
	case isCursor:
		return cursorStyle()
	case r.Playing:
		return playingStyle()
	case r.Dimmed:
		return dimmedStyle()
	default:
		return trackStyle()
	}
}
