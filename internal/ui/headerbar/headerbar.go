// Package headerbar renders the page tabs at the top of the screen.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/encore/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Tab identifies a top-level page.
type Tab string

const (
	TabHome   Tab = "home"
	TabSearch Tab = "search"
	TabLiked  Tab = "liked"
	TabRecent Tab = "recent"
	TabQueue  Tab = "queue"
)

type tab struct {
	key  string
	name string
	id   Tab
}

var tabs = []tab{
	{"F1", "Playlists", TabHome},
	{"F2", "Search", TabSearch},
	{"F3", "Liked", TabLiked},
	{"F4", "Recent", TabRecent},
	{"F5", "Queue", TabQueue},
}

func activeStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().Primary).Bold(true)
}

func inactiveKeyStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

func inactiveNameStyle() lipgloss.Style {
	return styles.T().S().Muted
}

// Render returns the header line for the given width: the logo on the left
// and the tabs centered in the remaining space. Narrow terminals get no
// header.
func Render(current Tab, width int) string {
	if width < 20 {
		return ""
	}

	parts := make([]string, 0, len(tabs))
	separator := inactiveKeyStyle().Render(" │ ")
	for _, t := range tabs {
		keyStyle, nameStyle := inactiveKeyStyle(), inactiveNameStyle()
		if t.id == current {
			keyStyle, nameStyle = activeStyle(), activeStyle()
		}
		parts = append(parts, keyStyle.Render(t.key)+" "+nameStyle.Render(t.name))
	}
	content := strings.Join(parts, separator)

	logo := styles.Logo()
	if lipgloss.Width(logo)+lipgloss.Width(content)+4 <= width {
		rest := width - lipgloss.Width(logo)
		pad := max((rest-lipgloss.Width(content))/2, 1)
		content = logo + strings.Repeat(" ", pad) + content
	} else if w := lipgloss.Width(content); w < width {
		content = strings.Repeat(" ", (width-w)/2) + content
	}

	return content
}
