// Package helpbindings renders the key binding reference popup.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/encore/internal/keymap"
	"github.com/llehouerou/encore/internal/ui"
	"github.com/llehouerou/encore/internal/ui/render"
	"github.com/llehouerou/encore/internal/ui/styles"
)

type section struct {
	context string
	label   string
}

var sections = []section{
	{"global", "Global"},
	{"playback", "Playback"},
	{"navigator", "Lists"},
	{"queue", "Queue"},
	{"playlist", "Playlists"},
	{"playlist-track", "Playlist tracks"},
}

// AllContexts lists every binding context in display order.
var AllContexts = func() []string {
	out := make([]string, len(sections))
	for i, s := range sections {
		out[i] = s.context
	}
	return out
}()

// chrome is the popup space taken by the title, the footer and the border.
const chrome = 10

type Model struct {
	ui.Base
	lines  []string
	scroll int
}

func New() Model {
	return Model{}
}

// SetContexts rebuilds the reference for the given contexts. Sections keep
// their fixed order whatever order contexts come in.
func (m *Model) SetContexts(contexts []string) {
	var shown []section
	keyWidth := 0
	for _, s := range sections {
		if !slices.Contains(contexts, s.context) {
			continue
		}
		shown = append(shown, s)
		for _, b := range keymap.ByContext(s.context) {
			keyWidth = max(keyWidth, len(keyList(b.Keys)))
		}
	}

	st := styles.T()
	keyStyle := lipgloss.NewStyle().Foreground(st.Primary).Bold(true)
	headStyle := lipgloss.NewStyle().Foreground(st.Warning).Bold(true)

	m.lines = nil
	for i, s := range shown {
		if i > 0 {
			m.lines = append(m.lines, "")
		}
		m.lines = append(m.lines,
			headStyle.Render(s.label),
			st.S().Subtle.Render(render.Separator(keyWidth+16)),
		)
		for _, b := range keymap.ByContext(s.context) {
			keys := keyList(b.Keys)
			m.lines = append(m.lines, keyStyle.Render(keys+strings.Repeat(" ", keyWidth-len(keys)))+
				"  "+st.S().Base.Render(b.Description))
		}
	}
	m.scroll = 0
}

// Update scrolls on j/k and asks to close on ?, esc or q.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch k.String() {
	case "?", "esc", "q":
		return func() tea.Msg { return ActionMsg(Close{}) }
	case "j", "down":
		m.scroll = min(m.scroll+1, m.maxScroll())
	case "k", "up":
		m.scroll = max(m.scroll-1, 0)
	}
	return nil
}

// View renders the popup body. The border is added by the caller.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	width := 0
	for _, l := range m.lines {
		width = max(width, lipgloss.Width(l))
	}
	end := min(m.scroll+m.pageSize(), len(m.lines))
	body := make([]string, 0, end-m.scroll)
	for _, l := range m.lines[m.scroll:end] {
		body = append(body, l+strings.Repeat(" ", width-lipgloss.Width(l)))
	}

	footer := "?/esc close"
	if m.maxScroll() > 0 {
		footer = "j/k scroll · " + footer
	}
	return styles.T().S().Title.Render("Help") + "\n\n" +
		strings.Join(body, "\n") + "\n\n" +
		styles.T().S().Subtle.Render(footer)
}

func (m Model) pageSize() int {
	return max(m.Height()-chrome, 5)
}

func (m Model) maxScroll() int {
	return max(len(m.lines)-m.pageSize(), 0)
}

func keyList(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return strings.Join(names, ", ")
}
