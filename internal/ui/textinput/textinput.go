// Package textinput provides a single-line prompt used for naming
// playlists and for the search box.
package textinput

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/encore/internal/ui/styles"
)

const charLimit = 100

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.T().Primary)
}

func hintStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

// Model wraps a bubbles text input with a title and a pass-through context.
type Model struct {
	title   string
	input   textinput.Model
	context any // passed through to Result
	active  bool
}

// New creates an inactive input.
func New() Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = charLimit
	return Model{input: ti}
}

// Start activates the input with a title, initial text and placeholder.
func (m *Model) Start(title, initialText, placeholder string, context any) tea.Cmd {
	m.title = title
	m.context = context
	m.active = true
	m.input.Placeholder = placeholder
	m.input.SetValue(initialText)
	m.input.CursorEnd()
	return m.input.Focus()
}

// Reset deactivates the input and clears its text.
func (m *Model) Reset() {
	m.title = ""
	m.context = nil
	m.active = false
	m.input.SetValue("")
	m.input.Blur()
}

// Active reports whether the input is collecting text.
func (m Model) Active() bool {
	return m.active
}

// Value returns the current text.
func (m Model) Value() string {
	return m.input.Value()
}

// SetWidth sets the visible width of the text field.
func (m *Model) SetWidth(width int) {
	m.input.Width = max(width-lipgloss.Width(m.input.Prompt)-1, 1)
}

// Update handles a message while active. Enter and Esc end the input and
// produce a Result through the returned command.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.active {
		return nil
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEsc:
			return m.finish(Result{Canceled: true})
		case tea.KeyEnter:
			return m.finish(Result{Text: strings.TrimSpace(m.input.Value())})
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) finish(r Result) tea.Cmd {
	r.Context = m.context
	m.Reset()
	return func() tea.Msg {
		return ActionMsg(r)
	}
}

// View renders the title, the field and a hint line.
func (m Model) View() string {
	if !m.active {
		return ""
	}
	title := titleStyle().Render(m.title)
	hint := hintStyle().Render("Enter: confirm, Esc: cancel")
	return title + "\n" + m.input.View() + "\n" + hint
}
