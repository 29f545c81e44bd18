// Package confirm provides a yes/no confirmation popup component.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// Model is a yes/no confirmation popup.
type Model struct {
	title   string
	message string
	context any
	active  bool
}

// New creates a new confirmation model.
func New() Model {
	return Model{}
}

// Show displays the confirmation popup. context is returned in the Result.
func (m *Model) Show(title, message string, context any) {
	m.title = title
	m.message = message
	m.context = context
	m.active = true
}

// Reset clears the confirmation state.
func (m *Model) Reset() {
	*m = Model{}
}

// Active returns whether the confirmation is currently shown.
func (m Model) Active() bool {
	return m.active
}

// Update handles a key press. Enter or y confirms, Esc or n cancels; other
// keys are ignored.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !m.active || !ok {
		return nil
	}

	switch keyMsg.String() {
	case "enter", "y", "Y":
		return m.finish(true)
	case "esc", "n", "N":
		return m.finish(false)
	}
	return nil
}

func (m *Model) finish(confirmed bool) tea.Cmd {
	ctx := m.context
	m.Reset()
	return func() tea.Msg {
		return ActionMsg(Result{Confirmed: confirmed, Context: ctx})
	}
}

// View renders the popup content without border.
func (m Model) View() string {
	if !m.active {
		return ""
	}
	return titleStyle.Render(m.title) + "\n\n" +
		messageStyle.Render(m.message) + "\n\n" +
		hintStyle.Render("Enter/Y: confirm, Esc/N: cancel")
}
