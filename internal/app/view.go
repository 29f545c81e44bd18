package app

import (
	"strings"

	"github.com/llehouerou/encore/internal/keymap"
	"github.com/llehouerou/encore/internal/ui/headerbar"
	"github.com/llehouerou/encore/internal/ui/playerbar"
	"github.com/llehouerou/encore/internal/ui/popup"
	"github.com/llehouerou/encore/internal/ui/render"
	"github.com/llehouerou/encore/internal/ui/styles"
	"github.com/llehouerou/encore/internal/ui/tracklist"
)

const (
	inputHeight     = 3
	playerbarHeight = playerbar.Height
)

// View implements tea.Model.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	p := m.pages[len(m.pages)-1]
	l := m.list(p)
	rows := make([]tracklist.Row, len(l.entries))
	for i, e := range l.entries {
		rows[i] = e.row
	}

	parts := []string{
		headerbar.Render(m.tab, m.Width),
		tracklist.Render(tracklist.View{
			Title:   l.title,
			Info:    l.info,
			Rows:    rows,
			Cursor:  p.Cursor,
			Focused: !m.input.Active(),
			Empty:   l.empty,
		}, m.Width, m.panelHeight()),
	}
	if m.input.Active() {
		parts = append(parts, m.input.View())
	}
	parts = append(parts, m.renderStatus())
	if bar := playerbar.Render(playerbar.NewState(m.state), m.Width); bar != "" {
		parts = append(parts, bar)
	}
	view := strings.Join(parts, "\n")

	switch {
	case m.confirm.Active():
		box := popup.RenderBordered(m.confirm.View(), m.Width, m.Height, popup.SizeAuto)
		return popup.Compose(view, box, m.Width)
	case m.showHelp:
		box := popup.RenderBordered(m.help.View(), m.Width, m.Height, popup.SizeHelp)
		return popup.Compose(view, box, m.Width)
	}
	return view
}

// renderStatus shows the last status message, or key hints for the page.
func (m Model) renderStatus() string {
	if m.StatusMsg != "" {
		style := styles.T().S().Muted
		if m.StatusErr {
			style = styles.T().S().Error
		}
		return style.Render(render.Truncate(" "+m.StatusMsg, m.Width))
	}
	return styles.T().S().Subtle.Render(render.Truncate(" "+m.hints(), m.Width))
}

// hints lists the first key of each binding relevant to the visible page.
func (m Model) hints() string {
	contexts := []string{"navigator"}
	switch m.pages[len(m.pages)-1].Kind {
	case PageQueue:
		contexts = []string{"queue"}
	case PagePlaylist:
		if _, ok := m.editable(m.pages[len(m.pages)-1].ID); ok {
			contexts = append(contexts, "playlist-track", "playlist")
		}
	case PageHome:
		contexts = append(contexts, "playlist")
	}

	var parts []string
	for _, ctx := range contexts {
		for _, b := range keymap.ByContext(ctx) {
			switch b.Action {
			case keymap.ActionMoveUp, keymap.ActionMoveDown, keymap.ActionJumpStart,
				keymap.ActionJumpEnd, keymap.ActionPageUp, keymap.ActionPageDown:
				continue
			}
			parts = append(parts, keyName(b.Keys[0])+" "+strings.ToLower(b.Description))
		}
	}
	if keys := m.Keys.KeysFor(keymap.ActionHelp); len(keys) > 0 {
		parts = append(parts, keys[0]+" help")
	}
	return strings.Join(parts, " · ")
}

func keyName(key string) string {
	if key == " " {
		return "space"
	}
	return key
}

