package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/encore/internal/errmsg"
	"github.com/llehouerou/encore/internal/keymap"
	"github.com/llehouerou/encore/internal/playback"
	"github.com/llehouerou/encore/internal/playlists"
	"github.com/llehouerou/encore/internal/ui/action"
	"github.com/llehouerou/encore/internal/ui/headerbar"
	"github.com/llehouerou/encore/internal/ui/helpbindings"
	"github.com/llehouerou/encore/internal/ui/tracklist"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width, m.Height = msg.Width, msg.Height
		m.input.SetWidth(msg.Width - 4)
		m.help.SetSize(msg.Width, msg.Height)
		m.clampCursor()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case action.Msg:
		return m.handleActionMsg(msg)
	case NotifiedMsg:
		if msg.Err != nil {
			m.Logger.Warn("desktop notification failed", "err", msg.Err)
			return m, nil
		}
		m.notifyID = msg.ID
		return m, nil
	case ClearStatusMsg:
		if msg.Version == m.statusVersion {
			m.StatusMsg = ""
			m.StatusErr = false
		}
		return m, nil
	case PlaybackMessage:
		return m.handlePlaybackMsg(msg)
	case CollectionMessage:
		return m.handleCollectionMsg(msg)
	}

	// Cursor blink and other internal input messages.
	if m.input.Active() {
		return m, m.input.Update(msg)
	}
	return m, nil
}

func (m Model) handlePlaybackMsg(msg PlaybackMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.state = m.Playback.State()
		return m, TickCmd()

	case StateChangedMsg:
		m.state = m.Playback.State()
		if _, tick := msg.Action.(playback.SetPosition); !tick {
			m.saveSession()
		}
		m.clampCursor()
		return m, m.WatchPlayback()

	case TrackChangedMsg:
		m.state = m.Playback.State()
		if msg.Current != nil {
			m.Logger.Debug("track changed", "id", msg.Current.ID, "title", msg.Current.Title, "index", msg.Index)
			return m, tea.Batch(m.WatchPlayback(), NotifyCmd(m.notifier, m.artRoot, *msg.Current, m.notifyID))
		}
		return m, m.WatchPlayback()

	case PlaybackErrorMsg:
		text := errmsg.FormatWith(errmsg.Op(msg.Operation), msg.Source, msg.Err)
		return m, tea.Batch(m.setStatus(text, true), m.WatchPlayback())

	case PlaybackClosedMsg:
		m.playbackSub = nil
		return m, nil
	}
	return m, nil
}

func (m Model) handleCollectionMsg(msg CollectionMessage) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PlaylistsChangedMsg:
		snap := playlists.Snapshot(msg)
		m.collections = snap
		m.dropMissingPages()
		m.clampCursor()
		if snap.Warning != "" {
			return m, tea.Batch(m.setStatus(snap.Warning, true), m.WatchPlaylists())
		}
		return m, m.WatchPlaylists()

	case PlaylistsClosedMsg:
		m.playlistSub = nil
		return m, nil
	}
	return m, nil
}

// handleKey routes a key press: the active input first, then global,
// playback, cursor and page actions.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.confirm.Active() {
		return m, m.confirm.Update(msg)
	}
	if m.showHelp {
		return m, m.help.Update(msg)
	}

	if m.input.Active() {
		cmd := m.input.Update(msg)
		if m.input.Active() && m.page().Kind == PageSearch {
			m.setSearchQuery(m.input.Value())
		}
		return m, cmd
	}

	a := m.Keys.Resolve(key)
	switch a {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionBack:
		if !m.pop() && m.tab != headerbar.TabHome {
			m.resetTo(PageHome)
		}
		return m, nil
	case keymap.ActionViewHome:
		m.resetTo(PageHome)
		return m, nil
	case keymap.ActionViewLiked:
		m.resetTo(PageLiked)
		return m, nil
	case keymap.ActionViewRecent:
		m.resetTo(PageRecent)
		return m, nil
	case keymap.ActionViewQueue:
		m.resetTo(PageQueue)
		return m, nil
	case keymap.ActionSearch:
		return m, m.startSearch()
	case keymap.ActionHelp:
		m.help.SetContexts(helpbindings.AllContexts)
		m.showHelp = true
		return m, nil
	}

	if handled, cmd := m.handlePlaybackAction(a); handled {
		return m, cmd
	}

	p := m.page()
	l := m.list(*p)
	if p.Cursor.HandleAction(a, len(l.entries), m.listHeight()) {
		return m, nil
	}
	return m, m.handleListAction(a, l)
}

// handleActionMsg handles results reported by UI components.
func (m Model) handleActionMsg(msg action.Msg) (tea.Model, tea.Cmd) {
	switch msg.Source {
	case "textinput":
		return m, m.handleInputResult(msg)
	case "confirm":
		return m, m.handleConfirmResult(msg)
	case "helpbindings":
		m.showHelp = false
	}
	return m, nil
}

// panelHeight is the height left for the list panel.
func (m Model) panelHeight() int {
	h := m.Height - headerbar.Height - 1 // status line
	if m.input.Active() {
		h -= inputHeight
	}
	if m.state.Current != nil {
		h -= playerbarHeight
	}
	return max(h, 0)
}

func (m Model) listHeight() int {
	return tracklist.ListHeight(m.panelHeight())
}

// clampCursor keeps the visible page's cursor on an existing row.
func (m *Model) clampCursor() {
	p := m.page()
	n := len(m.list(*p).entries)
	p.Cursor.ClampToBounds(n)
	p.Cursor.EnsureVisible(n, m.listHeight())
}

// dropMissingPages pops pages showing playlists that no longer exist.
func (m *Model) dropMissingPages() {
	for len(m.pages) > 1 {
		p := m.page()
		if p.Kind != PagePlaylist {
			return
		}
		if _, ok := m.playlist(p.ID); ok {
			return
		}
		m.pop()
	}
}

func (m *Model) saveSession() {
	if m.Session != nil {
		m.Session.SaveSession(SessionFromState(m.state))
	}
}
