package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/encore/internal/catalog"
	"github.com/llehouerou/encore/internal/keymap"
	"github.com/llehouerou/encore/internal/playback"
	"github.com/llehouerou/encore/internal/playlists"
	"github.com/llehouerou/encore/internal/ui/action"
	"github.com/llehouerou/encore/internal/ui/confirm"
	"github.com/llehouerou/encore/internal/ui/textinput"
)

// Contexts passed through the text input.
type (
	searchInput struct{}
	createInput struct {
		track *catalog.Track // added to the new playlist when set
	}
	renameInput struct {
		id string
	}
)

// handleListAction handles actions on the row under the cursor.
func (m *Model) handleListAction(a keymap.Action, l listing) tea.Cmd {
	p := m.page()
	i := p.Cursor.Pos()
	var e *entry
	if i >= 0 && i < len(l.entries) {
		e = &l.entries[i]
	}

	switch a {
	case keymap.ActionSelect:
		return m.activate(l, e, i)

	case keymap.ActionAdd:
		if e != nil && e.track != nil {
			m.dispatch(playback.EnqueueAppend{Track: *e.track})
			return m.setStatus("Added to queue", false)
		}

	case keymap.ActionAddToPlaylist:
		if e != nil && e.track != nil {
			m.push(Page{Kind: PagePicker, Track: *e.track})
		}

	case keymap.ActionToggleLike:
		if e != nil && e.track != nil {
			return m.toggleLike(e.track.ID)
		}

	case keymap.ActionDelete:
		return m.deleteRow(p, e, i)

	case keymap.ActionMoveItemUp:
		return m.moveRow(p, len(l.entries), i, i-1)

	case keymap.ActionMoveItemDown:
		return m.moveRow(p, len(l.entries), i, i+1)

	case keymap.ActionNewPlaylist:
		return m.startCreate(nil)

	case keymap.ActionRename:
		if pl, ok := m.targetPlaylist(e); ok {
			return m.input.Start("Rename playlist", pl.Name, pl.Name, renameInput{id: pl.ID})
		}

	case keymap.ActionDeletePlaylist:
		if pl, ok := m.targetPlaylist(e); ok {
			m.confirm.Show("Delete playlist",
				fmt.Sprintf("Delete %q and its %s?", pl.Name, songCount(len(pl.Tracks))),
				deleteConfirm{id: pl.ID, name: pl.Name})
		}
	}
	return nil
}

// activate plays or opens the row under the cursor.
func (m *Model) activate(l listing, e *entry, i int) tea.Cmd {
	if e == nil {
		return nil
	}
	p := m.page()
	switch {
	case p.Kind == PageQueue:
		m.dispatch(playback.JumpTo{Index: i})
	case p.Kind == PagePicker && e.create:
		return m.startCreate(&p.Track)
	case p.Kind == PagePicker:
		return m.addToPlaylist(e.target, p.Track)
	case e.track != nil:
		m.dispatch(playback.PlaySong{Track: *e.track, Queue: l.tracks()})
	case e.open != nil:
		m.push(*e.open)
	}
	return nil
}

func (m *Model) deleteRow(p *Page, e *entry, i int) tea.Cmd {
	if e == nil {
		return nil
	}
	switch p.Kind {
	case PageQueue:
		m.dispatch(playback.DequeueAt{Index: i})
		m.clampCursor()
	case PagePlaylist:
		pl, ok := m.editable(p.ID)
		if !ok || e.track == nil {
			return nil
		}
		m.Playlists.RemoveSong(pl.ID, e.track.ID)
		m.refreshCollections()
		return m.setStatus("Removed from "+pl.Name, false)
	}
	return nil
}

func (m *Model) moveRow(p *Page, n, from, to int) tea.Cmd {
	if p.Kind != PagePlaylist || to < 0 || to >= n {
		return nil
	}
	if _, ok := m.editable(p.ID); !ok {
		return nil
	}
	m.Playlists.ReorderSong(p.ID, from, to)
	m.refreshCollections()
	p.Cursor.Move(to-from, n, m.listHeight())
	return nil
}

func (m *Model) addToPlaylist(id string, t catalog.Track) tea.Cmd {
	pl, ok := m.editable(id)
	if !ok {
		return nil
	}
	m.pop()
	if pl.Contains(t.ID) {
		return m.setStatus("Already in "+pl.Name, false)
	}
	m.Playlists.AddSong(pl.ID, t)
	m.refreshCollections()
	return m.setStatus("Added to "+pl.Name, false)
}

// startCreate asks for the name of a new playlist, suggesting the next
// default name.
func (m *Model) startCreate(t *catalog.Track) tea.Cmd {
	name := m.Playlists.NextName()
	return m.input.Start("New playlist", name, name, createInput{track: t})
}

func (m *Model) startSearch() tea.Cmd {
	if m.page().Kind != PageSearch {
		m.resetTo(PageSearch)
	}
	return m.input.Start("Search", m.searchQuery, "What do you want to listen to?", searchInput{})
}

func (m *Model) setSearchQuery(q string) {
	if q == m.searchQuery {
		return
	}
	m.searchQuery = q
	m.page().Cursor.Reset()
}

// handleInputResult applies a finished text input.
func (m *Model) handleInputResult(msg action.Msg) tea.Cmd {
	res, ok := msg.Action.(textinput.Result)
	if !ok {
		return nil
	}
	switch ctx := res.Context.(type) {
	case searchInput:
		if !res.Canceled {
			m.setSearchQuery(res.Text)
		}

	case createInput:
		if res.Canceled {
			return nil
		}
		name := res.Text
		if name == "" {
			name = m.Playlists.NextName()
		}
		pl := m.Playlists.CreatePlaylist(name, "")
		m.refreshCollections()
		if ctx.track != nil {
			return m.addToPlaylist(pl.ID, *ctx.track)
		}
		return m.setStatus("Created "+pl.Name, false)

	case renameInput:
		if res.Canceled || res.Text == "" {
			return nil
		}
		m.Playlists.UpdatePlaylist(ctx.id, playlists.Update{Name: &res.Text})
		m.refreshCollections()
		return m.setStatus("Renamed to "+res.Text, false)
	}
	return nil
}

// targetPlaylist returns the user playlist an edit applies to: the open
// playlist page, or the playlist row under the cursor.
func (m Model) targetPlaylist(e *entry) (catalog.Playlist, bool) {
	if p := m.pages[len(m.pages)-1]; p.Kind == PagePlaylist {
		return m.editable(p.ID)
	}
	if e != nil && e.open != nil && e.open.Kind == PagePlaylist {
		return m.editable(e.open.ID)
	}
	return catalog.Playlist{}, false
}

// editable returns the user playlist with the given id. Catalog playlists
// are read-only.
func (m Model) editable(id string) (catalog.Playlist, bool) {
	for _, p := range m.collections.User {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Playlist{}, false
}

// refreshCollections reads the store after a mutation so the next render
// does not wait for the subscription.
func (m *Model) refreshCollections() {
	m.collections = m.Playlists.Snapshot()
	m.dropMissingPages()
	m.clampCursor()
}

// deleteConfirm is the context of the delete-playlist confirmation.
type deleteConfirm struct {
	id, name string
}

func (m *Model) handleConfirmResult(msg action.Msg) tea.Cmd {
	res, ok := msg.Action.(confirm.Result)
	if !ok || !res.Confirmed {
		return nil
	}
	if ctx, ok := res.Context.(deleteConfirm); ok {
		m.Playlists.DeletePlaylist(ctx.id)
		m.refreshCollections()
		return m.setStatus("Deleted "+ctx.name, false)
	}
	return nil
}
