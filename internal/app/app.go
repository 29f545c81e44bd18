package app

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/llehouerou/encore/internal/catalog"
	"github.com/llehouerou/encore/internal/keymap"
	"github.com/llehouerou/encore/internal/notify"
	"github.com/llehouerou/encore/internal/playback"
	"github.com/llehouerou/encore/internal/playlists"
	"github.com/llehouerou/encore/internal/ui/confirm"
	"github.com/llehouerou/encore/internal/ui/headerbar"
	"github.com/llehouerou/encore/internal/ui/helpbindings"
	"github.com/llehouerou/encore/internal/ui/playerbar"
	"github.com/llehouerou/encore/internal/ui/textinput"
)

// Deps are the long-lived collaborators the UI works with. They are
// created and closed by the caller.
type Deps struct {
	Catalog   *catalog.Catalog
	Playback  PlaybackController
	Playlists *playlists.Store
	Session   SessionSaver    // nil disables session saving
	Notifier  notify.Notifier // nil disables track notifications
	ArtRoot   string          // root for relative cover paths
	Logger    *log.Logger
}

// Model is the root application model containing all state.
type Model struct {
	Catalog   *catalog.Catalog
	Playback  PlaybackController
	Playlists *playlists.Store
	Session   SessionSaver
	Keys      *keymap.Resolver
	Logger    *log.Logger

	// Latest snapshots, refreshed from subscriptions.
	state       playback.State
	collections playlists.Snapshot

	playbackSub *playback.Subscription
	playlistSub <-chan playlists.Snapshot

	tab         headerbar.Tab
	pages       []Page // navigation stack; the last page is visible
	input       textinput.Model
	confirm     confirm.Model
	help        helpbindings.Model
	showHelp    bool
	searchQuery string
	mute        playerbar.Mute

	notifier notify.Notifier
	artRoot  string
	notifyID uint32

	StatusMsg     string
	StatusErr     bool
	statusVersion int

	Width  int
	Height int
}

// New creates the application model and subscribes to both stores.
func New(d Deps) Model {
	logger := d.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := Model{
		Catalog:     d.Catalog,
		Playback:    d.Playback,
		Playlists:   d.Playlists,
		Session:     d.Session,
		Keys:        keymap.Default(),
		Logger:      logger,
		state:       d.Playback.State(),
		collections: d.Playlists.Snapshot(),
		playbackSub: d.Playback.Subscribe(),
		playlistSub: d.Playlists.Subscribe(),
		input:       textinput.New(),
		confirm:     confirm.New(),
		help:        helpbindings.New(),
		notifier:    d.Notifier,
		artRoot:     d.ArtRoot,
	}
	m.resetTo(PageHome)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(TickCmd(), m.WatchPlayback(), m.WatchPlaylists())
}

// page returns the visible page.
func (m *Model) page() *Page {
	return &m.pages[len(m.pages)-1]
}

// resetTo replaces the navigation stack with a single root page.
func (m *Model) resetTo(kind PageKind) {
	m.pages = []Page{newPage(kind, "")}
	m.tab = tabFor(kind)
}

// push opens p on top of the current page.
func (m *Model) push(p Page) {
	m.pages = append(m.pages, newPage(p.Kind, p.ID))
	m.page().Track = p.Track
}

// pop returns to the previous page. It reports false at the root.
func (m *Model) pop() bool {
	if len(m.pages) <= 1 {
		return false
	}
	m.pages = m.pages[:len(m.pages)-1]
	return true
}

// setStatus shows msg in the status line until it times out.
func (m *Model) setStatus(msg string, isErr bool) tea.Cmd {
	m.StatusMsg = msg
	m.StatusErr = isErr
	m.statusVersion++
	return ClearStatusCmd(m.statusVersion)
}
