package app

import (
	"fmt"
	"strconv"

	"github.com/llehouerou/encore/internal/catalog"
	"github.com/llehouerou/encore/internal/ui"
	"github.com/llehouerou/encore/internal/ui/cursor"
	"github.com/llehouerou/encore/internal/ui/headerbar"
	"github.com/llehouerou/encore/internal/ui/render"
	"github.com/llehouerou/encore/internal/ui/tracklist"
)

// PageKind identifies what a page lists.
type PageKind int

const (
	PageHome     PageKind = iota // playlists, albums and artists
	PagePlaylist                 // tracks of one playlist
	PageAlbum                    // tracks of one album
	PageArtist                   // tracks and albums of one artist
	PageSearch                   // search results
	PageLiked                    // liked tracks
	PageRecent                   // recently played tracks
	PageQueue                    // the play queue
	PagePicker                   // choose a playlist to add Track to
)

// Page is one entry of the navigation stack.
type Page struct {
	Kind   PageKind
	ID     string        // playlist, album or artist id
	Track  catalog.Track // track to add, for PagePicker
	Cursor cursor.Cursor
}

func newPage(kind PageKind, id string) Page {
	return Page{Kind: kind, ID: id, Cursor: cursor.New(ui.ScrollMargin)}
}

// tabFor returns the header tab a root page belongs to.
func tabFor(kind PageKind) headerbar.Tab {
	switch kind {
	case PageSearch:
		return headerbar.TabSearch
	case PageLiked:
		return headerbar.TabLiked
	case PageRecent:
		return headerbar.TabRecent
	case PageQueue:
		return headerbar.TabQueue
	default:
		return headerbar.TabHome
	}
}

// entry is one selectable row of a page.
type entry struct {
	row    tracklist.Row
	track  *catalog.Track // set for playable rows
	open   *Page          // set for rows that navigate
	target string         // picker row: playlist to add to
	create bool           // picker row that creates a new playlist
}

// listing is the rendered content of a page.
type listing struct {
	title   string
	info    string
	empty   string
	entries []entry
}

// tracks returns the playable tracks of the listing in display order.
func (l listing) tracks() []catalog.Track {
	var out []catalog.Track
	for _, e := range l.entries {
		if e.track != nil {
			out = append(out, *e.track)
		}
	}
	return out
}

// list builds the listing for p from the current snapshots.
func (m Model) list(p Page) listing {
	switch p.Kind {
	case PageHome:
		return m.listHome()
	case PagePlaylist:
		return m.listPlaylist(p.ID)
	case PageAlbum:
		return m.listAlbum(p.ID)
	case PageArtist:
		return m.listArtist(p.ID)
	case PageSearch:
		return m.listSearch()
	case PageLiked:
		return listing{
			title:   "Liked Songs",
			info:    songCount(len(m.state.Liked)),
			empty:   "Songs you like will appear here. Press f on a track.",
			entries: m.trackEntries(m.Catalog.Resolve(m.state.Liked)),
		}
	case PageRecent:
		return listing{
			title:   "Recently Played",
			info:    songCount(len(m.state.Recent)),
			empty:   "Nothing played yet",
			entries: m.trackEntries(m.state.Recent),
		}
	case PageQueue:
		return m.listQueue()
	case PagePicker:
		return m.listPicker(p.Track)
	}
	return listing{}
}

func (m Model) listHome() listing {
	var entries []entry
	for _, pl := range append(append([]catalog.Playlist(nil), m.collections.User...), m.collections.Catalog...) {
		entries = append(entries, playlistEntry(pl))
	}
	for _, a := range m.Catalog.Albums() {
		entries = append(entries, entry{
			row:  tracklist.Row{Title: a.Title, Subtitle: "Album · " + a.Artist, Detail: year(a.ReleaseDate)},
			open: &Page{Kind: PageAlbum, ID: a.ID},
		})
	}
	for _, a := range m.Catalog.Artists() {
		entries = append(entries, entry{
			row:  tracklist.Row{Title: a.Name, Subtitle: "Artist · " + render.FormatCount(a.MonthlyListeners) + " monthly listeners"},
			open: &Page{Kind: PageArtist, ID: a.ID},
		})
	}
	return listing{
		title:   "Your Library",
		info:    fmt.Sprintf("%d playlists", len(m.collections.User)+len(m.collections.Catalog)),
		empty:   "The catalog is empty",
		entries: entries,
	}
}

func playlistEntry(pl catalog.Playlist) entry {
	by := "Playlist"
	if pl.Creator != nil && pl.Creator.Name != "" {
		by = "Playlist · " + pl.Creator.Name
	} else if pl.UserCreated {
		by = "Playlist · You"
	}
	return entry{
		row: tracklist.Row{
			Title:    pl.Name,
			Subtitle: by,
			Detail:   strconv.Itoa(len(pl.Tracks)),
		},
		open: &Page{Kind: PagePlaylist, ID: pl.ID},
	}
}

func (m Model) playlist(id string) (catalog.Playlist, bool) {
	for _, p := range m.collections.All() {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Playlist{}, false
}

func (m Model) listPlaylist(id string) listing {
	p, ok := m.playlist(id)
	if !ok {
		return listing{title: "Playlist", empty: "Playlist not found"}
	}
	info := songCount(len(p.Tracks)) + ", " + render.FormatDuration(p.Duration)
	if p.UserCreated {
		if ago := render.FormatAgo(p.CreatedAt); ago != "" {
			info += " · created " + ago
		}
	} else if p.Followers > 0 {
		info += " · " + render.FormatCount(p.Followers) + " followers"
	}
	empty := "This playlist is empty"
	if p.UserCreated {
		empty = "This playlist is empty. Press p on a track to add it."
	}
	return listing{
		title:   p.Name,
		info:    info,
		empty:   empty,
		entries: m.trackEntries(p.Tracks),
	}
}

func (m Model) listAlbum(id string) listing {
	a, ok := m.Catalog.Album(id)
	if !ok {
		return listing{title: "Album", empty: "Album not found"}
	}
	tracks := m.Catalog.AlbumTracks(id)
	info := a.Artist
	if y := year(a.ReleaseDate); y != "" {
		info += " · " + y
	}
	info += " · " + songCount(len(tracks)) + ", " + render.FormatDuration(catalog.TotalDuration(tracks))
	return listing{title: a.Title, info: info, empty: "No tracks", entries: m.trackEntries(tracks)}
}

func (m Model) listArtist(id string) listing {
	a, ok := m.Catalog.Artist(id)
	if !ok {
		return listing{title: "Artist", empty: "Artist not found"}
	}
	entries := m.trackEntries(m.Catalog.ArtistTracks(id))
	for _, al := range m.Catalog.ArtistAlbums(id) {
		entries = append(entries, entry{
			row:  tracklist.Row{Title: al.Title, Subtitle: "Album", Detail: year(al.ReleaseDate), Dimmed: true},
			open: &Page{Kind: PageAlbum, ID: al.ID},
		})
	}
	info := render.FormatCount(a.MonthlyListeners) + " monthly listeners"
	if a.Verified {
		info = "Verified · " + info
	}
	return listing{title: a.Name, info: info, empty: "No tracks", entries: entries}
}

func (m Model) listSearch() listing {
	title := "Search"
	if m.searchQuery != "" {
		title = fmt.Sprintf("Search: %q", m.searchQuery)
	}
	r := m.Catalog.Search(m.searchQuery)
	entries := m.trackEntries(r.Tracks)
	for _, a := range r.Albums {
		entries = append(entries, entry{
			row:  tracklist.Row{Title: a.Title, Subtitle: "Album · " + a.Artist, Detail: year(a.ReleaseDate)},
			open: &Page{Kind: PageAlbum, ID: a.ID},
		})
	}
	for _, a := range r.Artists {
		entries = append(entries, entry{
			row:  tracklist.Row{Title: a.Name, Subtitle: "Artist"},
			open: &Page{Kind: PageArtist, ID: a.ID},
		})
	}
	if m.searchQuery != "" {
		for _, p := range catalog.FilterPlaylists(m.collections.All(), m.searchQuery) {
			entries = append(entries, playlistEntry(p))
		}
	}

	empty := "Type / to search songs, albums, artists and playlists"
	if m.searchQuery != "" {
		empty = fmt.Sprintf("No results found for %q", m.searchQuery)
	}
	return listing{
		title:   title,
		info:    fmt.Sprintf("%d results", len(entries)),
		empty:   empty,
		entries: entries,
	}
}

func (m Model) listQueue() listing {
	tracks := m.state.Queue.Tracks()
	entries := make([]entry, len(tracks))
	for i := range tracks {
		t := tracks[i]
		entries[i] = entry{
			row: tracklist.Row{
				Title:    t.Title,
				Subtitle: t.Artist,
				Detail:   render.FormatTime(t.Duration),
				Playing:  m.state.Current != nil && i == m.state.Index(),
				Liked:    m.state.IsLiked(t.ID),
				Dimmed:   m.state.Current != nil && i < m.state.Index(),
			},
			track: &t,
		}
	}
	info := ""
	if len(tracks) > 0 {
		pos := 0
		if m.state.Current != nil {
			pos = m.state.Index() + 1
		}
		info = fmt.Sprintf("%d/%d · %s", pos, len(tracks), render.FormatDuration(catalog.TotalDuration(tracks)))
	}
	return listing{title: "Queue", info: info, empty: "Queue is empty", entries: entries}
}

func (m Model) listPicker(t catalog.Track) listing {
	entries := []entry{{
		row:    tracklist.Row{Title: "+ New playlist", Dimmed: true},
		create: true,
	}}
	for _, p := range m.collections.User {
		e := playlistEntry(p)
		e.open = nil
		e.target = p.ID
		if p.Contains(t.ID) {
			e.row.Subtitle = "Already added"
			e.row.Dimmed = true
		}
		entries = append(entries, e)
	}
	return listing{
		title:   "Add to playlist",
		info:    t.Title,
		entries: entries,
	}
}

// trackEntries turns tracks into playable rows.
func (m Model) trackEntries(tracks []catalog.Track) []entry {
	entries := make([]entry, len(tracks))
	for i := range tracks {
		t := tracks[i]
		entries[i] = entry{
			row: tracklist.Row{
				Title:    t.Title,
				Subtitle: t.Artist,
				Detail:   render.FormatTime(t.Duration),
				Playing:  m.state.IsCurrent(t.ID),
				Liked:    m.state.IsLiked(t.ID),
			},
			track: &t,
		}
	}
	return entries
}

func songCount(n int) string {
	if n == 1 {
		return "1 song"
	}
	return fmt.Sprintf("%d songs", n)
}

// year returns the leading year of a release date such as "2023-04-01".
func year(date string) string {
	if len(date) >= 4 {
		return date[:4]
	}
	return date
}
