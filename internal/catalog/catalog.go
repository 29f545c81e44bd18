// Package catalog holds the read-only media catalog: tracks, albums, artists
// and the playlists seeded at startup.
package catalog

import (
	"fmt"
	"time"
)

// Track is a single playable media item. Tracks are created once by the
// catalog loader and never mutated.
type Track struct {
	ID          string
	Title       string
	Artist      string
	ArtistID    string
	Album       string
	AlbumID     string
	Duration    time.Duration
	Cover       string
	Source      string // audio source reference handed to the transport
	ReleaseDate string
	Genre       string
	Explicit    bool
}

// Album groups the tracks of a release.
type Album struct {
	ID          string
	Title       string
	Artist      string
	ArtistID    string
	Cover       string
	ReleaseDate string
	Genre       string
	Description string
	Tracks      []Track
	Duration    time.Duration
}

// Artist describes a performer and their most played tracks.
type Artist struct {
	ID               string
	Name             string
	Image            string
	Bio              string
	Followers        int
	Verified         bool
	MonthlyListeners int
	TopTracks        []Track
}

// Creator identifies the owner of a playlist the user does not own.
type Creator struct {
	ID    string
	Name  string
	Image string
}

// Playlist is an ordered collection of tracks.
// Duration is always the sum of the member track durations.
type Playlist struct {
	ID          string
	Name        string
	Description string
	Cover       string
	Tracks      []Track
	Duration    time.Duration
	UserCreated bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Public      bool
	Followers   int
	Creator     *Creator
}

// Contains reports whether a track with the given id is in the playlist.
func (p Playlist) Contains(trackID string) bool {
	return IndexOf(p.Tracks, trackID) >= 0
}

// Clone returns a copy of the playlist that shares no slices with p.
func (p Playlist) Clone() Playlist {
	c := p
	c.Tracks = make([]Track, len(p.Tracks))
	copy(c.Tracks, p.Tracks)
	if p.Creator != nil {
		creator := *p.Creator
		c.Creator = &creator
	}
	return c
}

// WithTracks returns a copy of p holding tracks, with Duration recomputed.
func (p Playlist) WithTracks(tracks []Track) Playlist {
	c := p
	c.Tracks = tracks
	c.Duration = TotalDuration(tracks)
	return c
}

// TotalDuration sums the durations of tracks.
func TotalDuration(tracks []Track) time.Duration {
	var total time.Duration
	for i := range tracks {
		total += tracks[i].Duration
	}
	return total
}

// IndexOf returns the position of the first track with the given id, or -1.
func IndexOf(tracks []Track, id string) int {
	for i := range tracks {
		if tracks[i].ID == id {
			return i
		}
	}
	return -1
}

// Catalog is an immutable, indexed set of catalog records.
type Catalog struct {
	tracks    []Track
	albums    []Album
	artists   []Artist
	playlists []Playlist

	trackIdx  map[string]int
	albumIdx  map[string]int
	artistIdx map[string]int
}

// New builds a catalog from fully resolved records.
// Ids must be unique within each kind; playlist ids must also not collide
// with each other since the collection store looks them up by id.
func New(tracks []Track, albums []Album, artists []Artist, playlists []Playlist) (*Catalog, error) {
	c := &Catalog{
		tracks:    tracks,
		albums:    albums,
		artists:   artists,
		playlists: playlists,
		trackIdx:  make(map[string]int, len(tracks)),
		albumIdx:  make(map[string]int, len(albums)),
		artistIdx: make(map[string]int, len(artists)),
	}
	for i := range tracks {
		if err := index(c.trackIdx, "track", tracks[i].ID, i); err != nil {
			return nil, err
		}
	}
	for i := range albums {
		if err := index(c.albumIdx, "album", albums[i].ID, i); err != nil {
			return nil, err
		}
	}
	for i := range artists {
		if err := index(c.artistIdx, "artist", artists[i].ID, i); err != nil {
			return nil, err
		}
	}
	seen := make(map[string]int, len(playlists))
	for i := range playlists {
		if err := index(seen, "playlist", playlists[i].ID, i); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func index(m map[string]int, kind, id string, i int) error {
	if id == "" {
		return fmt.Errorf("%s at position %d has no id", kind, i)
	}
	if _, dup := m[id]; dup {
		return fmt.Errorf("duplicate %s id %q", kind, id)
	}
	m[id] = i
	return nil
}

// Tracks returns all tracks in catalog order.
func (c *Catalog) Tracks() []Track {
	out := make([]Track, len(c.tracks))
	copy(out, c.tracks)
	return out
}

// Albums returns all albums in catalog order.
func (c *Catalog) Albums() []Album {
	out := make([]Album, len(c.albums))
	copy(out, c.albums)
	return out
}

// Artists returns all artists in catalog order.
func (c *Catalog) Artists() []Artist {
	out := make([]Artist, len(c.artists))
	copy(out, c.artists)
	return out
}

// Playlists returns deep copies of the seeded catalog playlists.
func (c *Catalog) Playlists() []Playlist {
	out := make([]Playlist, len(c.playlists))
	for i := range c.playlists {
		out[i] = c.playlists[i].Clone()
	}
	return out
}

// Track looks up a track by id.
func (c *Catalog) Track(id string) (Track, bool) {
	i, ok := c.trackIdx[id]
	if !ok {
		return Track{}, false
	}
	return c.tracks[i], true
}

// Album looks up an album by id.
func (c *Catalog) Album(id string) (Album, bool) {
	i, ok := c.albumIdx[id]
	if !ok {
		return Album{}, false
	}
	return c.albums[i], true
}

// Artist looks up an artist by id.
func (c *Catalog) Artist(id string) (Artist, bool) {
	i, ok := c.artistIdx[id]
	if !ok {
		return Artist{}, false
	}
	return c.artists[i], true
}

// AlbumTracks returns the tracks whose album id matches, in catalog order.
func (c *Catalog) AlbumTracks(albumID string) []Track {
	var out []Track
	for i := range c.tracks {
		if c.tracks[i].AlbumID == albumID {
			out = append(out, c.tracks[i])
		}
	}
	return out
}

// ArtistTracks returns the tracks whose artist id matches, in catalog order.
func (c *Catalog) ArtistTracks(artistID string) []Track {
	var out []Track
	for i := range c.tracks {
		if c.tracks[i].ArtistID == artistID {
			out = append(out, c.tracks[i])
		}
	}
	return out
}

// ArtistAlbums returns the albums credited to the artist.
func (c *Catalog) ArtistAlbums(artistID string) []Album {
	var out []Album
	for i := range c.albums {
		if c.albums[i].ArtistID == artistID {
			out = append(out, c.albums[i])
		}
	}
	return out
}

// Resolve maps track ids to tracks, dropping ids the catalog does not know.
func (c *Catalog) Resolve(ids []string) []Track {
	out := make([]Track, 0, len(ids))
	for _, id := range ids {
		if t, ok := c.Track(id); ok {
			out = append(out, t)
		}
	}
	return out
}
