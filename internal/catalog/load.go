package catalog

import (
	_ "embed"
	"fmt"
	"io"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed default.toml
var defaultCatalog string

// file is the on-disk TOML layout. Durations are whole seconds and
// albums, artists and playlists reference tracks by id.
type file struct {
	Tracks    []trackEntry    `toml:"tracks"`
	Albums    []albumEntry    `toml:"albums,omitempty"`
	Artists   []artistEntry   `toml:"artists,omitempty"`
	Playlists []playlistEntry `toml:"playlists,omitempty"`
}

type trackEntry struct {
	ID          string `toml:"id"`
	Title       string `toml:"title"`
	Artist      string `toml:"artist"`
	ArtistID    string `toml:"artist_id,omitempty"`
	Album       string `toml:"album"`
	AlbumID     string `toml:"album_id,omitempty"`
	Duration    int    `toml:"duration"`
	Cover       string `toml:"cover,omitempty"`
	Source      string `toml:"source"`
	ReleaseDate string `toml:"release_date,omitempty"`
	Genre       string `toml:"genre,omitempty"`
	Explicit    bool   `toml:"explicit,omitempty"`
}

type albumEntry struct {
	ID          string   `toml:"id"`
	Title       string   `toml:"title"`
	Artist      string   `toml:"artist"`
	ArtistID    string   `toml:"artist_id,omitempty"`
	Cover       string   `toml:"cover,omitempty"`
	ReleaseDate string   `toml:"release_date,omitempty"`
	Genre       string   `toml:"genre,omitempty"`
	Description string   `toml:"description,omitempty"`
	Tracks      []string `toml:"tracks"`
}

type artistEntry struct {
	ID               string   `toml:"id"`
	Name             string   `toml:"name"`
	Image            string   `toml:"image,omitempty"`
	Bio              string   `toml:"bio,omitempty"`
	Followers        int      `toml:"followers,omitempty"`
	Verified         bool     `toml:"verified,omitempty"`
	MonthlyListeners int      `toml:"monthly_listeners,omitempty"`
	TopTracks        []string `toml:"top_tracks,omitempty"`
}

type creatorEntry struct {
	ID    string `toml:"id"`
	Name  string `toml:"name"`
	Image string `toml:"image,omitempty"`
}

type playlistEntry struct {
	ID          string        `toml:"id"`
	Name        string        `toml:"name"`
	Description string        `toml:"description,omitempty"`
	Cover       string        `toml:"cover,omitempty"`
	Tracks      []string      `toml:"tracks"`
	Public      bool          `toml:"public,omitempty"`
	Followers   int           `toml:"followers,omitempty"`
	Creator     *creatorEntry `toml:"creator,omitempty"`
}

// Default returns the sample catalog embedded in the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a TOML catalog from path.
func Load(path string) (*Catalog, error) {
	var f file
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	return f.build()
}

// Parse decodes a TOML catalog held in memory.
func Parse(data string) (*Catalog, error) {
	var f file
	if _, err := toml.Decode(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return f.build()
}

// Encode writes c in the TOML layout understood by Load.
func Encode(w io.Writer, c *Catalog) error {
	var f file
	for _, t := range c.tracks {
		f.Tracks = append(f.Tracks, trackEntry{
			ID:          t.ID,
			Title:       t.Title,
			Artist:      t.Artist,
			ArtistID:    t.ArtistID,
			Album:       t.Album,
			AlbumID:     t.AlbumID,
			Duration:    int(t.Duration.Round(time.Second) / time.Second),
			Cover:       t.Cover,
			Source:      t.Source,
			ReleaseDate: t.ReleaseDate,
			Genre:       t.Genre,
			Explicit:    t.Explicit,
		})
	}
	for _, a := range c.albums {
		f.Albums = append(f.Albums, albumEntry{
			ID:          a.ID,
			Title:       a.Title,
			Artist:      a.Artist,
			ArtistID:    a.ArtistID,
			Cover:       a.Cover,
			ReleaseDate: a.ReleaseDate,
			Genre:       a.Genre,
			Description: a.Description,
			Tracks:      trackIDs(a.Tracks),
		})
	}
	for _, a := range c.artists {
		f.Artists = append(f.Artists, artistEntry{
			ID:               a.ID,
			Name:             a.Name,
			Image:            a.Image,
			Bio:              a.Bio,
			Followers:        a.Followers,
			Verified:         a.Verified,
			MonthlyListeners: a.MonthlyListeners,
			TopTracks:        trackIDs(a.TopTracks),
		})
	}
	for _, p := range c.playlists {
		e := playlistEntry{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Cover:       p.Cover,
			Tracks:      trackIDs(p.Tracks),
			Public:      p.Public,
			Followers:   p.Followers,
		}
		if p.Creator != nil {
			e.Creator = &creatorEntry{ID: p.Creator.ID, Name: p.Creator.Name, Image: p.Creator.Image}
		}
		f.Playlists = append(f.Playlists, e)
	}
	return toml.NewEncoder(w).Encode(f)
}

func trackIDs(tracks []Track) []string {
	ids := make([]string, len(tracks))
	for i := range tracks {
		ids[i] = tracks[i].ID
	}
	return ids
}

func (f *file) build() (*Catalog, error) {
	tracks := make([]Track, 0, len(f.Tracks))
	byID := make(map[string]Track, len(f.Tracks))
	for _, e := range f.Tracks {
		if e.Duration < 0 {
			return nil, fmt.Errorf("track %q: negative duration", e.ID)
		}
		t := Track{
			ID:          e.ID,
			Title:       e.Title,
			Artist:      e.Artist,
			ArtistID:    e.ArtistID,
			Album:       e.Album,
			AlbumID:     e.AlbumID,
			Duration:    time.Duration(e.Duration) * time.Second,
			Cover:       e.Cover,
			Source:      e.Source,
			ReleaseDate: e.ReleaseDate,
			Genre:       e.Genre,
			Explicit:    e.Explicit,
		}
		tracks = append(tracks, t)
		byID[t.ID] = t
	}

	resolve := func(owner string, ids []string) ([]Track, error) {
		out := make([]Track, 0, len(ids))
		for _, id := range ids {
			t, ok := byID[id]
			if !ok {
				return nil, fmt.Errorf("%s references unknown track %q", owner, id)
			}
			out = append(out, t)
		}
		return out, nil
	}

	albums := make([]Album, 0, len(f.Albums))
	for _, e := range f.Albums {
		ts, err := resolve("album "+e.ID, e.Tracks)
		if err != nil {
			return nil, err
		}
		albums = append(albums, Album{
			ID:          e.ID,
			Title:       e.Title,
			Artist:      e.Artist,
			ArtistID:    e.ArtistID,
			Cover:       e.Cover,
			ReleaseDate: e.ReleaseDate,
			Genre:       e.Genre,
			Description: e.Description,
			Tracks:      ts,
			Duration:    TotalDuration(ts),
		})
	}

	artists := make([]Artist, 0, len(f.Artists))
	for _, e := range f.Artists {
		ts, err := resolve("artist "+e.ID, e.TopTracks)
		if err != nil {
			return nil, err
		}
		artists = append(artists, Artist{
			ID:               e.ID,
			Name:             e.Name,
			Image:            e.Image,
			Bio:              e.Bio,
			Followers:        e.Followers,
			Verified:         e.Verified,
			MonthlyListeners: e.MonthlyListeners,
			TopTracks:        ts,
		})
	}

	playlists := make([]Playlist, 0, len(f.Playlists))
	for _, e := range f.Playlists {
		ts, err := resolve("playlist "+e.ID, e.Tracks)
		if err != nil {
			return nil, err
		}
		p := Playlist{
			ID:          e.ID,
			Name:        e.Name,
			Description: e.Description,
			Cover:       e.Cover,
			Public:      e.Public,
			Followers:   e.Followers,
		}.WithTracks(ts)
		if e.Creator != nil {
			p.Creator = &Creator{ID: e.Creator.ID, Name: e.Creator.Name, Image: e.Creator.Image}
		}
		playlists = append(playlists, p)
	}

	return New(tracks, albums, artists, playlists)
}
