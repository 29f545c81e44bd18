package catalog

import "strings"

// Results holds the catalog records matching a search query.
type Results struct {
	Tracks  []Track
	Albums  []Album
	Artists []Artist
}

// Empty reports whether nothing matched.
func (r Results) Empty() bool {
	return len(r.Tracks) == 0 && len(r.Albums) == 0 && len(r.Artists) == 0
}

// Search filters the catalog with a case-insensitive substring match.
// Tracks match on title, artist, album or genre; albums on title or artist;
// artists on name. A blank query matches nothing.
func (c *Catalog) Search(query string) Results {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Results{}
	}

	var r Results
	for _, t := range c.tracks {
		if containsAny(q, t.Title, t.Artist, t.Album, t.Genre) {
			r.Tracks = append(r.Tracks, t)
		}
	}
	for _, a := range c.albums {
		if containsAny(q, a.Title, a.Artist) {
			r.Albums = append(r.Albums, a)
		}
	}
	for _, a := range c.artists {
		if containsAny(q, a.Name) {
			r.Artists = append(r.Artists, a)
		}
	}
	return r
}

// FilterPlaylists returns the playlists whose name contains query,
// ignoring case. A blank query returns the input unchanged.
func FilterPlaylists(playlists []Playlist, query string) []Playlist {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return playlists
	}
	var out []Playlist
	for _, p := range playlists {
		if containsAny(q, p.Name) {
			out = append(out, p)
		}
	}
	return out
}

func containsAny(q string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
