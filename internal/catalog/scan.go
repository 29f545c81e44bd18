package catalog

import (
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/llehouerou/encore/internal/player"
)

// Scan builds a catalog from the audio files below dir. Tracks are numbered
// in path order and their sources are relative to dir. Albums and artists
// are derived from the tags. Files that cannot be decoded are skipped and
// reported in the returned list.
func Scan(dir string) (*Catalog, []string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && player.IsMusicFile(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	var (
		tracks  []Track
		skipped []string
		albums  []Album
		artists []Artist
	)
	albumIdx := make(map[string]int)
	artistIdx := make(map[string]int)

	for _, path := range paths {
		info, err := player.ExtractFullMetadata(path)
		if err != nil {
			skipped = append(skipped, path)
			continue
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			rel = path
		}

		artistName := info.AlbumArtist
		if artistName == "" {
			artistName = "Unknown Artist"
		}
		artistID := slug(artistName)
		albumTitle := info.Album
		if albumTitle == "" {
			albumTitle = "Unknown Album"
		}
		albumID := slug(artistName + " " + albumTitle)

		t := Track{
			ID:       strconv.Itoa(len(tracks) + 1),
			Title:    info.Title,
			Artist:   info.Artist,
			ArtistID: artistID,
			Album:    albumTitle,
			AlbumID:  albumID,
			Duration: info.Duration,
			Source:   filepath.ToSlash(rel),
			Genre:    info.Genre,
		}
		if t.Artist == "" {
			t.Artist = artistName
		}
		if info.Year > 0 {
			t.ReleaseDate = strconv.Itoa(info.Year)
		}
		tracks = append(tracks, t)

		i, ok := albumIdx[albumID]
		if !ok {
			i = len(albums)
			albumIdx[albumID] = i
			albums = append(albums, Album{
				ID:          albumID,
				Title:       albumTitle,
				Artist:      artistName,
				ArtistID:    artistID,
				ReleaseDate: t.ReleaseDate,
				Genre:       t.Genre,
			})
		}
		albums[i].Tracks = append(albums[i].Tracks, t)
		albums[i].Duration += t.Duration

		j, ok := artistIdx[artistID]
		if !ok {
			j = len(artists)
			artistIdx[artistID] = j
			artists = append(artists, Artist{ID: artistID, Name: artistName})
		}
		if len(artists[j].TopTracks) < topTracksPerArtist {
			artists[j].TopTracks = append(artists[j].TopTracks, t)
		}
	}

	c, err := New(tracks, albums, artists, nil)
	if err != nil {
		return nil, nil, err
	}
	return c, skipped, nil
}

const topTracksPerArtist = 5

// slug lowercases s and joins its alphanumeric runs with dashes.
func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	if b.Len() == 0 {
		return "unknown"
	}
	return b.String()
}
