package player

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
)

// TrackInfo is the tag metadata of an audio file.
type TrackInfo struct {
	Path        string
	Title       string
	Artist      string
	AlbumArtist string
	Album       string
	Year        int
	Track       int
	Genre       string
	Duration    time.Duration
}

// ReadTrackInfo reads tag metadata from path. Duration is not filled in;
// use ExtractFullMetadata when it is needed.
func ReadTrackInfo(path string) (*TrackInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, err
	}

	title := strings.TrimSpace(m.Title())
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	track, _ := m.Track()

	albumArtist := m.AlbumArtist()
	if albumArtist == "" {
		albumArtist = m.Artist()
	}

	return &TrackInfo{
		Path:        path,
		Title:       title,
		Artist:      m.Artist(),
		AlbumArtist: albumArtist,
		Album:       m.Album(),
		Year:        m.Year(),
		Track:       track,
		Genre:       m.Genre(),
	}, nil
}

// ExtractFullMetadata reads tag metadata and decodes the audio to
// determine its duration. Files without readable tags fall back to the
// file name as title.
func ExtractFullMetadata(path string) (*TrackInfo, error) {
	info, err := ReadTrackInfo(path)
	if err != nil {
		info = &TrackInfo{
			Path:  path,
			Title: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		}
	}

	d, err := ProbeDuration(path)
	if err != nil {
		return nil, err
	}
	info.Duration = d
	return info, nil
}

// ProbeDuration decodes the stream header of path to compute its length.
func ProbeDuration(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	streamer, format, err := decode(f, path)
	if err != nil {
		return 0, err
	}
	defer streamer.Close()

	return format.SampleRate.D(streamer.Len()), nil
}
