package player

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
)

// createMinimalMP3 creates a minimal valid MP3 file for testing.
// Returns MP3 frame header + padding (417 bytes total for 128kbps frame).
func createMinimalMP3(t *testing.T, path string) {
	t.Helper()
	mp3Frame := make([]byte, 417)
	mp3Frame[0] = 0xff
	mp3Frame[1] = 0xfb
	mp3Frame[2] = 0x90
	mp3Frame[3] = 0x00

	if err := os.WriteFile(path, mp3Frame, 0o600); err != nil {
		t.Fatalf("failed to create test MP3: %v", err)
	}
}

func TestIsMusicFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"song.mp3", true},
		{"song.MP3", true},
		{"song.flac", true},
		{"/music/a/b/song.FLAC", true},
		{"song.opus", false},
		{"song.wav", false},
		{"song.txt", false},
		{"song", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsMusicFile(tt.path); got != tt.want {
				t.Errorf("IsMusicFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestReadTrackInfo_ID3Tags(t *testing.T) {
	mp3Path := filepath.Join(t.TempDir(), "tagged.mp3")
	createMinimalMP3(t, mp3Path)

	tag, err := id3v2.Open(mp3Path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("failed to open MP3 for tagging: %v", err)
	}
	tag.SetDefaultEncoding(id3v2.EncodingISO)
	tag.SetTitle("Paper Boats")
	tag.SetArtist("Willow Lane")
	tag.SetAlbum("Low Tide Letters")
	tag.SetGenre("Folk")
	if err := tag.Save(); err != nil {
		t.Fatalf("failed to save ID3 tags: %v", err)
	}
	tag.Close()

	info, err := ReadTrackInfo(mp3Path)
	if err != nil {
		t.Fatalf("ReadTrackInfo failed: %v", err)
	}
	if info.Title != "Paper Boats" {
		t.Errorf("Title = %q, want Paper Boats", info.Title)
	}
	if info.Artist != "Willow Lane" {
		t.Errorf("Artist = %q, want Willow Lane", info.Artist)
	}
	if info.AlbumArtist != "Willow Lane" {
		t.Errorf("AlbumArtist = %q, want fallback to artist", info.AlbumArtist)
	}
	if info.Album != "Low Tide Letters" {
		t.Errorf("Album = %q, want Low Tide Letters", info.Album)
	}
}

func TestReadTrackInfo_MissingFile(t *testing.T) {
	if _, err := ReadTrackInfo(filepath.Join(t.TempDir(), "missing.mp3")); err == nil {
		t.Error("ReadTrackInfo on missing file should fail")
	}
}

func TestSkipID3v2(t *testing.T) {
	t.Run("no tag rewinds", func(t *testing.T) {
		r := bytes.NewReader([]byte("fLaC0123456789"))
		if err := skipID3v2(r); err != nil {
			t.Fatalf("skipID3v2: %v", err)
		}
		pos, _ := r.Seek(0, io.SeekCurrent)
		if pos != 0 {
			t.Errorf("position = %d, want 0", pos)
		}
	})

	t.Run("short input rewinds", func(t *testing.T) {
		r := bytes.NewReader([]byte("ID3"))
		if err := skipID3v2(r); err != nil {
			t.Fatalf("skipID3v2: %v", err)
		}
		pos, _ := r.Seek(0, io.SeekCurrent)
		if pos != 0 {
			t.Errorf("position = %d, want 0", pos)
		}
	})

	t.Run("tag is skipped", func(t *testing.T) {
		// 10-byte header declaring a 5-byte body, then payload.
		data := []byte{'I', 'D', '3', 4, 0, 0, 0, 0, 0, 5, 1, 2, 3, 4, 5, 'f', 'L', 'a', 'C'}
		r := bytes.NewReader(data)
		if err := skipID3v2(r); err != nil {
			t.Fatalf("skipID3v2: %v", err)
		}
		rest, _ := io.ReadAll(r)
		if string(rest) != "fLaC" {
			t.Errorf("remaining = %q, want fLaC", rest)
		}
	})
}
