package catalog

import (
	"testing"
)

func TestSearch(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		query       string
		wantTracks  int
		wantAlbums  int
		wantArtists int
	}{
		{"", 0, 0, 0},
		{"   ", 0, 0, 0},
		{"bloom", 2, 0, 0},
		{"NEON", 3, 1, 1},
		{"folk", 3, 0, 0},
		{"pressure", 3, 1, 0},
		{"zzz", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			r := c.Search(tt.query)
			if len(r.Tracks) != tt.wantTracks {
				t.Errorf("tracks = %d, want %d", len(r.Tracks), tt.wantTracks)
			}
			if len(r.Albums) != tt.wantAlbums {
				t.Errorf("albums = %d, want %d", len(r.Albums), tt.wantAlbums)
			}
			if len(r.Artists) != tt.wantArtists {
				t.Errorf("artists = %d, want %d", len(r.Artists), tt.wantArtists)
			}
			empty := tt.wantTracks+tt.wantAlbums+tt.wantArtists == 0
			if r.Empty() != empty {
				t.Errorf("Empty() = %v, want %v", r.Empty(), empty)
			}
		})
	}
}

func TestFilterPlaylists(t *testing.T) {
	ps := []Playlist{{ID: "1", Name: "Daily Mix"}, {ID: "2", Name: "Quiet Hours"}}

	if got := FilterPlaylists(ps, ""); len(got) != 2 {
		t.Errorf("blank query returned %d, want 2", len(got))
	}
	got := FilterPlaylists(ps, "quiet")
	if len(got) != 1 || got[0].ID != "2" {
		t.Errorf("FilterPlaylists(quiet) = %v", got)
	}
}

func TestSlug_Punctuation(t *testing.T) {
	tests := map[string]string{
		"Neon Harbor":         "neon-harbor",
		"  AC/DC  ":           "ac-dc",
		"Sigur Rós - Takk...": "sigur-rós-takk",
		"!!!":                 "unknown",
	}
	for in, want := range tests {
		if got := slug(in); got != want {
			t.Errorf("slug(%q) = %q, want %q", in, got, want)
		}
	}
}
