package notify

import (
	"testing"

	"github.com/llehouerou/encore/internal/catalog"
)

func TestUrgencyValues(t *testing.T) {
	// Values are fixed by the freedesktop notification protocol.
	if UrgencyLow != 0 {
		t.Errorf("UrgencyLow = %d, want 0", UrgencyLow)
	}
	if UrgencyNormal != 1 {
		t.Errorf("UrgencyNormal = %d, want 1", UrgencyNormal)
	}
	if UrgencyCritical != 2 {
		t.Errorf("UrgencyCritical = %d, want 2", UrgencyCritical)
	}
}

func TestNotificationZeroValue(t *testing.T) {
	var n Notification
	if n.Urgency != UrgencyLow {
		t.Errorf("zero value Urgency = %d, want UrgencyLow (0)", n.Urgency)
	}
	if n.Timeout != 0 {
		t.Error("zero value Timeout should be 0 (never expire)")
	}
	if n.ReplacesID != 0 {
		t.Error("zero value ReplacesID should be 0 (new notification)")
	}
}

func TestNowPlaying(t *testing.T) {
	tests := []struct {
		name  string
		track catalog.Track
		want  string
	}{
		{"artist and album", catalog.Track{Title: "Song", Artist: "Artist", Album: "Album"}, "Artist · Album"},
		{"no album", catalog.Track{Title: "Song", Artist: "Artist"}, "Artist"},
		{"no artist", catalog.Track{Title: "Song", Album: "Album"}, "Album"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NowPlaying(tt.track, "file:///cover.jpg")
			if n.Title != "Song" {
				t.Errorf("Title = %q, want %q", n.Title, "Song")
			}
			if n.Body != tt.want {
				t.Errorf("Body = %q, want %q", n.Body, tt.want)
			}
			if n.Icon != "file:///cover.jpg" {
				t.Errorf("Icon = %q", n.Icon)
			}
			if n.Urgency != UrgencyLow || n.Timeout != NowPlayingTimeout {
				t.Errorf("Urgency = %d, Timeout = %d", n.Urgency, n.Timeout)
			}
		})
	}
}
