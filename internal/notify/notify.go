// Package notify shows "now playing" desktop notifications through the
// freedesktop notification daemon.
package notify

import "github.com/llehouerou/encore/internal/catalog"

// Urgency is the freedesktop notification urgency hint.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// NowPlayingTimeout is how long a track notification stays up, in ms.
const NowPlayingTimeout = 5000

type Notification struct {
	Title      string
	Body       string
	Icon       string // file URL or icon name
	Timeout    int32  // ms; -1 lets the daemon decide, 0 never expires
	ReplacesID uint32 // 0 opens a new notification
	Urgency    Urgency
}

// Notifier shows desktop notifications. Notify returns the id the daemon
// assigned, to be passed back as ReplacesID by the next notification.
type Notifier interface {
	Notify(n Notification) (uint32, error)
}

// NowPlaying builds the notification shown when t starts playing.
func NowPlaying(t catalog.Track, icon string) Notification {
	body := t.Artist
	if t.Album != "" {
		if body != "" {
			body += " · "
		}
		body += t.Album
	}
	return Notification{
		Title:   t.Title,
		Body:    body,
		Icon:    icon,
		Timeout: NowPlayingTimeout,
		Urgency: UrgencyLow,
	}
}
