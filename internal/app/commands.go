package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/encore/internal/catalog"
	"github.com/llehouerou/encore/internal/notify"
	"github.com/llehouerou/encore/internal/playlists"
)

const statusTimeout = 4 * time.Second

// TickCmd returns a command that sends TickMsg after 1 second.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// ClearStatusCmd returns a command that clears status message version v.
func ClearStatusCmd(version int) tea.Cmd {
	return tea.Tick(statusTimeout, func(_ time.Time) tea.Msg {
		return ClearStatusMsg{Version: version}
	})
}

// waitForChannel creates a command that waits for a value from a channel and converts it to a message.
// onResult receives the value and a boolean indicating if the channel is still open (false means channel closed).
func waitForChannel[T any](ch <-chan T, onResult func(T, bool) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		result, ok := <-ch
		return onResult(result, ok)
	}
}

// WatchPlayback returns a command that waits for the next playback event.
func (m Model) WatchPlayback() tea.Cmd {
	sub := m.playbackSub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case e := <-sub.StateChanged:
			return StateChangedMsg(e)
		case e := <-sub.TrackChanged:
			return TrackChangedMsg(e)
		case e := <-sub.Error:
			return PlaybackErrorMsg(e)
		case <-sub.Done:
			return PlaybackClosedMsg{}
		}
	}
}

// WatchPlaylists returns a command that waits for the next collection change.
func (m Model) WatchPlaylists() tea.Cmd {
	return waitForChannel(m.playlistSub, func(s playlists.Snapshot, ok bool) tea.Msg {
		if !ok {
			return PlaylistsClosedMsg{}
		}
		return PlaylistsChangedMsg(s)
	})
}

// NotifyCmd announces t on the desktop, replacing notification replaces.
func NotifyCmd(n notify.Notifier, root string, t catalog.Track, replaces uint32) tea.Cmd {
	if n == nil {
		return nil
	}
	return func() tea.Msg {
		notif := notify.NowPlaying(t, notify.Icon(root, t))
		notif.ReplacesID = replaces
		id, err := n.Notify(notif)
		return NotifiedMsg{ID: id, Err: err}
	}
}
