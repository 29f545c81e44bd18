package keymap

// Binding maps keys to an action, with a description for help output.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "navigator", "playlist", "playlist-track", "queue"
}

// Bindings contains all key bindings.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionBack, []string{"esc", "backspace"}, "Back", "global"},
	{ActionHelp, []string{"?"}, "Help", "global"},
	{ActionViewHome, []string{"f1", "1"}, "Playlists", "global"},
	{ActionSearch, []string{"f2", "/"}, "Search", "global"},
	{ActionViewLiked, []string{"f3", "3"}, "Liked songs", "global"},
	{ActionViewRecent, []string{"f4", "4"}, "Recently played", "global"},
	{ActionViewQueue, []string{"f5", "5"}, "Queue", "global"},

	// Playback
	{ActionPlayPause, []string{" "}, "Play/pause", "playback"},
	{ActionNextTrack, []string{">", "pgdown"}, "Next track", "playback"},
	{ActionPrevTrack, []string{"<", "pgup"}, "Previous track", "playback"},
	{ActionSeekForward, []string{"right", "l"}, "Seek +5s", "playback"},
	{ActionSeekBack, []string{"left", "h"}, "Seek -5s", "playback"},
	{ActionVolumeUp, []string{"+", "="}, "Volume up", "playback"},
	{ActionVolumeDown, []string{"-"}, "Volume down", "playback"},
	{ActionMute, []string{"m"}, "Mute", "playback"},
	{ActionCycleRepeat, []string{"r"}, "Cycle repeat mode", "playback"},
	{ActionToggleShuffle, []string{"s"}, "Toggle shuffle", "playback"},
	{ActionLikeCurrent, []string{"F"}, "Like playing track", "playback"},

	// Navigator
	{ActionMoveUp, []string{"k", "up"}, "Move up", "navigator"},
	{ActionMoveDown, []string{"j", "down"}, "Move down", "navigator"},
	{ActionJumpStart, []string{"g", "home"}, "First item", "navigator"},
	{ActionJumpEnd, []string{"G", "end"}, "Last item", "navigator"},
	{ActionPageUp, []string{"ctrl+u"}, "Half page up", "navigator"},
	{ActionPageDown, []string{"ctrl+d"}, "Half page down", "navigator"},
	{ActionSelect, []string{"enter"}, "Play/open", "navigator"},
	{ActionAdd, []string{"a"}, "Add to queue", "navigator"},
	{ActionAddToPlaylist, []string{"p"}, "Add to playlist", "navigator"},
	{ActionToggleLike, []string{"f"}, "Like track", "navigator"},

	// Playlist management
	{ActionNewPlaylist, []string{"n"}, "New playlist", "playlist"},
	{ActionRename, []string{"ctrl+r"}, "Rename", "playlist"},
	{ActionDeletePlaylist, []string{"ctrl+x"}, "Delete", "playlist"},

	// Playlist track editing
	{ActionDelete, []string{"d", "delete"}, "Remove track", "playlist-track"},
	{ActionMoveItemDown, []string{"J", "shift+down"}, "Move track down", "playlist-track"},
	{ActionMoveItemUp, []string{"K", "shift+up"}, "Move track up", "playlist-track"},

	// Queue
	{ActionDelete, []string{"d", "delete"}, "Remove from queue", "queue"},
	{ActionSelect, []string{"enter"}, "Jump to track", "queue"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Default returns a resolver over Bindings.
func Default() *Resolver {
	return NewResolver(Bindings)
}
