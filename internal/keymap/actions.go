// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit   Action = "quit"
	ActionBack   Action = "back"
	ActionSearch Action = "search"
	ActionHelp   Action = "help"

	// View switching
	ActionViewHome   Action = "view_home"
	ActionViewLiked  Action = "view_liked"
	ActionViewRecent Action = "view_recent"
	ActionViewQueue  Action = "view_queue"

	// Playback actions
	ActionPlayPause     Action = "play_pause"
	ActionNextTrack     Action = "next_track"
	ActionPrevTrack     Action = "prev_track"
	ActionSeekForward   Action = "seek_forward"
	ActionSeekBack      Action = "seek_back"
	ActionVolumeUp      Action = "volume_up"
	ActionVolumeDown    Action = "volume_down"
	ActionMute          Action = "mute"
	ActionCycleRepeat   Action = "cycle_repeat"
	ActionToggleShuffle Action = "toggle_shuffle"
	ActionLikeCurrent   Action = "like_current"

	// Navigation actions
	ActionMoveUp    Action = "move_up"
	ActionMoveDown  Action = "move_down"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageUp    Action = "page_up"
	ActionPageDown  Action = "page_down"

	// Selection/activation actions
	ActionSelect        Action = "select"          // enter - play/open
	ActionAdd           Action = "add"             // a - add to queue
	ActionAddToPlaylist Action = "add_to_playlist" // p
	ActionToggleLike    Action = "toggle_like"     // f - like selected track

	// Generic contextual actions
	ActionDelete Action = "delete" // d/delete - remove track from playlist or queue

	// Playlist track editing
	ActionMoveItemUp   Action = "move_item_up"   // shift+k
	ActionMoveItemDown Action = "move_item_down" // shift+j

	// Playlist management actions
	ActionNewPlaylist    Action = "new_playlist"    // n
	ActionRename         Action = "rename"          // ctrl+r
	ActionDeletePlaylist Action = "delete_playlist" // ctrl+d
)
