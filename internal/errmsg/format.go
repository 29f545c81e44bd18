// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

const (
	// Playback
	OpPlaybackLoad  Op = "load track"
	OpPlaybackStart Op = "start playback"

	// Playlists
	OpPlaylistCreate   Op = "create playlist"
	OpPlaylistUpdate   Op = "update playlist"
	OpPlaylistDelete   Op = "delete playlist"
	OpPlaylistAddTrack Op = "add track to playlist"
	OpPlaylistRemove   Op = "remove track from playlist"
	OpPlaylistMove     Op = "move playlist item"
	OpPlaylistLoad     Op = "load playlists"

	// Session
	OpSessionLoad Op = "restore session"
	OpSessionSave Op = "save session"

	// Catalog
	OpCatalogLoad Op = "load catalog"
	OpCatalogScan Op = "scan music directory"

	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
