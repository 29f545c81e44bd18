package errmsg

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpPlaybackLoad,
			err:      nil,
			expected: "",
		},
		{
			name:     "playback operation",
			op:       OpPlaybackStart,
			err:      errors.New("device busy"),
			expected: "Failed to start playback: device busy",
		},
		{
			name:     "playlist operation",
			op:       OpPlaylistCreate,
			err:      errors.New("disk full"),
			expected: "Failed to create playlist: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.op, tt.err); got != tt.expected {
				t.Errorf("Format() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name     string
		op       Op
		context  string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			op:       OpPlaybackLoad,
			context:  "song.mp3",
			err:      nil,
			expected: "",
		},
		{
			name:     "includes context",
			op:       OpPlaybackLoad,
			context:  "song.mp3",
			err:      errors.New("no such file"),
			expected: "Failed to load track 'song.mp3': no such file",
		},
		{
			name:     "empty context falls back to Format",
			op:       OpSessionSave,
			context:  "",
			err:      errors.New("locked"),
			expected: "Failed to save session: locked",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWith(tt.op, tt.context, tt.err); got != tt.expected {
				t.Errorf("FormatWith() = %q, want %q", got, tt.expected)
			}
		})
	}
}
