// Package logging builds the application logger. The TUI owns the
// terminal, so log output goes to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// DefaultPath returns $XDG_STATE_HOME/encore/encore.log, creating the
// directory.
func DefaultPath() (string, error) {
	return xdg.StateFile(filepath.Join("encore", "encore.log"))
}

// ParseLevel maps a config level name to a log level. Empty or unknown
// names give InfoLevel.
func ParseLevel(name string) log.Level {
	lvl, err := log.ParseLevel(strings.TrimSpace(name))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// New creates a logger writing timestamped entries to w.
// The writer defaults to os.Stderr.
func New(w io.Writer, level log.Level) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
}

// Open creates a logger appending to the file at path, or to DefaultPath
// when path is empty. The returned closer closes the file.
func Open(path, level string) (*log.Logger, io.Closer, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, nil, fmt.Errorf("log path: %w", err)
		}
		path = p
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return New(f, ParseLevel(level)), f, nil
}

// Stderr returns a sink that records captured C library output as warnings.
func Stderr(l *log.Logger) func(line string) {
	l = l.WithPrefix("stderr")
	return func(line string) {
		l.Warn(line)
	}
}
