// Package state persists the listening session between runs.
package state

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"

	dbutil "github.com/llehouerou/encore/internal/db"
)

const (
	appName      = "encore"
	dbFileName   = "encore.db"
	saveDebounce = 500 * time.Millisecond
)

type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *Session
	saveErr   func(error)
}

// Open opens the state database under the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath)
}

// OpenPath opens the state database at path, creating the schema if needed.
func OpenPath(path string) (*Manager, error) {
	db, err := dbutil.Open(path)
	if err != nil {
		return nil, err
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Manager{db: db}, nil
}

// OnSaveError sets a callback for failures of debounced saves.
func (m *Manager) OnSaveError(fn func(error)) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()
	m.saveErr = fn
}

func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	var flushErr error
	if pending != nil {
		flushErr = saveSession(context.Background(), m.db, *pending)
	}
	if err := m.db.Close(); err != nil {
		return err
	}
	return flushErr
}

func (m *Manager) DB() *sql.DB {
	return m.db
}

// GetSession returns the saved session, or nil on first run.
func (m *Manager) GetSession() (*Session, error) {
	return getSession(context.Background(), m.db)
}

// SaveSession stores s after a short delay. Later calls within the delay
// replace s; the last pending session is flushed by Close.
func (m *Manager) SaveSession(s Session) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &s

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		onErr := m.saveErr
		m.saveMu.Unlock()

		if pending == nil {
			return
		}
		if err := saveSession(context.Background(), m.db, *pending); err != nil && onErr != nil {
			onErr(err)
		}
	})
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
