// Package playlists manages the playlist collection: the read-only
// playlists seeded from the catalog and the ones the user creates.
package playlists

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/llehouerou/encore/internal/catalog"
	"github.com/llehouerou/encore/internal/errmsg"
	"github.com/llehouerou/encore/internal/playlist"
)

const (
	// IDPrefix starts the id of every user-created playlist.
	IDPrefix = "user-playlist-"

	// DefaultCover is the cover reference given to new playlists.
	DefaultCover = "images/playlist-default.jpg"
)

// Update holds the editable playlist metadata. Nil fields are left alone.
type Update struct {
	Name        *string
	Description *string
	Cover       *string
	Public      *bool
}

func (u Update) apply(p catalog.Playlist) catalog.Playlist {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Cover != nil {
		p.Cover = *u.Cover
	}
	if u.Public != nil {
		p.Public = *u.Public
	}
	return p
}

// Snapshot is an immutable view of the collection. Its slices must not be
// modified.
type Snapshot struct {
	Catalog []catalog.Playlist
	User    []catalog.Playlist
	// Warning is set when the change that produced this snapshot could not
	// be saved.
	Warning string
}

// All returns the catalog playlists followed by the user playlists.
func (s Snapshot) All() []catalog.Playlist {
	out := make([]catalog.Playlist, 0, len(s.Catalog)+len(s.User))
	out = append(out, s.Catalog...)
	return append(out, s.User...)
}

// Store holds the playlist collection.
//
// Mutations only ever touch the user partition: an id that names a catalog
// playlist, or nothing at all, is silently ignored. Every change replaces
// the affected slices, so snapshots handed out earlier stay valid.
type Store struct {
	mu      sync.Mutex
	catalog []catalog.Playlist
	user    []catalog.Playlist

	now    func() time.Time
	newID  func() string
	repo   Repository
	logger *log.Logger

	subsMu sync.Mutex
	subs   []chan Snapshot
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now for creation and update stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDs replaces the generator of playlist ids.
func WithIDs(next func() string) Option {
	return func(s *Store) {
		s.newID = next
	}
}

// WithRepository writes every successful mutation through to r.
func WithRepository(r Repository) Option {
	return func(s *Store) {
		s.repo = r
	}
}

// WithLogger sets the logger used for persistence failures.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// NewStore creates a store seeded with the catalog playlists.
func NewStore(seed []catalog.Playlist, opts ...Option) *Store {
	s := &Store{
		catalog: make([]catalog.Playlist, len(seed)),
		now:     time.Now,
		newID:   func() string { return IDPrefix + uuid.NewString() },
		logger:  log.New(io.Discard),
	}
	for i := range seed {
		s.catalog[i] = seed[i].Clone()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore replaces the user partition with the playlists saved in the
// repository. Track ids are resolved with resolve; unknown ids are dropped.
func (s *Store) Restore(ctx context.Context, resolve func(ids []string) []catalog.Track) error {
	if s.repo == nil {
		return nil
	}
	loaded, err := s.repo.Load(ctx, resolve)
	if err != nil {
		return fmt.Errorf("load user playlists: %w", err)
	}

	s.mu.Lock()
	s.user = loaded
	s.notify(s.snapshotLocked(), "")
	s.mu.Unlock()
	return nil
}

// CreatePlaylist adds an empty user playlist and returns it.
func (s *Store) CreatePlaylist(name, description string) catalog.Playlist {
	p := catalog.Playlist{
		ID:          s.newID(),
		Name:        name,
		Description: description,
		Cover:       DefaultCover,
		Tracks:      []catalog.Track{},
		UserCreated: true,
		CreatedAt:   s.now(),
	}

	s.mu.Lock()
	s.user = append(append([]catalog.Playlist(nil), s.user...), p)
	s.notify(s.snapshotLocked(), s.persist(errmsg.OpPlaylistCreate, p))
	s.mu.Unlock()
	return p.Clone()
}

// NextName returns the default name for the next playlist the user creates.
func (s *Store) NextName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("My Playlist #%d", len(s.user)+1)
}

// DeletePlaylist removes the user playlist with the given id.
func (s *Store) DeletePlaylist(id string) {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	out := make([]catalog.Playlist, 0, len(s.user)-1)
	out = append(out, s.user[:i]...)
	s.user = append(out, s.user[i+1:]...)

	var warning string
	if s.repo != nil {
		if err := s.repo.Delete(context.Background(), id); err != nil {
			warning = errmsg.FormatWith(errmsg.OpPlaylistDelete, id, err)
			s.logger.Error(warning)
		}
	}
	s.notify(s.snapshotLocked(), warning)
	s.mu.Unlock()
}

// UpdatePlaylist applies u to the user playlist with the given id and
// stamps its update time. Tracks and duration cannot be edited this way.
func (s *Store) UpdatePlaylist(id string, u Update) {
	s.modify(id, errmsg.OpPlaylistUpdate, func(p catalog.Playlist) (catalog.Playlist, bool) {
		p = u.apply(p)
		p.UpdatedAt = s.now()
		return p, true
	})
}

// AddSong appends t to the playlist unless it already holds a track with
// the same id.
func (s *Store) AddSong(playlistID string, t catalog.Track) {
	s.modify(playlistID, errmsg.OpPlaylistAddTrack, func(p catalog.Playlist) (catalog.Playlist, bool) {
		tracks, ok := playlist.AddUnique(p.Tracks, t)
		if !ok {
			return p, false
		}
		return p.WithTracks(tracks), true
	})
}

// RemoveSong removes every occurrence of the track from the playlist.
func (s *Store) RemoveSong(playlistID, trackID string) {
	s.modify(playlistID, errmsg.OpPlaylistRemove, func(p catalog.Playlist) (catalog.Playlist, bool) {
		tracks, ok := playlist.RemoveID(p.Tracks, trackID)
		if !ok {
			return p, false
		}
		return p.WithTracks(tracks), true
	})
}

// ReorderSong moves the track at from to position to. Indices outside the
// playlist leave it unchanged.
func (s *Store) ReorderSong(playlistID string, from, to int) {
	s.modify(playlistID, errmsg.OpPlaylistMove, func(p catalog.Playlist) (catalog.Playlist, bool) {
		tracks, ok := playlist.Move(p.Tracks, from, to)
		if !ok || from == to {
			return p, false
		}
		return p.WithTracks(tracks), true
	})
}

// All returns copies of every playlist, catalog ones first.
func (s *Store) All() []catalog.Playlist {
	all := s.Snapshot().All()
	for i := range all {
		all[i] = all[i].Clone()
	}
	return all
}

// ByID returns a copy of the playlist with the given id from either
// partition.
func (s *Store) ByID(id string) (catalog.Playlist, bool) {
	snap := s.Snapshot()
	for _, part := range [][]catalog.Playlist{snap.Catalog, snap.User} {
		for i := range part {
			if part[i].ID == id {
				return part[i].Clone(), true
			}
		}
	}
	return catalog.Playlist{}, false
}

// Snapshot returns the current collection without copying it.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe returns a channel receiving the latest snapshot after each
// change. A slow reader only misses intermediate snapshots.
func (s *Store) Subscribe() <-chan Snapshot {
	ch := make(chan Snapshot, 1)
	s.subsMu.Lock()
	s.subs = append(s.subs, ch)
	s.subsMu.Unlock()
	return ch
}

// Close ends all subscriptions.
func (s *Store) Close() {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for _, ch := range s.subs {
		close(ch)
	}
	s.subs = nil
}

// modify replaces the user playlist id with fn's result when fn reports
// a change.
func (s *Store) modify(id string, op errmsg.Op, fn func(catalog.Playlist) (catalog.Playlist, bool)) {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return
	}
	p, changed := fn(s.user[i])
	if !changed {
		s.mu.Unlock()
		return
	}
	user := make([]catalog.Playlist, len(s.user))
	copy(user, s.user)
	user[i] = p
	s.user = user

	s.notify(s.snapshotLocked(), s.persist(op, p))
	s.mu.Unlock()
}

func (s *Store) indexLocked(id string) int {
	for i := range s.user {
		if s.user[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{Catalog: s.catalog, User: s.user}
}

// persist writes p through to the repository. Failures are logged and
// returned as a message; the in-memory collection is not rolled back.
func (s *Store) persist(op errmsg.Op, p catalog.Playlist) string {
	if s.repo == nil {
		return ""
	}
	if err := s.repo.Save(context.Background(), p); err != nil {
		msg := errmsg.FormatWith(op, p.Name, err)
		s.logger.Error(msg)
		return msg
	}
	return ""
}

// notify runs with mu held so subscribers see snapshots in order.
func (s *Store) notify(snap Snapshot, warning string) {
	snap.Warning = warning
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}
