package state

import (
	"context"
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/encore/internal/db"
)

// Session is the persisted part of the playback state. Tracks are stored
// by catalog id and resolved again on restore.
type Session struct {
	Volume     float64
	RepeatMode int
	Shuffle    bool
	Queue      []string
	Index      int
	HasCurrent bool
	Position   time.Duration
	Liked      []string
	Recent     []string
	SavedAt    time.Time
}

const (
	listQueue  = "queue"
	listLiked  = "liked"
	listRecent = "recent"
)

func getSession(ctx context.Context, db *sql.DB) (*Session, error) {
	var s Session
	var positionMS, savedAt int64
	row := db.QueryRowContext(ctx, `
		SELECT volume, repeat_mode, shuffle, current_index, has_current, position_ms, saved_at
		FROM session WHERE id = 1
	`)
	err := row.Scan(&s.Volume, &s.RepeatMode, &s.Shuffle, &s.Index, &s.HasCurrent, &positionMS, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved session is valid on first run
	}
	if err != nil {
		return nil, err
	}
	s.Position = time.Duration(positionMS) * time.Millisecond
	s.SavedAt = dbutil.UnixTime(savedAt)

	rows, err := db.QueryContext(ctx, `
		SELECT list, track_id FROM session_tracks ORDER BY list, position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var list, id string
		if err := rows.Scan(&list, &id); err != nil {
			return nil, err
		}
		switch list {
		case listQueue:
			s.Queue = append(s.Queue, id)
		case listLiked:
			s.Liked = append(s.Liked, id)
		case listRecent:
			s.Recent = append(s.Recent, id)
		}
	}
	return &s, rows.Err()
}

func saveSession(ctx context.Context, sqlDB *sql.DB, s Session) error {
	savedAt := s.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}
	return dbutil.WithTx(ctx, sqlDB, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO session (id, volume, repeat_mode, shuffle, current_index, has_current, position_ms, saved_at)
			VALUES (1, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				volume = excluded.volume,
				repeat_mode = excluded.repeat_mode,
				shuffle = excluded.shuffle,
				current_index = excluded.current_index,
				has_current = excluded.has_current,
				position_ms = excluded.position_ms,
				saved_at = excluded.saved_at
		`, s.Volume, s.RepeatMode, s.Shuffle, s.Index, s.HasCurrent, s.Position.Milliseconds(), dbutil.Unix(savedAt))
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM session_tracks`); err != nil {
			return err
		}

		var args [][]any
		for list, ids := range map[string][]string{listQueue: s.Queue, listLiked: s.Liked, listRecent: s.Recent} {
			for i, id := range ids {
				args = append(args, []any{list, i, id})
			}
		}
		return dbutil.ExecEach(ctx, tx, `
			INSERT INTO session_tracks (list, position, track_id) VALUES (?, ?, ?)
		`, args)
	})
}
