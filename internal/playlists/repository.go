package playlists

import (
	"context"
	"database/sql"

	"github.com/llehouerou/encore/internal/catalog"
	dbutil "github.com/llehouerou/encore/internal/db"
	"github.com/llehouerou/encore/internal/playlist"
)

// Repository persists the user playlists.
type Repository interface {
	// Load returns the saved playlists in creation order, with their
	// track ids resolved by resolve.
	Load(ctx context.Context, resolve func(ids []string) []catalog.Track) ([]catalog.Playlist, error)
	// Save inserts or replaces p, including its track list.
	Save(ctx context.Context, p catalog.Playlist) error
	// Delete removes the playlist and its tracks.
	Delete(ctx context.Context, id string) error
}

// SQLRepository stores user playlists in the user_playlists and
// user_playlist_tracks tables of the state database.
type SQLRepository struct {
	db *sql.DB
}

// NewSQLRepository creates a repository over db.
func NewSQLRepository(db *sql.DB) *SQLRepository {
	return &SQLRepository{db: db}
}

func (r *SQLRepository) Load(ctx context.Context, resolve func(ids []string) []catalog.Track) ([]catalog.Playlist, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, cover, public, created_at, updated_at
		FROM user_playlists
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []catalog.Playlist
	for rows.Next() {
		var p catalog.Playlist
		var desc, cover sql.NullString
		var createdAt, updatedAt int64
		if err := rows.Scan(&p.ID, &p.Name, &desc, &cover, &p.Public, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		p.Description = dbutil.NullStringValue(desc)
		p.Cover = dbutil.NullStringValue(cover)
		p.CreatedAt = dbutil.UnixTime(createdAt)
		p.UpdatedAt = dbutil.UnixTime(updatedAt)
		p.UserCreated = true
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		ids, err := r.trackIDs(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		tracks := resolve(ids)
		if tracks == nil {
			tracks = []catalog.Track{}
		}
		out[i] = out[i].WithTracks(tracks)
	}
	return out, nil
}

func (r *SQLRepository) trackIDs(ctx context.Context, playlistID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT track_id FROM user_playlist_tracks
		WHERE playlist_id = ?
		ORDER BY position
	`, playlistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Save upserts the playlist row, keeping its position once assigned, and
// rewrites its track list.
func (r *SQLRepository) Save(ctx context.Context, p catalog.Playlist) error {
	return dbutil.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO user_playlists (id, position, name, description, cover, public, created_at, updated_at)
			VALUES (?, (SELECT COALESCE(MAX(position) + 1, 0) FROM user_playlists), ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				name = excluded.name,
				description = excluded.description,
				cover = excluded.cover,
				public = excluded.public,
				updated_at = excluded.updated_at
		`, p.ID, p.Name, dbutil.NullString(p.Description), dbutil.NullString(p.Cover),
			p.Public, dbutil.Unix(p.CreatedAt), dbutil.Unix(p.UpdatedAt))
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `
			DELETE FROM user_playlist_tracks WHERE playlist_id = ?
		`, p.ID); err != nil {
			return err
		}

		ids := playlist.IDs(p.Tracks)
		args := make([][]any, len(ids))
		for i, id := range ids {
			args[i] = []any{p.ID, i, id}
		}
		return dbutil.ExecEach(ctx, tx, `
			INSERT INTO user_playlist_tracks (playlist_id, position, track_id)
			VALUES (?, ?, ?)
		`, args)
	})
}

func (r *SQLRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM user_playlists WHERE id = ?`, id)
	return err
}

var _ Repository = (*SQLRepository)(nil)
