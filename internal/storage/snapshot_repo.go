package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// SnapshotRepo stores whole-snapshot blobs keyed by a fixed storage key.
type SnapshotRepo struct {
	db *sql.DB
}

func NewSnapshotRepo(db *sql.DB) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

// Load returns the blob under key, or (nil, nil) when none was ever saved.
func (r *SnapshotRepo) Load(ctx context.Context, key string) ([]byte, error) {
	row := r.db.QueryRowContext(ctx, `SELECT data FROM snapshots WHERE key = ?`, key)
	var data []byte
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("snapshot load: %w", err)
	}
	return data, nil
}

// Save replaces the blob under key.
func (r *SnapshotRepo) Save(ctx context.Context, key string, data []byte, at time.Time) error {
	return saveSnapshot(ctx, r.db, key, data, at)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func saveSnapshot(ctx context.Context, e execer, key string, data []byte, at time.Time) error {
	_, err := e.ExecContext(ctx, `
		INSERT INTO snapshots (key, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at
	`, key, data, at.UTC())
	if err != nil {
		return fmt.Errorf("snapshot save: %w", err)
	}
	return nil
}
