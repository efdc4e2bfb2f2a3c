package storage

import (
	"context"
	"database/sql"
	"time"
)

// Store is the persistence collaborator for the engine: whole-snapshot
// load/save under the fixed storage key, with an audit row written in the
// same transaction as each save.
type Store struct {
	db        *sql.DB
	snapshots *SnapshotRepo
	audit     *AuditRepo
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:        db,
		snapshots: NewSnapshotRepo(db),
		audit:     NewAuditRepo(db),
	}
}

func (s *Store) SnapshotRepo() *SnapshotRepo { return s.snapshots }
func (s *Store) AuditRepo() *AuditRepo       { return s.audit }

func (s *Store) Load(ctx context.Context) ([]byte, error) {
	return s.snapshots.Load(ctx, StorageKey)
}

func (s *Store) SaveWithAudit(ctx context.Context, blob []byte, at time.Time, action, detail string) error {
	return WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := saveSnapshot(ctx, tx, StorageKey, blob, at); err != nil {
			return err
		}
		return appendAudit(ctx, tx, at, action, detail)
	})
}
