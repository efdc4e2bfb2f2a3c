package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// AuditEntry is one row of the append-only mutation trail.
type AuditEntry struct {
	ID     int64
	At     time.Time
	Action string
	Detail string
}

type AuditRepo struct {
	db *sql.DB
}

func NewAuditRepo(db *sql.DB) *AuditRepo {
	return &AuditRepo{db: db}
}

func (r *AuditRepo) Append(ctx context.Context, at time.Time, action, detail string) error {
	return appendAudit(ctx, r.db, at, action, detail)
}

// ListRecent returns the newest entries first.
func (r *AuditRepo) ListRecent(ctx context.Context, limit int) ([]AuditEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, at, action, detail
		FROM audit_log
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("audit list: %w", err)
	}
	defer rows.Close()

	var out []AuditEntry
	for rows.Next() {
		var e AuditEntry
		var detail sql.NullString
		if err := rows.Scan(&e.ID, &e.At, &e.Action, &detail); err != nil {
			return nil, fmt.Errorf("audit scan: %w", err)
		}
		e.Detail = detail.String
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("audit rows: %w", err)
	}
	return out, nil
}

func appendAudit(ctx context.Context, e execer, at time.Time, action, detail string) error {
	_, err := e.ExecContext(ctx, `
		INSERT INTO audit_log (at, action, detail)
		VALUES (?, ?, ?)
	`, at.UTC(), action, detail)
	if err != nil {
		return fmt.Errorf("audit append: %w", err)
	}
	return nil
}
