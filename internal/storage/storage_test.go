package storage

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewSnapshotRepo(testDB(t))
	now := time.Now()

	got, err := repo.Load(ctx, StorageKey)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if got != nil {
		t.Fatalf("load empty = %q, want nil", got)
	}

	if err := repo.Save(ctx, StorageKey, []byte(`{"v":1}`), now); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err = repo.Load(ctx, StorageKey)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !bytes.Equal(got, []byte(`{"v":1}`)) {
		t.Fatalf("load = %q", got)
	}

	// Saving again overwrites in place.
	if err := repo.Save(ctx, StorageKey, []byte(`{"v":2}`), now.Add(time.Minute)); err != nil {
		t.Fatalf("save again: %v", err)
	}
	got, err = repo.Load(ctx, StorageKey)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !bytes.Equal(got, []byte(`{"v":2}`)) {
		t.Fatalf("load after overwrite = %q", got)
	}
}

func TestAuditAppendAndList(t *testing.T) {
	ctx := context.Background()
	repo := NewAuditRepo(testDB(t))
	base := time.Date(2026, 8, 28, 8, 0, 0, 0, time.UTC)

	for i, action := range []string{"initialize", "submit", "approve"} {
		if err := repo.Append(ctx, base.Add(time.Duration(i)*time.Minute), action, "detail"); err != nil {
			t.Fatalf("append %s: %v", action, err)
		}
	}

	entries, err := repo.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len = %d, want 2", len(entries))
	}
	if entries[0].Action != "approve" || entries[1].Action != "submit" {
		t.Fatalf("order = %q, %q; want newest first", entries[0].Action, entries[1].Action)
	}
}

func TestSaveWithAuditAtomic(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	store := NewStore(db)
	now := time.Now()

	if err := store.SaveWithAudit(ctx, []byte(`{}`), now, "initialize", "2026-08-28"); err != nil {
		t.Fatalf("save with audit: %v", err)
	}

	blob, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if blob == nil {
		t.Fatalf("snapshot missing after save")
	}
	entries, err := store.AuditRepo().ListRecent(ctx, 10)
	if err != nil {
		t.Fatalf("list audit: %v", err)
	}
	if len(entries) != 1 || entries[0].Action != "initialize" || entries[0].Detail != "2026-08-28" {
		t.Fatalf("audit = %+v", entries)
	}
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	boom := errors.New("boom")

	err := WithTx(ctx, db, func(tx *sql.Tx) error {
		if err := saveSnapshot(ctx, tx, StorageKey, []byte(`{}`), time.Now()); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	blob, err := NewSnapshotRepo(db).Load(ctx, StorageKey)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if blob != nil {
		t.Fatalf("snapshot survived a rolled-back transaction")
	}
}
