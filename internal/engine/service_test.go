package engine_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"treasury/internal/engine"
	"treasury/internal/storage"
)

var serviceNow = time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

type stubSentences struct {
	pair  engine.SentencePair
	calls int
}

func (s *stubSentences) Generate(ctx context.Context) engine.SentencePair {
	s.calls++
	return s.pair
}

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	ctx := context.Background()
	db, err := storage.Open(ctx, filepath.Join(t.TempDir(), "treasury.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return storage.NewStore(db)
}

func newTestService(t *testing.T, store *storage.Store) (*engine.Service, *stubSentences) {
	t.Helper()
	stub := &stubSentences{pair: engine.SentencePair{
		Sentence:    "The early bird catches the worm.",
		Translation: "早起的鸟儿有虫吃。",
	}}
	svc := engine.NewService(store, engine.Options{
		Sentences: stub,
		Now:       func() time.Time { return serviceNow },
	})
	return svc, stub
}

func TestServiceLoadSeedsAndPersists(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc, _ := newTestService(t, store)

	st, err := svc.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if st.Balance != 12500 {
		t.Fatalf("seed balance = %s", st.Balance)
	}

	// A second service over the same database sees the persisted snapshot,
	// not a fresh seed.
	svc2, _ := newTestService(t, store)
	st2, err := svc2.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(st2.Tasks) != len(st.Tasks) || st2.Balance != st.Balance {
		t.Fatalf("reload diverged: %d tasks, balance %s", len(st2.Tasks), st2.Balance)
	}
}

func TestServiceSubmitFillsEnglishSentence(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc, stub := newTestService(t, store)
	if _, err := svc.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	id := engine.DailyTaskID(engine.KindEnglish, engine.DateOf(serviceNow))
	st, err := svc.Submit(ctx, engine.SubmitInput{TaskID: id, AudioRef: "blob:audio/take1"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	task, _ := st.TaskByID(id)
	if task.English == nil || task.English.Sentence != stub.pair.Sentence {
		t.Fatalf("sentence not filled from the collaborator: %+v", task.English)
	}
	if stub.calls != 1 {
		t.Fatalf("collaborator called %d times, want 1", stub.calls)
	}
}

func TestServiceApprovePersistsAcrossReload(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc, _ := newTestService(t, store)
	if _, err := svc.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	id := engine.DailyTaskID(engine.KindReading, engine.DateOf(serviceNow))
	if _, err := svc.Submit(ctx, engine.SubmitInput{TaskID: id, BookName: "Matilda", VideoRef: "blob:video/x"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	st, res, err := svc.Approve(ctx, engine.DefaultParentPIN, id)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if res.Credited != 500 || st.Balance != 13000 {
		t.Fatalf("credited %s, balance %s", res.Credited, st.Balance)
	}

	svc2, _ := newTestService(t, store)
	st2, err := svc2.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	task, _ := st2.TaskByID(id)
	if task.Status != engine.StatusApproved || st2.Balance != 13000 {
		t.Fatalf("approval not persisted: status %s, balance %s", task.Status, st2.Balance)
	}
	if err := st2.Reconcile(); err != nil {
		t.Fatalf("reloaded snapshot does not reconcile: %v", err)
	}
}

func TestServiceBadPIN(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t, newTestStore(t))

	if _, _, err := svc.Approve(ctx, "0000", "reading-2026-08-28"); !errors.Is(err, engine.ErrBadPIN) {
		t.Fatalf("approve err = %v, want ErrBadPIN", err)
	}
	if _, err := svc.Reject(ctx, "0000", "reading-2026-08-28"); !errors.Is(err, engine.ErrBadPIN) {
		t.Fatalf("reject err = %v, want ErrBadPIN", err)
	}
	if _, err := svc.Deduct(ctx, "0000", 100, "candy"); !errors.Is(err, engine.ErrBadPIN) {
		t.Fatalf("deduct err = %v, want ErrBadPIN", err)
	}
}

func TestServiceAuditTrail(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc, _ := newTestService(t, store)

	if _, err := svc.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	id := engine.DailyTaskID(engine.KindReading, engine.DateOf(serviceNow))
	if _, err := svc.Submit(ctx, engine.SubmitInput{TaskID: id, VideoRef: "blob:video/x"}); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, _, err := svc.Approve(ctx, engine.DefaultParentPIN, id); err != nil {
		t.Fatalf("approve: %v", err)
	}

	entries, err := store.AuditRepo().ListRecent(ctx, 50)
	if err != nil {
		t.Fatalf("list audit: %v", err)
	}
	if len(entries) < 3 {
		t.Fatalf("audit rows = %d, want at least 3", len(entries))
	}
	// Newest first: the approval tops the trail.
	if entries[0].Action != "approve" {
		t.Fatalf("latest audit action = %q, want approve", entries[0].Action)
	}
}

func TestServiceCorruptSnapshot(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	if err := store.SaveWithAudit(ctx, []byte("{not json"), serviceNow, "test", ""); err != nil {
		t.Fatalf("seed corrupt blob: %v", err)
	}

	svc, _ := newTestService(t, store)
	if _, err := svc.Load(ctx); err == nil {
		t.Fatalf("expected decode error for a corrupt snapshot")
	}
}

func TestServiceAddWishPersists(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc, _ := newTestService(t, store)
	if _, err := svc.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	_, w, err := svc.AddWish(ctx, "Telescope", 45000, "")
	if err != nil {
		t.Fatalf("add wish: %v", err)
	}

	svc2, _ := newTestService(t, store)
	st, err := svc2.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	found := false
	for _, got := range st.Wishes {
		if got.ID == w.ID && got.Name == "Telescope" && got.Price == 45000 {
			found = true
		}
	}
	if !found {
		t.Fatalf("wish not persisted: %+v", st.Wishes)
	}
}
