package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"treasury/internal/log"
)

// Store persists whole snapshots. Load returns (nil, nil) when no snapshot
// has ever been saved.
type Store interface {
	Load(ctx context.Context) ([]byte, error)
	SaveWithAudit(ctx context.Context, blob []byte, at time.Time, action, detail string) error
}

// SentenceSource produces the daily English practice sentence. It must not
// fail: implementations return a deterministic fallback pair on any error.
type SentenceSource interface {
	Generate(ctx context.Context) SentencePair
}

// Options configures a Service. Zero fields get sensible defaults.
type Options struct {
	Templates []TaskTemplate
	ParentPIN string
	Sentences SentenceSource
	Logger    *log.Logger
	Now       func() time.Time
}

// DefaultParentPIN gates the approval/deduction surface when no PIN is
// configured. A plain equality check, nothing more.
const DefaultParentPIN = "1234"

// Service drives the pure core: every operation loads the persisted
// snapshot, applies exactly one mutation, and writes the whole result back
// before returning. Single writer, single reader at a time.
type Service struct {
	store     Store
	templates []TaskTemplate
	parentPIN string
	sentences SentenceSource
	log       *log.Logger
	now       func() time.Time
}

func NewService(store Store, opts Options) *Service {
	s := &Service{
		store:     store,
		templates: opts.Templates,
		parentPIN: opts.ParentPIN,
		sentences: opts.Sentences,
		log:       opts.Logger,
		now:       opts.Now,
	}
	if len(s.templates) == 0 {
		s.templates = DefaultTemplates()
	}
	if s.parentPIN == "" {
		s.parentPIN = DefaultParentPIN
	}
	if s.log == nil {
		s.log = log.Default().WithComponent("engine")
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Templates returns the configured daily quest templates.
func (s *Service) Templates() []TaskTemplate {
	return append([]TaskTemplate(nil), s.templates...)
}

// CheckPIN gates the parent surface.
func (s *Service) CheckPIN(pin string) error {
	if pin != s.parentPIN {
		return ErrBadPIN
	}
	return nil
}

// GenerateSentence asks the sentence collaborator for a fresh pair.
func (s *Service) GenerateSentence(ctx context.Context) SentencePair {
	return s.sentences.Generate(ctx)
}

// Load reads the persisted snapshot, runs the daily initializer for today,
// persists the result and returns it. Safe to call any number of times per
// day; the initializer is idempotent.
func (s *Service) Load(ctx context.Context) (*State, error) {
	blob, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var prev *State
	if blob != nil {
		var st State
		if err := json.Unmarshal(blob, &st); err != nil {
			return nil, fmt.Errorf("decode snapshot: %w", err)
		}
		prev = &st
	}

	st := Initialize(prev, s.now(), s.templates)
	if err := st.Reconcile(); err != nil {
		s.log.Warn("snapshot does not reconcile", "error", err)
	}
	s.persist(ctx, st, "initialize", DateOf(s.now()))
	return st, nil
}

// Submit folds a child submission into the snapshot. For English tasks
// without a sentence, the collaborator supplies one first (it degrades to a
// fixed pair on failure, never an error).
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*State, error) {
	st, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	if t, ok := st.TaskByID(in.TaskID); ok && t.Kind == KindEnglish && in.Sentence.IsZero() {
		if t.English != nil && t.English.Sentence != "" {
			in.Sentence = SentencePair{Sentence: t.English.Sentence, Translation: t.English.Translation}
		} else if s.sentences != nil {
			in.Sentence = s.sentences.Generate(ctx)
		}
	}

	next, err := Submit(st, in, s.now())
	if err != nil {
		return nil, err
	}
	s.persist(ctx, next, "submit", in.TaskID)
	return next, nil
}

// Approve is the parent approval transition. Idempotent: approving an
// already-approved task credits nothing.
func (s *Service) Approve(ctx context.Context, pin, taskID string) (*State, *ApproveResult, error) {
	if err := s.CheckPIN(pin); err != nil {
		return nil, nil, err
	}
	st, err := s.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	next, res, err := Approve(st, taskID, s.now())
	if err != nil {
		return nil, nil, err
	}
	if res.AlreadyApproved {
		return next, res, nil
	}
	s.persist(ctx, next, "approve", fmt.Sprintf("%s +%s", taskID, res.Credited))
	return next, res, nil
}

// Reject is the parent rejection transition. No ledger effect.
func (s *Service) Reject(ctx context.Context, pin, taskID string) (*State, error) {
	if err := s.CheckPIN(pin); err != nil {
		return nil, err
	}
	st, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	next, err := Reject(st, taskID)
	if err != nil {
		return nil, err
	}
	s.persist(ctx, next, "reject", taskID)
	return next, nil
}

// Deduct withdraws funds from the child's balance.
func (s *Service) Deduct(ctx context.Context, pin string, amount Cents, reason string) (*State, error) {
	if err := s.CheckPIN(pin); err != nil {
		return nil, err
	}
	st, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	next, err := Deduct(st, amount, reason, s.now())
	if err != nil {
		return nil, err
	}
	s.persist(ctx, next, "deduct", fmt.Sprintf("-%s %s", amount, reason))
	return next, nil
}

// UpdateTask applies a partial edit to a task.
func (s *Service) UpdateTask(ctx context.Context, taskID string, patch TaskPatch) (*State, error) {
	st, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	next, err := UpdateTask(st, taskID, patch)
	if err != nil {
		return nil, err
	}
	s.persist(ctx, next, "update", taskID)
	return next, nil
}

// AddWish appends a savings goal.
func (s *Service) AddWish(ctx context.Context, name string, price Cents, imageRef string) (*State, *Wish, error) {
	st, err := s.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	next, w, err := AddWish(st, name, price, imageRef)
	if err != nil {
		return nil, nil, err
	}
	s.persist(ctx, next, "wish", w.Name)
	return next, w, nil
}

// persist writes the whole snapshot plus one audit row. Persistence
// failures are non-fatal: the in-memory snapshot stays authoritative until
// the next successful save.
func (s *Service) persist(ctx context.Context, st *State, action, detail string) {
	blob, err := json.Marshal(st)
	if err != nil {
		s.log.Error("encode snapshot", "action", action, "error", err)
		return
	}
	if err := s.store.SaveWithAudit(ctx, blob, s.now(), action, detail); err != nil {
		s.log.Warn("save snapshot", "action", action, "error", err)
	}
}
