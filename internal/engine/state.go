package engine

import (
	"fmt"
	"strings"
	"time"
)

// ReadingDetails carries the reading-quest submission fields. The video
// reference is an opaque token; the engine only checks presence.
type ReadingDetails struct {
	BookName string `json:"bookName,omitempty"`
	Duration int    `json:"duration,omitempty"` // minutes
	VideoRef string `json:"videoRef,omitempty"`
}

// EnglishDetails carries the English-quest submission fields.
type EnglishDetails struct {
	Sentence    string `json:"sentence,omitempty"`
	Translation string `json:"translation,omitempty"`
	AudioRef    string `json:"audioRef,omitempty"`
}

// Task is one unit of daily work. Exactly one of Reading/English is set,
// matching Kind. Reward is frozen at creation and never mutated.
type Task struct {
	ID          string          `json:"id"`
	Kind        TaskKind        `json:"kind"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Reward      Cents           `json:"reward"`
	Status      TaskStatus      `json:"status"`
	Date        string          `json:"date"` // YYYY-MM-DD assignment date
	Reading     *ReadingDetails `json:"reading,omitempty"`
	English     *EnglishDetails `json:"english,omitempty"`
	SubmittedAt *time.Time      `json:"submittedAt,omitempty"`
}

// HasProof reports whether the kind-specific proof reference is present.
func (t *Task) HasProof() bool {
	switch t.Kind {
	case KindReading:
		return t.Reading != nil && t.Reading.VideoRef != ""
	case KindEnglish:
		return t.English != nil && t.English.AudioRef != ""
	default:
		return false
	}
}

func (t Task) clone() Task {
	if t.Reading != nil {
		r := *t.Reading
		t.Reading = &r
	}
	if t.English != nil {
		e := *t.English
		t.English = &e
	}
	if t.SubmittedAt != nil {
		at := *t.SubmittedAt
		t.SubmittedAt = &at
	}
	return t
}

// Transaction is an immutable ledger entry. The transaction list on a State
// is append-only; insertion order is chronological.
type Transaction struct {
	ID          string          `json:"id"`
	Date        time.Time       `json:"date"`
	Amount      Cents           `json:"amount"`
	Description string          `json:"description"`
	Type        TransactionType `json:"type"`
}

// Wish is a savings goal. The core never mutates wishes beyond appending;
// progress toward a wish is derived from the balance, not stored.
type Wish struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    Cents  `json:"price"`
	ImageRef string `json:"imageUrl,omitempty"`
}

// State is the aggregate snapshot: the single source of truth for balances,
// transactions, tasks, wishes, streak and last login. Mutators never write
// through a shared State; they clone, transform and return a new value.
type State struct {
	Balance       Cents         `json:"balance"`
	TotalEarnings Cents         `json:"totalEarnings"`
	Transactions  []Transaction `json:"transactions"`
	Tasks         []Task        `json:"tasks"`
	Wishes        []Wish        `json:"wishes"`
	Streak        int           `json:"streak"`
	LastLoginDate string        `json:"lastLoginDate"`
}

// Clone returns a deep copy safe to mutate independently.
func (s *State) Clone() *State {
	n := *s
	n.Transactions = append([]Transaction(nil), s.Transactions...)
	n.Wishes = append([]Wish(nil), s.Wishes...)
	n.Tasks = make([]Task, len(s.Tasks))
	for i := range s.Tasks {
		n.Tasks[i] = s.Tasks[i].clone()
	}
	return &n
}

// taskIndex returns the position of the task with the given id, or -1.
func (s *State) taskIndex(id string) int {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// TaskByID returns a copy of the task with the given id.
func (s *State) TaskByID(id string) (Task, bool) {
	i := s.taskIndex(id)
	if i < 0 {
		return Task{}, false
	}
	return s.Tasks[i].clone(), true
}

// TasksFor returns copies of the tasks assigned on the given date, in
// creation order.
func (s *State) TasksFor(date string) []Task {
	var out []Task
	for i := range s.Tasks {
		if s.Tasks[i].Date == date {
			out = append(out, s.Tasks[i].clone())
		}
	}
	return out
}

// DailyProgress returns the approved and total task counts for the date.
func (s *State) DailyProgress(date string) (approved, total int) {
	for i := range s.Tasks {
		if s.Tasks[i].Date != date {
			continue
		}
		total++
		if s.Tasks[i].Status == StatusApproved {
			approved++
		}
	}
	return approved, total
}

// dayComplete reports whether the date has at least one task and all of them
// are approved.
func (s *State) dayComplete(date string) bool {
	approved, total := s.DailyProgress(date)
	return total > 0 && approved == total
}

// Reconcile checks the ledger invariant: the balance must equal the sum of
// the signed transaction amounts.
func (s *State) Reconcile() error {
	var sum Cents
	for i := range s.Transactions {
		sum += s.Transactions[i].Amount
	}
	if sum != s.Balance {
		return fmt.Errorf("ledger drift: balance %s but transactions sum to %s", s.Balance, sum)
	}
	return nil
}

// DailyTaskID derives the deterministic id for a recurring daily task.
func DailyTaskID(kind TaskKind, date string) string {
	return strings.ToLower(string(kind)) + "-" + date
}

const dateLayout = "2006-01-02"

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) string {
	return t.Format(dateLayout)
}
