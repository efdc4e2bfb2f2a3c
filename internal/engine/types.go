package engine

import (
	"fmt"
	"strconv"
	"strings"
)

type TaskKind string

const (
	KindReading TaskKind = "READING"
	KindEnglish TaskKind = "ENGLISH"
)

func (k TaskKind) IsValid() bool {
	switch k {
	case KindReading, KindEnglish:
		return true
	default:
		return false
	}
}

// ParseKind parses user/config input to a TaskKind.
func ParseKind(input string) (TaskKind, error) {
	k := TaskKind(strings.TrimSpace(strings.ToUpper(input)))
	if !k.IsValid() {
		return "", fmt.Errorf("invalid task kind: %q", input)
	}
	return k, nil
}

type TaskStatus string

const (
	StatusTodo     TaskStatus = "todo"
	StatusPending  TaskStatus = "pending"
	StatusApproved TaskStatus = "approved"
	StatusRejected TaskStatus = "rejected"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusTodo, StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// Submittable reports whether a child may (re)submit the task for review.
func (s TaskStatus) Submittable() bool {
	return s == StatusTodo || s == StatusRejected
}

type TransactionType string

const (
	TxIncome  TransactionType = "income"
	TxExpense TransactionType = "expense"
)

// Cents is a currency amount in hundredths of a yuan. Signed amounts on
// transactions follow the ledger convention: income positive, expense
// negative.
type Cents int64

// ParseCents parses a decimal amount ("50", "5.5", "¥125.00") into cents.
func ParseCents(input string) (Cents, error) {
	s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input), "¥"))
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" {
		whole = "0"
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", input)
	}
	var f int64
	if frac != "" {
		if len(frac) > 2 {
			return 0, fmt.Errorf("invalid amount %q: at most two decimal places", input)
		}
		for len(frac) < 2 {
			frac += "0"
		}
		f, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q", input)
		}
	}
	c := Cents(w*100 + f)
	if neg {
		c = -c
	}
	return c, nil
}

// String renders the amount as a plain decimal ("125.00", "-200.00").
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

func (c Cents) Abs() Cents {
	if c < 0 {
		return -c
	}
	return c
}

// SentencePair is the result of the sentence-generation collaborator.
type SentencePair struct {
	Sentence    string `json:"sentence"`
	Translation string `json:"translation"`
}

func (p SentencePair) IsZero() bool {
	return p.Sentence == "" && p.Translation == ""
}
