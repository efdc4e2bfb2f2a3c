package engine

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

func newTransactionID() string {
	return uuid.NewString()
}

// Deduct appends an expense transaction and decrements the balance.
// Lifetime earnings track income only and are untouched. Preconditions are
// checked before any mutation, so a refused deduction leaves the snapshot
// exactly as it was.
func Deduct(s *State, amount Cents, reason string, now time.Time) (*State, error) {
	if amount <= 0 {
		return nil, validationf("deduction amount must be positive, got %s", amount)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ValidationError{Reason: "deduction reason is required"}
	}
	if amount > s.Balance {
		return nil, InsufficientFundsError{Requested: amount, Available: s.Balance}
	}

	next := s.Clone()
	next.Transactions = append(next.Transactions, Transaction{
		ID:          newTransactionID(),
		Date:        now,
		Amount:      -amount,
		Description: reason,
		Type:        TxExpense,
	})
	next.Balance -= amount
	return next, nil
}
