package engine

import (
	"errors"
	"fmt"
)

// ErrBadPIN is returned by parent-gated operations when the supplied PIN
// does not match the configured one.
var ErrBadPIN = errors.New("incorrect parent PIN")

// ValidationError indicates a refused precondition. No state change occurs.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string { return e.Reason }

func validationf(format string, args ...any) error {
	return ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError indicates a task id that does not exist in the snapshot.
type NotFoundError struct {
	TaskID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("task %q not found", e.TaskID)
}

// InsufficientFundsError is returned when a deduction exceeds the balance.
type InsufficientFundsError struct {
	Requested Cents
	Available Cents
}

func (e InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: requested %s, available %s", e.Requested, e.Available)
}

// ProofRequiredError is returned when a submission lacks the kind-specific
// proof reference.
type ProofRequiredError struct {
	Kind TaskKind
}

func (e ProofRequiredError) Error() string {
	switch e.Kind {
	case KindReading:
		return "reading submission requires a video or photo proof"
	case KindEnglish:
		return "english submission requires an audio recording"
	default:
		return "submission requires proof"
	}
}
