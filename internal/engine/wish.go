package engine

import (
	"strings"

	"github.com/google/uuid"
)

// AddWish appends a new savings goal.
func AddWish(s *State, name string, price Cents, imageRef string) (*State, *Wish, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil, ValidationError{Reason: "wish name is required"}
	}
	if price <= 0 {
		return nil, nil, validationf("wish price must be positive, got %s", price)
	}

	next := s.Clone()
	w := Wish{
		ID:       uuid.NewString(),
		Name:     name,
		Price:    price,
		ImageRef: strings.TrimSpace(imageRef),
	}
	next.Wishes = append(next.Wishes, w)
	return next, &w, nil
}

// WishProgress derives how far the current balance goes toward a wish:
// a ratio capped at 1.0 and the amount still missing (0 when reached).
func WishProgress(s *State, w Wish) (ratio float64, remaining Cents) {
	if w.Price <= 0 {
		return 1, 0
	}
	ratio = float64(s.Balance) / float64(w.Price)
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}
	remaining = w.Price - s.Balance
	if remaining < 0 {
		remaining = 0
	}
	return ratio, remaining
}
