package tournament

import (
	"errors"

	"badminton-app/internal/model"
)

// Validation and outcome errors. None of them mutate the store.
var (
	ErrPlayerRequired  = errors.New("both player names are required")
	ErrSamePlayers     = errors.New("a player cannot play against themselves")
	ErrNoValidSet      = errors.New("at least one set score is required")
	ErrTooManySets     = errors.New("a match has at most three sets")
	ErrInvalidSetScore = model.ErrInvalidSetScore
	ErrUndecided       = errors.New("the sets do not produce a winner")
)

// IsValidationError reports whether err was caused by the submitted data
// rather than by the store.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrPlayerRequired,
		ErrSamePlayers,
		ErrNoValidSet,
		ErrTooManySets,
		ErrInvalidSetScore,
		ErrUndecided,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
