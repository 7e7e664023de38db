package store

import (
	"errors"

	"badminton-app/internal/model"
)

var ErrMatchNotFound = errors.New("match not found")

// Store persists match records. ListMatches returns them oldest first.
type Store interface {
	ListMatches() ([]model.Match, error)
	GetMatch(id string) (model.Match, bool)
	CreateMatch(match model.Match) (model.Match, error)
	DeleteMatch(id string) error
	DeleteAllMatches() error
	Close() error
}
