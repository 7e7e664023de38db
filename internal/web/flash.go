package web

import (
	"errors"
	"strings"

	"badminton-app/internal/tournament"
)

func flashMessage(notice string) string {
	switch strings.TrimSpace(notice) {
	case "match_added":
		return "Match saved."
	case "match_deleted":
		return "Match deleted."
	case "matches_reset":
		return "All matches were deleted."
	}
	return ""
}

// validationMessage turns a rejected registration into text for the form.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, tournament.ErrPlayerRequired):
		return "Enter both players."
	case errors.Is(err, tournament.ErrSamePlayers):
		return "Pick two different players."
	case errors.Is(err, tournament.ErrNoValidSet):
		return "Enter the score of at least one set."
	case errors.Is(err, tournament.ErrTooManySets):
		return "A match has at most three sets."
	case errors.Is(err, tournament.ErrInvalidSetScore):
		return "Set scores must look like 21-15, with at most 30 points per side."
	case errors.Is(err, tournament.ErrUndecided):
		return "The sets do not produce a winner. Check the scores."
	}
	return "The match could not be saved."
}
