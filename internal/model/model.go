package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidSetScore = errors.New("invalid set score")

var setScorePattern = regexp.MustCompile(`^\d{1,2}-\d{1,2}$`)

type SetScore struct {
	A int `json:"a"`
	B int `json:"b"`
}

func (s SetScore) String() string {
	return fmt.Sprintf("%d-%d", s.A, s.B)
}

// Winner returns 1 or 2 for the side that took the set, 0 for a tie.
func (s SetScore) Winner() int {
	switch {
	case s.A > s.B:
		return 1
	case s.B > s.A:
		return 2
	}
	return 0
}

func (s SetScore) IsZero() bool {
	return s.A == 0 && s.B == 0
}

// ParseSetScore accepts the operator format "A-B" with one or two digits per side.
func ParseSetScore(value string) (SetScore, error) {
	value = strings.TrimSpace(value)
	if !setScorePattern.MatchString(value) {
		return SetScore{}, fmt.Errorf("%w: %q", ErrInvalidSetScore, value)
	}
	return ParseLooseSetScore(value)
}

// ParseLooseSetScore accepts any pair of non-negative integers joined by "-".
// Stored rows from older versions are read through it.
func ParseLooseSetScore(value string) (SetScore, error) {
	left, right, ok := strings.Cut(strings.TrimSpace(value), "-")
	if !ok {
		return SetScore{}, fmt.Errorf("%w: %q", ErrInvalidSetScore, value)
	}
	a, errA := strconv.Atoi(strings.TrimSpace(left))
	b, errB := strconv.Atoi(strings.TrimSpace(right))
	if errA != nil || errB != nil || a < 0 || b < 0 {
		return SetScore{}, fmt.Errorf("%w: %q", ErrInvalidSetScore, value)
	}
	return SetScore{A: a, B: b}, nil
}

type Match struct {
	ID        string     `json:"id"`
	Player1   string     `json:"player1"`
	Player2   string     `json:"player2"`
	Sets      []SetScore `json:"sets"`
	Winner    string     `json:"winner"`
	CreatedAt time.Time  `json:"created_at"`
}

func (m Match) Involves(player string) bool {
	return player != "" && (m.Player1 == player || m.Player2 == player)
}

func (m Match) Opponent(player string) string {
	switch player {
	case m.Player1:
		return m.Player2
	case m.Player2:
		return m.Player1
	}
	return ""
}

func (m Match) Loser() string {
	return m.Opponent(m.Winner)
}

// PointsFor sums the player's own points across all sets.
func (m Match) PointsFor(player string) int {
	total := 0
	for _, set := range m.Sets {
		switch player {
		case m.Player1:
			total += set.A
		case m.Player2:
			total += set.B
		}
	}
	return total
}

func (m Match) SetTexts() []string {
	texts := make([]string, 0, len(m.Sets))
	for _, set := range m.Sets {
		texts = append(texts, set.String())
	}
	return texts
}

func (m Match) ScoreLine() string {
	return strings.Join(m.SetTexts(), ", ")
}
