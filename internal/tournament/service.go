package tournament

import (
	"fmt"
	"strings"
	"time"

	"badminton-app/internal/model"
	"badminton-app/internal/scoring"
	"badminton-app/internal/store"

	"github.com/sirupsen/logrus"
)

const (
	MaxSets      = 3
	MaxSetPoints = 30
)

type MatchInput struct {
	Player1 string   `json:"player1"`
	Player2 string   `json:"player2"`
	Sets    []string `json:"sets"`
}

type Service struct {
	store  store.Store
	logger *logrus.Logger
	now    func() time.Time
}

func NewService(store store.Store, logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Service{store: store, logger: logger, now: time.Now}
}

// RegisterMatch validates the form input, decides the winner and stores the
// match. Validation failures leave the store untouched.
func (s *Service) RegisterMatch(in MatchInput) (model.Match, error) {
	player1 := strings.TrimSpace(in.Player1)
	player2 := strings.TrimSpace(in.Player2)
	if player1 == "" || player2 == "" {
		return model.Match{}, ErrPlayerRequired
	}
	if player1 == player2 {
		return model.Match{}, ErrSamePlayers
	}
	sets, err := parseSets(in.Sets)
	if err != nil {
		return model.Match{}, err
	}
	winner, ok := scoring.ResolveWinner(sets, player1, player2)
	if !ok {
		return model.Match{}, ErrUndecided
	}

	match, err := s.store.CreateMatch(model.Match{
		Player1:   player1,
		Player2:   player2,
		Sets:      sets,
		Winner:    winner,
		CreatedAt: s.now(),
	})
	if err != nil {
		return model.Match{}, fmt.Errorf("save match: %w", err)
	}
	s.logger.WithFields(logrus.Fields{
		"match_id": match.ID,
		"player1":  match.Player1,
		"player2":  match.Player2,
		"winner":   match.Winner,
		"score":    match.ScoreLine(),
	}).Info("match registered")
	return match, nil
}

// parseSets drops blank and 0-0 entries, which stand for sets not played.
func parseSets(texts []string) ([]model.SetScore, error) {
	sets := make([]model.SetScore, 0, MaxSets)
	for _, text := range texts {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		set, err := model.ParseSetScore(text)
		if err != nil {
			return nil, err
		}
		if set.IsZero() {
			continue
		}
		if set.A > MaxSetPoints || set.B > MaxSetPoints {
			return nil, fmt.Errorf("%w: %q exceeds %d points", ErrInvalidSetScore, text, MaxSetPoints)
		}
		sets = append(sets, set)
	}
	if len(sets) == 0 {
		return nil, ErrNoValidSet
	}
	if len(sets) > MaxSets {
		return nil, ErrTooManySets
	}
	return sets, nil
}

func (s *Service) DeleteMatch(id string) error {
	if err := s.store.DeleteMatch(id); err != nil {
		return fmt.Errorf("delete match %s: %w", id, err)
	}
	s.logger.WithField("match_id", id).Info("match deleted")
	return nil
}

func (s *Service) ResetMatches() error {
	if err := s.store.DeleteAllMatches(); err != nil {
		return fmt.Errorf("reset matches: %w", err)
	}
	s.logger.Warn("all matches deleted")
	return nil
}

func (s *Service) Match(id string) (model.Match, bool) {
	return s.store.GetMatch(id)
}

// Matches returns the history newest first.
func (s *Service) Matches() ([]model.Match, error) {
	matches, err := s.store.ListMatches()
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return newestFirst(matches), nil
}

func newestFirst(matches []model.Match) []model.Match {
	history := make([]model.Match, len(matches))
	for i, match := range matches {
		history[len(matches)-1-i] = match
	}
	return history
}

// Overview is the history, standings and player list computed from one
// read of the store.
type Overview struct {
	Matches   []model.Match
	Standings []scoring.Standing
	Players   []string
	snapshot  []model.Match
}

// Rivalry summarizes a pairing from the same snapshot as the rest of o.
func (o Overview) Rivalry(playerA, playerB string) scoring.Rivalry {
	return scoring.HeadToHead(o.snapshot, playerA, playerB)
}

func (s *Service) Overview() (Overview, error) {
	matches, err := s.store.ListMatches()
	if err != nil {
		return Overview{}, fmt.Errorf("list matches: %w", err)
	}
	return Overview{
		Matches:   newestFirst(matches),
		Standings: scoring.BuildStandings(matches),
		Players:   scoring.Players(matches),
		snapshot:  matches,
	}, nil
}

func (s *Service) Standings() ([]scoring.Standing, error) {
	matches, err := s.store.ListMatches()
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return scoring.BuildStandings(matches), nil
}

func (s *Service) Players() ([]string, error) {
	matches, err := s.store.ListMatches()
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return scoring.Players(matches), nil
}

func (s *Service) Rivalry(playerA, playerB string) (scoring.Rivalry, error) {
	matches, err := s.store.ListMatches()
	if err != nil {
		return scoring.Rivalry{}, fmt.Errorf("list matches: %w", err)
	}
	return scoring.HeadToHead(matches, playerA, playerB), nil
}
