package scoring

import (
	"fmt"
	"sort"

	"badminton-app/internal/model"
)

const (
	FirstWinPoints  = 5
	SecondWinPoints = 3
	RepeatWinPoints = 1
)

type Standing struct {
	Rank          int    `json:"rank"`
	Player        string `json:"player"`
	VictoryPoints int    `json:"victory_points"`
	MatchesPlayed int    `json:"matches_played"`
	PointsScored  int    `json:"points_scored"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
}

// Medal decorates the podium places; everyone else gets an ordinal.
func (s Standing) Medal() string {
	switch s.Rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return ordinal(s.Rank)
}

// VictoryPointsForWin is the award for the n-th win of one player over the
// same opponent.
func VictoryPointsForWin(n int) int {
	switch {
	case n < 1:
		return 0
	case n == 1:
		return FirstWinPoints
	case n == 2:
		return SecondWinPoints
	}
	return RepeatWinPoints
}

type pairing struct {
	low, high string
}

func pairingOf(a, b string) pairing {
	if b < a {
		a, b = b, a
	}
	return pairing{low: a, high: b}
}

type pairingWin struct {
	pair   pairing
	winner string
}

// BuildStandings aggregates the match history into a ranked table. Matches
// are replayed oldest first so repeat wins over the same opponent are counted
// in play order.
func BuildStandings(matches []model.Match) []Standing {
	index := make(map[string]*Standing)
	entry := func(player string) *Standing {
		s, ok := index[player]
		if !ok {
			s = &Standing{Player: player}
			index[player] = s
		}
		return s
	}
	wins := make(map[pairingWin]int)

	for _, match := range inPlayOrder(matches) {
		if !countable(match) {
			continue
		}
		entry1 := entry(match.Player1)
		entry2 := entry(match.Player2)
		entry1.MatchesPlayed++
		entry2.MatchesPlayed++
		for _, set := range match.Sets {
			entry1.PointsScored += set.A
			entry2.PointsScored += set.B
		}

		key := pairingWin{pair: pairingOf(match.Player1, match.Player2), winner: match.Winner}
		wins[key]++
		winner := index[match.Winner]
		winner.Wins++
		winner.VictoryPoints += VictoryPointsForWin(wins[key])
		index[match.Loser()].Losses++
	}

	standings := make([]Standing, 0, len(index))
	for _, s := range index {
		standings = append(standings, *s)
	}
	sort.Slice(standings, func(i, j int) bool {
		a, b := standings[i], standings[j]
		if a.VictoryPoints != b.VictoryPoints {
			return a.VictoryPoints > b.VictoryPoints
		}
		if a.MatchesPlayed != b.MatchesPlayed {
			return a.MatchesPlayed < b.MatchesPlayed
		}
		if a.PointsScored != b.PointsScored {
			return a.PointsScored > b.PointsScored
		}
		return a.Player < b.Player
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings
}

// Players lists every name that appears in the history, sorted.
func Players(matches []model.Match) []string {
	seen := make(map[string]bool)
	players := []string{}
	for _, match := range matches {
		for _, p := range []string{match.Player1, match.Player2} {
			if p == "" || seen[p] {
				continue
			}
			seen[p] = true
			players = append(players, p)
		}
	}
	sort.Strings(players)
	return players
}

func countable(match model.Match) bool {
	if match.Player1 == "" || match.Player2 == "" || match.Player1 == match.Player2 {
		return false
	}
	if len(match.Sets) == 0 {
		return false
	}
	return match.Winner == match.Player1 || match.Winner == match.Player2
}

func inPlayOrder(matches []model.Match) []model.Match {
	ordered := make([]model.Match, len(matches))
	copy(ordered, matches)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})
	return ordered
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
