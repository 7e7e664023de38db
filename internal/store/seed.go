package store

import (
	"math/rand"
	"time"

	"badminton-app/internal/model"
	"badminton-app/internal/scoring"
)

var seedPlayers = []string{
	"Camille", "Hugo", "Léa", "Malik", "Inès", "Tomás", "Yuki", "Sofia",
}

// SeedDemoMatches fills the store with a reproducible club history spread
// over the last weeks.
func SeedDemoMatches(s Store, count int) error {
	rng := rand.New(rand.NewSource(42))
	start := time.Now().AddDate(0, 0, -count)
	for i := 0; i < count; i++ {
		p1, p2 := pickTwoPlayers(seedPlayers, rng)
		sets := randomSets(rng)
		winner, ok := scoring.ResolveWinner(sets, p1, p2)
		if !ok {
			continue
		}
		match := model.Match{
			Player1:   p1,
			Player2:   p2,
			Sets:      sets,
			Winner:    winner,
			CreatedAt: start.Add(time.Duration(i)*24*time.Hour + time.Duration(rng.Intn(600))*time.Minute),
		}
		if _, err := s.CreateMatch(match); err != nil {
			return err
		}
	}
	return nil
}

func pickTwoPlayers(players []string, rng *rand.Rand) (string, string) {
	a := rng.Intn(len(players))
	b := rng.Intn(len(players) - 1)
	if b >= a {
		b++
	}
	return players[a], players[b]
}

// randomSets plays a best-of-three: a side needs two sets, each set goes to
// 21 with a two point lead, capped at 30.
func randomSets(rng *rand.Rand) []model.SetScore {
	sets := []model.SetScore{}
	won1, won2 := 0, 0
	for won1 < 2 && won2 < 2 {
		set := randomSet(rng)
		if set.A > set.B {
			won1++
		} else {
			won2++
		}
		sets = append(sets, set)
	}
	return sets
}

func randomSet(rng *rand.Rand) model.SetScore {
	winner := 21
	loser := rng.Intn(20)
	if rng.Intn(5) == 0 {
		loser = 20 + rng.Intn(9)
		winner = loser + 2
		if loser == 28 && rng.Intn(2) == 0 {
			winner, loser = 30, 29
		}
	}
	if rng.Intn(2) == 0 {
		return model.SetScore{A: winner, B: loser}
	}
	return model.SetScore{A: loser, B: winner}
}
