package scoring

import "badminton-app/internal/model"

// ResolveWinner returns the player who took more sets. A level count,
// including no decided sets at all, has no winner.
func ResolveWinner(sets []model.SetScore, player1, player2 string) (string, bool) {
	won1, won2 := 0, 0
	for _, set := range sets {
		switch set.Winner() {
		case 1:
			won1++
		case 2:
			won2++
		}
	}
	switch {
	case won1 > won2:
		return player1, true
	case won2 > won1:
		return player2, true
	}
	return "", false
}

// ResolveWinnerText is ResolveWinner over "A-B" strings; entries that do not
// parse are skipped.
func ResolveWinnerText(sets []string, player1, player2 string) (string, bool) {
	parsed := make([]model.SetScore, 0, len(sets))
	for _, text := range sets {
		set, err := model.ParseLooseSetScore(text)
		if err != nil {
			continue
		}
		parsed = append(parsed, set)
	}
	return ResolveWinner(parsed, player1, player2)
}
