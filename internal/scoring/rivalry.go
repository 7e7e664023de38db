package scoring

import "badminton-app/internal/model"

// RivalrySide is one player's record inside a pairing.
type RivalrySide struct {
	Player        string `json:"player"`
	Wins          int    `json:"wins"`
	SetsWon       int    `json:"sets_won"`
	PointsScored  int    `json:"points_scored"`
	VictoryPoints int    `json:"victory_points"`
}

type Rivalry struct {
	Matches int         `json:"matches"`
	A       RivalrySide `json:"a"`
	B       RivalrySide `json:"b"`
}

// HeadToHead summarizes every match between playerA and playerB, including
// the victory points each of them banked from this pairing alone.
func HeadToHead(matches []model.Match, playerA, playerB string) Rivalry {
	rivalry := Rivalry{
		A: RivalrySide{Player: playerA},
		B: RivalrySide{Player: playerB},
	}
	if playerA == "" || playerB == "" || playerA == playerB {
		return rivalry
	}
	for _, match := range inPlayOrder(matches) {
		if !countable(match) || !match.Involves(playerA) || !match.Involves(playerB) {
			continue
		}
		rivalry.Matches++
		for _, set := range match.Sets {
			a, b := set.A, set.B
			if match.Player1 != playerA {
				a, b = b, a
			}
			rivalry.A.PointsScored += a
			rivalry.B.PointsScored += b
			if a > b {
				rivalry.A.SetsWon++
			} else if b > a {
				rivalry.B.SetsWon++
			}
		}
		side := &rivalry.B
		if match.Winner == playerA {
			side = &rivalry.A
		}
		side.Wins++
		side.VictoryPoints += VictoryPointsForWin(side.Wins)
	}
	return rivalry
}
