package web

import (
	"fmt"
	"net/http"
	"strings"

	"badminton-app/internal/tournament"
)

// matchInputFromForm reads player_1/player_2 and the set_N_a/set_N_b pairs.
// A row with both boxes empty is skipped; a half-filled row becomes "A-"
// so validation rejects it instead of dropping it.
func matchInputFromForm(r *http.Request) (tournament.MatchInput, []SetRowView) {
	in := tournament.MatchInput{
		Player1: strings.TrimSpace(r.FormValue("player_1")),
		Player2: strings.TrimSpace(r.FormValue("player_2")),
	}
	rows := make([]SetRowView, 0, tournament.MaxSets)
	for i := 1; i <= tournament.MaxSets; i++ {
		a := strings.TrimSpace(r.FormValue(fmt.Sprintf("set_%d_a", i)))
		b := strings.TrimSpace(r.FormValue(fmt.Sprintf("set_%d_b", i)))
		rows = append(rows, SetRowView{Number: i, A: a, B: b})
		if a == "" && b == "" {
			continue
		}
		in.Sets = append(in.Sets, a+"-"+b)
	}
	return in, rows
}

func emptySetRows() []SetRowView {
	rows := make([]SetRowView, 0, tournament.MaxSets)
	for i := 1; i <= tournament.MaxSets; i++ {
		rows = append(rows, SetRowView{Number: i})
	}
	return rows
}
