package web

import (
	"testing"
	"time"

	"badminton-app/internal/model"
)

func TestMatchViewPlayedAtLabel(t *testing.T) {
	base := model.Match{
		Player1: "Alice",
		Player2: "Bob",
		Sets:    []model.SetScore{{A: 21, B: 15}},
		Winner:  "Alice",
	}

	tests := []struct {
		name      string
		createdAt time.Time
		want      string
	}{
		{name: "missing timestamp", want: ""},
		{name: "recorded", createdAt: time.Date(2024, 5, 4, 18, 30, 0, 0, time.UTC), want: "04 May 2024 18:30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match := base
			match.CreatedAt = tt.createdAt
			view := matchView(match)
			if view.PlayedAtLabel != tt.want {
				t.Errorf("PlayedAtLabel = %q, want %q", view.PlayedAtLabel, tt.want)
			}
			if view.Loser != "Bob" || view.ScoreLine != "21-15" {
				t.Errorf("view = %+v", view)
			}
		})
	}
}
