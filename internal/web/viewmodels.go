package web

import (
	"badminton-app/internal/model"
	"badminton-app/internal/scoring"
)

type BaseView struct {
	Title        string
	FlashSuccess string
	FlashError   string
}

type HomeView struct {
	BaseView
	Form      MatchFormView
	Standings StandingsTableView
	Recent    []MatchView
}

type StandingsView struct {
	BaseView
	Standings StandingsTableView
}

type StandingsTableView struct {
	Rows []StandingRowView
}

type StandingRowView struct {
	Standing scoring.Standing
	Medal    string
}

type MatchFormView struct {
	Players   []string
	Player1   string
	Player2   string
	SetRows   []SetRowView
	HasErrors bool
}

type SetRowView struct {
	Number int
	A      string
	B      string
}

type MatchView struct {
	Match         model.Match
	ScoreLine     string
	PlayedAtLabel string
	Loser         string
}

type HistoryView struct {
	BaseView
	Players    []string
	Player     string
	Opponent   string
	Rivalry    *scoring.Rivalry
	Matches    []MatchView
	Total      int
	Page       int
	TotalPages int
	Pages      []int
	HasPrev    bool
	HasNext    bool
	PrevPage   int
	NextPage   int
}

func matchView(match model.Match) MatchView {
	view := MatchView{
		Match:     match,
		ScoreLine: match.ScoreLine(),
		Loser:     match.Loser(),
	}
	// rows imported without a timestamp get no label
	if !match.CreatedAt.IsZero() {
		view.PlayedAtLabel = match.CreatedAt.Format("02 Jan 2006 15:04")
	}
	return view
}

func matchViews(matches []model.Match) []MatchView {
	views := make([]MatchView, 0, len(matches))
	for _, match := range matches {
		views = append(views, matchView(match))
	}
	return views
}

func standingsTable(standings []scoring.Standing) StandingsTableView {
	rows := make([]StandingRowView, 0, len(standings))
	for _, standing := range standings {
		rows = append(rows, StandingRowView{Standing: standing, Medal: standing.Medal()})
	}
	return StandingsTableView{Rows: rows}
}
