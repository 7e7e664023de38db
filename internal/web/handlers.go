package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"badminton-app/internal/store"
	"badminton-app/internal/tournament"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const recentMatchesOnHome = 5

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	form := MatchFormView{SetRows: emptySetRows()}
	view, err := s.homeView(form)
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	view.FlashSuccess = flashMessage(r.URL.Query().Get("notice"))
	if err := s.templates.Render(w, "home.html", view); err != nil {
		s.serverError(w, r, err)
	}
}

func (s *Server) homeView(form MatchFormView) (HomeView, error) {
	overview, err := s.service.Overview()
	if err != nil {
		return HomeView{}, err
	}
	recent := overview.Matches
	if len(recent) > recentMatchesOnHome {
		recent = recent[:recentMatchesOnHome]
	}
	form.Players = overview.Players
	return HomeView{
		BaseView:  BaseView{Title: "Badminton"},
		Form:      form,
		Standings: standingsTable(overview.Standings),
		Recent:    matchViews(recent),
	}, nil
}

func (s *Server) handleMatchCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	in, rows := matchInputFromForm(r)
	if _, err := s.service.RegisterMatch(in); err != nil {
		if !tournament.IsValidationError(err) {
			s.serverError(w, r, err)
			return
		}
		view, viewErr := s.homeView(MatchFormView{
			Player1:   in.Player1,
			Player2:   in.Player2,
			SetRows:   rows,
			HasErrors: true,
		})
		if viewErr != nil {
			s.serverError(w, r, viewErr)
			return
		}
		view.FlashError = validationMessage(err)
		if err := s.templates.RenderStatus(w, http.StatusUnprocessableEntity, "home.html", view); err != nil {
			s.serverError(w, r, err)
		}
		return
	}
	http.Redirect(w, r, "/?notice=match_added", http.StatusSeeOther)
}

func (s *Server) handleStandings(w http.ResponseWriter, r *http.Request) {
	standings, err := s.service.Standings()
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	view := StandingsView{
		BaseView:  BaseView{Title: "Standings"},
		Standings: standingsTable(standings),
	}
	if isHTMX(r) {
		if err := s.templates.RenderPartial(w, "standings_table", view.Standings); err != nil {
			s.serverError(w, r, err)
		}
		return
	}
	if err := s.templates.Render(w, "standings.html", view); err != nil {
		s.serverError(w, r, err)
	}
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	player := strings.TrimSpace(query.Get("player"))
	opponent := strings.TrimSpace(query.Get("opponent"))
	page, _ := strconv.Atoi(query.Get("page"))

	overview, err := s.service.Overview()
	if err != nil {
		s.serverError(w, r, err)
		return
	}

	filtered := overview.Matches[:0:0]
	for _, match := range overview.Matches {
		if player != "" && !match.Involves(player) {
			continue
		}
		if opponent != "" && !match.Involves(opponent) {
			continue
		}
		filtered = append(filtered, match)
	}

	window := paginate(len(filtered), page, historyPageSize)
	view := HistoryView{
		BaseView: BaseView{
			Title:        "History",
			FlashSuccess: flashMessage(query.Get("notice")),
		},
		Players:  overview.Players,
		Player:   player,
		Opponent: opponent,
		Matches:  matchViews(filtered[window.Start:window.End]),
		Total:    len(filtered),
	}
	view.applyPage(window)

	if player != "" && opponent != "" && player != opponent {
		rivalry := overview.Rivalry(player, opponent)
		view.Rivalry = &rivalry
	}

	if isHTMX(r) {
		if err := s.templates.RenderPartial(w, "history_results", view); err != nil {
			s.serverError(w, r, err)
		}
		return
	}
	if err := s.templates.Render(w, "history.html", view); err != nil {
		s.serverError(w, r, err)
	}
}

func (s *Server) handleMatchDelete(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchID")
	if err := s.service.DeleteMatch(matchID); err != nil {
		if errors.Is(err, store.ErrMatchNotFound) {
			http.NotFound(w, r)
			return
		}
		s.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, "/history?notice=match_deleted", http.StatusSeeOther)
}

func (s *Server) handleMatchesReset(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}
	if r.FormValue("confirm") != "yes" {
		http.Error(w, "reset must be confirmed", http.StatusBadRequest)
		return
	}
	if err := s.service.ResetMatches(); err != nil {
		s.serverError(w, r, err)
		return
	}
	http.Redirect(w, r, "/?notice=matches_reset", http.StatusSeeOther)
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.WithError(err).
		WithField("request_id", middleware.GetReqID(r.Context())).
		Error("handler error")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
