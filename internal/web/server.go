package web

import (
	"net/http"

	"badminton-app/internal/tournament"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

type Server struct {
	service   *tournament.Service
	templates *Templates
	logger    *logrus.Logger
}

func NewServer(service *tournament.Service, templates *Templates, logger *logrus.Logger) *Server {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Server{service: service, templates: templates, logger: logger}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(s.logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/", s.handleHome)
	r.Get("/standings", s.handleStandings)
	r.Get("/history", s.handleHistory)
	r.Post("/matches", s.handleMatchCreate)
	r.Post("/matches/reset", s.handleMatchesReset)
	r.Post("/matches/{matchID}/delete", s.handleMatchDelete)

	r.Route("/api", func(r chi.Router) {
		r.Get("/standings", s.handleAPIStandings)
		r.Get("/matches", s.handleAPIMatches)
		r.Post("/matches", s.handleAPIMatchCreate)
		r.Delete("/matches", s.handleAPIMatchesReset)
		r.Delete("/matches/{matchID}", s.handleAPIMatchDelete)
	})

	return r
}
