package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"badminton-app/internal/store"
	"badminton-app/internal/tournament"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const maxJSONBody = 1 << 20

type errorEnvelope struct {
	Error string `json:"error"`
}

func (s *Server) handleAPIStandings(w http.ResponseWriter, r *http.Request) {
	standings, err := s.service.Standings()
	if err != nil {
		s.apiServerError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, standings)
}

func (s *Server) handleAPIMatches(w http.ResponseWriter, r *http.Request) {
	matches, err := s.service.Matches()
	if err != nil {
		s.apiServerError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, matches)
}

func (s *Server) handleAPIMatchCreate(w http.ResponseWriter, r *http.Request) {
	var in tournament.MatchInput
	if err := readJSON(w, r, &in); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: err.Error()})
		return
	}
	match, err := s.service.RegisterMatch(in)
	if err != nil {
		if tournament.IsValidationError(err) {
			s.writeJSON(w, http.StatusUnprocessableEntity, errorEnvelope{Error: err.Error()})
			return
		}
		s.apiServerError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, match)
}

func (s *Server) handleAPIMatchDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeleteMatch(chi.URLParam(r, "matchID")); err != nil {
		if errors.Is(err, store.ErrMatchNotFound) {
			s.writeJSON(w, http.StatusNotFound, errorEnvelope{Error: "match not found"})
			return
		}
		s.apiServerError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAPIMatchesReset(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "yes" {
		s.writeJSON(w, http.StatusBadRequest, errorEnvelope{Error: "reset must be confirmed with confirm=yes"})
		return
	}
	if err := s.service.ResetMatches(); err != nil {
		s.apiServerError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// readJSON decodes exactly one JSON value with no unknown fields.
func readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		var syntaxError *json.SyntaxError
		var typeError *json.UnmarshalTypeError
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &typeError):
			if typeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", typeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", typeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			return fmt.Errorf("body contains unknown key %s", strings.TrimPrefix(err.Error(), "json: unknown field "))
		case errors.As(err, &tooLarge):
			return fmt.Errorf("body must not be larger than %d bytes", tooLarge.Limit)
		default:
			return err
		}
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}
	return nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		s.logger.WithError(err).Error("encode json response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(js, '\n'))
}

func (s *Server) apiServerError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.WithError(err).
		WithField("request_id", middleware.GetReqID(r.Context())).
		Error("handler error")
	s.writeJSON(w, http.StatusInternalServerError, errorEnvelope{
		Error: "the server encountered a problem and could not process your request",
	})
}
