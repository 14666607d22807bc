// Package server exposes the lookup operation over HTTP for shells that
// invoke wordglance as a local service.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"wordglance/internal/domain"
	"wordglance/internal/lookup"
	"wordglance/internal/metrics"
)

type Server struct {
	lookup *lookup.Service
	logger *zap.Logger
}

func New(svc *lookup.Service, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{lookup: svc, logger: logger}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/api/lookup", s.handleLookupGet)
	r.Post("/api/lookup", s.handleLookupPost)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}

func (s *Server) handleLookupGet(w http.ResponseWriter, r *http.Request) {
	s.serveLookup(w, r, r.URL.Query().Get("q"))
}

func (s *Server) handleLookupPost(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query string `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.serveLookup(w, r, req.Query)
}

func (s *Server) serveLookup(w http.ResponseWriter, r *http.Request, query string) {
	result, err := s.lookup.Lookup(r.Context(), query)
	if err != nil {
		// only empty queries fail; source trouble shows as absent sections
		if errors.Is(err, domain.ErrEmptyQuery) {
			s.writeError(w, http.StatusBadRequest, "empty query")
			return
		}
		s.logger.Error("lookup failed", zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}

	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("write response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
