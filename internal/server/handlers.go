package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/yeonwoo/jobscout/internal/stats"
	"github.com/yeonwoo/jobscout/internal/types"
)

const (
	defaultListLimit = 10
	maxListLimit     = 200
	statsSampleLimit = 1000
)

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRecentPostings returns the most recently scraped postings.
func (s *Server) handleRecentPostings(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, defaultListLimit)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	postings := s.db.RecentPostings(r.Context(), limit)
	if postings == nil {
		postings = []types.Posting{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"postings": postings,
		"count":    len(postings),
	})
}

// handleRecommendedPostings returns scored postings that passed the
// recommendation cutoff, highest score first.
func (s *Server) handleRecommendedPostings(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, defaultListLimit)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	recs := s.db.RecommendedPostings(r.Context(), limit)
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"recommendations": recs,
		"count":           len(recs),
	})
}

// handleStats returns aggregate statistics over recently stored postings.
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	postings := s.db.RecentPostings(r.Context(), statsSampleLimit)
	s.jsonResponse(w, http.StatusOK, stats.Build(postings))
}

// parseLimit reads the optional "limit" query parameter.
func parseLimit(r *http.Request, defaultValue int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return defaultValue, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, &queryError{param: "limit", value: raw}
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return limit, nil
}

type queryError struct {
	param string
	value string
}

func (e *queryError) Error() string {
	return "invalid query parameter " + e.param + ": " + e.value
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
