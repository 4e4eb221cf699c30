package mockcatalog

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// MockToken is the access token handed out by the token endpoint
const MockToken = "mock-access-token"

// Server holds the fixture catalog
type Server struct {
	fixtures     Fixtures
	requireToken bool
}

// NewServer creates a mock catalog over fixtures
func NewServer(fixtures Fixtures) *Server {
	return &Server{fixtures: fixtures}
}

// RequireToken makes catalog routes reject requests without "Bearer MockToken"
func (s *Server) RequireToken(require bool) {
	s.requireToken = require
}

// Router builds the chi router. Catalog routes live under /v1 like the real
// API; the token endpoint is /api/token.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":  "ok",
			"service": "mock-catalog",
		})
	})

	r.Post("/api/token", s.handleToken)

	r.Route("/v1", func(r chi.Router) {
		r.Use(s.authorize)
		r.Get("/search", s.handleSearch)
		r.Get("/artists/{id}/top-tracks", s.handleTopTracks)
	})

	return r
}

func (s *Server) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.requireToken && r.Header.Get("Authorization") != "Bearer "+MockToken {
			writeError(w, http.StatusUnauthorized, "No token provided")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	if _, _, ok := r.BasicAuth(); !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":             "invalid_client",
			"error_description": "Invalid client",
		})
		return
	}
	if err := r.ParseForm(); err != nil || r.PostForm.Get("grant_type") != "client_credentials" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":             "unsupported_grant_type",
			"error_description": "grant_type parameter is missing",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": MockToken,
		"token_type":   "Bearer",
		"expires_in":   3600,
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeError(w, http.StatusBadRequest, "No search query")
		return
	}
	if t := r.URL.Query().Get("type"); t != "artist" {
		writeError(w, http.StatusBadRequest, "Unsupported type: "+t)
		return
	}

	limit := 20
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 50 {
		limit = v
	}

	matches := s.fixtures.SearchArtists(q)
	total := len(matches)
	if len(matches) > limit {
		matches = matches[:limit]
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"artists": map[string]any{
			"items":  matches,
			"limit":  limit,
			"offset": 0,
			"total":  total,
		},
	})
}

func (s *Server) handleTopTracks(w http.ResponseWriter, r *http.Request) {
	country := r.URL.Query().Get("country")
	if country == "" {
		writeError(w, http.StatusBadRequest, "Missing country parameter")
		return
	}

	id := chi.URLParam(r, "id")
	tracks, ok := s.fixtures.TopTracks[id]
	if !ok {
		writeError(w, http.StatusNotFound, "non existing id")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"tracks": tracks,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the catalog's error object
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]any{
			"status":  status,
			"message": message,
		},
	})
}
