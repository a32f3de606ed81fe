// apps/go-server/internal/httpserver/server.go
//
// HTTP server wiring for the dice scoring service.
// Responsibilities:
//   - Router + middleware (request IDs, real IP, panic recovery, timeouts,
//     access log, JSON, CORS).
//   - Public endpoints: "/", "/health".
//   - Scoring endpoints: GET /categories, POST /score, POST /score/{category}.
//
// Notes:
//   - The service is stateless. Every request carries its own dice and score
//     sheet; nothing is stored between calls.
//   - CORS is origin-aware and credentials-enabled for the browser client.

package httpserver

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

const defaultTimeout = 10 * time.Second

// Server bundles the router and its settings.
type Server struct {
	r       *chi.Mux
	timeout time.Duration
}

// Option customises a Server.
type Option func(*Server)

// WithTimeout bounds handler time. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts ...Option) *Server {
	s := &Server{r: chi.NewRouter(), timeout: defaultTimeout}
	for _, o := range opts {
		o(s)
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)          // add X-Request-ID
	s.r.Use(chimw.RealIP)             // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                // one structured line per request
	s.r.Use(chimw.Recoverer)          // recover from panics
	s.r.Use(chimw.Timeout(s.timeout)) // bound handler time
	s.r.Use(jsonContentType)          // default JSON responses
	s.r.Use(corsFromEnv)              // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"dice-scoring","endpoints":["/health","GET /categories","POST /score","POST /score/{category}"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.mountScoring(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// writeJSON encodes v with the given status; encode failures are only logged
// since the header is already sent.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

// writeError writes {"error": code}.
func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
