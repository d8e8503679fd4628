// Package api wires the BioSpeak HTTP server: routing, middleware and the
// run loop.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/aria-lang/biospeak-go/api/handlers"
	"github.com/aria-lang/biospeak-go/api/middleware"
)

type RouterConfig struct {
	Sessions *handlers.Sessions
	// Metrics serves /metrics when set.
	Metrics        http.Handler
	Logger         *zap.Logger
	RequestTimeout time.Duration
}

// NewRouter returns the server's handler tree.
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(timeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	if cfg.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", cfg.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/sessions", cfg.Sessions.Routes)
	})
	return r
}
