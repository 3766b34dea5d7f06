// Package server exposes the nearby-search HTTP API.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/UnknownOlympus/brewscout/internal/metrics"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// Search routes. The root path keeps compatibility with existing clients.
const (
	RootPath   = "/"
	SearchPath = "/api/v1/cafes/nearby"
)

// NewRouter builds the API router with request id, real ip, panic recovery,
// timeout, metrics and access log middleware.
func NewRouter(h *Handlers, appMetrics *metrics.Metrics, log *slog.Logger, timeout time.Duration) http.Handler {
	router := chi.NewRouter()

	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(chimw.Recoverer)
	if timeout > 0 {
		router.Use(chimw.Timeout(timeout))
	}
	router.Use(Metrics(appMetrics))
	router.Use(Logger(log))

	router.Post(RootPath, h.SearchNearby)
	router.Post(SearchPath, h.SearchNearby)

	return router
}
