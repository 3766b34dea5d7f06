package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/brewscout/internal/geo"
	"github.com/UnknownOlympus/brewscout/internal/metrics"
	"github.com/UnknownOlympus/brewscout/internal/models"
)

// Error messages returned to API clients.
const (
	msgNotAFloat        = "lat or lng is either None or not a float"
	msgInvalidCoords    = "Coordinates not valid"
	msgInvalidJSON      = "invalid json body"
	msgSearchFailed     = "failed to search nearby places"
	maxRequestBodyBytes = 1 << 16
)

// Finder looks up places near a coordinate pair.
type Finder interface {
	FindNearby(ctx context.Context, lng, lat float64) ([]models.Place, error)
}

// Handlers serves the nearby-search endpoint.
type Handlers struct {
	finder  Finder
	metrics *metrics.Metrics
	log     *slog.Logger
}

// NewHandlers creates the HTTP handlers around a Finder.
func NewHandlers(finder Finder, metrics *metrics.Metrics, log *slog.Logger) *Handlers {
	return &Handlers{finder: finder, metrics: metrics, log: log}
}

// SearchNearby decodes {"lat": ..., "lng": ...}, runs the search and writes
// {"results": [...]} or {"error": "..."}.
func (h *Handlers) SearchNearby(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req searchRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err := dec.Decode(&req); err != nil {
		h.rejectInput(ctx, w, msgInvalidJSON, err)
		return
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		h.rejectInput(ctx, w, msgInvalidJSON, err)
		return
	}

	lat, lng, ok := req.coordinates()
	if !ok {
		h.rejectInput(ctx, w, msgNotAFloat, nil)
		return
	}

	found, err := h.finder.FindNearby(ctx, lng, lat)
	switch {
	case errors.Is(err, geo.ErrInvalidCoordinates):
		writeJSON(ctx, h.log, w, http.StatusBadRequest, errorResponse{Error: msgInvalidCoords})
	case err != nil:
		h.log.ErrorContext(ctx, "Nearby search failed", "error", err)
		writeJSON(ctx, h.log, w, http.StatusInternalServerError, errorResponse{Error: msgSearchFailed})
	default:
		writeJSON(ctx, h.log, w, http.StatusOK, searchResponse{Results: found})
	}
}

func (h *Handlers) rejectInput(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	h.metrics.SearchRequests.WithLabelValues(metrics.StatusInvalidInput).Inc()
	h.log.DebugContext(ctx, "Rejected search request", "reason", msg, "error", err)
	writeJSON(ctx, h.log, w, http.StatusBadRequest, errorResponse{Error: msg})
}

func writeJSON(ctx context.Context, log *slog.Logger, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ErrorContext(ctx, "failed to write reply", "error", err)
	}
}
