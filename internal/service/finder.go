package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/UnknownOlympus/brewscout/internal/geo"
	"github.com/UnknownOlympus/brewscout/internal/metrics"
	"github.com/UnknownOlympus/brewscout/internal/models"
	"github.com/UnknownOlympus/brewscout/internal/places"
)

// ErrProviderFailure wraps any error returned by the places provider.
var ErrProviderFailure = errors.New("places provider failure")

// SearchOptions holds the process-wide parameters applied to every nearby query.
type SearchOptions struct {
	Keywords   []string // Synonymous search terms.
	Language   string   // Language tag passed to the provider.
	OpenNow    bool     // Only return places that are currently open.
	MaxResults int      // Upper bound on returned places; values below 1 mean 1.
}

// FinderService validates coordinates and looks up nearby places through a provider.
// It holds no per-request state and is safe for concurrent use.
type FinderService struct {
	log          *slog.Logger     // Logger for logging service activities
	provider     places.Provider  // Places provider for external nearby searches
	providerName string           // Name of the provider for metrics labeling
	metrics      *metrics.Metrics // Metrics for tracking service performance
	opts         SearchOptions    // Query parameters shared by all requests
}

// NewFinderService creates a new instance of FinderService.
// It takes a logger, a places provider, provider name for metrics, metrics
// for monitoring and the search options. It returns a pointer to the newly
// created FinderService.
func NewFinderService(
	log *slog.Logger,
	provider places.Provider,
	providerName string,
	metrics *metrics.Metrics,
	opts SearchOptions,
) *FinderService {
	if opts.MaxResults < 1 {
		opts.MaxResults = 1
	}
	opts.Keywords = slices.Clone(opts.Keywords)

	return &FinderService{
		log:          log,
		provider:     provider,
		providerName: providerName,
		metrics:      metrics,
		opts:         opts,
	}
}

// FindNearby validates the coordinate pair and returns at most MaxResults places
// nearest to it. Invalid coordinates yield an error wrapping geo.ErrInvalidCoordinates
// and no provider call is made. An empty result is a valid answer, not an error.
func (fs *FinderService) FindNearby(ctx context.Context, lng, lat float64) ([]models.Place, error) {
	coords, err := geo.Validate(lng, lat)
	if err != nil {
		fs.metrics.SearchRequests.WithLabelValues(metrics.StatusInvalidCoordinates).Inc()
		fs.log.DebugContext(ctx, "Rejected coordinates", "lng", lng, "lat", lat)
		return nil, fmt.Errorf("lng=%v lat=%v: %w", lng, lat, err)
	}

	query := models.NearbyQuery{
		Location: coords,
		Keywords: fs.opts.Keywords,
		Language: fs.opts.Language,
		OpenNow:  fs.opts.OpenNow,
		RankBy:   models.RankByDistance,
	}

	startTime := time.Now()
	found, err := fs.provider.Nearby(ctx, query)
	duration := time.Since(startTime).Seconds()
	fs.metrics.RequestSeconds.WithLabelValues(fs.providerName).Observe(duration)

	if err != nil {
		fs.metrics.SearchRequests.WithLabelValues(metrics.StatusProviderError).Inc()
		fs.metrics.APIErrors.Inc()
		fs.log.ErrorContext(ctx, "Failed to search nearby places",
			"lng", coords.Longitude, "lat", coords.Latitude, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrProviderFailure, err)
	}

	if len(found) > fs.opts.MaxResults {
		found = found[:fs.opts.MaxResults]
	}
	if found == nil {
		found = []models.Place{}
	}

	fs.metrics.SearchRequests.WithLabelValues(metrics.StatusSuccess).Inc()
	fs.metrics.PlacesReturned.Observe(float64(len(found)))
	fs.log.DebugContext(ctx, "Nearby search finished", "results", len(found), "seconds", duration)

	return found, nil
}
