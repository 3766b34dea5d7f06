package places

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/UnknownOlympus/brewscout/internal/models"
	"googlemaps.github.io/maps"
)

// keywordSeparator joins synonymous keywords into the single keyword parameter
// accepted by the Nearby Search API.
const keywordSeparator = " OR "

// GoogleProvider is a struct that holds the client for Google Maps Places API
// and a logger for logging purposes.
type GoogleProvider struct {
	client GoogleAPIClient // client is the Google Maps API client
	log    *slog.Logger    // log is the logger for logging operations
}

// GoogleAPIClient is the subset of *maps.Client used by GoogleProvider.
type GoogleAPIClient interface {
	NearbySearch(ctx context.Context, r *maps.NearbySearchRequest) (maps.PlacesSearchResponse, error)
}

// ErrNoKeywords is returned when a query carries no search terms.
// Distance ranking is rejected by the API without a keyword.
var ErrNoKeywords = errors.New("nearby query has no keywords")

// NewGoogleProvider creates a GoogleProvider around an already configured client.
func NewGoogleProvider(client GoogleAPIClient, log *slog.Logger) *GoogleProvider {
	return &GoogleProvider{client: client, log: log}
}

// Nearby runs a single Nearby Search request for the query and maps every returned
// result to a models.Place. A response without results is not an error.
func (gp *GoogleProvider) Nearby(ctx context.Context, query models.NearbyQuery) ([]models.Place, error) {
	req, err := nearbyRequest(query)
	if err != nil {
		return nil, err
	}

	gp.log.DebugContext(ctx, "Searching nearby places using Google Maps",
		"lat", query.Location.Latitude,
		"lng", query.Location.Longitude,
		"keyword", req.Keyword,
		"language", req.Language,
		"open_now", req.OpenNow,
	)

	resp, err := gp.client.NearbySearch(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to search nearby places: %w", err)
	}

	result := make([]models.Place, 0, len(resp.Results))
	for _, r := range resp.Results {
		result = append(result, models.Place{
			Name: r.Name,
			Location: models.Location{
				Lat: r.Geometry.Location.Lat,
				Lng: r.Geometry.Location.Lng,
			},
		})
	}

	gp.log.DebugContext(ctx, "Google Maps returned nearby places", "count", len(result))

	return result, nil
}

func nearbyRequest(query models.NearbyQuery) (*maps.NearbySearchRequest, error) {
	keywords := make([]string, 0, len(query.Keywords))
	for _, k := range query.Keywords {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}
	if len(keywords) == 0 {
		return nil, ErrNoKeywords
	}

	req := &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: query.Location.Latitude, Lng: query.Location.Longitude},
		Keyword:  strings.Join(keywords, keywordSeparator),
		Language: query.Language,
		OpenNow:  query.OpenNow,
	}
	if query.RankBy == models.RankByDistance {
		req.RankBy = maps.RankByDistance
	}

	return req, nil
}
