package places

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"googlemaps.github.io/maps"
)

// ProviderName labels provider metrics.
const ProviderName = "google"

// DefaultTimeout bounds a single outbound search when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// ErrMissingAPIKey is returned when the provider is configured without credentials.
var ErrMissingAPIKey = errors.New("API key is required for Google provider")

// ProviderConfig holds configuration for creating the places provider.
type ProviderConfig struct {
	APIKey  string        // API key for the Places API
	Timeout time.Duration // Timeout of a single outbound HTTP round trip
	BaseURL string        // Optional override of the Maps API base URL
	Logger  *slog.Logger  // Logger for the provider
}

// NewProvider creates the Google Maps places provider from the configuration.
// The underlying client is created once and is safe for concurrent use.
func NewProvider(config ProviderConfig) (*GoogleProvider, error) {
	if config.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	clientOpts := []maps.ClientOption{
		maps.WithAPIKey(config.APIKey),
		maps.WithHTTPClient(&http.Client{Timeout: timeout}),
	}
	if config.BaseURL != "" {
		clientOpts = append(clientOpts, maps.WithBaseURL(config.BaseURL))
	}

	client, err := maps.NewClient(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return NewGoogleProvider(client, config.Logger), nil
}
