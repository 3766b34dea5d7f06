// Package places adapts external nearby-search APIs to the service's place model.
package places

import (
	"context"

	"github.com/UnknownOlympus/brewscout/internal/models"
)

// Provider is an interface that defines a method for searching places near a coordinate.
// Nearby issues exactly one outbound request and returns the places in provider order.
type Provider interface {
	Nearby(ctx context.Context, query models.NearbyQuery) ([]models.Place, error)
}
