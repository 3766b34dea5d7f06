// Package geo validates and normalizes WGS84 coordinates.
package geo

import (
	"errors"
	"math"

	"github.com/UnknownOlympus/brewscout/internal/models"
)

// Bounds of the WGS84 lon/lat rectangle. The rectangle is closed.
const (
	MinLongitude = -180.0
	MaxLongitude = 180.0
	MinLatitude  = -90.0
	MaxLatitude  = 90.0

	fullTurn = 360.0
)

// ErrInvalidCoordinates is returned when a point cannot be placed inside the WGS84 bounds.
var ErrInvalidCoordinates = errors.New("coordinates not valid")

// NormalizeLongitude wraps lon into the half-open range [-180, 180).
// The result is congruent to lon modulo 360 and values already in range are
// returned unchanged. Non-finite input yields NaN.
func NormalizeLongitude(lon float64) float64 {
	// math.Mod keeps the sign of lon, so the remainder lies in (-360, 360).
	lon = math.Mod(lon, fullTurn)
	switch {
	case lon >= MaxLongitude:
		lon -= fullTurn
	case lon < MinLongitude:
		lon += fullTurn
	}

	return lon
}

// Validate normalizes the longitude and checks that the resulting point lies
// within or on the boundary of the WGS84 rectangle. Latitude is never wrapped.
// It returns ErrInvalidCoordinates for out-of-range latitude or non-finite input.
func Validate(lon, lat float64) (models.Coordinates, error) {
	if !isFinite(lon) || !isFinite(lat) {
		return models.Coordinates{}, ErrInvalidCoordinates
	}

	lon = NormalizeLongitude(lon)
	if !intersects(lon, lat) {
		return models.Coordinates{}, ErrInvalidCoordinates
	}

	return models.Coordinates{Longitude: lon, Latitude: lat}, nil
}

func intersects(lon, lat float64) bool {
	return lon >= MinLongitude && lon <= MaxLongitude &&
		lat >= MinLatitude && lat <= MaxLatitude
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
