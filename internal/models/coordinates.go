package models

// Coordinates represents a geographical point defined by its longitude and latitude.
type Coordinates struct {
	Longitude float64 // Longitude of the geographical point, normalized into [-180, 180).
	Latitude  float64 // Latitude of the geographical point, within [-90, 90].
}
