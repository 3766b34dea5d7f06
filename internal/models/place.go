package models

// RankBy is the ordering strategy requested from the places provider.
type RankBy string

// RankByDistance orders results nearest first. It excludes an explicit search radius.
const RankByDistance RankBy = "distance"

// NearbyQuery describes a single nearby-search request. It is built once per
// inbound request and passed by value.
type NearbyQuery struct {
	Location Coordinates // Validated search origin.
	Keywords []string    // Synonymous search terms, e.g. "cafe", "coffee".
	Language string      // Language tag for result names.
	OpenNow  bool        // Restrict results to places currently open.
	RankBy   RankBy      // Ranking mode.
}

// Location is a latitude/longitude pair as returned to API clients.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is a single nearby-search hit owned by the external provider.
type Place struct {
	Name     string   `json:"name"`
	Location Location `json:"location"`
}
