package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/brewscout/internal/models"
)

var (
	errMissingCoordinate = errors.New("coordinate is missing or null")
	errNotAFloat         = errors.New("coordinate is not a float")
)

// searchRequest is the inbound body. Both fields accept a JSON number or a numeric string.
type searchRequest struct {
	Lat json.RawMessage `json:"lat"`
	Lng json.RawMessage `json:"lng"`
}

// coordinates parses both fields. It reports false if either is absent or not float-formattable.
func (r searchRequest) coordinates() (float64, float64, bool) {
	lat, err := parseFloatField(r.Lat)
	if err != nil {
		return 0, 0, false
	}
	lng, err := parseFloatField(r.Lng)
	if err != nil {
		return 0, 0, false
	}

	return lat, lng, true
}

// parseFloatField accepts a JSON number or a string holding a float literal.
// Out-of-range values parse to ±Inf so that coordinate validation can reject them.
func parseFloatField(raw json.RawMessage) (float64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, errMissingCoordinate
	}

	var text string
	switch raw[0] {
	case '"':
		if err := json.Unmarshal(raw, &text); err != nil {
			return 0, errNotAFloat
		}
		text = strings.TrimSpace(text)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		text = string(raw)
	default:
		return 0, errNotAFloat
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, errNotAFloat
	}

	return value, nil
}

// searchResponse is the success body.
type searchResponse struct {
	Results []models.Place `json:"results"`
}

// errorResponse is the failure body.
type errorResponse struct {
	Error string `json:"error"`
}
