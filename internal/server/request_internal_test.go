package server

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloatField(t *testing.T) {
	t.Parallel()

	valid := []struct {
		raw  string
		want float64
	}{
		{raw: `40.7128`, want: 40.7128},
		{raw: `-74.006`, want: -74.006},
		{raw: `"40.7128"`, want: 40.7128},
		{raw: `" -74.0060 "`, want: -74.006},
		{raw: `"1e2"`, want: 100},
		{raw: `0`, want: 0},
	}
	for _, tt := range valid {
		got, err := parseFloatField(json.RawMessage(tt.raw))
		require.NoError(t, err, tt.raw)
		assert.InDelta(t, tt.want, got, 1e-9, tt.raw)
	}

	t.Run("non-finite strings parse", func(t *testing.T) {
		t.Parallel()
		got, err := parseFloatField(json.RawMessage(`"nan"`))
		require.NoError(t, err)
		assert.True(t, math.IsNaN(got))

		got, err = parseFloatField(json.RawMessage(`"-inf"`))
		require.NoError(t, err)
		assert.True(t, math.IsInf(got, -1))
	})

	t.Run("overflow parses to infinity", func(t *testing.T) {
		t.Parallel()
		got, err := parseFloatField(json.RawMessage(`1e400`))
		require.NoError(t, err)
		assert.True(t, math.IsInf(got, 1))
	})

	t.Run("missing and null", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []string{``, `null`, ` null `} {
			_, err := parseFloatField(json.RawMessage(raw))
			require.ErrorIs(t, err, errMissingCoordinate, raw)
		}
	})

	t.Run("not a float", func(t *testing.T) {
		t.Parallel()
		for _, raw := range []string{`"abc"`, `""`, `true`, `false`, `[1]`, `{"v":1}`, `"12abc"`} {
			_, err := parseFloatField(json.RawMessage(raw))
			require.ErrorIs(t, err, errNotAFloat, raw)
		}
	})
}

func TestSearchRequestCoordinates(t *testing.T) {
	t.Parallel()

	var req searchRequest
	require.NoError(t, json.Unmarshal([]byte(`{"lat": "40.7128", "lng": -74.0060}`), &req))

	lat, lng, ok := req.coordinates()

	require.True(t, ok)
	assert.InDelta(t, 40.7128, lat, 1e-9)
	assert.InDelta(t, -74.006, lng, 1e-9)

	var missing searchRequest
	require.NoError(t, json.Unmarshal([]byte(`{"lat": 1}`), &missing))

	_, _, ok = missing.coordinates()
	assert.False(t, ok)
}
