package geo_test

import (
	"math"
	"testing"

	"github.com/UnknownOlympus/brewscout/internal/geo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLongitude(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "zero", in: 0, want: 0},
		{name: "inside range", in: -74.006, want: -74.006},
		{name: "lower bound kept", in: -180, want: -180},
		{name: "upper bound wraps", in: 180, want: -180},
		{name: "just below -180", in: -181, want: 179},
		{name: "full turn", in: 360, want: 0},
		{name: "one and a half turns", in: 540, want: -180},
		{name: "negative turns", in: -725, want: -5},
		{name: "large positive", in: 3610, want: 10},
		{name: "negative one and a half turns", in: -540, want: -180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, geo.NormalizeLongitude(tt.in), 1e-9)
		})
	}
}

func TestNormalizeLongitude_RangeAndCongruence(t *testing.T) {
	t.Parallel()

	for lon := -1000.0; lon <= 1000.0; lon += 0.75 {
		got := geo.NormalizeLongitude(lon)

		require.GreaterOrEqual(t, got, geo.MinLongitude, "lon %v", lon)
		require.Less(t, got, geo.MaxLongitude, "lon %v", lon)

		turns := (lon - got) / 360
		require.InDelta(t, math.Round(turns), turns, 1e-9, "lon %v is not congruent to %v", lon, got)
	}
}

func TestNormalizeLongitude_InRangeIsExact(t *testing.T) {
	t.Parallel()

	for _, lon := range []float64{-179.9999, -74.006, -0.1, 0.1, 30.52, 179.9999} {
		assert.Equal(t, lon, geo.NormalizeLongitude(lon))
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("normalizes before bounds check", func(t *testing.T) {
		t.Parallel()
		coords, err := geo.Validate(-181, 0)

		require.NoError(t, err)
		assert.InDelta(t, 179.0, coords.Longitude, 1e-9)
		assert.InDelta(t, 0.0, coords.Latitude, 1e-9)
	})

	t.Run("latitude above range", func(t *testing.T) {
		t.Parallel()
		_, err := geo.Validate(0, 91)

		require.ErrorIs(t, err, geo.ErrInvalidCoordinates)
	})

	t.Run("latitude below range", func(t *testing.T) {
		t.Parallel()
		_, err := geo.Validate(0, -90.0001)

		require.ErrorIs(t, err, geo.ErrInvalidCoordinates)
	})

	t.Run("latitude boundaries are inclusive", func(t *testing.T) {
		t.Parallel()
		north, err := geo.Validate(0, 90)
		require.NoError(t, err)
		assert.InDelta(t, 90.0, north.Latitude, 1e-9)

		south, err := geo.Validate(0, -90)
		require.NoError(t, err)
		assert.InDelta(t, -90.0, south.Latitude, 1e-9)
	})

	t.Run("longitude 180 wraps to -180", func(t *testing.T) {
		t.Parallel()
		coords, err := geo.Validate(180, 0)

		require.NoError(t, err)
		assert.InDelta(t, -180.0, coords.Longitude, 1e-9)
	})

	t.Run("longitude -180 unchanged", func(t *testing.T) {
		t.Parallel()
		coords, err := geo.Validate(-180, 0)

		require.NoError(t, err)
		assert.InDelta(t, -180.0, coords.Longitude, 1e-9)
	})

	t.Run("new york", func(t *testing.T) {
		t.Parallel()
		coords, err := geo.Validate(-74.0060, 40.7128)

		require.NoError(t, err)
		assert.InDelta(t, -74.0060, coords.Longitude, 1e-9)
		assert.InDelta(t, 40.7128, coords.Latitude, 1e-9)
	})

	t.Run("non-finite input", func(t *testing.T) {
		t.Parallel()
		for _, pair := range [][2]float64{
			{math.NaN(), 0},
			{0, math.NaN()},
			{math.Inf(1), 0},
			{0, math.Inf(-1)},
		} {
			_, err := geo.Validate(pair[0], pair[1])
			require.ErrorIs(t, err, geo.ErrInvalidCoordinates, "input %v", pair)
		}
	})
}
