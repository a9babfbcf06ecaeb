package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversine(t *testing.T) {
	// Zócalo to the Angel of Independence, Mexico City: about 3.7 km.
	d := Haversine(19.4326, -99.1332, 19.4270, -99.1677)
	assert.InDelta(t, 3.7, d, 0.5)

	assert.Zero(t, Haversine(19.4326, -99.1332, 19.4326, -99.1332))

	// Symmetry.
	assert.InDelta(t,
		Haversine(40.7128, -74.0060, 34.0522, -118.2437),
		Haversine(34.0522, -118.2437, 40.7128, -74.0060),
		1e-9)
}

func TestValidCoordinates(t *testing.T) {
	tests := []struct {
		name  string
		lat   float64
		lng   float64
		valid bool
	}{
		{"mexico_city", 19.4326, -99.1332, true},
		{"poles", 90, 180, true},
		{"lat_too_high", 90.1, 0, false},
		{"lat_too_low", -91, 0, false},
		{"lng_too_high", 0, 180.5, false},
		{"lng_too_low", 0, -181, false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.valid, ValidCoordinates(testCase.lat, testCase.lng))
		})
	}
}

func TestBoundingBoxContainsRadius(t *testing.T) {
	minLat, maxLat, minLng, maxLng := BoundingBox(19.4326, -99.1332, 10)

	assert.Less(t, minLat, 19.4326)
	assert.Greater(t, maxLat, 19.4326)
	assert.Less(t, minLng, -99.1332)
	assert.Greater(t, maxLng, -99.1332)

	// Corners of the box must be at least the radius away.
	assert.GreaterOrEqual(t, Haversine(19.4326, -99.1332, maxLat, -99.1332), 10.0)
	assert.GreaterOrEqual(t, Haversine(19.4326, -99.1332, 19.4326, maxLng), 10.0)
}

func TestRoundToGrid(t *testing.T) {
	assert.Equal(t, 19.433, RoundToGrid(19.43261))
	assert.Equal(t, 19.433, RoundToGrid(19.43289))
	assert.Equal(t, -99.133, RoundToGrid(-99.13321))
	// Two origins ~30m apart land on the same cell.
	assert.Equal(t, RoundToGrid(19.43310), RoundToGrid(19.43335))
}
