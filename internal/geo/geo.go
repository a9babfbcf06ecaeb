package geo

import "math"

const earthRadiusKM = 6371.0

// Haversine returns the great-circle distance between two points in km.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKM * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ValidCoordinates reports whether lat/lng fall in [-90,90] and [-180,180].
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// BoundingBox returns a lat/lng box that fully contains the circle of
// radiusKM around the origin. Used as a cheap SQL prefilter; candidates are
// refined with Haversine afterwards.
func BoundingBox(lat, lng, radiusKM float64) (minLat, maxLat, minLng, maxLng float64) {
	latDelta := radiusKM / 111.0
	lngDelta := latDelta
	if cos := math.Cos(toRadians(lat)); cos > 0.01 {
		lngDelta = radiusKM / (111.0 * cos)
	}
	return lat - latDelta, lat + latDelta, lng - lngDelta, lng + lngDelta
}

// RoundToGrid snaps a coordinate to 3 decimal degrees (roughly a 100 m
// grid), so nearby origins share a cache fingerprint.
func RoundToGrid(v float64) float64 {
	return math.Round(v*1000) / 1000
}
