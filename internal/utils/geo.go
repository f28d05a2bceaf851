package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/ridelink/dispatch/internal/pkg/models"
)

// EncodeLocation converts a coordinate to a geohash string
func EncodeLocation(coord models.Coordinate, precision uint) string {
	return geohash.EncodeWithPrecision(coord.Latitude, coord.Longitude, precision)
}

// DecodeGeohash converts a geohash string back to a coordinate
func DecodeGeohash(hash string) models.Coordinate {
	lat, lng := geohash.Decode(hash)
	return models.Coordinate{Latitude: lat, Longitude: lng}
}

// CalculateDistance calculates the great-circle distance between two points
// in kilometers using the Haversine formula. Callers must not assume
// road-network distance.
func CalculateDistance(a, b models.Coordinate) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadius * c
}

// IsValidCoordinate reports whether latitude and longitude are within range
func IsValidCoordinate(coord models.Coordinate) bool {
	return coord.Latitude >= -90 && coord.Latitude <= 90 &&
		coord.Longitude >= -180 && coord.Longitude <= 180
}
