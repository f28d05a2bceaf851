// Package geo validates coordinates against the configured service area and
// classifies them into core, extended, or out-of-service zones.
package geo

import (
	"fmt"

	"github.com/ridelink/dispatch/internal/pkg/models"
	"github.com/ridelink/dispatch/internal/utils"
)

// OutOfServiceError reports a coordinate beyond the maximum service radius,
// carrying the offending distance for a precise user-facing message.
type OutOfServiceError struct {
	Coordinate models.Coordinate
	DistanceKm float64
	MaxKm      float64
}

func (e *OutOfServiceError) Error() string {
	return fmt.Sprintf("location is %.1f km from the service center, beyond the %.0f km service area", e.DistanceKm, e.MaxKm)
}

// Boundary classifies coordinates against a rectangular core boundary and a
// radial extended zone around the service center.
type Boundary struct {
	cfg models.GeoConfig
}

// NewBoundary creates a Boundary from configuration
func NewBoundary(cfg models.GeoConfig) *Boundary {
	return &Boundary{cfg: cfg}
}

// Center returns the configured service-area center
func (b *Boundary) Center() models.Coordinate {
	return models.Coordinate{
		Latitude:  b.cfg.CenterLatitude,
		Longitude: b.cfg.CenterLongitude,
	}
}

// Classify returns the service zone of a coordinate: CORE inside the
// rectangular city boundary, EXTENDED within MaxRadiusKm of the center,
// OUT_OF_SERVICE otherwise.
func (b *Boundary) Classify(coord models.Coordinate) models.ServiceZone {
	if b.inCoreRect(coord) {
		return models.ZoneCore
	}
	if utils.CalculateDistance(b.Center(), coord) <= b.cfg.MaxRadiusKm {
		return models.ZoneExtended
	}
	return models.ZoneOutOfService
}

// ValidateTrip classifies both endpoints and returns the zone that applies
// to the trip. The stricter zone wins: a trip with either endpoint in the
// extended zone is an extended trip. Returns an *OutOfServiceError when an
// endpoint exceeds the maximum service radius.
func (b *Boundary) ValidateTrip(pickup, dropoff models.Coordinate) (models.ServiceZone, error) {
	for _, coord := range []models.Coordinate{pickup, dropoff} {
		if b.Classify(coord) == models.ZoneOutOfService {
			return models.ZoneOutOfService, &OutOfServiceError{
				Coordinate: coord,
				DistanceKm: utils.CalculateDistance(b.Center(), coord),
				MaxKm:      b.cfg.MaxRadiusKm,
			}
		}
	}
	return b.Classify(pickup).Stricter(b.Classify(dropoff)), nil
}

func (b *Boundary) inCoreRect(coord models.Coordinate) bool {
	return coord.Latitude >= b.cfg.CoreMinLat && coord.Latitude <= b.cfg.CoreMaxLat &&
		coord.Longitude >= b.cfg.CoreMinLng && coord.Longitude <= b.cfg.CoreMaxLng
}
