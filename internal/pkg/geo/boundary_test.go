package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridelink/dispatch/internal/pkg/models"
	"github.com/ridelink/dispatch/internal/utils"
)

func testGeoConfig() models.GeoConfig {
	return models.GeoConfig{
		CenterLatitude:  -6.2088,
		CenterLongitude: 106.8456,
		CoreMinLat:      -6.38,
		CoreMaxLat:      -6.08,
		CoreMinLng:      106.68,
		CoreMaxLng:      107.00,
		MaxRadiusKm:     20.0,
	}
}

func TestClassify(t *testing.T) {
	b := NewBoundary(testGeoConfig())

	tests := []struct {
		name  string
		coord models.Coordinate
		want  models.ServiceZone
	}{
		{
			name:  "city center is core",
			coord: models.Coordinate{Latitude: -6.2088, Longitude: 106.8456},
			want:  models.ZoneCore,
		},
		{
			name:  "core rectangle corner is core",
			coord: models.Coordinate{Latitude: -6.38, Longitude: 107.00},
			want:  models.ZoneCore,
		},
		{
			name:  "outside rectangle but within max radius is extended",
			coord: models.Coordinate{Latitude: -6.2088, Longitude: 107.01},
			want:  models.ZoneExtended,
		},
		{
			name:  "beyond max radius is out of service",
			coord: models.Coordinate{Latitude: -6.2088, Longitude: 107.25},
			want:  models.ZoneOutOfService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Classify(tt.coord))
		})
	}
}

func TestValidateTrip_StricterZoneWins(t *testing.T) {
	b := NewBoundary(testGeoConfig())

	corePoint := models.Coordinate{Latitude: -6.2, Longitude: 106.85}
	extendedPoint := models.Coordinate{Latitude: -6.2088, Longitude: 107.01}

	zone, err := b.ValidateTrip(corePoint, corePoint)
	require.NoError(t, err)
	assert.Equal(t, models.ZoneCore, zone)

	zone, err = b.ValidateTrip(corePoint, extendedPoint)
	require.NoError(t, err)
	assert.Equal(t, models.ZoneExtended, zone)

	zone, err = b.ValidateTrip(extendedPoint, corePoint)
	require.NoError(t, err)
	assert.Equal(t, models.ZoneExtended, zone)
}

func TestValidateTrip_OutOfService(t *testing.T) {
	cfg := testGeoConfig()
	b := NewBoundary(cfg)

	corePoint := models.Coordinate{Latitude: -6.2, Longitude: 106.85}
	farPoint := models.Coordinate{Latitude: -6.2088, Longitude: 107.25}

	_, err := b.ValidateTrip(corePoint, farPoint)
	require.Error(t, err)

	var oosErr *OutOfServiceError
	require.ErrorAs(t, err, &oosErr)

	// The error carries the computed distance of the offending endpoint
	expected := utils.CalculateDistance(b.Center(), farPoint)
	assert.InDelta(t, expected, oosErr.DistanceKm, 0.001)
	assert.Greater(t, oosErr.DistanceKm, cfg.MaxRadiusKm)
}

func TestClassify_ExtendedRingAroundCore(t *testing.T) {
	b := NewBoundary(testGeoConfig())

	// Points just outside each edge of the core rectangle but well within
	// the 20 km service radius must classify as extended.
	ring := []models.Coordinate{
		{Latitude: -6.07, Longitude: 106.8456},
		{Latitude: -6.2088, Longitude: 106.67},
		{Latitude: -6.2088, Longitude: 107.005},
	}
	for _, coord := range ring {
		assert.Equal(t, models.ZoneExtended, b.Classify(coord), "coord %+v", coord)
	}
}
