package fare

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ridelink/dispatch/internal/pkg/models"
)

func testFareConfig() models.FareConfig {
	return models.FareConfig{
		Standard:         models.FareRateTable{BaseFare: 30, Tier1RateKm: 12, Tier2RateKm: 10},
		ParcelSmall:      models.FareRateTable{BaseFare: 20, Tier1RateKm: 8, Tier2RateKm: 6},
		ParcelMedium:     models.FareRateTable{BaseFare: 25, Tier1RateKm: 10, Tier2RateKm: 8},
		ParcelLarge:      models.FareRateTable{BaseFare: 35, Tier1RateKm: 14, Tier2RateKm: 12},
		TierThresholdKm:  25,
		ProtectionFactor: 1.2,
		Currency:         "IDR",
	}
}

func TestEstimate_TieredFormula(t *testing.T) {
	calc := NewCalculator(testFareConfig())

	tests := []struct {
		name       string
		distanceKm float64
		category   models.RideCategory
		want       float64
	}{
		{
			name:       "below tier threshold",
			distanceKm: 10,
			category:   models.CategoryStandard,
			want:       150, // 30 + 10*12
		},
		{
			name:       "above tier threshold",
			distanceKm: 30,
			category:   models.CategoryStandard,
			want:       380, // 30 + 25*12 + 5*10
		},
		{
			name:       "exactly at threshold",
			distanceKm: 25,
			category:   models.CategoryStandard,
			want:       330, // 30 + 25*12
		},
		{
			name:       "small parcel uses its own table",
			distanceKm: 10,
			category:   models.CategoryParcelSmall,
			want:       100, // 20 + 10*8
		},
		{
			name:       "large parcel beyond threshold",
			distanceKm: 30,
			category:   models.CategoryParcelLarge,
			want:       445, // 35 + 25*14 + 5*12
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := calc.Estimate(tt.distanceKm, models.ZoneCore, tt.category)
			assert.Equal(t, tt.want, quote.EstimatedTotal)
		})
	}
}

func TestEstimate_Deterministic(t *testing.T) {
	calc := NewCalculator(testFareConfig())

	first := calc.Estimate(17.3, models.ZoneExtended, models.CategoryStandard)
	second := calc.Estimate(17.3, models.ZoneExtended, models.CategoryStandard)
	assert.Equal(t, first, second)
}

func TestEstimate_ZoneDoesNotChangeFormula(t *testing.T) {
	calc := NewCalculator(testFareConfig())

	core := calc.Estimate(12, models.ZoneCore, models.CategoryStandard)
	extended := calc.Estimate(12, models.ZoneExtended, models.CategoryStandard)
	assert.Equal(t, core.EstimatedTotal, extended.EstimatedTotal)
}

func TestSettle_ModerateCorrection(t *testing.T) {
	calc := NewCalculator(testFareConfig())

	quote := calc.Estimate(10, models.ZoneCore, models.CategoryStandard) // 150
	settlement := calc.Settle(12, quote)                                 // 30 + 12*12 = 174 <= 180

	assert.Equal(t, 174.0, settlement.FinalTotal)
	assert.False(t, settlement.Capped)
	assert.Equal(t, 180.0, settlement.ProtectedCap)
}

func TestSettle_CappedAtEstimate(t *testing.T) {
	calc := NewCalculator(testFareConfig())

	quote := calc.Estimate(10, models.ZoneCore, models.CategoryStandard) // 150
	settlement := calc.Settle(30, quote)                                 // recomputed 380 > 150*1.2

	// The settlement falls back to exactly the original estimate
	assert.Equal(t, quote.EstimatedTotal, settlement.FinalTotal)
	assert.True(t, settlement.Capped)
}

func TestSettle_ShorterTripSettlesLower(t *testing.T) {
	calc := NewCalculator(testFareConfig())

	quote := calc.Estimate(20, models.ZoneCore, models.CategoryStandard) // 270
	settlement := calc.Settle(15, quote)                                 // 30 + 15*12 = 210

	assert.Equal(t, 210.0, settlement.FinalTotal)
	assert.False(t, settlement.Capped)
}
