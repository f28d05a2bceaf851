// Package fare computes fare estimates and settlements. All functions are
// pure and deterministic, which matters for testability and for dispute
// resolution: the same inputs always produce the same quote.
package fare

import (
	"math"

	"github.com/ridelink/dispatch/internal/pkg/models"
)

// Calculator converts trip distances into fare quotes and settlements
type Calculator struct {
	cfg models.FareConfig
}

// NewCalculator creates a Calculator from configuration
func NewCalculator(cfg models.FareConfig) *Calculator {
	return &Calculator{cfg: cfg}
}

// Estimate produces a fare quote for a trip. The fare is the category's base
// fare plus a tiered per-km rate: tier 1 for the first TierThresholdKm, tier 2
// beyond it. The zone affects matching parameters, not the fare formula.
func (c *Calculator) Estimate(distanceKm float64, zone models.ServiceZone, category models.RideCategory) models.FareQuote {
	table := c.rateTable(category)
	return models.FareQuote{
		BaseFare:        table.BaseFare,
		Tier1RateKm:     table.Tier1RateKm,
		Tier2RateKm:     table.Tier2RateKm,
		TierThresholdKm: c.cfg.TierThresholdKm,
		DistanceKm:      distanceKm,
		EstimatedTotal:  tieredTotal(distanceKm, table, c.cfg.TierThresholdKm),
		Zone:            zone,
		Category:        category,
		Currency:        c.cfg.Currency,
	}
}

// Settle recomputes the fare against the actual traveled distance using the
// rates the quote was issued with. When the recomputed amount exceeds the
// estimate by more than the protection factor, the settlement is capped at
// the estimate. This protects riders from gross estimation error while still
// allowing moderate correction.
func (c *Calculator) Settle(actualDistanceKm float64, quote models.FareQuote) models.FareSettlement {
	table := models.FareRateTable{
		BaseFare:    quote.BaseFare,
		Tier1RateKm: quote.Tier1RateKm,
		Tier2RateKm: quote.Tier2RateKm,
	}
	recomputed := tieredTotal(actualDistanceKm, table, quote.TierThresholdKm)
	cap := quote.EstimatedTotal * c.cfg.ProtectionFactor

	settlement := models.FareSettlement{
		FinalTotal:   recomputed,
		ProtectedCap: cap,
		Currency:     quote.Currency,
	}
	if recomputed > cap {
		settlement.FinalTotal = quote.EstimatedTotal
		settlement.Capped = true
	}
	return settlement
}

func (c *Calculator) rateTable(category models.RideCategory) models.FareRateTable {
	switch category {
	case models.CategoryParcelSmall:
		return c.cfg.ParcelSmall
	case models.CategoryParcelMedium:
		return c.cfg.ParcelMedium
	case models.CategoryParcelLarge:
		return c.cfg.ParcelLarge
	default:
		return c.cfg.Standard
	}
}

func tieredTotal(distanceKm float64, table models.FareRateTable, thresholdKm float64) float64 {
	tier1 := math.Min(distanceKm, thresholdKm)
	tier2 := math.Max(distanceKm-thresholdKm, 0)
	return table.BaseFare + tier1*table.Tier1RateKm + tier2*table.Tier2RateKm
}
