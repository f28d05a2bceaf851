package models

// FareQuote is the deterministic fare estimate for a trip. It carries the
// rates it was computed with so settlement can replay the same formula.
type FareQuote struct {
	BaseFare        float64      `json:"base_fare"`
	Tier1RateKm     float64      `json:"tier1_rate_km"`
	Tier2RateKm     float64      `json:"tier2_rate_km"`
	TierThresholdKm float64      `json:"tier_threshold_km"`
	DistanceKm      float64      `json:"distance_km"`
	EstimatedTotal  float64      `json:"estimated_total"`
	Zone            ServiceZone  `json:"zone"`
	Category        RideCategory `json:"category"`
	Currency        string       `json:"currency"`
}

// FareSettlement is the final settled amount for a completed trip.
// Capped is true when the recomputed fare exceeded the protection cap
// and the settlement fell back to the original estimate.
type FareSettlement struct {
	FinalTotal   float64 `json:"final_total"`
	ProtectedCap float64 `json:"protected_cap"`
	Capped       bool    `json:"capped"`
	Currency     string  `json:"currency"`
}
