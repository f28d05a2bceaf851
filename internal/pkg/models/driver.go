package models

// DriverStatus represents a driver's availability in the registry
type DriverStatus string

const (
	DriverStatusAvailable DriverStatus = "available"
	DriverStatusBusy      DriverStatus = "busy"
	DriverStatusOffline   DriverStatus = "offline"
)

// DriverCandidate is a driver eligible for a broadcast, sourced from the
// live availability registry at broadcast time. It is never persisted.
type DriverCandidate struct {
	DriverID           string     `json:"driver_id"`
	Location           Coordinate `json:"location"`
	DistanceToPickupKm float64    `json:"distance_to_pickup_km"`
	AcceptsExtended    bool       `json:"accepts_extended"`
	AcceptsParcel      bool       `json:"accepts_parcel"`
}

// CandidateFilter narrows a registry query to drivers whose preferences
// permit the trip being broadcast.
type CandidateFilter struct {
	Zone     ServiceZone
	Category RideCategory
}

// RequiresExtended reports whether candidates must opt in to extended-zone trips
func (f CandidateFilter) RequiresExtended() bool {
	return f.Zone == ZoneExtended
}

// RequiresParcel reports whether candidates must opt in to parcel deliveries
func (f CandidateFilter) RequiresParcel() bool {
	return f.Category.IsParcel()
}
