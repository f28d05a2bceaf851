package models

// Coordinate represents a geographic point
type Coordinate struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// ServiceZone classifies a coordinate against the service area
type ServiceZone string

const (
	ZoneCore         ServiceZone = "CORE"
	ZoneExtended     ServiceZone = "EXTENDED"
	ZoneOutOfService ServiceZone = "OUT_OF_SERVICE"
)

// Stricter returns the more restrictive of two zones for a trip.
// A trip with any EXTENDED endpoint is an EXTENDED trip.
func (z ServiceZone) Stricter(other ServiceZone) ServiceZone {
	if z == ZoneOutOfService || other == ZoneOutOfService {
		return ZoneOutOfService
	}
	if z == ZoneExtended || other == ZoneExtended {
		return ZoneExtended
	}
	return ZoneCore
}
