package models

import (
	"time"

	"github.com/google/uuid"
)

// RideRequestStatus represents the lifecycle state of a ride request
type RideRequestStatus string

const (
	RequestStatusBroadcasting RideRequestStatus = "BROADCASTING"
	RequestStatusMatched      RideRequestStatus = "MATCHED"
	RequestStatusExpired      RideRequestStatus = "EXPIRED"
	RequestStatusCancelled    RideRequestStatus = "CANCELLED"
)

// RideCategory distinguishes passenger rides from parcel deliveries
type RideCategory string

const (
	CategoryStandard     RideCategory = "STANDARD"
	CategoryParcelSmall  RideCategory = "PARCEL_SMALL"
	CategoryParcelMedium RideCategory = "PARCEL_MEDIUM"
	CategoryParcelLarge  RideCategory = "PARCEL_LARGE"
)

// IsParcel reports whether the category is a parcel delivery
func (c RideCategory) IsParcel() bool {
	return c == CategoryParcelSmall || c == CategoryParcelMedium || c == CategoryParcelLarge
}

// IsValid reports whether the category is one of the known values
func (c RideCategory) IsValid() bool {
	return c == CategoryStandard || c.IsParcel()
}

// RideRequest represents a rider's trip request being dispatched
type RideRequest struct {
	ID          uuid.UUID         `json:"id"`
	RiderID     uuid.UUID         `json:"rider_id"`
	Pickup      Coordinate        `json:"pickup"`
	Dropoff     Coordinate        `json:"dropoff"`
	Zone        ServiceZone       `json:"zone"`
	Category    RideCategory      `json:"category"`
	Status      RideRequestStatus `json:"status"`
	RadiusKm    float64           `json:"radius_km"`
	Attempt     int               `json:"attempt"`
	RequestedAt time.Time         `json:"requested_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// RideRequestDTO flattens the nested Coordinate structs for database operations
type RideRequestDTO struct {
	ID               uuid.UUID         `db:"id"`
	RiderID          uuid.UUID         `db:"rider_id"`
	PickupLatitude   float64           `db:"pickup_latitude"`
	PickupLongitude  float64           `db:"pickup_longitude"`
	DropoffLatitude  float64           `db:"dropoff_latitude"`
	DropoffLongitude float64           `db:"dropoff_longitude"`
	Zone             ServiceZone       `db:"zone"`
	Category         RideCategory      `db:"category"`
	Status           RideRequestStatus `db:"status"`
	RadiusKm         float64           `db:"radius_km"`
	Attempt          int               `db:"attempt"`
	RequestedAt      time.Time         `db:"requested_at"`
	UpdatedAt        time.Time         `db:"updated_at"`
}

// ToDTO converts a RideRequest to its flattened database representation
func (r *RideRequest) ToDTO() *RideRequestDTO {
	return &RideRequestDTO{
		ID:               r.ID,
		RiderID:          r.RiderID,
		PickupLatitude:   r.Pickup.Latitude,
		PickupLongitude:  r.Pickup.Longitude,
		DropoffLatitude:  r.Dropoff.Latitude,
		DropoffLongitude: r.Dropoff.Longitude,
		Zone:             r.Zone,
		Category:         r.Category,
		Status:           r.Status,
		RadiusKm:         r.RadiusKm,
		Attempt:          r.Attempt,
		RequestedAt:      r.RequestedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// ToRequest converts a RideRequestDTO back to a RideRequest
func (dto *RideRequestDTO) ToRequest() *RideRequest {
	return &RideRequest{
		ID:      dto.ID,
		RiderID: dto.RiderID,
		Pickup: Coordinate{
			Latitude:  dto.PickupLatitude,
			Longitude: dto.PickupLongitude,
		},
		Dropoff: Coordinate{
			Latitude:  dto.DropoffLatitude,
			Longitude: dto.DropoffLongitude,
		},
		Zone:        dto.Zone,
		Category:    dto.Category,
		Status:      dto.Status,
		RadiusKm:    dto.RadiusKm,
		Attempt:     dto.Attempt,
		RequestedAt: dto.RequestedAt,
		UpdatedAt:   dto.UpdatedAt,
	}
}

// RideMatch represents the single committed match for a ride request
type RideMatch struct {
	RequestID         uuid.UUID `json:"request_id" db:"request_id"`
	DriverID          uuid.UUID `json:"driver_id" db:"driver_id"`
	DistanceAtMatchKm float64   `json:"distance_at_match_km" db:"distance_at_match_km"`
	MatchedAt         time.Time `json:"matched_at" db:"matched_at"`
}

// AcceptOutcomeStatus is the result handed back to an accepting driver
type AcceptOutcomeStatus string

const (
	AcceptOutcomeWon            AcceptOutcomeStatus = "WON"
	AcceptOutcomeNotWon         AcceptOutcomeStatus = "NOT_WON"
	AcceptOutcomeAlreadyMatched AcceptOutcomeStatus = "ALREADY_MATCHED"
)

// AcceptOutcome is the arbitration result for a single driver acceptance.
// Match is only set when the driver won.
type AcceptOutcome struct {
	Status AcceptOutcomeStatus `json:"status"`
	Match  *RideMatch          `json:"match,omitempty"`
}
