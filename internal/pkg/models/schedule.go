package models

import (
	"time"

	"github.com/google/uuid"
)

// ScheduledRideStatus represents the lifecycle state of an advance booking
type ScheduledRideStatus string

const (
	ScheduledStatusScheduled     ScheduledRideStatus = "SCHEDULED"
	ScheduledStatusPromoting     ScheduledRideStatus = "PROMOTING"
	ScheduledStatusMatched       ScheduledRideStatus = "MATCHED"
	ScheduledStatusNoDriverFound ScheduledRideStatus = "NO_DRIVER_FOUND"
	ScheduledStatusCancelled     ScheduledRideStatus = "CANCELLED"
)

// ScheduledRide represents an advance booking awaiting promotion into
// live dispatch by the schedule sweep.
type ScheduledRide struct {
	ID                uuid.UUID           `json:"id"`
	RiderID           uuid.UUID           `json:"rider_id"`
	Pickup            Coordinate          `json:"pickup"`
	Dropoff           Coordinate          `json:"dropoff"`
	Category          RideCategory        `json:"category"`
	ScheduledPickupAt time.Time           `json:"scheduled_pickup_at"`
	Status            ScheduledRideStatus `json:"status"`
	ReminderSentAt    *time.Time          `json:"reminder_sent_at,omitempty"`
	MatchedRequestID  *uuid.UUID          `json:"matched_request_id,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

// ScheduledRideDTO flattens the nested Coordinate structs for database operations
type ScheduledRideDTO struct {
	ID                uuid.UUID           `db:"id"`
	RiderID           uuid.UUID           `db:"rider_id"`
	PickupLatitude    float64             `db:"pickup_latitude"`
	PickupLongitude   float64             `db:"pickup_longitude"`
	DropoffLatitude   float64             `db:"dropoff_latitude"`
	DropoffLongitude  float64             `db:"dropoff_longitude"`
	Category          RideCategory        `db:"category"`
	ScheduledPickupAt time.Time           `db:"scheduled_pickup_at"`
	Status            ScheduledRideStatus `db:"status"`
	ReminderSentAt    *time.Time          `db:"reminder_sent_at"`
	MatchedRequestID  *uuid.UUID          `db:"matched_request_id"`
	CreatedAt         time.Time           `db:"created_at"`
	UpdatedAt         time.Time           `db:"updated_at"`
}

// ToDTO converts a ScheduledRide to its flattened database representation
func (s *ScheduledRide) ToDTO() *ScheduledRideDTO {
	return &ScheduledRideDTO{
		ID:                s.ID,
		RiderID:           s.RiderID,
		PickupLatitude:    s.Pickup.Latitude,
		PickupLongitude:   s.Pickup.Longitude,
		DropoffLatitude:   s.Dropoff.Latitude,
		DropoffLongitude:  s.Dropoff.Longitude,
		Category:          s.Category,
		ScheduledPickupAt: s.ScheduledPickupAt,
		Status:            s.Status,
		ReminderSentAt:    s.ReminderSentAt,
		MatchedRequestID:  s.MatchedRequestID,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

// ToScheduledRide converts a ScheduledRideDTO back to a ScheduledRide
func (dto *ScheduledRideDTO) ToScheduledRide() *ScheduledRide {
	return &ScheduledRide{
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
		Category:          dto.Category,
		ScheduledPickupAt: dto.ScheduledPickupAt,
		Status:            dto.Status,
		ReminderSentAt:    dto.ReminderSentAt,
		MatchedRequestID:  dto.MatchedRequestID,
		CreatedAt:         dto.CreatedAt,
		UpdatedAt:         dto.UpdatedAt,
	}
}

// CancellationOutcome tells the rider whether the cancellation fee applied
type CancellationOutcome struct {
	FeeCharged bool    `json:"fee_charged"`
	FeeAmount  float64 `json:"fee_amount,omitempty"`
	Currency   string  `json:"currency,omitempty"`
}
