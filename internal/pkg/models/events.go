package models

import (
	"time"

	"github.com/google/uuid"
)

// RiderEventType identifies the kind of rider notification being published
type RiderEventType string

const (
	RiderEventMatched       RiderEventType = "matched"
	RiderEventExpired       RiderEventType = "expired"
	RiderEventReminder      RiderEventType = "reminder"
	RiderEventNoDriverFound RiderEventType = "no_driver_found"
	RiderEventReopened      RiderEventType = "reopened"
)

// DriverNotifyEvent is the payload broadcast to candidate drivers when a
// request enters (or expands) its search radius.
type DriverNotifyEvent struct {
	RequestID   uuid.UUID    `json:"request_id"`
	DriverIDs   []string     `json:"driver_ids"`
	Pickup      Coordinate   `json:"pickup"`
	Dropoff     Coordinate   `json:"dropoff"`
	PickupArea  string       `json:"pickup_area"` // geohash hint for the driver UI
	Zone        ServiceZone  `json:"zone"`
	Category    RideCategory `json:"category"`
	RadiusKm    float64      `json:"radius_km"`
	PublishedAt time.Time    `json:"published_at"`
}

// DriverRetractEvent withdraws a broadcast from drivers who did not win.
// Retraction is advisory; a driver UI may briefly show a request that was
// already won by someone else.
type DriverRetractEvent struct {
	RequestID   uuid.UUID `json:"request_id"`
	DriverIDs   []string  `json:"driver_ids"`
	PublishedAt time.Time `json:"published_at"`
}

// DriverEventType identifies the kind of driver notification being published
type DriverEventType string

const (
	DriverEventReminder DriverEventType = "reminder"
)

// DriverEvent is the payload for direct driver-facing notifications, as
// opposed to the broadcast/retract fan-out events.
type DriverEvent struct {
	DriverID    uuid.UUID       `json:"driver_id"`
	RequestID   *uuid.UUID      `json:"request_id,omitempty"`
	ScheduleID  *uuid.UUID      `json:"schedule_id,omitempty"`
	Event       DriverEventType `json:"event"`
	Message     string          `json:"message,omitempty"`
	PublishedAt time.Time       `json:"published_at"`
}

// RiderEvent is the payload for rider-facing notifications
type RiderEvent struct {
	RiderID     uuid.UUID      `json:"rider_id"`
	RequestID   *uuid.UUID     `json:"request_id,omitempty"`
	ScheduleID  *uuid.UUID     `json:"schedule_id,omitempty"`
	Event       RiderEventType `json:"event"`
	Message     string         `json:"message,omitempty"`
	DriverID    string         `json:"driver_id,omitempty"`
	PublishedAt time.Time      `json:"published_at"`
}

// RideCompletedEvent is consumed from the trip service when a matched ride
// finishes, carrying the actual traveled distance for settlement.
type RideCompletedEvent struct {
	RequestID        uuid.UUID `json:"request_id"`
	ActualDistanceKm float64   `json:"actual_distance_km"`
	CompletedAt      time.Time `json:"completed_at"`
}

// SettlementEvent is published for the billing collaborator after a ride settles
type SettlementEvent struct {
	RequestID   uuid.UUID      `json:"request_id"`
	DriverID    uuid.UUID      `json:"driver_id"`
	RiderID     uuid.UUID      `json:"rider_id"`
	Settlement  FareSettlement `json:"settlement"`
	PublishedAt time.Time      `json:"published_at"`
}
