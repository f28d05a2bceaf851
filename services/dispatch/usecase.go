package dispatch

import (
	"context"

	"github.com/google/uuid"

	"github.com/ridelink/dispatch/internal/pkg/models"
)

// DispatchUC defines the dispatch engine's use case operations
type DispatchUC interface {
	// RequestRide validates the trip, quotes the fare, persists the request
	// and broadcasts it to eligible nearby drivers.
	RequestRide(ctx context.Context, riderID uuid.UUID, pickup, dropoff models.Coordinate, category models.RideCategory) (*models.RideRequest, *models.FareQuote, error)

	// AcceptRide registers a driver acceptance and blocks until arbitration
	// resolves it into WON, NOT_WON or ALREADY_MATCHED.
	AcceptRide(ctx context.Context, requestID, driverID uuid.UUID) (*models.AcceptOutcome, error)

	// RejectRide removes the driver from further consideration for the request
	RejectRide(ctx context.Context, requestID, driverID uuid.UUID) error

	// CancelRequest is the rider-initiated cancellation of a broadcasting request
	CancelRequest(ctx context.Context, requestID uuid.UUID) error

	// DriverCancelMatch reopens a matched request into broadcasting,
	// excluding the cancelling driver.
	DriverCancelMatch(ctx context.Context, requestID, driverID uuid.UUID) error

	// CompleteRide settles the fare against the actual traveled distance and
	// frees the matched driver.
	CompleteRide(ctx context.Context, requestID uuid.UUID, actualDistanceKm float64) (*models.FareSettlement, error)

	GetRequest(ctx context.Context, requestID uuid.UUID) (*models.RideRequest, error)
	GetMatch(ctx context.Context, requestID uuid.UUID) (*models.RideMatch, error)
}
