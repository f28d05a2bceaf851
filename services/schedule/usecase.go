package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ridelink/dispatch/internal/pkg/models"
)

// ScheduleUC defines the advance-booking use case operations
type ScheduleUC interface {
	// CreateScheduledRide validates and stores an advance booking, returning
	// it with an indicative fare quote.
	CreateScheduledRide(ctx context.Context, riderID uuid.UUID, pickup, dropoff models.Coordinate, category models.RideCategory, pickupAt time.Time) (*models.ScheduledRide, *models.FareQuote, error)

	// GetScheduledRide retrieves a booking by ID
	GetScheduledRide(ctx context.Context, id uuid.UUID) (*models.ScheduledRide, error)

	// ListRiderSchedules returns a rider's upcoming bookings
	ListRiderSchedules(ctx context.Context, riderID uuid.UUID) ([]*models.ScheduledRide, error)

	// ModifyScheduledRide updates the pickup time or locations of a booking
	// still outside the modification lock window, requoting the fare.
	ModifyScheduledRide(ctx context.Context, id uuid.UUID, pickup, dropoff models.Coordinate, pickupAt time.Time) (*models.ScheduledRide, *models.FareQuote, error)

	// CancelScheduledRide cancels a booking, charging the cancellation fee
	// when the booking is inside the free-cancellation lead window.
	CancelScheduledRide(ctx context.Context, id uuid.UUID) (*models.CancellationOutcome, error)

	// Tick runs one schedule sweep at the given instant: promotes due
	// bookings into live dispatch, sends reminders, and gives up on bookings
	// still unmatched past the grace period. Safe to re-run at any cadence.
	Tick(ctx context.Context, now time.Time) error
}
