package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ridelink/dispatch/internal/pkg/logger"
	"github.com/ridelink/dispatch/internal/pkg/models"
	"github.com/ridelink/dispatch/internal/utils"
	"github.com/ridelink/dispatch/services/schedule"
)

// CreateScheduledRide validates and stores an advance booking. The pickup
// must be later than the promotion lead (otherwise the rider should request
// a live ride) and within the booking horizon.
func (uc *scheduleUC) CreateScheduledRide(ctx context.Context, riderID uuid.UUID, pickup, dropoff models.Coordinate, category models.RideCategory, pickupAt time.Time) (*models.ScheduledRide, *models.FareQuote, error) {
	zone, err := uc.boundary.ValidateTrip(pickup, dropoff)
	if err != nil {
		return nil, nil, err
	}
	if err := uc.validatePickupTime(pickupAt, time.Now().UTC()); err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()
	ride := &models.ScheduledRide{
		ID:                uuid.New(),
		RiderID:           riderID,
		Pickup:            pickup,
		Dropoff:           dropoff,
		Category:          category,
		ScheduledPickupAt: pickupAt.UTC(),
		Status:            models.ScheduledStatusScheduled,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(ctx, ride); err != nil {
		return nil, nil, err
	}

	// The quote is indicative; promotion requotes against current rates
	quote := uc.calc.Estimate(utils.CalculateDistance(pickup, dropoff), zone, category)

	logger.Info("Scheduled ride created",
		logger.String("schedule_id", ride.ID.String()),
		logger.Time("pickup_at", ride.ScheduledPickupAt),
		logger.Float64("estimated_fare", quote.EstimatedTotal))
	return ride, &quote, nil
}

// GetScheduledRide retrieves a booking by ID
func (uc *scheduleUC) GetScheduledRide(ctx context.Context, id uuid.UUID) (*models.ScheduledRide, error) {
	return uc.repo.Get(ctx, id)
}

// ListRiderSchedules returns a rider's bookings
func (uc *scheduleUC) ListRiderSchedules(ctx context.Context, riderID uuid.UUID) ([]*models.ScheduledRide, error) {
	return uc.repo.ListByRider(ctx, riderID)
}

// ModifyScheduledRide updates a booking still outside the modification lock.
// Only SCHEDULED bookings can change; once promotion starts the booking is
// committed to its pickup.
func (uc *scheduleUC) ModifyScheduledRide(ctx context.Context, id uuid.UUID, pickup, dropoff models.Coordinate, pickupAt time.Time) (*models.ScheduledRide, *models.FareQuote, error) {
	ride, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if ride.Status != models.ScheduledStatusScheduled {
		return nil, nil, schedule.ErrAlreadyStarted
	}

	now := time.Now().UTC()
	if now.After(ride.ScheduledPickupAt.Add(-uc.cfg.Schedule.ModifyLock)) {
		return nil, nil, schedule.ErrTooLateToModify
	}

	zone, err := uc.boundary.ValidateTrip(pickup, dropoff)
	if err != nil {
		return nil, nil, err
	}
	if err := uc.validatePickupTime(pickupAt, now); err != nil {
		return nil, nil, err
	}

	ride.Pickup = pickup
	ride.Dropoff = dropoff
	ride.ScheduledPickupAt = pickupAt.UTC()
	ride.UpdatedAt = now
	if err := uc.repo.Update(ctx, ride); err != nil {
		return nil, nil, err
	}

	quote := uc.calc.Estimate(utils.CalculateDistance(pickup, dropoff), zone, ride.Category)

	logger.Info("Scheduled ride modified",
		logger.String("schedule_id", ride.ID.String()),
		logger.Time("pickup_at", ride.ScheduledPickupAt),
		logger.Float64("estimated_fare", quote.EstimatedTotal))
	return ride, &quote, nil
}

// CancelScheduledRide cancels a booking. Cancelling with less than the
// free-cancellation lead charges the fee; the fee is reported, not collected
// here, billing handles collection from the settlement event stream.
func (uc *scheduleUC) CancelScheduledRide(ctx context.Context, id uuid.UUID) (*models.CancellationOutcome, error) {
	ride, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if ride.Status != models.ScheduledStatusScheduled && ride.Status != models.ScheduledStatusPromoting {
		return nil, schedule.ErrAlreadyStarted
	}

	ok, err := uc.repo.MarkCancelled(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, schedule.ErrAlreadyStarted
	}

	// A promoted booking may have a live broadcast to withdraw
	if ride.Status == models.ScheduledStatusPromoting && ride.MatchedRequestID != nil {
		if err := uc.dispatch.CancelRequest(ctx, *ride.MatchedRequestID); err != nil {
			logger.Warn("Failed to cancel promoted broadcast",
				logger.String("schedule_id", id.String()),
				logger.String("request_id", ride.MatchedRequestID.String()),
				logger.Err(err))
		}
	}

	outcome := &models.CancellationOutcome{}
	lead := time.Until(ride.ScheduledPickupAt)
	if lead < uc.cfg.Schedule.FreeCancelLead {
		outcome.FeeCharged = true
		outcome.FeeAmount = uc.cfg.Schedule.CancellationFee
		outcome.Currency = uc.cfg.Fare.Currency
	}

	logger.Info("Scheduled ride cancelled",
		logger.String("schedule_id", id.String()),
		logger.Bool("fee_charged", outcome.FeeCharged))
	return outcome, nil
}

func (uc *scheduleUC) validatePickupTime(pickupAt, now time.Time) error {
	lead := pickupAt.Sub(now)
	if lead < uc.cfg.Schedule.PromoteLead {
		return schedule.ErrPickupTooSoon
	}
	if lead > uc.cfg.Schedule.BookingHorizon {
		return schedule.ErrPickupTooFar
	}
	return nil
}
