package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ridelink/dispatch/internal/pkg/logger"
	"github.com/ridelink/dispatch/internal/pkg/models"
)

// Tick runs one schedule sweep at the given instant. Each phase claims its
// bookings with conditional transitions, so overlapping sweeps from multiple
// instances never double-promote, double-remind, or double-expire.
func (uc *scheduleUC) Tick(ctx context.Context, now time.Time) error {
	if err := uc.promoteDue(ctx, now); err != nil {
		return fmt.Errorf("promotion sweep failed: %w", err)
	}
	if err := uc.remindDue(ctx, now); err != nil {
		return fmt.Errorf("reminder sweep failed: %w", err)
	}
	if err := uc.resolveOverdue(ctx, now); err != nil {
		return fmt.Errorf("overdue sweep failed: %w", err)
	}
	return nil
}

// promoteDue moves bookings whose pickup is inside the promotion lead into
// live dispatch. The claim happens before the broadcast: a booking claimed
// but not yet broadcast is picked up by the overdue sweep eventually.
func (uc *scheduleUC) promoteDue(ctx context.Context, now time.Time) error {
	due, err := uc.repo.DuePromotions(ctx, now, uc.cfg.Schedule.PromoteLead)
	if err != nil {
		return err
	}

	for _, ride := range due {
		claimed, err := uc.repo.MarkPromoting(ctx, ride.ID)
		if err != nil {
			logger.Error("Failed to claim booking for promotion",
				logger.String("schedule_id", ride.ID.String()),
				logger.Err(err))
			continue
		}
		if !claimed {
			continue
		}

		req, _, err := uc.dispatch.RequestRide(ctx, ride.RiderID, ride.Pickup, ride.Dropoff, ride.Category)
		if err != nil {
			logger.Error("Failed to promote booking into dispatch",
				logger.String("schedule_id", ride.ID.String()),
				logger.Err(err))
			continue
		}
		if err := uc.repo.SetPromotedRequest(ctx, ride.ID, req.ID); err != nil {
			logger.Error("Failed to record promoted request",
				logger.String("schedule_id", ride.ID.String()),
				logger.String("request_id", req.ID.String()),
				logger.Err(err))
			continue
		}

		logger.Info("Booking promoted into live dispatch",
			logger.String("schedule_id", ride.ID.String()),
			logger.String("request_id", req.ID.String()),
			logger.Time("pickup_at", ride.ScheduledPickupAt))
	}
	return nil
}

// remindDue sends the single pickup reminder to riders of promoting bookings
func (uc *scheduleUC) remindDue(ctx context.Context, now time.Time) error {
	due, err := uc.repo.DueReminders(ctx, now, uc.cfg.Schedule.ReminderLead)
	if err != nil {
		return err
	}

	for _, ride := range due {
		claimed, err := uc.repo.MarkReminderSent(ctx, ride.ID, now)
		if err != nil {
			logger.Error("Failed to stamp reminder",
				logger.String("schedule_id", ride.ID.String()),
				logger.Err(err))
			continue
		}
		if !claimed {
			continue
		}

		scheduleID := ride.ID
		event := models.RiderEvent{
			RiderID:     ride.RiderID,
			ScheduleID:  &scheduleID,
			Event:       models.RiderEventReminder,
			Message:     fmt.Sprintf("Your ride is scheduled for %s.", ride.ScheduledPickupAt.Format(time.Kitchen)),
			PublishedAt: now,
		}
		if err := uc.gw.NotifyRider(ctx, event); err != nil {
			logger.Warn("Failed to publish pickup reminder",
				logger.String("schedule_id", ride.ID.String()),
				logger.Err(err))
		}

		uc.remindMatchedDriver(ctx, ride, now)
	}
	return nil
}

// remindMatchedDriver reminds the driver matched to a promoted booking, if
// the booking's broadcast has already settled into a match.
func (uc *scheduleUC) remindMatchedDriver(ctx context.Context, ride *models.ScheduledRide, now time.Time) {
	if ride.MatchedRequestID == nil {
		return
	}
	match, err := uc.dispatch.GetMatch(ctx, *ride.MatchedRequestID)
	if err != nil {
		return
	}

	scheduleID := ride.ID
	event := models.DriverEvent{
		DriverID:    match.DriverID,
		RequestID:   ride.MatchedRequestID,
		ScheduleID:  &scheduleID,
		Event:       models.DriverEventReminder,
		Message:     fmt.Sprintf("Your scheduled pickup is at %s.", ride.ScheduledPickupAt.Format(time.Kitchen)),
		PublishedAt: now,
	}
	if err := uc.gw.NotifyDriver(ctx, event); err != nil {
		logger.Warn("Failed to publish driver reminder",
			logger.String("schedule_id", ride.ID.String()),
			logger.Err(err))
	}
}

// resolveOverdue settles promoting bookings whose pickup time passed the
// grace period: bookings whose broadcast matched become MATCHED, the rest
// become NO_DRIVER_FOUND and the rider is told to rebook.
func (uc *scheduleUC) resolveOverdue(ctx context.Context, now time.Time) error {
	overdue, err := uc.repo.Overdue(ctx, now, uc.cfg.Schedule.UnmatchedGrace)
	if err != nil {
		return err
	}

	for _, ride := range overdue {
		if ride.MatchedRequestID != nil {
			req, err := uc.dispatch.GetRequest(ctx, *ride.MatchedRequestID)
			if err == nil && req.Status == models.RequestStatusMatched {
				if _, err := uc.repo.MarkMatched(ctx, ride.ID); err != nil {
					logger.Error("Failed to mark booking matched",
						logger.String("schedule_id", ride.ID.String()),
						logger.Err(err))
				}
				continue
			}
			// Withdraw whatever broadcast is still running
			if err := uc.dispatch.CancelRequest(ctx, *ride.MatchedRequestID); err != nil {
				logger.Debug("Overdue broadcast already settled",
					logger.String("schedule_id", ride.ID.String()),
					logger.Err(err))
			}
		}

		claimed, err := uc.repo.MarkNoDriverFound(ctx, ride.ID)
		if err != nil {
			logger.Error("Failed to mark booking as no driver found",
				logger.String("schedule_id", ride.ID.String()),
				logger.Err(err))
			continue
		}
		if !claimed {
			continue
		}

		scheduleID := ride.ID
		event := models.RiderEvent{
			RiderID:     ride.RiderID,
			ScheduleID:  &scheduleID,
			Event:       models.RiderEventNoDriverFound,
			Message:     "We could not find a driver for your scheduled ride. Please book again.",
			PublishedAt: now,
		}
		if err := uc.gw.NotifyRider(ctx, event); err != nil {
			logger.Warn("Failed to publish no-driver notification",
				logger.String("schedule_id", ride.ID.String()),
				logger.Err(err))
		}

		logger.Info("Booking expired without a driver",
			logger.String("schedule_id", ride.ID.String()),
			logger.Time("pickup_at", ride.ScheduledPickupAt))
	}
	return nil
}
