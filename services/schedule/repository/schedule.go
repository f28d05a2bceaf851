package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ridelink/dispatch/internal/pkg/models"
	"github.com/ridelink/dispatch/services/schedule"
)

const scheduleColumns = `
	id, rider_id,
	pickup_latitude, pickup_longitude,
	dropoff_latitude, dropoff_longitude,
	category, scheduled_pickup_at, status,
	reminder_sent_at, matched_request_id,
	created_at, updated_at
`

// ScheduleRepo persists scheduled rides in PostgreSQL
type ScheduleRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(cfg *models.Config, db *sqlx.DB) *ScheduleRepo {
	return &ScheduleRepo{cfg: cfg, db: db}
}

// Create inserts a new scheduled ride
func (r *ScheduleRepo) Create(ctx context.Context, ride *models.ScheduledRide) error {
	query := `
		INSERT INTO scheduled_rides (
			id, rider_id,
			pickup_latitude, pickup_longitude,
			dropoff_latitude, dropoff_longitude,
			category, scheduled_pickup_at, status,
			created_at, updated_at
		) VALUES (
			:id, :rider_id,
			:pickup_latitude, :pickup_longitude,
			:dropoff_latitude, :dropoff_longitude,
			:category, :scheduled_pickup_at, :status,
			:created_at, :updated_at
		)
	`
	if _, err := r.db.NamedExecContext(ctx, query, ride.ToDTO()); err != nil {
		return fmt.Errorf("failed to create scheduled ride: %w", err)
	}
	return nil
}

// Get retrieves a scheduled ride by ID
func (r *ScheduleRepo) Get(ctx context.Context, id uuid.UUID) (*models.ScheduledRide, error) {
	var dto models.ScheduledRideDTO
	query := `SELECT ` + scheduleColumns + ` FROM scheduled_rides WHERE id = $1`
	if err := r.db.GetContext(ctx, &dto, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, schedule.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get scheduled ride: %w", err)
	}
	return dto.ToScheduledRide(), nil
}

// ListByRider returns a rider's bookings, soonest pickup first
func (r *ScheduleRepo) ListByRider(ctx context.Context, riderID uuid.UUID) ([]*models.ScheduledRide, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM scheduled_rides
		WHERE rider_id = $1
		ORDER BY scheduled_pickup_at ASC
	`
	var dtos []models.ScheduledRideDTO
	if err := r.db.SelectContext(ctx, &dtos, query, riderID); err != nil {
		return nil, fmt.Errorf("failed to list scheduled rides: %w", err)
	}
	return toRides(dtos), nil
}

// Update persists modified pickup details for a SCHEDULED booking
func (r *ScheduleRepo) Update(ctx context.Context, ride *models.ScheduledRide) error {
	query := `
		UPDATE scheduled_rides
		SET pickup_latitude = :pickup_latitude,
			pickup_longitude = :pickup_longitude,
			dropoff_latitude = :dropoff_latitude,
			dropoff_longitude = :dropoff_longitude,
			scheduled_pickup_at = :scheduled_pickup_at,
			updated_at = :updated_at
		WHERE id = :id AND status = 'SCHEDULED'
	`
	res, err := r.db.NamedExecContext(ctx, query, ride.ToDTO())
	if err != nil {
		return fmt.Errorf("failed to update scheduled ride: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return schedule.ErrAlreadyStarted
	}
	return nil
}

// DuePromotions returns SCHEDULED bookings whose pickup falls within lead of now
func (r *ScheduleRepo) DuePromotions(ctx context.Context, now time.Time, lead time.Duration) ([]*models.ScheduledRide, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM scheduled_rides
		WHERE status = 'SCHEDULED' AND scheduled_pickup_at <= $1
		ORDER BY scheduled_pickup_at ASC
	`
	var dtos []models.ScheduledRideDTO
	if err := r.db.SelectContext(ctx, &dtos, query, now.Add(lead)); err != nil {
		return nil, fmt.Errorf("failed to query due promotions: %w", err)
	}
	return toRides(dtos), nil
}

// DueReminders returns PROMOTING bookings within the reminder lead that have
// not been reminded yet
func (r *ScheduleRepo) DueReminders(ctx context.Context, now time.Time, lead time.Duration) ([]*models.ScheduledRide, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM scheduled_rides
		WHERE status = 'PROMOTING'
			AND reminder_sent_at IS NULL
			AND scheduled_pickup_at <= $1
		ORDER BY scheduled_pickup_at ASC
	`
	var dtos []models.ScheduledRideDTO
	if err := r.db.SelectContext(ctx, &dtos, query, now.Add(lead)); err != nil {
		return nil, fmt.Errorf("failed to query due reminders: %w", err)
	}
	return toRides(dtos), nil
}

// Overdue returns PROMOTING bookings whose pickup passed more than grace ago
func (r *ScheduleRepo) Overdue(ctx context.Context, now time.Time, grace time.Duration) ([]*models.ScheduledRide, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM scheduled_rides
		WHERE status = 'PROMOTING' AND scheduled_pickup_at <= $1
		ORDER BY scheduled_pickup_at ASC
	`
	var dtos []models.ScheduledRideDTO
	if err := r.db.SelectContext(ctx, &dtos, query, now.Add(-grace)); err != nil {
		return nil, fmt.Errorf("failed to query overdue bookings: %w", err)
	}
	return toRides(dtos), nil
}

// MarkPromoting claims a SCHEDULED booking for promotion
func (r *ScheduleRepo) MarkPromoting(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.conditionalExec(ctx, `
		UPDATE scheduled_rides
		SET status = 'PROMOTING', updated_at = now()
		WHERE id = $1 AND status = 'SCHEDULED'
	`, id)
}

// SetPromotedRequest records the live request a claimed booking promoted into
func (r *ScheduleRepo) SetPromotedRequest(ctx context.Context, id uuid.UUID, requestID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE scheduled_rides
		SET matched_request_id = $2, updated_at = now()
		WHERE id = $1
	`, id, requestID)
	if err != nil {
		return fmt.Errorf("failed to record promoted request: %w", err)
	}
	return nil
}

// MarkReminderSent stamps reminder_sent_at exactly once
func (r *ScheduleRepo) MarkReminderSent(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE scheduled_rides
		SET reminder_sent_at = $2, updated_at = now()
		WHERE id = $1 AND reminder_sent_at IS NULL
	`, id, at)
	if err != nil {
		return false, fmt.Errorf("failed to stamp reminder: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return rows > 0, nil
}

// MarkMatched transitions PROMOTING -> MATCHED
func (r *ScheduleRepo) MarkMatched(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.conditionalExec(ctx, `
		UPDATE scheduled_rides
		SET status = 'MATCHED', updated_at = now()
		WHERE id = $1 AND status = 'PROMOTING'
	`, id)
}

// MarkNoDriverFound transitions PROMOTING -> NO_DRIVER_FOUND
func (r *ScheduleRepo) MarkNoDriverFound(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.conditionalExec(ctx, `
		UPDATE scheduled_rides
		SET status = 'NO_DRIVER_FOUND', updated_at = now()
		WHERE id = $1 AND status = 'PROMOTING'
	`, id)
}

// MarkCancelled transitions SCHEDULED or PROMOTING -> CANCELLED
func (r *ScheduleRepo) MarkCancelled(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.conditionalExec(ctx, `
		UPDATE scheduled_rides
		SET status = 'CANCELLED', updated_at = now()
		WHERE id = $1 AND status IN ('SCHEDULED', 'PROMOTING')
	`, id)
}

func (r *ScheduleRepo) conditionalExec(ctx context.Context, query string, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to transition scheduled ride: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return rows > 0, nil
}

func toRides(dtos []models.ScheduledRideDTO) []*models.ScheduledRide {
	rides := make([]*models.ScheduledRide, len(dtos))
	for i := range dtos {
		rides[i] = dtos[i].ToScheduledRide()
	}
	return rides
}
