package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ridelink/dispatch/internal/pkg/models"
	"github.com/ridelink/dispatch/services/dispatch"
)

// RideRepo persists ride requests and matches in PostgreSQL
type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRideRepository creates a new ride repository
func NewRideRepository(cfg *models.Config, db *sqlx.DB) *RideRepo {
	return &RideRepo{cfg: cfg, db: db}
}

// CreateRequest inserts a new ride request
func (r *RideRepo) CreateRequest(ctx context.Context, req *models.RideRequest) error {
	query := `
		INSERT INTO ride_requests (
			id, rider_id,
			pickup_latitude, pickup_longitude,
			dropoff_latitude, dropoff_longitude,
			zone, category, status, radius_km, attempt,
			requested_at, updated_at
		) VALUES (
			:id, :rider_id,
			:pickup_latitude, :pickup_longitude,
			:dropoff_latitude, :dropoff_longitude,
			:zone, :category, :status, :radius_km, :attempt,
			:requested_at, :updated_at
		)
	`
	_, err := r.db.NamedExecContext(ctx, query, req.ToDTO())
	if err != nil {
		return fmt.Errorf("failed to create ride request: %w", err)
	}
	return nil
}

// GetRequest retrieves a ride request by ID
func (r *RideRepo) GetRequest(ctx context.Context, id uuid.UUID) (*models.RideRequest, error) {
	query := `
		SELECT id, rider_id,
			pickup_latitude, pickup_longitude,
			dropoff_latitude, dropoff_longitude,
			zone, category, status, radius_km, attempt,
			requested_at, updated_at
		FROM ride_requests
		WHERE id = $1
	`
	var dto models.RideRequestDTO
	if err := r.db.GetContext(ctx, &dto, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dispatch.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get ride request: %w", err)
	}
	return dto.ToRequest(), nil
}

// UpdateSearchRadius persists a radius expansion. The radius only ever grows,
// so the update is guarded on the stored value.
func (r *RideRepo) UpdateSearchRadius(ctx context.Context, id uuid.UUID, radiusKm float64, attempt int) error {
	query := `
		UPDATE ride_requests
		SET radius_km = $2, attempt = $3, updated_at = now()
		WHERE id = $1 AND status = 'BROADCASTING' AND radius_km <= $2
	`
	_, err := r.db.ExecContext(ctx, query, id, radiusKm, attempt)
	if err != nil {
		return fmt.Errorf("failed to update search radius: %w", err)
	}
	return nil
}

// CommitMatch atomically transitions the request from BROADCASTING to MATCHED
// and records the match in the same transaction. The conditional update is the
// serializing primitive that makes a double commit impossible.
func (r *RideRepo) CommitMatch(ctx context.Context, match *models.RideMatch) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE ride_requests
		SET status = 'MATCHED', updated_at = now()
		WHERE id = $1 AND status = 'BROADCASTING'
	`, match.RequestID)
	if err != nil {
		return fmt.Errorf("failed to transition request to matched: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return dispatch.ErrConcurrentCommitConflict
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO ride_matches (request_id, driver_id, distance_at_match_km, matched_at)
		VALUES ($1, $2, $3, $4)
	`, match.RequestID, match.DriverID, match.DistanceAtMatchKm, match.MatchedAt)
	if err != nil {
		return fmt.Errorf("failed to insert ride match: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit match transaction: %w", err)
	}
	return nil
}

// ExpireRequest transitions BROADCASTING -> EXPIRED
func (r *RideRepo) ExpireRequest(ctx context.Context, id uuid.UUID) error {
	return r.conditionalTransition(ctx, id, models.RequestStatusBroadcasting, models.RequestStatusExpired)
}

// CancelRequest transitions BROADCASTING -> CANCELLED
func (r *RideRepo) CancelRequest(ctx context.Context, id uuid.UUID) error {
	return r.conditionalTransition(ctx, id, models.RequestStatusBroadcasting, models.RequestStatusCancelled)
}

func (r *RideRepo) conditionalTransition(ctx context.Context, id uuid.UUID, from, to models.RideRequestStatus) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE ride_requests
		SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2
	`, id, from, to)
	if err != nil {
		return fmt.Errorf("failed to transition ride request: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return dispatch.ErrNotBroadcasting
	}
	return nil
}

// ReopenRequest transitions MATCHED -> BROADCASTING and voids the live match
func (r *RideRepo) ReopenRequest(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE ride_requests
		SET status = 'BROADCASTING', updated_at = now()
		WHERE id = $1 AND status = 'MATCHED'
	`, id)
	if err != nil {
		return fmt.Errorf("failed to reopen ride request: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return dispatch.ErrNotMatched
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE ride_matches
		SET cancelled_at = now()
		WHERE request_id = $1 AND cancelled_at IS NULL
	`, id)
	if err != nil {
		return fmt.Errorf("failed to void ride match: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit reopen transaction: %w", err)
	}
	return nil
}

// GetMatch returns the live (non-cancelled) match for a request
func (r *RideRepo) GetMatch(ctx context.Context, requestID uuid.UUID) (*models.RideMatch, error) {
	query := `
		SELECT request_id, driver_id, distance_at_match_km, matched_at
		FROM ride_matches
		WHERE request_id = $1 AND cancelled_at IS NULL
	`
	var match models.RideMatch
	if err := r.db.GetContext(ctx, &match, query, requestID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dispatch.ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get ride match: %w", err)
	}
	return &match, nil
}
