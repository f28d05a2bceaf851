package dispatch

import (
	"context"

	"github.com/google/uuid"

	"github.com/ridelink/dispatch/internal/pkg/models"
)

// RideRepo defines persistence operations for ride requests and matches.
// Status transitions are conditional updates: the store only applies them
// when the row is still in the expected state.
type RideRepo interface {
	CreateRequest(ctx context.Context, req *models.RideRequest) error
	GetRequest(ctx context.Context, id uuid.UUID) (*models.RideRequest, error)

	// UpdateSearchRadius persists a radius expansion for a broadcasting request
	UpdateSearchRadius(ctx context.Context, id uuid.UUID, radiusKm float64, attempt int) error

	// CommitMatch atomically transitions BROADCASTING -> MATCHED and records
	// the match in the same transaction. Returns ErrConcurrentCommitConflict
	// when the request was no longer broadcasting.
	CommitMatch(ctx context.Context, match *models.RideMatch) error

	// ExpireRequest transitions BROADCASTING -> EXPIRED
	ExpireRequest(ctx context.Context, id uuid.UUID) error

	// CancelRequest transitions BROADCASTING -> CANCELLED
	CancelRequest(ctx context.Context, id uuid.UUID) error

	// ReopenRequest transitions MATCHED -> BROADCASTING and voids the match
	ReopenRequest(ctx context.Context, id uuid.UUID) error

	// GetMatch returns the live (non-cancelled) match for a request
	GetMatch(ctx context.Context, requestID uuid.UUID) (*models.RideMatch, error)
}

// DriverRegistry is the live driver-availability registry consulted at
// broadcast time. Backed by Redis geo sets in production; faked in tests.
type DriverRegistry interface {
	QueryAvailable(ctx context.Context, center models.Coordinate, radiusKm float64, filter models.CandidateFilter) ([]models.DriverCandidate, error)
	SetStatus(ctx context.Context, driverID string, status models.DriverStatus) error
}
