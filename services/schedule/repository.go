package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ridelink/dispatch/internal/pkg/models"
)

// ScheduleRepo defines persistence operations for scheduled rides. The Mark*
// transitions are conditional updates that report whether this caller won the
// transition, which makes the sweep idempotent across reruns and instances.
type ScheduleRepo interface {
	Create(ctx context.Context, ride *models.ScheduledRide) error
	Get(ctx context.Context, id uuid.UUID) (*models.ScheduledRide, error)
	ListByRider(ctx context.Context, riderID uuid.UUID) ([]*models.ScheduledRide, error)

	// Update persists modified pickup details for a SCHEDULED booking
	Update(ctx context.Context, ride *models.ScheduledRide) error

	// DuePromotions returns SCHEDULED bookings whose pickup is within the
	// promotion lead of now.
	DuePromotions(ctx context.Context, now time.Time, lead time.Duration) ([]*models.ScheduledRide, error)

	// DueReminders returns PROMOTING bookings within the reminder lead that
	// have not been reminded yet.
	DueReminders(ctx context.Context, now time.Time, lead time.Duration) ([]*models.ScheduledRide, error)

	// Overdue returns PROMOTING, unmatched bookings whose pickup time passed
	// more than grace ago.
	Overdue(ctx context.Context, now time.Time, grace time.Duration) ([]*models.ScheduledRide, error)

	// MarkPromoting transitions SCHEDULED -> PROMOTING, claiming the booking
	// for this sweep. Returns false if another sweep already claimed it.
	MarkPromoting(ctx context.Context, id uuid.UUID) (bool, error)

	// SetPromotedRequest records the live request a claimed booking was
	// promoted into.
	SetPromotedRequest(ctx context.Context, id uuid.UUID, requestID uuid.UUID) error

	// MarkReminderSent stamps reminder_sent_at once; false if already stamped
	MarkReminderSent(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)

	// MarkMatched transitions PROMOTING -> MATCHED
	MarkMatched(ctx context.Context, id uuid.UUID) (bool, error)

	// MarkNoDriverFound transitions PROMOTING -> NO_DRIVER_FOUND
	MarkNoDriverFound(ctx context.Context, id uuid.UUID) (bool, error)

	// MarkCancelled transitions SCHEDULED or PROMOTING -> CANCELLED
	MarkCancelled(ctx context.Context, id uuid.UUID) (bool, error)
}
