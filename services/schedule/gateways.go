package schedule

import (
	"context"

	"github.com/ridelink/dispatch/internal/pkg/models"
)

// ScheduleGW publishes schedule notifications to riders and matched drivers
type ScheduleGW interface {
	NotifyRider(ctx context.Context, event models.RiderEvent) error
	NotifyDriver(ctx context.Context, event models.DriverEvent) error
}
