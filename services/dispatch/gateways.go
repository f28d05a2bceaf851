package dispatch

import (
	"context"

	"github.com/ridelink/dispatch/internal/pkg/models"
)

// DispatchGW publishes dispatch notifications. Delivery is fire-and-forget
// with at-least-once semantics; the engine never blocks on acknowledgment.
type DispatchGW interface {
	NotifyDrivers(ctx context.Context, event models.DriverNotifyEvent) error
	RetractDrivers(ctx context.Context, event models.DriverRetractEvent) error
	NotifyRider(ctx context.Context, event models.RiderEvent) error
	PublishSettlement(ctx context.Context, event models.SettlementEvent) error
}
