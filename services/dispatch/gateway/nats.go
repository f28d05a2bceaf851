package gateway

import (
	"context"

	"github.com/ridelink/dispatch/internal/pkg/constants"
	"github.com/ridelink/dispatch/internal/pkg/models"
	natspkg "github.com/ridelink/dispatch/internal/pkg/nats"
	"github.com/ridelink/dispatch/internal/pkg/retry"
)

// DispatchGW publishes dispatch events over NATS. Publishes retry with
// exponential backoff; a publish that still fails is logged by the caller
// and dropped, never blocking the dispatch path.
type DispatchGW struct {
	producer *natspkg.Producer
	retrier  *retry.Retrier
}

// NewDispatchGW creates the NATS-backed dispatch gateway
func NewDispatchGW(producer *natspkg.Producer) *DispatchGW {
	return &DispatchGW{
		producer: producer,
		retrier:  retry.NewWithDefaults(),
	}
}

// NotifyDrivers broadcasts a ride request to candidate drivers
func (g *DispatchGW) NotifyDrivers(ctx context.Context, event models.DriverNotifyEvent) error {
	return g.publish(ctx, constants.SubjectDriverNotify, event)
}

// RetractDrivers withdraws a broadcast from drivers who did not win
func (g *DispatchGW) RetractDrivers(ctx context.Context, event models.DriverRetractEvent) error {
	return g.publish(ctx, constants.SubjectDriverRetract, event)
}

// NotifyRider publishes a rider-facing notification
func (g *DispatchGW) NotifyRider(ctx context.Context, event models.RiderEvent) error {
	return g.publish(ctx, constants.SubjectRiderEvent, event)
}

// PublishSettlement publishes a settled fare for the billing service
func (g *DispatchGW) PublishSettlement(ctx context.Context, event models.SettlementEvent) error {
	return g.publish(ctx, constants.SubjectSettlement, event)
}

func (g *DispatchGW) publish(ctx context.Context, subject string, event interface{}) error {
	return g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.producer.Publish(subject, event)
	})
}
