package gateway

import (
	"context"

	"github.com/ridelink/dispatch/internal/pkg/constants"
	"github.com/ridelink/dispatch/internal/pkg/models"
	natspkg "github.com/ridelink/dispatch/internal/pkg/nats"
	"github.com/ridelink/dispatch/internal/pkg/retry"
)

// ScheduleGW publishes schedule notifications over NATS
type ScheduleGW struct {
	producer *natspkg.Producer
	retrier  *retry.Retrier
}

// NewScheduleGW creates the NATS-backed schedule gateway
func NewScheduleGW(producer *natspkg.Producer) *ScheduleGW {
	return &ScheduleGW{
		producer: producer,
		retrier:  retry.NewWithDefaults(),
	}
}

// NotifyRider publishes a rider-facing schedule notification
func (g *ScheduleGW) NotifyRider(ctx context.Context, event models.RiderEvent) error {
	return g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.producer.Publish(constants.SubjectRiderEvent, event)
	})
}

// NotifyDriver publishes a direct driver notification
func (g *ScheduleGW) NotifyDriver(ctx context.Context, event models.DriverEvent) error {
	return g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.producer.Publish(constants.SubjectDriverEvent, event)
	})
}
