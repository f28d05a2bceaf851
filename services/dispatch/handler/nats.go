package handler

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/ridelink/dispatch/internal/pkg/constants"
	"github.com/ridelink/dispatch/internal/pkg/logger"
	"github.com/ridelink/dispatch/internal/pkg/models"
)

// InitNATSConsumers subscribes to the events the dispatch engine consumes.
// Queue-group subscriptions ensure one instance handles each message.
func (h *Handler) InitNATSConsumers() error {
	_, err := h.natsClient.QueueSubscribe(constants.SubjectRideCompleted, constants.QueueGroupDispatch, h.handleRideCompleted)
	if err != nil {
		return err
	}
	return nil
}

// handleRideCompleted settles the fare when the trip service reports a
// finished ride. Settlement is idempotent at the billing side, so redelivery
// is harmless.
func (h *Handler) handleRideCompleted(msg *nats.Msg) {
	var event models.RideCompletedEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to unmarshal ride completed event",
			logger.Err(err))
		return
	}

	if event.ActualDistanceKm < 0 || math.IsNaN(event.ActualDistanceKm) || math.IsInf(event.ActualDistanceKm, 0) {
		logger.Error("Discarding ride completed event with invalid distance",
			logger.String("request_id", event.RequestID.String()),
			logger.Float64("actual_distance_km", event.ActualDistanceKm))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	settlement, err := h.dispatchUC.CompleteRide(ctx, event.RequestID, event.ActualDistanceKm)
	if err != nil {
		logger.Error("Failed to settle completed ride",
			logger.String("request_id", event.RequestID.String()),
			logger.Err(err))
		return
	}

	logger.Info("Completed ride settled",
		logger.String("request_id", event.RequestID.String()),
		logger.Float64("actual_distance_km", event.ActualDistanceKm),
		logger.Float64("final_total", settlement.FinalTotal))
}
