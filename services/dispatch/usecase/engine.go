package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ridelink/dispatch/internal/pkg/logger"
	"github.com/ridelink/dispatch/internal/pkg/models"
	"github.com/ridelink/dispatch/internal/utils"
	"github.com/ridelink/dispatch/services/dispatch"
)

// geohash precision for the pickup-area hint in driver notifications
const pickupAreaPrecision = 6

// RequestRide validates the trip against the service area, quotes the fare,
// persists the request and broadcasts it to nearby drivers.
func (uc *dispatchUC) RequestRide(ctx context.Context, riderID uuid.UUID, pickup, dropoff models.Coordinate, category models.RideCategory) (*models.RideRequest, *models.FareQuote, error) {
	zone, err := uc.boundary.ValidateTrip(pickup, dropoff)
	if err != nil {
		return nil, nil, err
	}

	distanceKm := utils.CalculateDistance(pickup, dropoff)
	quote := uc.calc.Estimate(distanceKm, zone, category)

	now := time.Now().UTC()
	req := &models.RideRequest{
		ID:          uuid.New(),
		RiderID:     riderID,
		Pickup:      pickup,
		Dropoff:     dropoff,
		Zone:        zone,
		Category:    category,
		Status:      models.RequestStatusBroadcasting,
		RadiusKm:    uc.cfg.Dispatch.InitialRadiusKm(zone),
		Attempt:     1,
		RequestedAt: now,
		UpdatedAt:   now,
	}

	if err := uc.repo.CreateRequest(ctx, req); err != nil {
		return nil, nil, err
	}

	arb := newArbitration(req)
	uc.registerArbitration(arb)
	uc.broadcast(ctx, arb)

	logger.Info("Ride request broadcasting",
		logger.String("request_id", req.ID.String()),
		logger.String("zone", string(zone)),
		logger.Float64("radius_km", req.RadiusKm),
		logger.Float64("estimated_fare", quote.EstimatedTotal))

	return req, &quote, nil
}

// broadcast queries the driver registry at the arbitration's current radius
// and notifies every newly included candidate. It also arms the per-attempt
// timeout. The arbitration mutex is never held across the registry call.
func (uc *dispatchUC) broadcast(ctx context.Context, arb *arbitration) {
	arb.mu.Lock()
	req := arb.request
	radius := arb.radiusKm
	known := make(map[string]struct{}, len(arb.candidates)+len(arb.rejected))
	for id := range arb.candidates {
		known[id] = struct{}{}
	}
	for id := range arb.rejected {
		known[id] = struct{}{}
	}
	arb.mu.Unlock()

	filter := models.CandidateFilter{Zone: req.Zone, Category: req.Category}
	candidates, err := uc.registry.QueryAvailable(ctx, req.Pickup, radius, filter)
	if err != nil {
		// Zero candidates is not surfaced to the rider; the attempt timeout
		// drives the retry via radius expansion.
		logger.Error("Driver registry query failed",
			logger.String("request_id", req.ID.String()),
			logger.Err(err))
		candidates = nil
	}

	fresh := make([]models.DriverCandidate, 0, len(candidates))
	for _, cand := range candidates {
		if _, seen := known[cand.DriverID]; !seen {
			fresh = append(fresh, cand)
		}
	}

	arb.mu.Lock()
	if arb.closed {
		arb.mu.Unlock()
		return
	}
	for _, cand := range fresh {
		arb.candidates[cand.DriverID] = cand
	}
	requestID := req.ID
	arb.timeoutTimer = time.AfterFunc(uc.cfg.Dispatch.AttemptTimeout(req.Zone), func() {
		uc.onAttemptTimeout(requestID)
	})
	arb.mu.Unlock()

	if len(fresh) == 0 {
		logger.Info("No new drivers available in radius",
			logger.String("request_id", req.ID.String()),
			logger.Float64("radius_km", radius))
		return
	}

	ids := make([]string, 0, len(fresh))
	for _, cand := range fresh {
		ids = append(ids, cand.DriverID)
	}
	event := models.DriverNotifyEvent{
		RequestID:   req.ID,
		DriverIDs:   ids,
		Pickup:      req.Pickup,
		Dropoff:     req.Dropoff,
		PickupArea:  utils.EncodeLocation(req.Pickup, pickupAreaPrecision),
		Zone:        req.Zone,
		Category:    req.Category,
		RadiusKm:    radius,
		PublishedAt: time.Now().UTC(),
	}
	uc.fireAndForget("notify_drivers", func(ctx context.Context) error {
		return uc.gw.NotifyDrivers(ctx, event)
	})
}

// AcceptRide buffers a driver acceptance for arbitration. The first
// acceptance opens the arbitration window; the call blocks until the window
// closes and the outcome is known. Acceptances for requests that already
// committed return ALREADY_MATCHED, which is informational, not an error.
func (uc *dispatchUC) AcceptRide(ctx context.Context, requestID, driverID uuid.UUID) (*models.AcceptOutcome, error) {
	arb := uc.arbitration(requestID)
	if arb == nil {
		return uc.resolveSettledAccept(ctx, requestID)
	}

	key := driverID.String()

	arb.mu.Lock()
	if arb.closed {
		arb.mu.Unlock()
		return &models.AcceptOutcome{Status: models.AcceptOutcomeAlreadyMatched}, nil
	}
	if _, rejected := arb.rejected[key]; rejected {
		arb.mu.Unlock()
		return &models.AcceptOutcome{Status: models.AcceptOutcomeNotWon}, nil
	}
	cand, notified := arb.candidates[key]
	if !notified {
		// Only drivers included in a broadcast attempt take part in arbitration
		arb.mu.Unlock()
		return &models.AcceptOutcome{Status: models.AcceptOutcomeNotWon}, nil
	}

	waiter := make(chan models.AcceptOutcome, 1)
	if existing, ok := arb.accepts[key]; ok {
		existing.waiters = append(existing.waiters, waiter)
	} else {
		arb.acceptSeq++
		arb.accepts[key] = &acceptance{
			driverID:   driverID,
			distanceKm: cand.DistanceToPickupKm,
			receivedAt: time.Now().UTC(),
			seq:        arb.acceptSeq,
			waiters:    []chan models.AcceptOutcome{waiter},
		}
		if len(arb.accepts) == 1 {
			// First acceptance opens the window; everyone buffered before it
			// closes competes on distance to pickup.
			arb.windowTimer = time.AfterFunc(uc.cfg.Dispatch.ArbitrationWindow, func() {
				uc.closeArbitration(requestID)
			})
		}
	}
	arb.mu.Unlock()

	select {
	case outcome := <-waiter:
		return &outcome, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// resolveSettledAccept answers an acceptance for a request with no live
// arbitration: the request already settled one way or another.
func (uc *dispatchUC) resolveSettledAccept(ctx context.Context, requestID uuid.UUID) (*models.AcceptOutcome, error) {
	req, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status == models.RequestStatusExpired {
		return nil, dispatch.ErrRequestExpired
	}
	return &models.AcceptOutcome{Status: models.AcceptOutcomeAlreadyMatched}, nil
}

// RejectRide removes a driver from further consideration for the request.
// It does not affect other candidates.
func (uc *dispatchUC) RejectRide(ctx context.Context, requestID, driverID uuid.UUID) error {
	arb := uc.arbitration(requestID)
	if arb == nil {
		return nil
	}

	key := driverID.String()

	arb.mu.Lock()
	defer arb.mu.Unlock()
	if arb.closed {
		return nil
	}
	arb.rejected[key] = struct{}{}
	delete(arb.candidates, key)
	if ac, ok := arb.accepts[key]; ok {
		delete(arb.accepts, key)
		deliver(ac, models.AcceptOutcome{Status: models.AcceptOutcomeNotWon})
	}
	return nil
}

// CancelRequest is the rider-initiated cancellation of a broadcasting request.
// The live arbitration is claimed before the persisted transition: either the
// cancel wins the request here, or the window already closed and its commit
// owns the row. A commit can therefore never follow a cancellation.
func (uc *dispatchUC) CancelRequest(ctx context.Context, requestID uuid.UUID) error {
	arb := uc.arbitration(requestID)
	if arb == nil {
		return uc.repo.CancelRequest(ctx, requestID)
	}

	arb.mu.Lock()
	if arb.closed {
		arb.mu.Unlock()
		return dispatch.ErrNotBroadcasting
	}
	arb.closed = true
	arb.stopTimers()
	accepts := make([]*acceptance, 0, len(arb.accepts))
	for _, ac := range arb.accepts {
		accepts = append(accepts, ac)
	}
	notified := arb.notifiedIDs("")
	req := arb.request
	arb.mu.Unlock()

	err := uc.repo.CancelRequest(ctx, requestID)
	if err != nil {
		logger.Error("Failed to persist rider cancellation",
			logger.String("request_id", requestID.String()),
			logger.Err(err))
	}

	for _, ac := range accepts {
		deliver(ac, models.AcceptOutcome{Status: models.AcceptOutcomeNotWon})
	}

	if len(notified) > 0 {
		retract := models.DriverRetractEvent{
			RequestID:   requestID,
			DriverIDs:   notified,
			PublishedAt: time.Now().UTC(),
		}
		uc.fireAndForget("retract_drivers", func(ctx context.Context) error {
			return uc.gw.RetractDrivers(ctx, retract)
		})
	}

	if err == nil {
		logger.Info("Ride request cancelled by rider",
			logger.String("request_id", requestID.String()),
			logger.String("rider_id", req.RiderID.String()))
	}

	uc.removeArbitration(requestID)
	return err
}

// DriverCancelMatch reopens a matched request into broadcasting at its last
// radius, excluding the cancelling driver, and restarts the timeout clock.
func (uc *dispatchUC) DriverCancelMatch(ctx context.Context, requestID, driverID uuid.UUID) error {
	match, err := uc.repo.GetMatch(ctx, requestID)
	if err != nil {
		return err
	}
	if match.DriverID != driverID {
		return dispatch.ErrDriverMismatch
	}

	if err := uc.repo.ReopenRequest(ctx, requestID); err != nil {
		return err
	}

	if err := uc.registry.SetStatus(ctx, driverID.String(), models.DriverStatusAvailable); err != nil {
		logger.Warn("Failed to free cancelling driver",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
	}

	req, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}

	arb := newArbitration(req)
	arb.rejected[driverID.String()] = struct{}{}
	uc.registerArbitration(arb)

	logger.Info("Matched driver cancelled, reopening broadcast",
		logger.String("request_id", requestID.String()),
		logger.String("driver_id", driverID.String()),
		logger.Float64("radius_km", req.RadiusKm))

	riderEvent := models.RiderEvent{
		RiderID:     req.RiderID,
		RequestID:   &req.ID,
		Event:       models.RiderEventReopened,
		Message:     "Your driver cancelled. Searching for a new driver.",
		PublishedAt: time.Now().UTC(),
	}
	uc.fireAndForget("notify_rider", func(ctx context.Context) error {
		return uc.gw.NotifyRider(ctx, riderEvent)
	})

	uc.broadcast(ctx, arb)
	return nil
}

// CompleteRide settles the fare against the actual traveled distance and
// frees the matched driver. The quote is recomputed from the persisted
// request; estimation is deterministic so the replay matches the original.
func (uc *dispatchUC) CompleteRide(ctx context.Context, requestID uuid.UUID, actualDistanceKm float64) (*models.FareSettlement, error) {
	req, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != models.RequestStatusMatched {
		return nil, dispatch.ErrNotMatched
	}

	match, err := uc.repo.GetMatch(ctx, requestID)
	if err != nil {
		return nil, err
	}

	estimateKm := utils.CalculateDistance(req.Pickup, req.Dropoff)
	quote := uc.calc.Estimate(estimateKm, req.Zone, req.Category)
	settlement := uc.calc.Settle(actualDistanceKm, quote)

	if err := uc.registry.SetStatus(ctx, match.DriverID.String(), models.DriverStatusAvailable); err != nil {
		logger.Warn("Failed to free driver after completion",
			logger.String("driver_id", match.DriverID.String()),
			logger.Err(err))
	}

	event := models.SettlementEvent{
		RequestID:   requestID,
		DriverID:    match.DriverID,
		RiderID:     req.RiderID,
		Settlement:  settlement,
		PublishedAt: time.Now().UTC(),
	}
	uc.fireAndForget("publish_settlement", func(ctx context.Context) error {
		return uc.gw.PublishSettlement(ctx, event)
	})

	logger.Info("Ride completed and settled",
		logger.String("request_id", requestID.String()),
		logger.Float64("final_total", settlement.FinalTotal),
		logger.Bool("capped", settlement.Capped))

	return &settlement, nil
}

// GetRequest retrieves a ride request by ID
func (uc *dispatchUC) GetRequest(ctx context.Context, requestID uuid.UUID) (*models.RideRequest, error) {
	return uc.repo.GetRequest(ctx, requestID)
}

// GetMatch retrieves the live match for a request
func (uc *dispatchUC) GetMatch(ctx context.Context, requestID uuid.UUID) (*models.RideMatch, error) {
	return uc.repo.GetMatch(ctx, requestID)
}
