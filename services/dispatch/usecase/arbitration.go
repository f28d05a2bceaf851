package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ridelink/dispatch/internal/pkg/logger"
	"github.com/ridelink/dispatch/internal/pkg/models"
	"github.com/ridelink/dispatch/services/dispatch"
)

// acceptance is one driver's buffered acceptance inside the arbitration
// window. A driver may retry the accept call; every retry gets its own
// waiter channel and receives the same outcome.
type acceptance struct {
	driverID   uuid.UUID
	distanceKm float64
	receivedAt time.Time
	seq        int
	waiters    []chan models.AcceptOutcome
}

// arbitration is the per-request mutable dispatch state. Its mutex is the
// single serializing primitive for the request: acceptance buffering, the
// window close, timeout firing and cancellation all synchronize on it, and
// it is never held across external I/O.
type arbitration struct {
	mu      sync.Mutex
	request *models.RideRequest

	radiusKm float64
	attempt  int

	candidates map[string]models.DriverCandidate // notified drivers, keyed by driver ID
	rejected   map[string]struct{}
	accepts    map[string]*acceptance
	acceptSeq  int

	windowTimer  *time.Timer
	timeoutTimer *time.Timer
	closed       bool
}

func newArbitration(req *models.RideRequest) *arbitration {
	return &arbitration{
		request:    req,
		radiusKm:   req.RadiusKm,
		attempt:    req.Attempt,
		candidates: make(map[string]models.DriverCandidate),
		rejected:   make(map[string]struct{}),
		accepts:    make(map[string]*acceptance),
	}
}

// notifiedIDs returns the IDs of every candidate notified so far, minus the
// excluded driver (empty string excludes nobody).
func (a *arbitration) notifiedIDs(exclude string) []string {
	ids := make([]string, 0, len(a.candidates))
	for id := range a.candidates {
		if id != exclude {
			ids = append(ids, id)
		}
	}
	return ids
}

// stopTimers stops both timers. Stopping is race-free with firing: a timer
// callback that already started re-checks the closed flag under the mutex
// and becomes a no-op.
func (a *arbitration) stopTimers() {
	if a.windowTimer != nil {
		a.windowTimer.Stop()
	}
	if a.timeoutTimer != nil {
		a.timeoutTimer.Stop()
	}
}

// pickWinner returns the buffered acceptance with the smallest distance to
// pickup. Ties break by earliest arrival. Caller holds the mutex.
func (a *arbitration) pickWinner() *acceptance {
	var winner *acceptance
	for _, ac := range a.accepts {
		if winner == nil {
			winner = ac
			continue
		}
		if ac.distanceKm < winner.distanceKm ||
			(ac.distanceKm == winner.distanceKm && ac.seq < winner.seq) {
			winner = ac
		}
	}
	return winner
}

// deliver sends the outcome to every waiter of an acceptance. Channels are
// buffered so delivery never blocks the arbitration path.
func deliver(ac *acceptance, outcome models.AcceptOutcome) {
	for _, ch := range ac.waiters {
		select {
		case ch <- outcome:
		default:
		}
	}
}

// closeArbitration resolves the buffered acceptances of a request into one
// winner. Fired by the arbitration window timer armed on the first
// acceptance; a late call after cancellation or expiry is a no-op.
func (uc *dispatchUC) closeArbitration(requestID uuid.UUID) {
	arb := uc.arbitration(requestID)
	if arb == nil {
		return
	}

	arb.mu.Lock()
	if arb.closed || len(arb.accepts) == 0 {
		arb.mu.Unlock()
		return
	}
	winner := arb.pickWinner()
	arb.closed = true
	arb.stopTimers()
	req := arb.request
	accepts := make([]*acceptance, 0, len(arb.accepts))
	for _, ac := range arb.accepts {
		accepts = append(accepts, ac)
	}
	losers := arb.notifiedIDs(winner.driverID.String())
	arb.mu.Unlock()

	match := &models.RideMatch{
		RequestID:         req.ID,
		DriverID:          winner.driverID,
		DistanceAtMatchKm: winner.distanceKm,
		MatchedAt:         time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := uc.repo.CommitMatch(ctx, match); err != nil {
		uc.removeArbitration(req.ID)
		if errors.Is(err, dispatch.ErrConcurrentCommitConflict) {
			// The per-request lock serializes commits, so a conflict here
			// means the persistence layer is broken. Never retried.
			logger.Error("Concurrent commit conflict on match",
				logger.String("request_id", req.ID.String()),
				logger.String("driver_id", winner.driverID.String()))
			for _, ac := range accepts {
				deliver(ac, models.AcceptOutcome{Status: models.AcceptOutcomeAlreadyMatched})
			}
			return
		}
		logger.Error("Failed to commit match",
			logger.String("request_id", req.ID.String()),
			logger.Err(err))
		for _, ac := range accepts {
			deliver(ac, models.AcceptOutcome{Status: models.AcceptOutcomeNotWon})
		}
		return
	}

	if err := uc.registry.SetStatus(ctx, winner.driverID.String(), models.DriverStatusBusy); err != nil {
		logger.Warn("Failed to mark winning driver busy",
			logger.String("driver_id", winner.driverID.String()),
			logger.Err(err))
	}

	for _, ac := range accepts {
		if ac.driverID == winner.driverID {
			deliver(ac, models.AcceptOutcome{Status: models.AcceptOutcomeWon, Match: match})
		} else {
			deliver(ac, models.AcceptOutcome{Status: models.AcceptOutcomeNotWon})
		}
	}

	logger.Info("Ride request matched",
		logger.String("request_id", req.ID.String()),
		logger.String("driver_id", winner.driverID.String()),
		logger.Float64("distance_km", winner.distanceKm))

	if len(losers) > 0 {
		retract := models.DriverRetractEvent{
			RequestID:   req.ID,
			DriverIDs:   losers,
			PublishedAt: time.Now().UTC(),
		}
		uc.fireAndForget("retract_drivers", func(ctx context.Context) error {
			return uc.gw.RetractDrivers(ctx, retract)
		})
	}

	riderEvent := models.RiderEvent{
		RiderID:     req.RiderID,
		RequestID:   &req.ID,
		Event:       models.RiderEventMatched,
		DriverID:    winner.driverID.String(),
		PublishedAt: time.Now().UTC(),
	}
	uc.fireAndForget("notify_rider", func(ctx context.Context) error {
		return uc.gw.NotifyRider(ctx, riderEvent)
	})

	uc.removeArbitration(req.ID)
}

// onAttemptTimeout fires when a broadcast attempt elapses with zero buffered
// acceptances: the radius expands and the request re-broadcasts, until the
// expansion ceiling is reached and the request expires.
func (uc *dispatchUC) onAttemptTimeout(requestID uuid.UUID) {
	arb := uc.arbitration(requestID)
	if arb == nil {
		return
	}

	arb.mu.Lock()
	if arb.closed {
		arb.mu.Unlock()
		return
	}
	if len(arb.accepts) > 0 {
		// Acceptances are buffered; the arbitration window resolves them.
		arb.mu.Unlock()
		return
	}

	req := arb.request
	if arb.attempt > uc.cfg.Dispatch.MaxExpansions {
		arb.closed = true
		arb.stopTimers()
		notified := arb.notifiedIDs("")
		arb.mu.Unlock()
		uc.expireRequest(req, notified)
		return
	}

	arb.attempt++
	arb.radiusKm += uc.cfg.Dispatch.IncrementKm(req.Zone)
	radius := arb.radiusKm
	attempt := arb.attempt
	arb.mu.Unlock()

	logger.Info("Broadcast attempt timed out, expanding radius",
		logger.String("request_id", req.ID.String()),
		logger.Float64("radius_km", radius),
		logger.Int("attempt", attempt))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := uc.repo.UpdateSearchRadius(ctx, req.ID, radius, attempt); err != nil {
		logger.Error("Failed to persist radius expansion",
			logger.String("request_id", req.ID.String()),
			logger.Err(err))
	}

	uc.broadcast(ctx, arb)
}

func (uc *dispatchUC) expireRequest(req *models.RideRequest, notified []string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := uc.repo.ExpireRequest(ctx, req.ID); err != nil {
		logger.Error("Failed to expire ride request",
			logger.String("request_id", req.ID.String()),
			logger.Err(err))
	} else {
		logger.Info("Ride request expired after exhausting radius expansions",
			logger.String("request_id", req.ID.String()))
	}

	if len(notified) > 0 {
		retract := models.DriverRetractEvent{
			RequestID:   req.ID,
			DriverIDs:   notified,
			PublishedAt: time.Now().UTC(),
		}
		uc.fireAndForget("retract_drivers", func(ctx context.Context) error {
			return uc.gw.RetractDrivers(ctx, retract)
		})
	}

	riderEvent := models.RiderEvent{
		RiderID:     req.RiderID,
		RequestID:   &req.ID,
		Event:       models.RiderEventExpired,
		Message:     "No driver accepted the request. Please try again.",
		PublishedAt: time.Now().UTC(),
	}
	uc.fireAndForget("notify_rider", func(ctx context.Context) error {
		return uc.gw.NotifyRider(ctx, riderEvent)
	})

	uc.removeArbitration(req.ID)
}

// fireAndForget runs a notification publish in the background. Notification
// delivery is at-least-once and advisory; dispatch paths never block on it.
func (uc *dispatchUC) fireAndForget(op string, fn func(context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := fn(ctx); err != nil {
			logger.Warn("Notification publish failed",
				logger.String("operation", op),
				logger.Err(err))
		}
	}()
}
