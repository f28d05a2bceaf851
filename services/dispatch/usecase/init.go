package usecase

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ridelink/dispatch/internal/pkg/fare"
	"github.com/ridelink/dispatch/internal/pkg/geo"
	"github.com/ridelink/dispatch/internal/pkg/models"
	"github.com/ridelink/dispatch/services/dispatch"
)

// dispatchUC implements the dispatch.DispatchUC interface
type dispatchUC struct {
	cfg      *models.Config
	boundary *geo.Boundary
	calc     *fare.Calculator
	repo     dispatch.RideRepo
	registry dispatch.DriverRegistry
	gw       dispatch.DispatchGW

	// arbitrations holds the in-memory state of every request still
	// broadcasting in this process, keyed by request ID.
	mu           sync.Mutex
	arbitrations map[uuid.UUID]*arbitration
}

// NewDispatchUC creates the dispatch engine use case
func NewDispatchUC(
	cfg *models.Config,
	boundary *geo.Boundary,
	calc *fare.Calculator,
	repo dispatch.RideRepo,
	registry dispatch.DriverRegistry,
	gw dispatch.DispatchGW,
) dispatch.DispatchUC {
	return &dispatchUC{
		cfg:          cfg,
		boundary:     boundary,
		calc:         calc,
		repo:         repo,
		registry:     registry,
		gw:           gw,
		arbitrations: make(map[uuid.UUID]*arbitration),
	}
}

func (uc *dispatchUC) arbitration(requestID uuid.UUID) *arbitration {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.arbitrations[requestID]
}

func (uc *dispatchUC) registerArbitration(arb *arbitration) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.arbitrations[arb.request.ID] = arb
}

func (uc *dispatchUC) removeArbitration(requestID uuid.UUID) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.arbitrations, requestID)
}
