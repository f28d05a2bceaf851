package usecase

import (
	"github.com/ridelink/dispatch/internal/pkg/fare"
	"github.com/ridelink/dispatch/internal/pkg/geo"
	"github.com/ridelink/dispatch/internal/pkg/models"
	"github.com/ridelink/dispatch/services/dispatch"
	"github.com/ridelink/dispatch/services/schedule"
)

// scheduleUC implements the schedule.ScheduleUC interface
type scheduleUC struct {
	cfg      *models.Config
	boundary *geo.Boundary
	calc     *fare.Calculator
	repo     schedule.ScheduleRepo
	gw       schedule.ScheduleGW
	dispatch dispatch.DispatchUC
}

// NewScheduleUC creates the advance-booking use case
func NewScheduleUC(
	cfg *models.Config,
	boundary *geo.Boundary,
	calc *fare.Calculator,
	repo schedule.ScheduleRepo,
	gw schedule.ScheduleGW,
	dispatchUC dispatch.DispatchUC,
) schedule.ScheduleUC {
	return &scheduleUC{
		cfg:      cfg,
		boundary: boundary,
		calc:     calc,
		repo:     repo,
		gw:       gw,
		dispatch: dispatchUC,
	}
}
