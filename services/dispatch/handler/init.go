package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ridelink/dispatch/internal/pkg/middleware"
	"github.com/ridelink/dispatch/internal/pkg/models"
	natspkg "github.com/ridelink/dispatch/internal/pkg/nats"
	"github.com/ridelink/dispatch/services/dispatch"
)

// Handler exposes the dispatch engine over HTTP and NATS
type Handler struct {
	cfg        *models.Config
	dispatchUC dispatch.DispatchUC
	natsClient *natspkg.Client
}

// NewHandler creates a new dispatch handler
func NewHandler(cfg *models.Config, dispatchUC dispatch.DispatchUC, natsClient *natspkg.Client) *Handler {
	return &Handler{
		cfg:        cfg,
		dispatchUC: dispatchUC,
		natsClient: natsClient,
	}
}

// RegisterRoutes registers the dispatch HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	rides := e.Group("/rides", middleware.JWTAuthMiddleware(h.cfg.JWT))
	rides.POST("", h.RequestRide)
	rides.GET("/:id", h.GetRequest)
	rides.GET("/:id/match", h.GetMatch)
	rides.POST("/:id/accept", h.AcceptRide)
	rides.POST("/:id/reject", h.RejectRide)
	rides.POST("/:id/cancel", h.CancelRequest)
	rides.POST("/:id/driver-cancel", h.DriverCancelMatch)
}
