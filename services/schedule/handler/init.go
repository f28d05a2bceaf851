package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/ridelink/dispatch/internal/pkg/middleware"
	"github.com/ridelink/dispatch/internal/pkg/models"
	"github.com/ridelink/dispatch/services/schedule"
)

// Handler exposes advance bookings over HTTP
type Handler struct {
	cfg        *models.Config
	scheduleUC schedule.ScheduleUC
}

// NewHandler creates a new schedule handler
func NewHandler(cfg *models.Config, scheduleUC schedule.ScheduleUC) *Handler {
	return &Handler{cfg: cfg, scheduleUC: scheduleUC}
}

// RegisterRoutes registers the schedule HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	schedules := e.Group("/schedules", middleware.JWTAuthMiddleware(h.cfg.JWT))
	schedules.POST("", h.CreateScheduledRide)
	schedules.GET("", h.ListRiderSchedules)
	schedules.GET("/:id", h.GetScheduledRide)
	schedules.PUT("/:id", h.ModifyScheduledRide)
	schedules.POST("/:id/cancel", h.CancelScheduledRide)

	// The clock trigger for deployments that drive the sweep externally
	internal := e.Group("/internal", middleware.ValidateAPIKey(h.cfg.Server.InternalAPIKey))
	internal.POST("/tick", h.Tick)
}
