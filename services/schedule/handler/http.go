package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ridelink/dispatch/internal/pkg/geo"
	"github.com/ridelink/dispatch/internal/pkg/models"
	"github.com/ridelink/dispatch/internal/utils"
	"github.com/ridelink/dispatch/services/schedule"
)

// CreateScheduleRequest is the payload for booking a ride in advance
type CreateScheduleRequest struct {
	Pickup   models.Coordinate   `json:"pickup"`
	Dropoff  models.Coordinate   `json:"dropoff"`
	Category models.RideCategory `json:"category"`
	PickupAt time.Time           `json:"pickup_at"`
}

// ModifyScheduleRequest is the payload for changing a booking
type ModifyScheduleRequest struct {
	Pickup   models.Coordinate `json:"pickup"`
	Dropoff  models.Coordinate `json:"dropoff"`
	PickupAt time.Time         `json:"pickup_at"`
}

// ScheduleResponse pairs a booking with its indicative fare quote
type ScheduleResponse struct {
	Schedule *models.ScheduledRide `json:"schedule"`
	Quote    *models.FareQuote     `json:"quote"`
}

// CreateScheduledRide handles POST /schedules
func (h *Handler) CreateScheduledRide(c echo.Context) error {
	riderID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req CreateScheduleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if !utils.IsValidCoordinate(req.Pickup) || !utils.IsValidCoordinate(req.Dropoff) {
		return utils.BadRequestResponse(c, "Invalid coordinates")
	}
	if req.Category == "" {
		req.Category = models.CategoryStandard
	}
	if !req.Category.IsValid() {
		return utils.BadRequestResponse(c, "Invalid ride category")
	}

	ride, quote, err := h.scheduleUC.CreateScheduledRide(c.Request().Context(), riderID, req.Pickup, req.Dropoff, req.Category, req.PickupAt)
	if err != nil {
		return h.mapScheduleError(c, err, "Failed to create scheduled ride")
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Scheduled ride created", ScheduleResponse{Schedule: ride, Quote: quote})
}

// ListRiderSchedules handles GET /schedules
func (h *Handler) ListRiderSchedules(c echo.Context) error {
	riderID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	rides, err := h.scheduleUC.ListRiderSchedules(c.Request().Context(), riderID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list scheduled rides")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Scheduled rides retrieved", rides)
}

// GetScheduledRide handles GET /schedules/:id
func (h *Handler) GetScheduledRide(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid schedule ID")
	}

	ride, err := h.scheduleUC.GetScheduledRide(c.Request().Context(), id)
	if err != nil {
		return h.mapScheduleError(c, err, "Failed to get scheduled ride")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Scheduled ride retrieved", ride)
}

// ModifyScheduledRide handles PUT /schedules/:id
func (h *Handler) ModifyScheduledRide(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid schedule ID")
	}

	var req ModifyScheduleRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request format")
	}
	if !utils.IsValidCoordinate(req.Pickup) || !utils.IsValidCoordinate(req.Dropoff) {
		return utils.BadRequestResponse(c, "Invalid coordinates")
	}

	ride, quote, err := h.scheduleUC.ModifyScheduledRide(c.Request().Context(), id, req.Pickup, req.Dropoff, req.PickupAt)
	if err != nil {
		return h.mapScheduleError(c, err, "Failed to modify scheduled ride")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Scheduled ride modified", ScheduleResponse{Schedule: ride, Quote: quote})
}

// CancelScheduledRide handles POST /schedules/:id/cancel
func (h *Handler) CancelScheduledRide(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid schedule ID")
	}

	outcome, err := h.scheduleUC.CancelScheduledRide(c.Request().Context(), id)
	if err != nil {
		return h.mapScheduleError(c, err, "Failed to cancel scheduled ride")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Scheduled ride cancelled", outcome)
}

// Tick handles POST /internal/tick, running one schedule sweep immediately
func (h *Handler) Tick(c echo.Context) error {
	if err := h.scheduleUC.Tick(c.Request().Context(), time.Now().UTC()); err != nil {
		return utils.InternalServerErrorResponse(c, "Schedule sweep failed")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Schedule sweep completed", nil)
}

func (h *Handler) mapScheduleError(c echo.Context, err error, fallback string) error {
	var oos *geo.OutOfServiceError
	switch {
	case errors.As(err, &oos):
		return utils.BadRequestResponse(c, oos.Error())
	case errors.Is(err, schedule.ErrScheduleNotFound):
		return utils.NotFoundResponse(c, "Scheduled ride not found")
	case errors.Is(err, schedule.ErrPickupTooSoon), errors.Is(err, schedule.ErrPickupTooFar):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, schedule.ErrTooLateToModify), errors.Is(err, schedule.ErrAlreadyStarted):
		return utils.ConflictResponse(c, err.Error())
	}
	return utils.InternalServerErrorResponse(c, fallback)
}
