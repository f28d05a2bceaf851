package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ridelink/dispatch/internal/pkg/geo"
	"github.com/ridelink/dispatch/internal/pkg/models"
	"github.com/ridelink/dispatch/internal/utils"
	"github.com/ridelink/dispatch/services/dispatch"
)

// RequestRideRequest is the payload for creating a ride request
type RequestRideRequest struct {
	Pickup   models.Coordinate   `json:"pickup"`
	Dropoff  models.Coordinate   `json:"dropoff"`
	Category models.RideCategory `json:"category"`
}

// RequestRideResponse carries the created request together with its fare quote
type RequestRideResponse struct {
	Request *models.RideRequest `json:"request"`
	Quote   *models.FareQuote   `json:"quote"`
}

// RequestRide handles POST /rides
func (h *Handler) RequestRide(c echo.Context) error {
	riderID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req RequestRideRequest
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

	request, quote, err := h.dispatchUC.RequestRide(c.Request().Context(), riderID, req.Pickup, req.Dropoff, req.Category)
	if err != nil {
		var oos *geo.OutOfServiceError
		if errors.As(err, &oos) {
			return utils.BadRequestResponse(c, oos.Error())
		}
		return utils.InternalServerErrorResponse(c, "Failed to create ride request")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride request created", RequestRideResponse{
		Request: request,
		Quote:   quote,
	})
}

// GetRequest handles GET /rides/:id
func (h *Handler) GetRequest(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	request, err := h.dispatchUC.GetRequest(c.Request().Context(), requestID)
	if err != nil {
		if errors.Is(err, dispatch.ErrRequestNotFound) {
			return utils.NotFoundResponse(c, "Ride request not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to get ride request")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride request retrieved", request)
}

// GetMatch handles GET /rides/:id/match
func (h *Handler) GetMatch(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	match, err := h.dispatchUC.GetMatch(c.Request().Context(), requestID)
	if err != nil {
		if errors.Is(err, dispatch.ErrMatchNotFound) {
			return utils.NotFoundResponse(c, "Ride match not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to get ride match")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride match retrieved", match)
}

// AcceptRide handles POST /rides/:id/accept. The call blocks until the
// arbitration window resolves and returns the driver's outcome.
func (h *Handler) AcceptRide(c echo.Context) error {
	driverID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	outcome, err := h.dispatchUC.AcceptRide(c.Request().Context(), requestID, driverID)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrRequestNotFound):
			return utils.NotFoundResponse(c, "Ride request not found")
		case errors.Is(err, dispatch.ErrRequestExpired):
			return utils.ErrorResponseHandler(c, http.StatusGone, "Ride request has expired")
		}
		return utils.InternalServerErrorResponse(c, "Failed to accept ride")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Acceptance resolved", outcome)
}

// RejectRide handles POST /rides/:id/reject
func (h *Handler) RejectRide(c echo.Context) error {
	driverID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	if err := h.dispatchUC.RejectRide(c.Request().Context(), requestID, driverID); err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to reject ride")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride rejected", nil)
}

// CancelRequest handles POST /rides/:id/cancel
func (h *Handler) CancelRequest(c echo.Context) error {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	if err := h.dispatchUC.CancelRequest(c.Request().Context(), requestID); err != nil {
		if errors.Is(err, dispatch.ErrNotBroadcasting) {
			return utils.ConflictResponse(c, "Ride request is no longer broadcasting")
		}
		return utils.InternalServerErrorResponse(c, "Failed to cancel ride request")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride request cancelled", nil)
}

// DriverCancelMatch handles POST /rides/:id/driver-cancel
func (h *Handler) DriverCancelMatch(c echo.Context) error {
	driverID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid request ID")
	}

	if err := h.dispatchUC.DriverCancelMatch(c.Request().Context(), requestID, driverID); err != nil {
		switch {
		case errors.Is(err, dispatch.ErrMatchNotFound):
			return utils.NotFoundResponse(c, "Ride match not found")
		case errors.Is(err, dispatch.ErrDriverMismatch):
			return utils.ErrorResponseHandler(c, http.StatusForbidden, "Driver is not assigned to this ride")
		case errors.Is(err, dispatch.ErrNotMatched):
			return utils.ConflictResponse(c, "Ride request is not matched")
		}
		return utils.InternalServerErrorResponse(c, "Failed to cancel match")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Match cancelled, request reopened", nil)
}
