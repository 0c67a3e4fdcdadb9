package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chug2k/pickleball-booking/internal/api"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Create a booking
// @Description  Books a free time slot and returns the created booking.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request body booking.CreateBookingRequest true "Booking payload"
// @Success      200 {object} booking.CreateBookingResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      409 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	if errs := api.ValidateStruct(req); len(errs) > 0 {
		api.RespondWithValidationErrors(c, errs)
		return
	}

	ctx := c.Request.Context()
	booking, err := h.service.CreateBooking(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Time slot not found"})
		case errors.Is(err, ErrCourtNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Court not found"})
		case errors.Is(err, ErrSlotMismatch):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Booking details do not match the time slot"})
		case errors.Is(err, ErrSlotAlreadyBooked):
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Time slot is already booked"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, CreateBookingResponse{Booking: booking})
}

// @Summary      List bookings
// @Description  Returns all bookings, each with its court's name and hourly rate. An email query restricts to exact matches.
// @Tags         bookings
// @Produce      json
// @Param        email query string false "Customer email (exact match)"
// @Success      200 {object} booking.ListBookingsResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/bookings [get]
func (h *Handler) ListBookings(c *gin.Context) {
	email := c.Query("email")

	ctx := c.Request.Context()
	bookings, err := h.service.ListBookings(ctx, email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ListBookingsResponse{Bookings: bookings})
}
