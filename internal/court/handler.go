package court

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chug2k/pickleball-booking/internal/api"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      List courts
// @Tags         courts
// @Produce      json
// @Success      200 {array} court.Court
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/courts [get]
func (h *Handler) ListCourts(c *gin.Context) {
	ctx := c.Request.Context()
	courts, err := h.service.GetAllCourts(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch courts"})
		return
	}

	c.JSON(http.StatusOK, courts)
}

// @Summary      List time slots for a court on a date
// @Tags         courts
// @Produce      json
// @Param        courtID path int true "Court ID"
// @Param        date query string false "Calendar date (YYYY-MM-DD), defaults to today"
// @Success      200 {array} court.TimeSlot
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/courts/{courtID}/slots [get]
func (h *Handler) ListTimeSlots(c *gin.Context) {
	courtIDStr := c.Param("courtID")
	courtID, err := strconv.Atoi(courtIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid court ID"})
		return
	}

	date := c.Query("date")
	if date == "" {
		date = Today()
	}

	ctx := c.Request.Context()
	slots, err := h.service.ListTimeSlots(ctx, courtID, date)
	if err != nil {
		switch err {
		case ErrCourtNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Court not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch time slots"})
		}
		return
	}

	c.JSON(http.StatusOK, slots)
}
