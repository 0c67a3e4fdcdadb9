package web

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chug2k/pickleball-booking/internal/court"
	"github.com/chug2k/pickleball-booking/internal/logger"
)

// Handler serves the server-rendered pages: the court list, the per-court
// booking view and the bookings lookup view.
type Handler struct {
	courts court.Service
}

func NewHandler(courts court.Service) *Handler {
	return &Handler{courts: courts}
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/", h.Home)
	r.GET("/courts/:courtID", h.CourtPage)
	r.GET("/bookings", h.BookingsPage)
	r.NoRoute(h.NotFound)
}

func (h *Handler) Home(c *gin.Context) {
	ctx := c.Request.Context()

	courts, err := h.courts.GetAllCourts(ctx)
	if err != nil {
		// A failed read renders as an error, never as "no courts".
		logger.Errorf("Failed to load courts for home page: %v", err)
		c.HTML(http.StatusInternalServerError, "home.html", gin.H{
			"LoadError": true,
		})
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"Courts": courts,
	})
}

type dateOption struct {
	Value    string
	Weekday  string
	Day      int
	Selected bool
}

func (h *Handler) CourtPage(c *gin.Context) {
	courtID, err := strconv.Atoi(c.Param("courtID"))
	if err != nil {
		h.NotFound(c)
		return
	}

	ctx := c.Request.Context()

	crt, err := h.courts.GetCourtByID(ctx, courtID)
	if err != nil {
		if errors.Is(err, court.ErrCourtNotFound) {
			h.NotFound(c)
			return
		}
		logger.Errorf("Failed to load court %d: %v", courtID, err)
		c.HTML(http.StatusInternalServerError, "home.html", gin.H{"LoadError": true})
		return
	}

	selectedDate := c.Query("date")
	if !court.ValidDate(selectedDate) {
		selectedDate = court.Today()
	}

	var slotsError bool
	slots, err := h.courts.ListTimeSlots(ctx, courtID, selectedDate)
	if err != nil {
		logger.Errorf("Failed to load slots for court %d on %s: %v", courtID, selectedDate, err)
		slotsError = true
	}

	dates := make([]dateOption, 0, 7)
	for _, d := range court.NextDates(7) {
		parsed, _ := time.Parse("2006-01-02", d)
		dates = append(dates, dateOption{
			Value:    d,
			Weekday:  parsed.Format("Mon"),
			Day:      parsed.Day(),
			Selected: d == selectedDate,
		})
	}

	c.HTML(http.StatusOK, "court.html", gin.H{
		"Court":        crt,
		"Slots":        slots,
		"SlotsError":   slotsError,
		"SelectedDate": selectedDate,
		"Dates":        dates,
	})
}

func (h *Handler) BookingsPage(c *gin.Context) {
	c.HTML(http.StatusOK, "bookings.html", gin.H{
		"ShowSuccess": c.Query("success") == "true",
	})
}

func (h *Handler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "notfound.html", gin.H{})
}
