package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/chug2k/pickleball-booking/internal/court"
)

// MockCourtService is a mock implementation of court.Service
type MockCourtService struct {
	mock.Mock
}

func (m *MockCourtService) GetAllCourts(ctx context.Context) ([]court.Court, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]court.Court), args.Error(1)
}

func (m *MockCourtService) GetCourtByID(ctx context.Context, id int) (*court.Court, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*court.Court), args.Error(1)
}

func (m *MockCourtService) ListTimeSlots(ctx context.Context, courtID int, date string) ([]court.TimeSlot, error) {
	args := m.Called(ctx, courtID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]court.TimeSlot), args.Error(1)
}

func (m *MockCourtService) GetTimeSlotByID(ctx context.Context, id int) (*court.TimeSlot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*court.TimeSlot), args.Error(1)
}

func setupPagesRouter(svc court.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.LoadHTMLGlob("../../web/templates/*.html")
	NewHandler(svc).Register(r)
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHome(t *testing.T) {
	svc := new(MockCourtService)
	svc.On("GetAllCourts", mock.Anything).Return([]court.Court{
		{ID: 1, Name: "Center Court", HourlyRate: 25},
		{ID: 2, Name: "North Court", HourlyRate: 20},
	}, nil)

	w := get(setupPagesRouter(svc), "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Center Court")
	assert.Contains(t, w.Body.String(), "North Court")
}

func TestHome_ReadFailureRendersError(t *testing.T) {
	svc := new(MockCourtService)
	svc.On("GetAllCourts", mock.Anything).Return(nil, errors.New("pq: connection refused"))

	w := get(setupPagesRouter(svc), "/")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// the failure renders as an error state, never as "no courts"
	assert.Contains(t, w.Body.String(), "temporarily unavailable")
	assert.NotContains(t, w.Body.String(), "No courts")
}

func TestCourtPage(t *testing.T) {
	svc := new(MockCourtService)
	svc.On("GetCourtByID", mock.Anything, 1).Return(&court.Court{ID: 1, Name: "Center Court", HourlyRate: 25}, nil)
	svc.On("ListTimeSlots", mock.Anything, 1, "2024-06-01").Return([]court.TimeSlot{
		{ID: 10, CourtID: 1, Date: "2024-06-01", StartTime: "09:00", EndTime: "10:00"},
		{ID: 11, CourtID: 1, Date: "2024-06-01", StartTime: "10:00", EndTime: "11:00", IsBooked: true},
	}, nil)

	w := get(setupPagesRouter(svc), "/courts/1?date=2024-06-01")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "09:00 - 10:00")
	assert.Contains(t, w.Body.String(), "Booked")
}

func TestCourtPage_InvalidDateFallsBackToToday(t *testing.T) {
	svc := new(MockCourtService)
	svc.On("GetCourtByID", mock.Anything, 1).Return(&court.Court{ID: 1, Name: "Center Court"}, nil)
	svc.On("ListTimeSlots", mock.Anything, 1, court.Today()).Return([]court.TimeSlot{}, nil)

	w := get(setupPagesRouter(svc), "/courts/1?date=not-a-date")

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestCourtPage_UnknownCourt(t *testing.T) {
	svc := new(MockCourtService)
	svc.On("GetCourtByID", mock.Anything, 99).Return(nil, court.ErrCourtNotFound)

	w := get(setupPagesRouter(svc), "/courts/99")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCourtPage_NonNumericID(t *testing.T) {
	svc := new(MockCourtService)

	w := get(setupPagesRouter(svc), "/courts/abc")

	assert.Equal(t, http.StatusNotFound, w.Code)
	svc.AssertNotCalled(t, "GetCourtByID", mock.Anything, mock.Anything)
}

func TestCourtPage_SlotsReadFailureRendersErrorState(t *testing.T) {
	svc := new(MockCourtService)
	svc.On("GetCourtByID", mock.Anything, 1).Return(&court.Court{ID: 1, Name: "Center Court"}, nil)
	svc.On("ListTimeSlots", mock.Anything, 1, mock.Anything).Return(nil, errors.New("pq: connection refused"))

	w := get(setupPagesRouter(svc), "/courts/1")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "temporarily unavailable")
	assert.NotContains(t, w.Body.String(), "No time slots for this date")
}

func TestBookingsPage_SuccessBanner(t *testing.T) {
	svc := new(MockCourtService)

	w := get(setupPagesRouter(svc), "/bookings?success=true")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Booking confirmed successfully")
}

func TestNotFound(t *testing.T) {
	svc := new(MockCourtService)

	w := get(setupPagesRouter(svc), "/no-such-page")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
