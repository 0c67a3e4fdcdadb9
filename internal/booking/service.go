package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/chug2k/pickleball-booking/internal/court"
	"github.com/chug2k/pickleball-booking/internal/logger"
	"github.com/chug2k/pickleball-booking/internal/metrics"
)

var (
	ErrSlotNotFound  = errors.New("time slot not found")
	ErrCourtNotFound = errors.New("court not found")
	ErrSlotMismatch  = errors.New("booking details do not match the time slot")
)

// ConfirmationSender queues a booking-confirmation email. Satisfied by
// *email.Service.
type ConfirmationSender interface {
	SendBookingConfirmation(ctx context.Context, to, name, courtName, date, startTime, endTime string) error
}

type Service interface {
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error)
	ListBookings(ctx context.Context, email string) ([]BookingWithCourt, error)
}

type service struct {
	repo      Repository
	courtRepo court.Repository
	email     ConfirmationSender
}

// NewService wires the booking flow. email may be nil, in which case no
// confirmation is queued.
func NewService(repo Repository, courtRepo court.Repository, email ConfirmationSender) Service {
	return &service{
		repo:      repo,
		courtRepo: courtRepo,
		email:     email,
	}
}

// CreateBooking books a free slot. The client's court/date/time fields must
// match the referenced slot, and the price is always recomputed from the
// court's hourly rate; nothing price-related is trusted from the request.
func (s *service) CreateBooking(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	slot, err := s.courtRepo.GetTimeSlotByID(ctx, req.TimeSlotID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}

	if slot.CourtID != req.CourtID ||
		slot.Date != req.Date ||
		slot.StartTime != req.StartTime ||
		slot.EndTime != req.EndTime {
		return nil, ErrSlotMismatch
	}

	if slot.IsBooked {
		metrics.RecordBookingConflict()
		return nil, ErrSlotAlreadyBooked
	}

	crt, err := s.courtRepo.GetCourtByID(ctx, slot.CourtID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}

	total, err := slotPrice(crt.HourlyRate, slot.StartTime, slot.EndTime)
	if err != nil {
		return nil, fmt.Errorf("invalid slot times: %w", err)
	}

	booking, err := s.repo.CreateBooking(ctx, CreateParams{
		CourtID:       slot.CourtID,
		TimeSlotID:    slot.ID,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		Date:          slot.Date,
		StartTime:     slot.StartTime,
		EndTime:       slot.EndTime,
		TotalPrice:    total,
	})
	if err != nil {
		if errors.Is(err, ErrSlotAlreadyBooked) {
			metrics.RecordBookingConflict()
		}
		return nil, err
	}

	metrics.RecordBookingCreated()

	if s.email != nil {
		if err := s.email.SendBookingConfirmation(ctx, req.CustomerEmail, req.CustomerName, crt.Name, slot.Date, slot.StartTime, slot.EndTime); err != nil {
			logger.Errorf("Failed to queue confirmation for booking %d: %v", booking.ID, err)
		}
	}

	return booking, nil
}

func (s *service) ListBookings(ctx context.Context, email string) ([]BookingWithCourt, error) {
	bookings, err := s.repo.GetBookings(ctx, email)
	if err != nil {
		return nil, err
	}

	if bookings == nil {
		bookings = []BookingWithCourt{}
	}

	return bookings, nil
}

func slotPrice(hourlyRate float64, start, end string) (float64, error) {
	const layout = "15:04"

	from, err := time.Parse(layout, start)
	if err != nil {
		return 0, err
	}

	to, err := time.Parse(layout, end)
	if err != nil {
		return 0, err
	}

	d := to.Sub(from)
	if d <= 0 {
		return 0, errors.New("slot ends before it starts")
	}

	return hourlyRate * d.Hours(), nil
}
