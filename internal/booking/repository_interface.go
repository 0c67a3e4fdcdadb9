package booking

import "context"

type CreateParams struct {
	CourtID       int
	TimeSlotID    int
	CustomerName  string
	CustomerEmail string
	Date          string
	StartTime     string
	EndTime       string
	TotalPrice    float64
}

type Repository interface {
	CreateBooking(ctx context.Context, p CreateParams) (*Booking, error)
	GetBookings(ctx context.Context, email string) ([]BookingWithCourt, error)
}
