package booking

import "time"

type Booking struct {
	ID            int       `db:"id" json:"id"`
	CourtID       int       `db:"court_id" json:"court_id"`
	TimeSlotID    int       `db:"time_slot_id" json:"time_slot_id"`
	CustomerName  string    `db:"customer_name" json:"customer_name"`
	CustomerEmail string    `db:"customer_email" json:"customer_email"`
	Date          string    `db:"date" json:"date"`
	StartTime     string    `db:"start_time" json:"start_time"`
	EndTime       string    `db:"end_time" json:"end_time"`
	TotalPrice    float64   `db:"total_price" json:"total_price"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

type BookingWithCourt struct {
	Booking
	CourtName       string  `db:"court_name" json:"court_name"`
	CourtHourlyRate float64 `db:"court_hourly_rate" json:"court_hourly_rate"`
}

type CreateBookingRequest struct {
	CourtID       int    `json:"court_id" validate:"required"`
	TimeSlotID    int    `json:"time_slot_id" validate:"required"`
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	Date          string `json:"date" validate:"required"`
	StartTime     string `json:"start_time" validate:"required"`
	EndTime       string `json:"end_time" validate:"required"`
	// Accepted for wire compatibility but never trusted; the server
	// recomputes the price from the court's hourly rate.
	TotalPrice float64 `json:"total_price"`
}

type CreateBookingResponse struct {
	Booking *Booking `json:"booking"`
}

type ListBookingsResponse struct {
	Bookings []BookingWithCourt `json:"bookings"`
}
