package booking

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrSlotAlreadyBooked = errors.New("time slot is already booked")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// CreateBooking flips the slot's is_booked flag and inserts the booking in a
// single transaction. The flip is conditional on the slot still being free;
// zero rows affected means a concurrent request won the slot, and the whole
// transaction aborts. A failed insert rolls the flip back, so a booking row
// can never exist without its slot marked booked, and vice versa.
func (r *repository) CreateBooking(ctx context.Context, p CreateParams) (*Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE time_slots
		SET is_booked = TRUE
		WHERE id = $1 AND is_booked = FALSE
	`, p.TimeSlotID)
	if err != nil {
		return nil, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrSlotAlreadyBooked
	}

	query := `
		INSERT INTO bookings (court_id, time_slot_id, customer_name, customer_email, date, start_time, end_time, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, court_id, time_slot_id, customer_name, customer_email, date, start_time, end_time, total_price, created_at
	`

	var booking Booking
	err = tx.GetContext(ctx, &booking, query,
		p.CourtID, p.TimeSlotID, p.CustomerName, p.CustomerEmail,
		p.Date, p.StartTime, p.EndTime, p.TotalPrice,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &booking, nil
}

// GetBookings returns every booking joined with its court's name and hourly
// rate, newest date first, later start first, ties by insertion order. A
// non-empty email restricts the result to exact matches.
func (r *repository) GetBookings(ctx context.Context, email string) ([]BookingWithCourt, error) {
	query := `
		SELECT
			b.id,
			b.court_id,
			b.time_slot_id,
			b.customer_name,
			b.customer_email,
			b.date,
			b.start_time,
			b.end_time,
			b.total_price,
			b.created_at,
			c.name AS court_name,
			c.hourly_rate AS court_hourly_rate
		FROM bookings b
		JOIN courts c ON b.court_id = c.id
	`
	args := []interface{}{}

	if email != "" {
		query += " WHERE b.customer_email = $1"
		args = append(args, email)
	}

	query += " ORDER BY b.date DESC, b.start_time DESC, b.id ASC"

	var bookings []BookingWithCourt
	err := r.db.SelectContext(ctx, &bookings, query, args...)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}
