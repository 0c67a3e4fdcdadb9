package court

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetAllCourts(ctx context.Context) ([]Court, error) {
	query := `
		SELECT id, name, description, image_url, hourly_rate, created_at
		FROM courts
		ORDER BY name
	`

	var courts []Court
	err := r.db.SelectContext(ctx, &courts, query)
	if err != nil {
		return nil, err
	}

	return courts, nil
}

func (r *repository) GetCourtByID(ctx context.Context, id int) (*Court, error) {
	query := `
		SELECT id, name, description, image_url, hourly_rate, created_at
		FROM courts
		WHERE id = $1
	`

	var court Court
	err := r.db.GetContext(ctx, &court, query, id)
	if err != nil {
		return nil, err
	}

	return &court, nil
}

func (r *repository) GetTimeSlots(ctx context.Context, courtID int, date string) ([]TimeSlot, error) {
	query := `
		SELECT id, court_id, date, start_time, end_time, is_booked, created_at
		FROM time_slots
		WHERE court_id = $1 AND date = $2
		ORDER BY start_time ASC
	`

	var slots []TimeSlot
	err := r.db.SelectContext(ctx, &slots, query, courtID, date)
	if err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *repository) GetTimeSlotByID(ctx context.Context, id int) (*TimeSlot, error) {
	query := `
		SELECT id, court_id, date, start_time, end_time, is_booked, created_at
		FROM time_slots
		WHERE id = $1
	`

	var slot TimeSlot
	err := r.db.GetContext(ctx, &slot, query, id)
	if err != nil {
		return nil, err
	}

	return &slot, nil
}
