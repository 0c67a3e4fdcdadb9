package court

import "time"

type Court struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	HourlyRate  float64   `db:"hourly_rate" json:"hourly_rate"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// TimeSlot belongs to a court on a single calendar day. Date and times are
// ISO-formatted strings ("2006-01-02", "15:04") treated as opaque keys; no
// timezone conversion happens anywhere.
type TimeSlot struct {
	ID        int       `db:"id" json:"id"`
	CourtID   int       `db:"court_id" json:"court_id"`
	Date      string    `db:"date" json:"date"`
	StartTime string    `db:"start_time" json:"start_time"`
	EndTime   string    `db:"end_time" json:"end_time"`
	IsBooked  bool      `db:"is_booked" json:"is_booked"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
