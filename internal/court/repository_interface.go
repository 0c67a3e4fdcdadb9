package court

import "context"

type Repository interface {
	GetAllCourts(ctx context.Context) ([]Court, error)
	GetCourtByID(ctx context.Context, id int) (*Court, error)
	GetTimeSlots(ctx context.Context, courtID int, date string) ([]TimeSlot, error)
	GetTimeSlotByID(ctx context.Context, id int) (*TimeSlot, error)
}
