package court

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/chug2k/pickleball-booking/internal/cache"
	"github.com/chug2k/pickleball-booking/internal/logger"
	"github.com/chug2k/pickleball-booking/internal/metrics"
)

var (
	ErrCourtNotFound = errors.New("court not found")
	ErrSlotNotFound  = errors.New("time slot not found")
)

const courtsCacheKey = "courts:all"

type Service interface {
	GetAllCourts(ctx context.Context) ([]Court, error)
	GetCourtByID(ctx context.Context, id int) (*Court, error)
	ListTimeSlots(ctx context.Context, courtID int, date string) ([]TimeSlot, error)
	GetTimeSlotByID(ctx context.Context, id int) (*TimeSlot, error)
}

type service struct {
	repo     Repository
	cache    *cache.Cache
	cacheTTL time.Duration
}

// NewService wires the court reads. cache may be nil, in which case every
// read goes straight to Postgres.
func NewService(repo Repository, c *cache.Cache, cacheTTL time.Duration) Service {
	return &service{
		repo:     repo,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

func (s *service) GetAllCourts(ctx context.Context) ([]Court, error) {
	if s.cache != nil {
		var cached []Court
		found, err := s.cache.GetJSON(ctx, courtsCacheKey, &cached)
		if err != nil {
			logger.Errorf("Court cache read failed: %v", err)
		}
		if found {
			metrics.RecordCourtCache("hit")
			return cached, nil
		}
		metrics.RecordCourtCache("miss")
	}

	courts, err := s.repo.GetAllCourts(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, courtsCacheKey, courts, s.cacheTTL); err != nil {
			logger.Errorf("Court cache write failed: %v", err)
		}
	}

	return courts, nil
}

func (s *service) GetCourtByID(ctx context.Context, id int) (*Court, error) {
	court, err := s.repo.GetCourtByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	return court, nil
}

// ListTimeSlots returns the slots for a court on one date, earliest first.
// Zero slots is an empty slice; a failed read is an error, never silently
// presented as "nothing available".
func (s *service) ListTimeSlots(ctx context.Context, courtID int, date string) ([]TimeSlot, error) {
	if _, err := s.GetCourtByID(ctx, courtID); err != nil {
		return nil, err
	}

	slots, err := s.repo.GetTimeSlots(ctx, courtID, date)
	if err != nil {
		return nil, err
	}

	if slots == nil {
		slots = []TimeSlot{}
	}

	return slots, nil
}

func (s *service) GetTimeSlotByID(ctx context.Context, id int) (*TimeSlot, error) {
	slot, err := s.repo.GetTimeSlotByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return slot, nil
}
