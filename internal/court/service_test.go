package court

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/chug2k/pickleball-booking/internal/cache"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetAllCourts(ctx context.Context) ([]Court, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Court), args.Error(1)
}

func (m *MockRepository) GetCourtByID(ctx context.Context, id int) (*Court, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Court), args.Error(1)
}

func (m *MockRepository) GetTimeSlots(ctx context.Context, courtID int, date string) ([]TimeSlot, error) {
	args := m.Called(ctx, courtID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]TimeSlot), args.Error(1)
}

func (m *MockRepository) GetTimeSlotByID(ctx context.Context, id int) (*TimeSlot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TimeSlot), args.Error(1)
}

func TestService_GetAllCourts_NoCache(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, nil, time.Minute)

	mockRepo.On("GetAllCourts", mock.Anything).Return([]Court{
		{ID: 1, Name: "Center Court", HourlyRate: 25},
	}, nil)

	courts, err := service.GetAllCourts(context.Background())

	assert.NoError(t, err)
	assert.Len(t, courts, 1)
	mockRepo.AssertExpectations(t)
}

func TestService_GetAllCourts_CacheHit(t *testing.T) {
	mockRepo := new(MockRepository)
	client, redisMock := redismock.NewClientMock()
	service := NewService(mockRepo, cache.NewWithClient(client), time.Minute)

	redisMock.ExpectGet("courts:all").SetVal(`[{"id":1,"name":"Center Court","description":"","image_url":"","hourly_rate":25,"created_at":"2024-06-01T00:00:00Z"}]`)

	courts, err := service.GetAllCourts(context.Background())

	assert.NoError(t, err)
	assert.Len(t, courts, 1)
	assert.Equal(t, "Center Court", courts[0].Name)
	// the repo is never hit on a cache hit
	mockRepo.AssertNotCalled(t, "GetAllCourts", mock.Anything)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestService_GetAllCourts_CacheMissFillsCache(t *testing.T) {
	mockRepo := new(MockRepository)
	client, redisMock := redismock.NewClientMock()
	service := NewService(mockRepo, cache.NewWithClient(client), time.Minute)

	redisMock.ExpectGet("courts:all").RedisNil()
	redisMock.Regexp().ExpectSet("courts:all", `.*Center Court.*`, time.Minute).SetVal("OK")

	mockRepo.On("GetAllCourts", mock.Anything).Return([]Court{
		{ID: 1, Name: "Center Court", HourlyRate: 25},
	}, nil)

	courts, err := service.GetAllCourts(context.Background())

	assert.NoError(t, err)
	assert.Len(t, courts, 1)
	mockRepo.AssertExpectations(t)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestService_GetCourtByID_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, nil, time.Minute)

	mockRepo.On("GetCourtByID", mock.Anything, 99).Return(nil, sql.ErrNoRows)

	_, err := service.GetCourtByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestService_GetCourtByID_ReadFailureIsNotNotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, nil, time.Minute)

	readErr := errors.New("connection refused")
	mockRepo.On("GetCourtByID", mock.Anything, 1).Return(nil, readErr)

	_, err := service.GetCourtByID(context.Background(), 1)

	assert.ErrorIs(t, err, readErr)
	assert.NotErrorIs(t, err, ErrCourtNotFound)
}

func TestService_ListTimeSlots_EmptyIsNotAnError(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, nil, time.Minute)

	mockRepo.On("GetCourtByID", mock.Anything, 1).Return(&Court{ID: 1}, nil)
	mockRepo.On("GetTimeSlots", mock.Anything, 1, "2024-06-01").Return([]TimeSlot(nil), nil)

	slots, err := service.ListTimeSlots(context.Background(), 1, "2024-06-01")

	assert.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestService_ListTimeSlots_ReadFailurePropagates(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, nil, time.Minute)

	readErr := errors.New("connection refused")
	mockRepo.On("GetCourtByID", mock.Anything, 1).Return(&Court{ID: 1}, nil)
	mockRepo.On("GetTimeSlots", mock.Anything, 1, "2024-06-01").Return(nil, readErr)

	_, err := service.ListTimeSlots(context.Background(), 1, "2024-06-01")

	// a failed read must surface, not degrade to "nothing available"
	assert.ErrorIs(t, err, readErr)
}

func TestService_ListTimeSlots_UnknownCourt(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, nil, time.Minute)

	mockRepo.On("GetCourtByID", mock.Anything, 42).Return(nil, sql.ErrNoRows)

	_, err := service.ListTimeSlots(context.Background(), 42, "2024-06-01")

	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestService_GetTimeSlotByID_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo, nil, time.Minute)

	mockRepo.On("GetTimeSlotByID", mock.Anything, 5).Return(nil, sql.ErrNoRows)

	_, err := service.GetTimeSlotByID(context.Background(), 5)

	assert.ErrorIs(t, err, ErrSlotNotFound)
}
