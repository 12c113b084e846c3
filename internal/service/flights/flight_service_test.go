package flights

import (
	"context"
	"errors"
	"testing"

	"github.com/rmoulin/skyflight/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFlightRepository struct {
	mock.Mock
}

func (m *MockFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) GetByFlNo(ctx context.Context, flno string) (*domain.Flight, error) {
	args := m.Called(ctx, flno)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) Update(ctx context.Context, flight *domain.Flight) error {
	args := m.Called(ctx, flight)
	return args.Error(0)
}

func (m *MockFlightRepository) Delete(ctx context.Context, flno string) error {
	args := m.Called(ctx, flno)
	return args.Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	args := m.Called(ctx, flights)
	return args.Error(0)
}

func TestFlightService_List_CacheHit(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache)

	ctx := context.Background()
	cached := []domain.Flight{{FlNo: "FL001"}, {FlNo: "FL002"}}
	mockCache.On("GetFlights", ctx).Return(cached, nil).Once()

	flights, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, cached, flights)
	mockRepo.AssertNotCalled(t, "List")
}

func TestFlightService_List_CacheMiss(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache)

	ctx := context.Background()
	fromRepo := []domain.Flight{{FlNo: "FL003"}}
	mockCache.On("GetFlights", ctx).Return(nil, errors.New("cache miss")).Once()
	mockRepo.On("List", ctx).Return(fromRepo, nil).Once()
	mockCache.On("SetFlights", ctx, fromRepo).Return(nil).Once()

	flights, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, fromRepo, flights)
	mockCache.AssertExpectations(t)
}

func TestFlightService_List_CacheWriteFailureIgnored(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache)

	ctx := context.Background()
	fromRepo := []domain.Flight{{FlNo: "FL004"}}
	mockCache.On("GetFlights", ctx).Return(nil, errors.New("cache miss")).Once()
	mockRepo.On("List", ctx).Return(fromRepo, nil).Once()
	mockCache.On("SetFlights", ctx, fromRepo).Return(errors.New("redis down")).Once()

	flights, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, fromRepo, flights)
}

func TestFlightService_List_NoCache(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, nil)

	ctx := context.Background()
	fromRepo := []domain.Flight{{FlNo: "FL005"}}
	mockRepo.On("List", ctx).Return(fromRepo, nil).Once()

	flights, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, fromRepo, flights)
}

func TestFlightService_List_RepoError(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	mockCache := &MockCache{}
	service := NewFlightService(mockRepo, mockCache)

	ctx := context.Background()
	expectedErr := errors.New("database down")
	mockCache.On("GetFlights", ctx).Return(nil, errors.New("cache miss")).Once()
	mockRepo.On("List", ctx).Return(nil, expectedErr).Once()

	_, err := service.List(ctx)
	assert.ErrorIs(t, err, expectedErr)
	mockCache.AssertNotCalled(t, "SetFlights")
}

func TestFlightService_GetByFlNo(t *testing.T) {
	mockRepo := &MockFlightRepository{}
	service := NewFlightService(mockRepo, &MockCache{})

	ctx := context.Background()
	flight := &domain.Flight{FlNo: "FL001"}
	mockRepo.On("GetByFlNo", ctx, "FL001").Return(flight, nil).Once()
	mockRepo.On("GetByFlNo", ctx, "FL404").Return(nil, domain.ErrNotFound).Once()

	got, err := service.GetByFlNo(ctx, "FL001")
	require.NoError(t, err)
	assert.Equal(t, "FL001", got.FlNo)

	_, err = service.GetByFlNo(ctx, "FL404")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
