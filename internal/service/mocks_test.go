package service

import (
	"context"

	"github.com/nextstep/subway-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockStationStore mocks the store.StationStore interface
type MockStationStore struct {
	mock.Mock
}

func (m *MockStationStore) Create(ctx context.Context, station *domain.Station) error {
	args := m.Called(ctx, station)
	return args.Error(0)
}

func (m *MockStationStore) List(ctx context.Context) ([]*domain.Station, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Station), args.Error(1)
}

func (m *MockStationStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockStationStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLineStore mocks the store.LineStore interface
type MockLineStore struct {
	mock.Mock
}

func (m *MockLineStore) Create(ctx context.Context, line *domain.Line) error {
	args := m.Called(ctx, line)
	return args.Error(0)
}

func (m *MockLineStore) GetByID(ctx context.Context, id int64) (*domain.Line, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Line), args.Error(1)
}

func (m *MockLineStore) List(ctx context.Context) ([]*domain.Line, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Line), args.Error(1)
}

func (m *MockLineStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockLineStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRecorder mocks the OperationRecorder interface
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) ObserveOperation(entity, operation, result string) {
	m.Called(entity, operation, result)
}
