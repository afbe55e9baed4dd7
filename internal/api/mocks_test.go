package api

import (
	"context"

	"github.com/nextstep/subway-api/internal/domain"
)

// MockStationService is a mock implementation of service.StationService for testing
type MockStationService struct {
	CreateStationFn func(ctx context.Context, name string) (*domain.Station, error)
	ListStationsFn  func(ctx context.Context) ([]*domain.Station, error)
	DeleteStationFn func(ctx context.Context, id int64) error
}

func (m *MockStationService) CreateStation(ctx context.Context, name string) (*domain.Station, error) {
	if m.CreateStationFn != nil {
		return m.CreateStationFn(ctx, name)
	}
	return nil, nil
}

func (m *MockStationService) ListStations(ctx context.Context) ([]*domain.Station, error) {
	if m.ListStationsFn != nil {
		return m.ListStationsFn(ctx)
	}
	return nil, nil
}

func (m *MockStationService) DeleteStation(ctx context.Context, id int64) error {
	if m.DeleteStationFn != nil {
		return m.DeleteStationFn(ctx, id)
	}
	return nil
}

// MockLineService is a mock implementation of service.LineService for testing
type MockLineService struct {
	CreateLineFn func(ctx context.Context, name, color string) (*domain.Line, error)
	GetLineFn    func(ctx context.Context, id int64) (*domain.Line, error)
	ListLinesFn  func(ctx context.Context) ([]*domain.Line, error)
	DeleteLineFn func(ctx context.Context, id int64) error
}

func (m *MockLineService) CreateLine(ctx context.Context, name, color string) (*domain.Line, error) {
	if m.CreateLineFn != nil {
		return m.CreateLineFn(ctx, name, color)
	}
	return nil, nil
}

func (m *MockLineService) GetLine(ctx context.Context, id int64) (*domain.Line, error) {
	if m.GetLineFn != nil {
		return m.GetLineFn(ctx, id)
	}
	return nil, nil
}

func (m *MockLineService) ListLines(ctx context.Context) ([]*domain.Line, error) {
	if m.ListLinesFn != nil {
		return m.ListLinesFn(ctx)
	}
	return nil, nil
}

func (m *MockLineService) DeleteLine(ctx context.Context, id int64) error {
	if m.DeleteLineFn != nil {
		return m.DeleteLineFn(ctx, id)
	}
	return nil
}
