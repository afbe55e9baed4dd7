package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/nextstep/subway-api/internal/domain"
	"github.com/nextstep/subway-api/internal/platform/memory"
	"github.com/nextstep/subway-api/internal/platform/metrics"
	"github.com/nextstep/subway-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMemoryStationService(t *testing.T) StationService {
	t.Helper()
	svc, err := NewStationService(memory.NewStationStore(nil), nil, nil)
	require.NoError(t, err)
	return svc
}

func TestNewStationService_NilStore(t *testing.T) {
	svc, err := NewStationService(nil, nil, nil)
	require.Error(t, err)
	assert.Nil(t, svc)

	var serviceErr *ServiceError
	assert.True(t, errors.As(err, &serviceErr))
}

func TestStationService_CreateStation(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryStationService(t)

	station, err := svc.CreateStation(ctx, "강남역")
	require.NoError(t, err)
	assert.Equal(t, int64(1), station.ID)
	assert.Equal(t, "강남역", station.Name)

	stations, err := svc.ListStations(ctx)
	require.NoError(t, err)
	require.Len(t, stations, 1)
	assert.Equal(t, station.ID, stations[0].ID)
}

func TestStationService_CreateStation_Duplicate(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryStationService(t)

	_, err := svc.CreateStation(ctx, "강남역")
	require.NoError(t, err)

	_, err = svc.CreateStation(ctx, "강남역")
	require.Error(t, err)

	var dupErr *domain.DuplicateNameError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, domain.EntityStation, dupErr.Entity)
	assert.Equal(t, "강남역", dupErr.Name)

	stations, err := svc.ListStations(ctx)
	require.NoError(t, err)
	assert.Len(t, stations, 1)
}

func TestStationService_CreateStation_CaseSensitiveNames(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryStationService(t)

	_, err := svc.CreateStation(ctx, "Seoul")
	require.NoError(t, err)
	_, err = svc.CreateStation(ctx, "seoul")
	require.NoError(t, err)
}

func TestStationService_CreateStation_InvalidName(t *testing.T) {
	svc := newMemoryStationService(t)

	_, err := svc.CreateStation(context.Background(), "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestStationService_CreateStation_ConstraintRace(t *testing.T) {
	ctx := context.Background()
	stations := new(MockStationStore)
	stations.On("ExistsByName", ctx, "서울역").Return(false, nil)
	stations.On("Create", ctx, mock.AnythingOfType("*domain.Station")).Return(store.ErrStationNameExists)

	svc, err := NewStationService(stations, nil, nil)
	require.NoError(t, err)

	_, err = svc.CreateStation(ctx, "서울역")
	assert.True(t, errors.Is(err, domain.ErrDuplicateName))
	stations.AssertExpectations(t)
}

func TestStationService_CreateStation_StoreFailure(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	t.Run("exists check fails", func(t *testing.T) {
		stations := new(MockStationStore)
		stations.On("ExistsByName", ctx, "서울역").Return(false, dbErr)

		svc, err := NewStationService(stations, nil, nil)
		require.NoError(t, err)

		_, err = svc.CreateStation(ctx, "서울역")
		var serviceErr *ServiceError
		require.True(t, errors.As(err, &serviceErr))
		assert.Equal(t, "create", serviceErr.Operation)
		assert.ErrorIs(t, err, dbErr)
		stations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("insert fails", func(t *testing.T) {
		stations := new(MockStationStore)
		stations.On("ExistsByName", ctx, "서울역").Return(false, nil)
		stations.On("Create", ctx, mock.Anything).Return(dbErr)

		svc, err := NewStationService(stations, nil, nil)
		require.NoError(t, err)

		_, err = svc.CreateStation(ctx, "서울역")
		assert.ErrorIs(t, err, dbErr)
		assert.False(t, errors.Is(err, domain.ErrDuplicateName))
	})
}

func TestStationService_ListStations_CreationOrder(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryStationService(t)

	_, err := svc.CreateStation(ctx, "강남역")
	require.NoError(t, err)
	_, err = svc.CreateStation(ctx, "서울역")
	require.NoError(t, err)

	stations, err := svc.ListStations(ctx)
	require.NoError(t, err)
	require.Len(t, stations, 2)
	assert.Equal(t, "강남역", stations[0].Name)
	assert.Equal(t, "서울역", stations[1].Name)
}

func TestStationService_ListStations_Empty(t *testing.T) {
	stations, err := newMemoryStationService(t).ListStations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stations)
}

func TestStationService_DeleteStation(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryStationService(t)

	station, err := svc.CreateStation(ctx, "강남역")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteStation(ctx, station.ID))

	stations, err := svc.ListStations(ctx)
	require.NoError(t, err)
	assert.Empty(t, stations)

	// The name is free again after deletion.
	recreated, err := svc.CreateStation(ctx, "강남역")
	require.NoError(t, err)
	assert.NotEqual(t, station.ID, recreated.ID)
}

func TestStationService_DeleteStation_NotFound(t *testing.T) {
	err := newMemoryStationService(t).DeleteStation(context.Background(), 42)
	require.Error(t, err)

	var notFound *domain.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, int64(42), notFound.ID)
	assert.Equal(t, domain.EntityStation, notFound.Entity)
}

func TestStationService_RecordsOperations(t *testing.T) {
	ctx := context.Background()
	recorder := new(MockRecorder)
	recorder.On("ObserveOperation", domain.EntityStation, "create", metrics.ResultSuccess).Once()
	recorder.On("ObserveOperation", domain.EntityStation, "create", metrics.ResultDuplicate).Once()
	recorder.On("ObserveOperation", domain.EntityStation, "create", metrics.ResultInvalid).Once()
	recorder.On("ObserveOperation", domain.EntityStation, "delete", metrics.ResultNotFound).Once()

	svc, err := NewStationService(memory.NewStationStore(nil), recorder, nil)
	require.NoError(t, err)

	_, _ = svc.CreateStation(ctx, "강남역")
	_, _ = svc.CreateStation(ctx, "강남역")
	_, _ = svc.CreateStation(ctx, "")
	_ = svc.DeleteStation(ctx, 99)

	recorder.AssertExpectations(t)
}

func TestStationService_ConcurrentCreateSameName(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryStationService(t)

	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.CreateStation(ctx, "역삼역"); err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	stations, err := svc.ListStations(ctx)
	require.NoError(t, err)
	assert.Len(t, stations, 1)
}
