package sqlstore_test

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/nextstep/subway-api/internal/domain"
	"github.com/nextstep/subway-api/internal/platform/postgres"
	"github.com/nextstep/subway-api/internal/platform/sqlite"
	"github.com/nextstep/subway-api/internal/platform/sqlstore"
	"github.com/nextstep/subway-api/internal/store"
	"github.com/nextstep/subway-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backend runs fn against every available database: SQLite always, and
// PostgreSQL inside a rolled-back transaction when one is configured.
func backend(t *testing.T, fn func(t *testing.T, db store.DBTX, dialect sqlstore.Dialect)) {
	t.Helper()

	t.Run("sqlite", func(t *testing.T) {
		fn(t, testdb.SQLiteDBWithT(t), sqlite.Dialect{})
	})

	t.Run("postgres", func(t *testing.T) {
		db := testdb.GetTestDBWithT(t)
		testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
			fn(t, tx, postgres.Dialect{})
		})
	})
}

func TestStationStore(t *testing.T) {
	backend(t, func(t *testing.T, db store.DBTX, dialect sqlstore.Dialect) {
		ctx := context.Background()
		s := sqlstore.NewStationStore(db, dialect, nil)

		gangnam, err := domain.NewStation("강남역")
		require.NoError(t, err)
		require.NoError(t, s.Create(ctx, gangnam))
		assert.NotZero(t, gangnam.ID)

		seoul, err := domain.NewStation("서울역")
		require.NoError(t, err)
		require.NoError(t, s.Create(ctx, seoul))
		assert.Greater(t, seoul.ID, gangnam.ID)

		t.Run("duplicate name", func(t *testing.T) {
			err := s.Create(ctx, &domain.Station{Name: "강남역"})
			assert.ErrorIs(t, err, store.ErrStationNameExists)
		})

		t.Run("exists by name", func(t *testing.T) {
			exists, err := s.ExistsByName(ctx, "강남역")
			require.NoError(t, err)
			assert.True(t, exists)

			exists, err = s.ExistsByName(ctx, "역삼역")
			require.NoError(t, err)
			assert.False(t, exists)
		})

		t.Run("list in creation order", func(t *testing.T) {
			stations, err := s.List(ctx)
			require.NoError(t, err)
			require.Len(t, stations, 2)
			assert.Equal(t, "강남역", stations[0].Name)
			assert.Equal(t, "서울역", stations[1].Name)
			assert.False(t, stations[0].CreatedAt.IsZero())
		})

		t.Run("delete", func(t *testing.T) {
			require.NoError(t, s.Delete(ctx, gangnam.ID))
			assert.ErrorIs(t, s.Delete(ctx, gangnam.ID), store.ErrStationNotFound)

			stations, err := s.List(ctx)
			require.NoError(t, err)
			require.Len(t, stations, 1)
			assert.Equal(t, "서울역", stations[0].Name)
		})
	})
}

func TestLineStore(t *testing.T) {
	backend(t, func(t *testing.T, db store.DBTX, dialect sqlstore.Dialect) {
		ctx := context.Background()
		s := sqlstore.NewLineStore(db, dialect, nil)

		line, err := domain.NewLine("신분당선", "bg-red-600")
		require.NoError(t, err)
		require.NoError(t, s.Create(ctx, line))

		got, err := s.GetByID(ctx, line.ID)
		require.NoError(t, err)
		assert.Equal(t, "신분당선", got.Name)
		assert.Equal(t, "bg-red-600", got.Color)

		_, err = s.GetByID(ctx, line.ID+1000)
		assert.ErrorIs(t, err, store.ErrLineNotFound)

		err = s.Create(ctx, &domain.Line{Name: "신분당선"})
		assert.ErrorIs(t, err, store.ErrLineNameExists)

		require.NoError(t, s.Create(ctx, &domain.Line{Name: "2호선"}))
		lines, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, lines, 2)
		assert.Equal(t, "2호선", lines[1].Name)
		assert.Empty(t, lines[1].Color)

		exists, err := s.ExistsByName(ctx, "2호선")
		require.NoError(t, err)
		assert.True(t, exists)

		require.NoError(t, s.Delete(ctx, line.ID))
		assert.ErrorIs(t, s.Delete(ctx, line.ID), store.ErrLineNotFound)
	})
}

func TestStationStore_ConcurrentCreateSameName(t *testing.T) {
	db := testdb.SQLiteDBWithT(t)
	s := sqlstore.NewStationStore(db, sqlite.Dialect{}, nil)
	ctx := context.Background()

	const workers = 8
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			station, err := domain.NewStation("강남역")
			if err != nil {
				errs <- err
				return
			}
			errs <- s.Create(ctx, station)
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, store.ErrStationNameExists)
	}
	assert.Equal(t, 1, succeeded)
}

func TestCheckRowsAffected(t *testing.T) {
	t.Parallel()

	assert.Error(t, sqlstore.CheckRowsAffected(nil, store.ErrStationNotFound))
	assert.ErrorIs(t, sqlstore.CheckRowsAffected(rowsAffected(0), store.ErrLineNotFound), store.ErrLineNotFound)
	assert.ErrorIs(t, sqlstore.CheckRowsAffected(rowsAffected(0), nil), store.ErrNotFound)
	assert.NoError(t, sqlstore.CheckRowsAffected(rowsAffected(1), store.ErrLineNotFound))
}

type rowsAffected int64

func (r rowsAffected) LastInsertId() (int64, error) { return 0, nil }
func (r rowsAffected) RowsAffected() (int64, error) { return int64(r), nil }
