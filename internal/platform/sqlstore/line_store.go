package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nextstep/subway-api/internal/domain"
	"github.com/nextstep/subway-api/internal/platform/logger"
	"github.com/nextstep/subway-api/internal/redact"
	"github.com/nextstep/subway-api/internal/store"
)

// LineStore implements store.LineStore using a SQL database.
type LineStore struct {
	db      store.DBTX
	dialect Dialect
	logger  *slog.Logger
}

// NewLineStore creates a LineStore.
func NewLineStore(db store.DBTX, dialect Dialect, logger *slog.Logger) *LineStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if dialect == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("dialect cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &LineStore{
		db:      db,
		dialect: dialect,
		logger: logger.With(
			slog.String("component", "line_store"),
			slog.String("dialect", dialect.Name()),
		),
	}
}

var _ store.LineStore = (*LineStore)(nil)

// Create implements store.LineStore.Create.
func (s *LineStore) Create(ctx context.Context, line *domain.Line) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := line.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO lines (name, color, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query, line.Name, line.Color, line.CreatedAt).Scan(&line.ID)
	if err != nil {
		mapped := s.dialect.MapError(err)
		if errors.Is(mapped, store.ErrDuplicate) {
			return store.ErrLineNameExists
		}

		log.Error("failed to create line",
			slog.String("error", redact.Error(err)),
			slog.String("name", line.Name))
		return fmt.Errorf("failed to create line: %w", mapped)
	}

	log.Info("line created successfully",
		slog.Int64("line_id", line.ID),
		slog.String("name", line.Name))
	return nil
}

// GetByID implements store.LineStore.GetByID.
func (s *LineStore) GetByID(ctx context.Context, id int64) (*domain.Line, error) {
	query := `
		SELECT id, name, color, created_at
		FROM lines
		WHERE id = $1
	`

	var line domain.Line
	err := s.db.QueryRowContext(ctx, query, id).Scan(&line.ID, &line.Name, &line.Color, &line.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrLineNotFound
		}
		return nil, fmt.Errorf("failed to get line: %w", s.dialect.MapError(err))
	}

	return &line, nil
}

// List implements store.LineStore.List.
func (s *LineStore) List(ctx context.Context) ([]*domain.Line, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, color, created_at
		FROM lines
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list lines: %w", s.dialect.MapError(err))
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Error("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	lines := make([]*domain.Line, 0)
	for rows.Next() {
		var line domain.Line
		if err := rows.Scan(&line.ID, &line.Name, &line.Color, &line.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan line: %w", err)
		}
		lines = append(lines, &line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lines: %w", s.dialect.MapError(err))
	}

	return lines, nil
}

// ExistsByName implements store.LineStore.ExistsByName.
func (s *LineStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM lines WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check line name: %w", s.dialect.MapError(err))
	}
	return exists, nil
}

// Delete implements store.LineStore.Delete.
func (s *LineStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM lines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete line: %w", s.dialect.MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrLineNotFound); err != nil {
		return err
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("line deleted successfully", slog.Int64("line_id", id))
	return nil
}
