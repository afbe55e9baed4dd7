package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nextstep/subway-api/internal/domain"
	"github.com/nextstep/subway-api/internal/platform/logger"
	"github.com/nextstep/subway-api/internal/store"
)

// LineService provides line-related operations.
type LineService interface {
	// CreateLine creates a line. color may be empty.
	// Returns *domain.DuplicateNameError if a line with exactly that name exists.
	CreateLine(ctx context.Context, name, color string) (*domain.Line, error)

	// GetLine returns the line with the given ID.
	// Returns *domain.NotFoundError if it does not exist.
	GetLine(ctx context.Context, id int64) (*domain.Line, error)

	// ListLines returns all lines in creation order.
	ListLines(ctx context.Context) ([]*domain.Line, error)

	// DeleteLine deletes the line with the given ID.
	// Returns *domain.NotFoundError if it does not exist.
	DeleteLine(ctx context.Context, id int64) error
}

type lineServiceImpl struct {
	lines    store.LineStore
	recorder OperationRecorder
	logger   *slog.Logger
}

// NewLineService creates a new LineService.
func NewLineService(lines store.LineStore, recorder OperationRecorder, logger *slog.Logger) (LineService, error) {
	if lines == nil {
		return nil, NewServiceError(domain.EntityLine, "create_service", "lines store cannot be nil", nil)
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &lineServiceImpl{
		lines:    lines,
		recorder: recorder,
		logger:   logger.With("component", "line_service"),
	}, nil
}

func (s *lineServiceImpl) CreateLine(ctx context.Context, name, color string) (line *domain.Line, err error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	defer func() { s.recorder.ObserveOperation(domain.EntityLine, "create", resultOf(err)) }()

	line, err = domain.NewLine(name, color)
	if err != nil {
		return nil, err
	}

	exists, err := s.lines.ExistsByName(ctx, name)
	if err != nil {
		return nil, NewServiceError(domain.EntityLine, "create", "failed to check line name", err)
	}
	if exists {
		log.Debug("line name already in use", "name", name)
		return nil, domain.NewDuplicateNameError(domain.EntityLine, name)
	}

	if err = s.lines.Create(ctx, line); err != nil {
		switch {
		case store.IsDuplicateError(err):
			return nil, domain.NewDuplicateNameError(domain.EntityLine, name)
		case errors.Is(err, domain.ErrValidation):
			return nil, err
		}
		log.Error("failed to create line", "error", err, "name", name)
		return nil, NewServiceError(domain.EntityLine, "create", "failed to save line", err)
	}

	log.Info("line created", "line_id", line.ID, "name", line.Name)
	return line, nil
}

func (s *lineServiceImpl) GetLine(ctx context.Context, id int64) (line *domain.Line, err error) {
	defer func() { s.recorder.ObserveOperation(domain.EntityLine, "get", resultOf(err)) }()

	line, err = s.lines.GetByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, domain.NewNotFoundError(domain.EntityLine, id)
		}
		return nil, NewServiceError(domain.EntityLine, "get", "failed to retrieve line", err)
	}
	return line, nil
}

func (s *lineServiceImpl) ListLines(ctx context.Context) (lines []*domain.Line, err error) {
	defer func() { s.recorder.ObserveOperation(domain.EntityLine, "list", resultOf(err)) }()

	lines, err = s.lines.List(ctx)
	if err != nil {
		return nil, NewServiceError(domain.EntityLine, "list", "failed to list lines", err)
	}
	return lines, nil
}

func (s *lineServiceImpl) DeleteLine(ctx context.Context, id int64) (err error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	defer func() { s.recorder.ObserveOperation(domain.EntityLine, "delete", resultOf(err)) }()

	if err = s.lines.Delete(ctx, id); err != nil {
		if store.IsNotFoundError(err) {
			return domain.NewNotFoundError(domain.EntityLine, id)
		}
		log.Error("failed to delete line", "error", err, "line_id", id)
		return NewServiceError(domain.EntityLine, "delete", "failed to delete line", err)
	}

	log.Info("line deleted", "line_id", id)
	return nil
}
