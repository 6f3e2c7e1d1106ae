package services

import (
	"context"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/dto"
)

// PositionReaderSvc defines read operations for position data
type PositionReaderSvc interface {
	// ListPositions retrieves the positions of a project with its lock state.
	ListPositions(ctx context.Context, projectID string) (*dto.ListPositionsResponse, error)
}

// PositionWriterSvc defines write operations for position data.
// Every operation fails with finance.ErrPositionsLocked while an active invoice exists.
type PositionWriterSvc interface {
	// SavePositions replaces all positions of a project atomically.
	SavePositions(ctx context.Context, projectID string, req dto.SavePositionsRequest, userID string) ([]domain.Position, error)

	// AddPosition appends a position.
	AddPosition(ctx context.Context, projectID string, req dto.PositionInput, userID string) (*domain.Position, error)

	// UpdatePosition applies a partial edit and recomputes the cached totals.
	UpdatePosition(ctx context.Context, projectID, positionID string, req dto.UpdatePositionRequest, userID string) (*domain.Position, error)

	// DeletePosition removes a position.
	DeletePosition(ctx context.Context, projectID, positionID string, userID string) error
}

// PositionSvcFacade combines all position-related service interfaces
type PositionSvcFacade interface {
	PositionReaderSvc
	PositionWriterSvc
}
