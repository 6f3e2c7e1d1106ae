package repositories

import (
	"context"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
)

// PositionReader defines read operations for position data
type PositionReader interface {
	// ListPositionsByProjectID retrieves the positions of a project ordered by sort order.
	ListPositionsByProjectID(ctx context.Context, projectID string) ([]domain.Position, error)

	// FindPositionByID retrieves a single position of a project.
	FindPositionByID(ctx context.Context, projectID, positionID string) (*domain.Position, error)

	// ListPositionsByProjectIDs retrieves positions for multiple projects, grouped by project ID.
	ListPositionsByProjectIDs(ctx context.Context, projectIDs []string) (map[string][]domain.Position, error)
}

// PositionWriter defines write operations for position data
type PositionWriter interface {
	// ReplacePositions deletes all positions of a project and inserts the given ones in one transaction.
	ReplacePositions(ctx context.Context, projectID string, positions []domain.Position) error

	// SavePosition inserts a single position.
	SavePosition(ctx context.Context, position domain.Position) error

	// UpdatePosition overwrites a single position.
	UpdatePosition(ctx context.Context, position domain.Position) error

	// DeletePosition removes a single position.
	DeletePosition(ctx context.Context, projectID, positionID string) error
}

// PositionRepositoryFacade combines all position-related repository interfaces
type PositionRepositoryFacade interface {
	PositionReader
	PositionWriter
}
