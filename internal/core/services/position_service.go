package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/core/finance"
	portsrepo "github.com/SscSPs/agency_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/agency_backoffice/internal/core/ports/services"
	"github.com/SscSPs/agency_backoffice/internal/dto"
)

// positionService implements the PositionSvcFacade interface.
// Every write holds the project's submission guard and consults the lock gate
// before touching the repository, so no write interleaves with invoice creation.
type positionService struct {
	BaseService
	positionRepo portsrepo.PositionRepositoryFacade
	loader       snapshotLoader
	guard        *SubmissionGuard
}

// NewPositionService creates a new position service with the provided options
func NewPositionService(repos portsrepo.RepositoryProvider, guard *SubmissionGuard, options ...ServiceOption) portssvc.PositionSvcFacade {
	svc := &positionService{
		positionRepo: repos.PositionRepo,
		loader:       newSnapshotLoader(repos),
		guard:        guard,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

// Ensure positionService implements the PositionSvcFacade interface
var _ portssvc.PositionSvcFacade = (*positionService)(nil)

func (s *positionService) ListPositions(ctx context.Context, projectID string) (*dto.ListPositionsResponse, error) {
	gate, err := s.loader.loadGate(ctx, projectID)
	if err != nil {
		return nil, err
	}
	positions, err := s.positionRepo.ListPositionsByProjectID(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list positions", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	return &dto.ListPositionsResponse{
		Positions: dto.ToPositionResponses(positions),
		LockState: gate.State,
	}, nil
}

// unlockedGate loads the gate and fails while positions are frozen.
func (s *positionService) unlockedGate(ctx context.Context, projectID, operation string) error {
	gate, err := s.loader.loadGate(ctx, projectID)
	if err != nil {
		return err
	}
	if err := gate.CheckPositionMutation(); err != nil {
		s.LogInfo(ctx, "Position change rejected, project is locked",
			slog.String("project_id", projectID),
			slog.String("operation", operation))
		return err
	}
	return nil
}

// SavePositions replaces the whole position table of a project in one transaction.
func (s *positionService) SavePositions(ctx context.Context, projectID string, req dto.SavePositionsRequest, userID string) ([]domain.Position, error) {
	release, err := s.guard.Acquire(projectID, "positions save")
	if err != nil {
		return nil, err
	}
	defer release()

	if err := s.unlockedGate(ctx, projectID, "save"); err != nil {
		return nil, err
	}

	positions := positionsFromInputs(projectID, req.Positions, userID, s.Now())
	if err := s.positionRepo.ReplacePositions(ctx, projectID, positions); err != nil {
		s.LogError(ctx, err, "Failed to replace positions",
			slog.String("project_id", projectID),
			slog.Int("position_count", len(positions)))
		return nil, fmt.Errorf("failed to save positions: %w", err)
	}

	s.LogInfo(ctx, "Positions saved",
		slog.String("project_id", projectID),
		slog.Int("position_count", len(positions)))
	return positions, nil
}

func (s *positionService) AddPosition(ctx context.Context, projectID string, req dto.PositionInput, userID string) (*domain.Position, error) {
	release, err := s.guard.Acquire(projectID, "position add")
	if err != nil {
		return nil, err
	}
	defer release()

	if err := s.unlockedGate(ctx, projectID, "add"); err != nil {
		return nil, err
	}

	existing, err := s.positionRepo.ListPositionsByProjectID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list positions: %w", err)
	}
	sortOrder := 0
	for _, p := range existing {
		if p.SortOrder >= sortOrder {
			sortOrder = p.SortOrder + 1
		}
	}

	position := positionFromInput(projectID, sortOrder, req, userID, s.Now())
	if err := s.positionRepo.SavePosition(ctx, position); err != nil {
		s.LogError(ctx, err, "Failed to add position", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to add position: %w", err)
	}
	return &position, nil
}

// UpdatePosition applies a partial edit. Both cached totals are recomputed
// before the position is stored.
func (s *positionService) UpdatePosition(ctx context.Context, projectID, positionID string, req dto.UpdatePositionRequest, userID string) (*domain.Position, error) {
	release, err := s.guard.Acquire(projectID, "position update")
	if err != nil {
		return nil, err
	}
	defer release()

	if err := s.unlockedGate(ctx, projectID, "update"); err != nil {
		return nil, err
	}

	current, err := s.positionRepo.FindPositionByID(ctx, projectID, positionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find position %s: %w", positionID, err)
	}

	updated := finance.ApplyPositionEdit(*current, positionEditFromRequest(req))
	if req.ApplyMargin {
		updated = finance.ApplyMargin(updated)
	}
	updated.Touch(userID, s.Now())

	if err := s.positionRepo.UpdatePosition(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update position",
			slog.String("project_id", projectID),
			slog.String("position_id", positionID))
		return nil, fmt.Errorf("failed to update position %s: %w", positionID, err)
	}
	return &updated, nil
}

func (s *positionService) DeletePosition(ctx context.Context, projectID, positionID string, userID string) error {
	release, err := s.guard.Acquire(projectID, "position delete")
	if err != nil {
		return err
	}
	defer release()

	if err := s.unlockedGate(ctx, projectID, "delete"); err != nil {
		return err
	}
	if err := s.positionRepo.DeletePosition(ctx, projectID, positionID); err != nil {
		return fmt.Errorf("failed to delete position %s: %w", positionID, err)
	}
	s.LogInfo(ctx, "Position deleted",
		slog.String("project_id", projectID),
		slog.String("position_id", positionID),
		slog.String("user_id", userID))
	return nil
}
