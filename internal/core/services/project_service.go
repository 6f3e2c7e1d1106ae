package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/agency_backoffice/internal/apperrors"
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/core/finance"
	portsrepo "github.com/SscSPs/agency_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/agency_backoffice/internal/core/ports/services"
	"github.com/SscSPs/agency_backoffice/internal/dto"
	"github.com/google/uuid"
)

// projectService implements the ProjectSvcFacade interface
type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepositoryFacade
	loader      snapshotLoader
	guard       *SubmissionGuard
}

// NewProjectService creates a new project service with the provided options
func NewProjectService(repos portsrepo.RepositoryProvider, guard *SubmissionGuard, options ...ServiceOption) portssvc.ProjectSvcFacade {
	svc := &projectService{
		projectRepo: repos.ProjectRepo,
		loader:      newSnapshotLoader(repos),
		guard:       guard,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

// Ensure projectService implements the ProjectSvcFacade interface
var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error) {
	project := domain.Project{
		ProjectID:     uuid.NewString(),
		ProjectNumber: strings.TrimSpace(req.ProjectNumber),
		Name:          strings.TrimSpace(req.Name),
		CustomerID:    req.CustomerID,
		PartnerID:     req.PartnerID,
		Flags:         flagsFromInput(req.Flags),
		AuditFields:   domain.NewAuditFields(creatorUserID, s.Now()),
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "Failed to save project",
			slog.String("project_number", project.ProjectNumber))
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.LogInfo(ctx, "Project created",
		slog.String("project_id", project.ProjectID),
		slog.String("project_number", project.ProjectNumber))
	return &project, nil
}

func (s *projectService) GetProject(ctx context.Context, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get project", slog.String("project_id", projectID))
		}
		return nil, fmt.Errorf("failed to get project %s: %w", projectID, err)
	}
	return project, nil
}

// UpdateProjectFlags stores the toggled flags and returns the recomputed financials.
// Flags stay editable while an invoice is active; only positions are frozen.
func (s *projectService) UpdateProjectFlags(ctx context.Context, projectID string, req dto.UpdateProjectFlagsRequest, userID string) (*dto.FinancialsResponse, error) {
	release, err := s.guard.Acquire(projectID, "flags update")
	if err != nil {
		return nil, err
	}
	defer release()

	snapshot, err := s.loader.load(ctx, projectID)
	if err != nil {
		return nil, err
	}

	flags := applyFlagsUpdate(snapshot.Project.Flags, req)
	if err := s.projectRepo.UpdateProjectFlags(ctx, projectID, flags, userID, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to update project flags", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to update flags of project %s: %w", projectID, err)
	}
	snapshot.Project.Flags = flags

	summary := snapshot.Summary()
	s.LogInfo(ctx, "Project flags updated",
		slog.String("project_id", projectID),
		slog.String("extra_total", summary.ExtraTotal.String()))
	return financialsResponse(projectID, flags, snapshot.Gate(), summary), nil
}

func (s *projectService) GetFinancials(ctx context.Context, projectID string) (*dto.FinancialsResponse, error) {
	snapshot, err := s.loader.load(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return financialsResponse(projectID, snapshot.Project.Flags, snapshot.Gate(), snapshot.Summary()), nil
}

// PreviewFinancials recomputes the summary for unsaved editor state.
// Nothing is persisted; recorded payments and the stored lock state still apply.
func (s *projectService) PreviewFinancials(ctx context.Context, projectID string, req dto.PreviewFinancialsRequest) (*dto.FinancialsResponse, error) {
	snapshot, err := s.loader.load(ctx, projectID)
	if err != nil {
		return nil, err
	}

	flags := snapshot.Project.Flags
	if req.Flags != nil {
		flags = flagsFromInput(*req.Flags)
	}
	positions := positionsFromInputs(projectID, req.Positions, "", s.Now())

	summary := finance.Summarize(positions, flags, snapshot.Payments)
	resp := financialsResponse(projectID, flags, snapshot.Gate(), summary)
	resp.Positions = dto.ToPositionResponses(positions)
	return resp, nil
}
