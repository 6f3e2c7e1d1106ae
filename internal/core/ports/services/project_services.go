package services

import (
	"context"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/dto"
)

// ProjectReaderSvc defines read operations for project data
type ProjectReaderSvc interface {
	// GetProject retrieves a project by ID.
	GetProject(ctx context.Context, projectID string) (*domain.Project, error)
}

// ProjectWriterSvc defines write operations for project data
type ProjectWriterSvc interface {
	// CreateProject persists a new project.
	CreateProject(ctx context.Context, req dto.CreateProjectRequest, creatorUserID string) (*domain.Project, error)

	// UpdateProjectFlags toggles surcharge flags and returns the refreshed financials.
	UpdateProjectFlags(ctx context.Context, projectID string, req dto.UpdateProjectFlagsRequest, userID string) (*dto.FinancialsResponse, error)
}

// ProjectFinancialsSvc defines the financial view of a project
type ProjectFinancialsSvc interface {
	// GetFinancials recomputes the summary and lock state from stored data.
	GetFinancials(ctx context.Context, projectID string) (*dto.FinancialsResponse, error)

	// PreviewFinancials computes the summary for unsaved positions and flags.
	PreviewFinancials(ctx context.Context, projectID string, req dto.PreviewFinancialsRequest) (*dto.FinancialsResponse, error)
}

// ProjectSvcFacade combines all project-related service interfaces
type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectWriterSvc
	ProjectFinancialsSvc
}
