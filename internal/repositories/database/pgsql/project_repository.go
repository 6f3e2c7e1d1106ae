package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/agency_backoffice/internal/apperrors"
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/agency_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/agency_backoffice/internal/models"
	"github.com/SscSPs/agency_backoffice/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProjectRepository struct {
	BaseRepository
}

func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

const projectColumns = `
	project_id, project_number, name, customer_id, partner_id,
	is_certified, has_apostille, is_express, classification, copies, copy_price,
	created_at, created_by, last_updated_at, last_updated_by`

func scanProject(row pgx.Row) (models.Project, error) {
	var m models.Project
	err := row.Scan(
		&m.ProjectID,
		&m.ProjectNumber,
		&m.Name,
		&m.CustomerID,
		&m.PartnerID,
		&m.IsCertified,
		&m.HasApostille,
		&m.IsExpress,
		&m.Classification,
		&m.Copies,
		&m.CopyPrice,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveProject inserts a new project.
func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	m := mapping.ToModelProject(project)
	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProjectID,
		m.ProjectNumber,
		m.Name,
		m.CustomerID,
		m.PartnerID,
		m.IsCertified,
		m.HasApostille,
		m.IsExpress,
		m.Classification,
		m.Copies,
		m.CopyPrice,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, "projects_project_number_key") {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert project "+m.ProjectID, err)
	}
	return nil
}

// FindProjectByID retrieves a project by its ID.
func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE project_id = $1;`
	m, err := scanProject(r.Pool.QueryRow(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find project by ID "+projectID, err)
	}
	p := mapping.ToDomainProject(m)
	return &p, nil
}

// ListProjects retrieves every project ordered by creation time.
func (r *PgxProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at, project_id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query projects", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		m, err := scanProject(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan project row", err)
		}
		projects = append(projects, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating project rows", err)
	}
	return mapping.ToDomainProjectSlice(projects), nil
}

// UpdateProjectFlags overwrites the surcharge flags of a project.
func (r *PgxProjectRepository) UpdateProjectFlags(ctx context.Context, projectID string, flags domain.ProjectFlags, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE projects
		SET is_certified = $2, has_apostille = $3, is_express = $4, classification = $5,
		    copies = $6, copy_price = $7, last_updated_at = $8, last_updated_by = $9
		WHERE project_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		projectID,
		flags.IsCertified,
		flags.HasApostille,
		flags.IsExpress,
		flags.Classification,
		flags.Copies,
		flags.CopyPrice,
		updatedAt,
		updatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update flags of project "+projectID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
