package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/agency_backoffice/internal/apperrors"
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/agency_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/agency_backoffice/internal/models"
	"github.com/SscSPs/agency_backoffice/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxPositionRepository struct {
	BaseRepository
}

func newPgxPositionRepository(pool *pgxpool.Pool) portsrepo.PositionRepositoryFacade {
	return &PgxPositionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PositionRepositoryFacade = (*PgxPositionRepository)(nil)

const positionColumns = `
	position_id, project_id, sort_order, description, unit, amount, quantity,
	partner_rate, partner_mode, partner_total, customer_rate, customer_mode, customer_total,
	margin_type, margin_percent, created_at, created_by, last_updated_at, last_updated_by`

const insertPositionQuery = `
	INSERT INTO project_positions (` + positionColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
`

func scanPosition(row pgx.Row) (models.Position, error) {
	var m models.Position
	err := row.Scan(
		&m.PositionID,
		&m.ProjectID,
		&m.SortOrder,
		&m.Description,
		&m.Unit,
		&m.Amount,
		&m.Quantity,
		&m.PartnerRate,
		&m.PartnerMode,
		&m.PartnerTotal,
		&m.CustomerRate,
		&m.CustomerMode,
		&m.CustomerTotal,
		&m.MarginType,
		&m.MarginPercent,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func positionArgs(m models.Position) []any {
	return []any{
		m.PositionID,
		m.ProjectID,
		m.SortOrder,
		m.Description,
		m.Unit,
		m.Amount,
		m.Quantity,
		m.PartnerRate,
		m.PartnerMode,
		m.PartnerTotal,
		m.CustomerRate,
		m.CustomerMode,
		m.CustomerTotal,
		m.MarginType,
		m.MarginPercent,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}

func (r *PgxPositionRepository) queryPositions(ctx context.Context, query string, args ...any) ([]domain.Position, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query positions", err)
	}
	defer rows.Close()

	positions := []models.Position{}
	for rows.Next() {
		m, err := scanPosition(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan position row", err)
		}
		positions = append(positions, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating position rows", err)
	}
	return mapping.ToDomainPositionSlice(positions), nil
}

// ListPositionsByProjectID retrieves the positions of a project ordered by sort order.
func (r *PgxPositionRepository) ListPositionsByProjectID(ctx context.Context, projectID string) ([]domain.Position, error) {
	query := `SELECT ` + positionColumns + ` FROM project_positions WHERE project_id = $1 ORDER BY sort_order, created_at;`
	return r.queryPositions(ctx, query, projectID)
}

// ListPositionsByProjectIDs retrieves positions for multiple projects, grouped by project ID.
func (r *PgxPositionRepository) ListPositionsByProjectIDs(ctx context.Context, projectIDs []string) (map[string][]domain.Position, error) {
	result := make(map[string][]domain.Position, len(projectIDs))
	if len(projectIDs) == 0 {
		return result, nil
	}
	query := `SELECT ` + positionColumns + ` FROM project_positions WHERE project_id = ANY($1) ORDER BY project_id, sort_order, created_at;`
	positions, err := r.queryPositions(ctx, query, projectIDs)
	if err != nil {
		return nil, err
	}
	for _, p := range positions {
		result[p.ProjectID] = append(result[p.ProjectID], p)
	}
	return result, nil
}

// FindPositionByID retrieves a single position of a project.
func (r *PgxPositionRepository) FindPositionByID(ctx context.Context, projectID, positionID string) (*domain.Position, error) {
	query := `SELECT ` + positionColumns + ` FROM project_positions WHERE project_id = $1 AND position_id = $2;`
	m, err := scanPosition(r.Pool.QueryRow(ctx, query, projectID, positionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find position "+positionID, err)
	}
	p := mapping.ToDomainPosition(m)
	return &p, nil
}

// ReplacePositions deletes all positions of a project and inserts the given ones.
// Either every position is stored or none.
func (r *PgxPositionRepository) ReplacePositions(ctx context.Context, projectID string, positions []domain.Position) error {
	return r.WithinTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM project_positions WHERE project_id = $1;`, projectID); err != nil {
			return apperrors.NewAppError(500, "failed to clear positions of project "+projectID, err)
		}
		if len(positions) == 0 {
			return nil
		}

		batch := &pgx.Batch{}
		for _, p := range positions {
			batch.Queue(insertPositionQuery, positionArgs(mapping.ToModelPosition(p))...)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			if isUniqueViolation(err, "project_positions_pkey") {
				return apperrors.NewAppError(409, "position id already used by another project", apperrors.ErrDuplicate)
			}
			return apperrors.NewAppError(500, "failed to insert positions of project "+projectID, err)
		}
		return nil
	})
}

// SavePosition inserts a single position.
func (r *PgxPositionRepository) SavePosition(ctx context.Context, position domain.Position) error {
	if _, err := r.Pool.Exec(ctx, insertPositionQuery, positionArgs(mapping.ToModelPosition(position))...); err != nil {
		if isUniqueViolation(err, "project_positions_pkey") {
			return apperrors.NewAppError(409, "position already exists", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert position "+position.PositionID, err)
	}
	return nil
}

// UpdatePosition overwrites the editable fields and cached totals of a position.
func (r *PgxPositionRepository) UpdatePosition(ctx context.Context, position domain.Position) error {
	m := mapping.ToModelPosition(position)
	query := `
		UPDATE project_positions
		SET sort_order = $3, description = $4, unit = $5, amount = $6, quantity = $7,
		    partner_rate = $8, partner_mode = $9, partner_total = $10,
		    customer_rate = $11, customer_mode = $12, customer_total = $13,
		    margin_type = $14, margin_percent = $15, last_updated_at = $16, last_updated_by = $17
		WHERE project_id = $1 AND position_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ProjectID,
		m.PositionID,
		m.SortOrder,
		m.Description,
		m.Unit,
		m.Amount,
		m.Quantity,
		m.PartnerRate,
		m.PartnerMode,
		m.PartnerTotal,
		m.CustomerRate,
		m.CustomerMode,
		m.CustomerTotal,
		m.MarginType,
		m.MarginPercent,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update position "+m.PositionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeletePosition removes a single position.
func (r *PgxPositionRepository) DeletePosition(ctx context.Context, projectID, positionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM project_positions WHERE project_id = $1 AND position_id = $2;`, projectID, positionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete position "+positionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
