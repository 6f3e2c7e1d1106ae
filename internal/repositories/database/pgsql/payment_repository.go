package pgsql

import (
	"context"
	"strconv"

	"github.com/SscSPs/agency_backoffice/internal/apperrors"
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/agency_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/agency_backoffice/internal/models"
	"github.com/SscSPs/agency_backoffice/internal/utils/mapping"
	"github.com/SscSPs/agency_backoffice/internal/utils/pagination"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	defaultPaymentPageSize = 20
	maxPaymentPageSize     = 100
)

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

const paymentColumns = `
	payment_id, project_id, amount, payment_date, payment_method, note,
	created_at, created_by, last_updated_at, last_updated_by`

func (r *PgxPaymentRepository) queryPayments(ctx context.Context, query string, args ...any) ([]models.Payment, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query payments", err)
	}
	defer rows.Close()

	payments := []models.Payment{}
	for rows.Next() {
		var m models.Payment
		err := rows.Scan(
			&m.PaymentID,
			&m.ProjectID,
			&m.Amount,
			&m.PaymentDate,
			&m.Method,
			&m.Note,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan payment row", err)
		}
		payments = append(payments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating payment rows", err)
	}
	return payments, nil
}

// SavePayment appends a payment.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO project_payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PaymentID,
		m.ProjectID,
		m.Amount,
		m.PaymentDate,
		m.Method,
		m.Note,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert payment "+m.PaymentID, err)
	}
	return nil
}

// ListPaymentsByProjectID retrieves every payment of a project.
func (r *PgxPaymentRepository) ListPaymentsByProjectID(ctx context.Context, projectID string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM project_payments WHERE project_id = $1 ORDER BY payment_date, created_at;`
	payments, err := r.queryPayments(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainPaymentSlice(payments), nil
}

// ListPaymentsByProjectIDs retrieves payments for multiple projects, grouped by project ID.
func (r *PgxPaymentRepository) ListPaymentsByProjectIDs(ctx context.Context, projectIDs []string) (map[string][]domain.Payment, error) {
	result := make(map[string][]domain.Payment, len(projectIDs))
	if len(projectIDs) == 0 {
		return result, nil
	}
	query := `SELECT ` + paymentColumns + ` FROM project_payments WHERE project_id = ANY($1) ORDER BY project_id, payment_date, created_at;`
	payments, err := r.queryPayments(ctx, query, projectIDs)
	if err != nil {
		return nil, err
	}
	for _, m := range payments {
		result[m.ProjectID] = append(result[m.ProjectID], mapping.ToDomainPayment(m))
	}
	return result, nil
}

// ListPaymentsPage retrieves a page of payments, newest first, using token-based pagination.
// It returns the payments, a token for the next page, and an error.
func (r *PgxPaymentRepository) ListPaymentsPage(ctx context.Context, projectID string, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	limit = pagination.ClampLimit(limit, defaultPaymentPageSize, maxPaymentPageSize)
	// We fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	query := `SELECT ` + paymentColumns + ` FROM project_payments WHERE project_id = $1`
	args := []any{projectID}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", apperrors.ErrValidation)
		}
		query += ` AND (payment_date, created_at) < ($2, $3)`
		args = append(args, lastDate, lastCreatedAt)
	}

	// payment_date DESC with created_at DESC as a tie-breaker keeps the order stable
	query += ` ORDER BY payment_date DESC, created_at DESC LIMIT $` + strconv.Itoa(len(args)+1) + `;`
	args = append(args, fetchLimit)

	payments, err := r.queryPayments(ctx, query, args...)
	if err != nil {
		return nil, nil, err
	}

	var next *string
	if len(payments) > limit {
		last := payments[limit-1]
		token := pagination.EncodeToken(last.PaymentDate, last.CreatedAt)
		next = &token
		payments = payments[:limit]
	}

	return mapping.ToDomainPaymentSlice(payments), next, nil
}
