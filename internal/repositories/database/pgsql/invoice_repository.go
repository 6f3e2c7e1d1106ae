package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/agency_backoffice/internal/apperrors"
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/core/finance"
	portsrepo "github.com/SscSPs/agency_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/agency_backoffice/internal/models"
	"github.com/SscSPs/agency_backoffice/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const activeInvoiceConstraint = "invoices_one_active_per_project"

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryFacade {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepositoryFacade = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `
	invoice_id, project_id, customer_id, invoice_number, number_year, number_sequence,
	invoice_date, due_date, amount_net, tax_rate, amount_tax, amount_gross,
	shipping, discount, paid_amount, amount_due, status, notes,
	created_at, created_by, last_updated_at, last_updated_by`

const invoiceItemColumns = `
	invoice_item_id, invoice_id, line_no, description, quantity, unit, unit_price, total`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var m models.Invoice
	err := row.Scan(
		&m.InvoiceID,
		&m.ProjectID,
		&m.CustomerID,
		&m.InvoiceNumber,
		&m.NumberYear,
		&m.NumberSequence,
		&m.InvoiceDate,
		&m.DueDate,
		&m.AmountNet,
		&m.TaxRate,
		&m.AmountTax,
		&m.AmountGross,
		&m.Shipping,
		&m.Discount,
		&m.PaidAmount,
		&m.AmountDue,
		&m.Status,
		&m.Notes,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// CreateInvoice reserves the next number of the invoice year and stores the invoice with its items.
func (r *PgxInvoiceRepository) CreateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	year := invoice.Date.Year()
	var sequence int
	err = tx.QueryRow(ctx, `
		INSERT INTO invoice_number_sequences (year, last_value)
		VALUES ($1, 1)
		ON CONFLICT (year) DO UPDATE SET last_value = invoice_number_sequences.last_value + 1
		RETURNING last_value;
	`, year).Scan(&sequence)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to reserve invoice number", err)
	}

	invoice.NumberSequence = sequence
	invoice.InvoiceNumber = finance.FormatInvoiceNumber(year, sequence)
	m := mapping.ToModelInvoice(invoice)

	_, err = tx.Exec(ctx, `
		INSERT INTO invoices (`+invoiceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22);
	`,
		m.InvoiceID,
		m.ProjectID,
		m.CustomerID,
		m.InvoiceNumber,
		m.NumberYear,
		m.NumberSequence,
		m.InvoiceDate,
		m.DueDate,
		m.AmountNet,
		m.TaxRate,
		m.AmountTax,
		m.AmountGross,
		m.Shipping,
		m.Discount,
		m.PaidAmount,
		m.AmountDue,
		m.Status,
		m.Notes,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err, activeInvoiceConstraint) {
			return nil, finance.ErrInvoiceExists
		}
		return nil, apperrors.NewAppError(500, "failed to insert invoice "+m.InvoiceID, err)
	}

	if len(invoice.Items) > 0 {
		batch := &pgx.Batch{}
		for i := range invoice.Items {
			invoice.Items[i].InvoiceID = invoice.InvoiceID
			item := mapping.ToModelInvoiceItem(invoice.Items[i])
			batch.Queue(`INSERT INTO invoice_items (`+invoiceItemColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
				item.InvoiceItemID,
				item.InvoiceID,
				item.LineNo,
				item.Description,
				item.Quantity,
				item.Unit,
				item.UnitPrice,
				item.Total,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return nil, apperrors.NewAppError(500, "failed to insert items of invoice "+m.InvoiceID, err)
		}
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// FindInvoiceByID retrieves an invoice together with its items.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`
	m, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice "+invoiceID, err)
	}
	invoice := mapping.ToDomainInvoice(m)

	rows, err := r.Pool.Query(ctx, `SELECT `+invoiceItemColumns+` FROM invoice_items WHERE invoice_id = $1 ORDER BY line_no;`, invoiceID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query items of invoice "+invoiceID, err)
	}
	defer rows.Close()

	invoice.Items = []domain.InvoiceItem{}
	for rows.Next() {
		var item models.InvoiceItem
		if err := rows.Scan(
			&item.InvoiceItemID,
			&item.InvoiceID,
			&item.LineNo,
			&item.Description,
			&item.Quantity,
			&item.Unit,
			&item.UnitPrice,
			&item.Total,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice item row", err)
		}
		invoice.Items = append(invoice.Items, mapping.ToDomainInvoiceItem(item))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoice item rows", err)
	}

	return &invoice, nil
}

func (r *PgxInvoiceRepository) queryInvoices(ctx context.Context, query string, args ...any) ([]domain.Invoice, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query invoices", err)
	}
	defer rows.Close()

	invoices := []domain.Invoice{}
	for rows.Next() {
		m, err := scanInvoice(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice row", err)
		}
		invoices = append(invoices, mapping.ToDomainInvoice(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating invoice rows", err)
	}
	return invoices, nil
}

// ListInvoicesByProjectID retrieves the invoices of a project, oldest first.
func (r *PgxInvoiceRepository) ListInvoicesByProjectID(ctx context.Context, projectID string) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE project_id = $1 ORDER BY created_at, invoice_id;`
	return r.queryInvoices(ctx, query, projectID)
}

// ListInvoicesByProjectIDs retrieves invoices for multiple projects, grouped by project ID.
func (r *PgxInvoiceRepository) ListInvoicesByProjectIDs(ctx context.Context, projectIDs []string) (map[string][]domain.Invoice, error) {
	result := make(map[string][]domain.Invoice, len(projectIDs))
	if len(projectIDs) == 0 {
		return result, nil
	}
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE project_id = ANY($1) ORDER BY project_id, created_at, invoice_id;`
	invoices, err := r.queryInvoices(ctx, query, projectIDs)
	if err != nil {
		return nil, err
	}
	for _, inv := range invoices {
		result[inv.ProjectID] = append(result[inv.ProjectID], inv)
	}
	return result, nil
}

// UpdateInvoiceStatus moves an invoice from one status to another.
// The update only applies while the stored status still equals from.
func (r *PgxInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID string, from, to domain.InvoiceStatus, updatedBy string, updatedAt time.Time) error {
	query := `UPDATE invoices SET status = $3, last_updated_at = $4, last_updated_by = $5 WHERE invoice_id = $1 AND status = $2;`
	tag, err := r.Pool.Exec(ctx, query, invoiceID, string(from), string(to), updatedAt, updatedBy)
	if err != nil {
		if isUniqueViolation(err, activeInvoiceConstraint) {
			return finance.ErrInvoiceExists
		}
		return apperrors.NewAppError(500, "failed to update status of invoice "+invoiceID, err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM invoices WHERE invoice_id = $1);`, invoiceID).Scan(&exists); err != nil {
		return apperrors.NewAppError(500, "failed to check invoice "+invoiceID, err)
	}
	if !exists {
		return apperrors.ErrNotFound
	}
	return fmt.Errorf("invoice %s is no longer %s: %w", invoiceID, from, finance.ErrInvalidStatusTransition)
}
