package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
)

// InvoiceReader defines read operations for invoice data
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice with its items.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoicesByProjectID retrieves the invoices of a project ordered by creation time, without items.
	ListInvoicesByProjectID(ctx context.Context, projectID string) ([]domain.Invoice, error)

	// ListInvoicesByProjectIDs retrieves invoices for multiple projects, grouped by project ID.
	ListInvoicesByProjectIDs(ctx context.Context, projectIDs []string) (map[string][]domain.Invoice, error)
}

// InvoiceWriter defines write operations for invoice data
type InvoiceWriter interface {
	// CreateInvoice assigns the next number of the invoice year and stores the
	// invoice and its items in one transaction. It fails with finance.ErrInvoiceExists
	// when the project already has a non-cancelled invoice.
	CreateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error)

	// UpdateInvoiceStatus moves an invoice from status from to status to. It fails with
	// finance.ErrInvalidStatusTransition when the stored status is no longer from.
	UpdateInvoiceStatus(ctx context.Context, invoiceID string, from, to domain.InvoiceStatus, updatedBy string, updatedAt time.Time) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
