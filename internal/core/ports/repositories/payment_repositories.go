package repositories

import (
	"context"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// ListPaymentsByProjectID retrieves every payment of a project.
	ListPaymentsByProjectID(ctx context.Context, projectID string) ([]domain.Payment, error)

	// ListPaymentsPage retrieves a page of payments, newest first, using token-based pagination.
	// It returns the payments, a token for the next page, and an error.
	ListPaymentsPage(ctx context.Context, projectID string, limit int, nextToken *string) ([]domain.Payment, *string, error)

	// ListPaymentsByProjectIDs retrieves payments for multiple projects, grouped by project ID.
	ListPaymentsByProjectIDs(ctx context.Context, projectIDs []string) (map[string][]domain.Payment, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	// SavePayment appends a payment.
	SavePayment(ctx context.Context, payment domain.Payment) error
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
