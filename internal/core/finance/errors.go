package finance

import (
	"fmt"

	"github.com/SscSPs/agency_backoffice/internal/apperrors"
)

var (
	// ErrPositionsLocked is returned when a position mutation is attempted while an active invoice exists.
	ErrPositionsLocked = fmt.Errorf("positions are locked by an active invoice: %w", apperrors.ErrConflict)
	// ErrInvoiceExists is returned when an invoice is requested for a project that already has an active one.
	ErrInvoiceExists = fmt.Errorf("project already has an active invoice: %w", apperrors.ErrConflict)
	// ErrPaymentNotAllowed is returned when a payment is recorded without an active invoice or with nothing open.
	ErrPaymentNotAllowed = fmt.Errorf("payment cannot be recorded for this project: %w", apperrors.ErrConflict)
	// ErrInvalidStatusTransition is returned when an invoice status change is not permitted.
	ErrInvalidStatusTransition = fmt.Errorf("invalid invoice status transition: %w", apperrors.ErrConflict)
	// ErrSubmissionInProgress is returned when a second submission for the same project arrives while one is outstanding.
	ErrSubmissionInProgress = fmt.Errorf("another submission for this project is in progress: %w", apperrors.ErrConflict)
)
