package finance

import (
	"fmt"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ActiveInvoice returns the first non-cancelled invoice, or nil.
// invoices must be ordered by creation time.
func ActiveInvoice(invoices []domain.Invoice) *domain.Invoice {
	for i := range invoices {
		if invoices[i].IsActive() {
			return &invoices[i]
		}
	}
	return nil
}

// LockStateFor derives the lock state from the invoices of a project.
func LockStateFor(invoices []domain.Invoice) domain.LockState {
	if ActiveInvoice(invoices) != nil {
		return domain.Locked
	}
	return domain.Unlocked
}

// Gate is the position lock of one project, derived from its invoices.
type Gate struct {
	State  domain.LockState
	Active *domain.Invoice
}

// NewGate derives the gate from the project's invoices.
func NewGate(invoices []domain.Invoice) Gate {
	active := ActiveInvoice(invoices)
	if active == nil {
		return Gate{State: domain.Unlocked}
	}
	return Gate{State: domain.Locked, Active: active}
}

// Locked reports whether positions are frozen.
func (g Gate) Locked() bool {
	return g.State == domain.Locked
}

// CheckPositionMutation allows position add, edit, delete and save only while unlocked.
func (g Gate) CheckPositionMutation() error {
	if g.Locked() {
		return fmt.Errorf("invoice %s: %w", g.Active.InvoiceNumber, ErrPositionsLocked)
	}
	return nil
}

// CheckInvoiceCreation allows a new invoice only while unlocked.
func (g Gate) CheckInvoiceCreation() error {
	if g.Locked() {
		return fmt.Errorf("invoice %s: %w", g.Active.InvoiceNumber, ErrInvoiceExists)
	}
	return nil
}

// CheckPaymentRecording allows a payment only while locked, with a positive
// amount and an open balance. Overpayment by the recorded amount is permitted.
func (g Gate) CheckPaymentRecording(summary domain.FinancialSummary, amount decimal.Decimal) error {
	if !g.Locked() {
		return fmt.Errorf("no active invoice: %w", ErrPaymentNotAllowed)
	}
	if !summary.Open.IsPositive() {
		return fmt.Errorf("nothing open: %w", ErrPaymentNotAllowed)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("amount must be positive: %w", ErrPaymentNotAllowed)
	}
	return nil
}

// CheckStatusTransition validates moving an invoice from one status to another.
func CheckStatusTransition(from, to domain.InvoiceStatus) error {
	if !to.IsValid() || !from.CanTransitionTo(to) {
		return fmt.Errorf("%s -> %s: %w", from, to, ErrInvalidStatusTransition)
	}
	return nil
}
