package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceIssued    InvoiceStatus = "issued"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceOverdue   InvoiceStatus = "overdue"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// invoiceTransitions lists the statuses reachable from each status.
// Cancellation is handled separately and allowed from every non-cancelled status.
var invoiceTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoiceDraft:   {InvoiceIssued},
	InvoiceIssued:  {InvoiceSent, InvoicePaid, InvoiceOverdue},
	InvoiceSent:    {InvoicePaid, InvoiceOverdue},
	InvoiceOverdue: {InvoicePaid},
}

// IsValid reports whether s is a known invoice status.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceDraft, InvoiceIssued, InvoiceSent, InvoicePaid, InvoiceOverdue, InvoiceCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether an invoice in status s may move to next.
func (s InvoiceStatus) CanTransitionTo(next InvoiceStatus) bool {
	if s == InvoiceCancelled {
		return false
	}
	if next == InvoiceCancelled {
		return true
	}
	for _, allowed := range invoiceTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Invoice is a frozen billing snapshot of a project.
// Amounts are copied at creation time and never re-derived from positions.
type Invoice struct {
	InvoiceID      string          `json:"invoiceID"` // Primary Key (UUID)
	ProjectID      string          `json:"projectID"`
	CustomerID     string          `json:"customerID"`
	InvoiceNumber  string          `json:"invoiceNumber"` // RE-YYYY-NNNNN
	NumberSequence int             `json:"numberSequence"`
	Date           time.Time       `json:"date"`
	DueDate        time.Time       `json:"dueDate"`
	AmountNet      decimal.Decimal `json:"amountNet"`
	TaxRate        decimal.Decimal `json:"taxRate"` // Percent, e.g. 19.00
	AmountTax      decimal.Decimal `json:"amountTax"`
	AmountGross    decimal.Decimal `json:"amountGross"`
	Shipping       decimal.Decimal `json:"shipping"`
	Discount       decimal.Decimal `json:"discount"`
	PaidAmount     decimal.Decimal `json:"paidAmount"`
	AmountDue      decimal.Decimal `json:"amountDue"`
	Status         InvoiceStatus   `json:"status"`
	Notes          string          `json:"notes"`
	Items          []InvoiceItem   `json:"items,omitempty"`
	AuditFields
}

// IsActive reports whether the invoice counts for the position lock.
func (i Invoice) IsActive() bool {
	return i.Status != InvoiceCancelled
}

// InvoiceItem is one frozen line on an invoice.
type InvoiceItem struct {
	InvoiceItemID string          `json:"invoiceItemID"`
	InvoiceID     string          `json:"invoiceID"`
	LineNo        int             `json:"lineNo"`
	Description   string          `json:"description"`
	Quantity      decimal.Decimal `json:"quantity"`
	Unit          string          `json:"unit"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Total         decimal.Decimal `json:"total"`
}
