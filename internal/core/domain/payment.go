package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultPaymentMethod is used when a payment is recorded without a method.
const DefaultPaymentMethod = "transfer"

// Payment is one recorded inbound payment for a project.
// Payments are append-only here; removal happens outside this service.
type Payment struct {
	PaymentID   string          `json:"paymentID"` // Primary Key (UUID)
	ProjectID   string          `json:"projectID"` // FK -> projects.project_id
	Amount      decimal.Decimal `json:"amount"`    // Always > 0
	PaymentDate time.Time       `json:"paymentDate"`
	Method      string          `json:"method"` // Free text (transfer, cash, card, ...)
	Note        string          `json:"note"`
	AuditFields
}
