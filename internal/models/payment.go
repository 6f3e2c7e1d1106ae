package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the row of the project_payments table.
type Payment struct {
	PaymentID   string          `json:"paymentID"`
	ProjectID   string          `json:"projectID"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate"`
	Method      string          `json:"paymentMethod"`
	Note        string          `json:"note"`
	AuditFields
}
