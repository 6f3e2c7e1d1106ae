package dto

import (
	"time"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest defines the data needed to record an inbound payment.
type RecordPaymentRequest struct {
	Amount      NumberInput `json:"amount" swaggertype:"string" example:"60.00"`
	PaymentDate *time.Time  `json:"paymentDate"` // Defaults to now
	Method      string      `json:"paymentMethod" binding:"max=50" example:"transfer"`
	Note        string      `json:"note" binding:"max=1000"`
}

// ListPaymentsParams holds query parameters for listing payments.
type ListPaymentsParams struct {
	Limit     int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken *string `form:"nextToken"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID   string          `json:"id"`
	ProjectID   string          `json:"projectID"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate"`
	Method      string          `json:"paymentMethod"`
	Note        string          `json:"note,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   string          `json:"createdBy"`
}

// RecordPaymentResponse returns the stored payment with the refreshed financials.
type RecordPaymentResponse struct {
	Payment    PaymentResponse    `json:"payment"`
	Financials FinancialsResponse `json:"financials"`
}

// ListPaymentsResponse is one page of payments, newest first.
type ListPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO.
func ToPaymentResponse(p domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		ProjectID:   p.ProjectID,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate,
		Method:      p.Method,
		Note:        p.Note,
		CreatedAt:   p.CreatedAt,
		CreatedBy:   p.CreatedBy,
	}
}

// ToPaymentResponses converts a slice of domain.Payment to []PaymentResponse.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		responses[i] = ToPaymentResponse(p)
	}
	return responses
}
