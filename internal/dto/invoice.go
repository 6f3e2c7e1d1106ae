package dto

import (
	"time"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest defines the caller-supplied parts of a new invoice.
// Amounts are seeded from the project financials.
type CreateInvoiceRequest struct {
	CustomerID string      `json:"customerID" binding:"max=64"` // Defaults to the project customer
	Date       *time.Time  `json:"date"`                        // Defaults to today
	DueDate    *time.Time  `json:"dueDate"`                     // Defaults to date + payment term
	TaxRate    NumberInput `json:"taxRate" swaggertype:"string" example:"19.00"`
	Shipping   NumberInput `json:"shipping" swaggertype:"string" example:"0"`
	Discount   NumberInput `json:"discount" swaggertype:"string" example:"0"`
	Paid       NumberInput `json:"paidAmount" swaggertype:"string"` // Defaults to recorded payments
	Notes      string      `json:"notes" binding:"max=2000"`
}

// UpdateInvoiceStatusRequest moves an invoice through its lifecycle.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required,invoicestatus" example:"issued"`
}

// InvoiceItemResponse defines the data returned for an invoice line.
type InvoiceItemResponse struct {
	LineNo      int             `json:"lineNo"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Total       decimal.Decimal `json:"total"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID     string                `json:"id"`
	ProjectID     string                `json:"projectID"`
	CustomerID    string                `json:"customerID"`
	InvoiceNumber string                `json:"invoiceNumber"`
	Date          time.Time             `json:"date"`
	DueDate       time.Time             `json:"dueDate"`
	AmountNet     decimal.Decimal       `json:"amountNet"`
	TaxRate       decimal.Decimal       `json:"taxRate"`
	AmountTax     decimal.Decimal       `json:"amountTax"`
	AmountGross   decimal.Decimal       `json:"amountGross"`
	Shipping      decimal.Decimal       `json:"shipping"`
	Discount      decimal.Decimal       `json:"discount"`
	PaidAmount    decimal.Decimal       `json:"paidAmount"`
	AmountDue     decimal.Decimal       `json:"amountDue"`
	Status        string                `json:"status"`
	Notes         string                `json:"notes,omitempty"`
	Items         []InvoiceItemResponse `json:"items,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
	CreatedBy     string                `json:"createdBy"`
}

// ListInvoicesResponse lists the invoices of a project, oldest first.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	LockState domain.LockState  `json:"lockState"`
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		ProjectID:     inv.ProjectID,
		CustomerID:    inv.CustomerID,
		InvoiceNumber: inv.InvoiceNumber,
		Date:          inv.Date,
		DueDate:       inv.DueDate,
		AmountNet:     inv.AmountNet,
		TaxRate:       inv.TaxRate,
		AmountTax:     inv.AmountTax,
		AmountGross:   inv.AmountGross,
		Shipping:      inv.Shipping,
		Discount:      inv.Discount,
		PaidAmount:    inv.PaidAmount,
		AmountDue:     inv.AmountDue,
		Status:        string(inv.Status),
		Notes:         inv.Notes,
		CreatedAt:     inv.CreatedAt,
		CreatedBy:     inv.CreatedBy,
	}
	for _, it := range inv.Items {
		resp.Items = append(resp.Items, InvoiceItemResponse{
			LineNo:      it.LineNo,
			Description: it.Description,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return resp
}

// ToInvoiceResponses converts a slice of domain.Invoice to []InvoiceResponse.
func ToInvoiceResponses(invoices []domain.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = ToInvoiceResponse(&invoices[i])
	}
	return responses
}
