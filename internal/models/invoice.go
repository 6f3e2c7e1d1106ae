package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice is the row of the invoices table.
type Invoice struct {
	InvoiceID      string          `json:"invoiceID"`
	ProjectID      string          `json:"projectID"`
	CustomerID     string          `json:"customerID"`
	InvoiceNumber  string          `json:"invoiceNumber"`
	NumberYear     int             `json:"numberYear"`
	NumberSequence int             `json:"numberSequence"`
	InvoiceDate    time.Time       `json:"invoiceDate"`
	DueDate        time.Time       `json:"dueDate"`
	AmountNet      decimal.Decimal `json:"amountNet"`
	TaxRate        decimal.Decimal `json:"taxRate"`
	AmountTax      decimal.Decimal `json:"amountTax"`
	AmountGross    decimal.Decimal `json:"amountGross"`
	Shipping       decimal.Decimal `json:"shipping"`
	Discount       decimal.Decimal `json:"discount"`
	PaidAmount     decimal.Decimal `json:"paidAmount"`
	AmountDue      decimal.Decimal `json:"amountDue"`
	Status         string          `json:"status"`
	Notes          string          `json:"notes"`
	AuditFields
}

// InvoiceItem is the row of the invoice_items table.
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
