package finance

import (
	"fmt"
	"time"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultPaymentTermDays is the due-date offset used when none is configured.
const DefaultPaymentTermDays = 14

// SeedOptions are the caller-supplied parts of an invoice snapshot.
type SeedOptions struct {
	TaxRate  *decimal.Decimal // Percent; nil means ProjectVATRate
	Shipping decimal.Decimal
	Discount decimal.Decimal
	Paid     *decimal.Decimal // nil means the recorded payments
}

// InvoiceSeed is the frozen amounts block of a new invoice.
type InvoiceSeed struct {
	Net      decimal.Decimal `json:"net"`
	TaxRate  decimal.Decimal `json:"taxRate"`
	Tax      decimal.Decimal `json:"tax"`
	Gross    decimal.Decimal `json:"gross"`
	Shipping decimal.Decimal `json:"shipping"`
	Discount decimal.Decimal `json:"discount"`
	Paid     decimal.Decimal `json:"paid"`
	Due      decimal.Decimal `json:"due"`
}

// SeedInvoice snapshots summary into invoice amounts.
// net = round(netTotal, 2) + shipping - discount, tax = round(net * rate / 100, 2),
// gross = net + tax, due = gross - paid.
func SeedInvoice(summary domain.FinancialSummary, opts SeedOptions) InvoiceSeed {
	rate := ProjectVATRate
	if opts.TaxRate != nil {
		rate = NonNegative(*opts.TaxRate)
	}
	shipping := NonNegative(opts.Shipping)
	discount := NonNegative(opts.Discount)
	paid := summary.Paid
	if opts.Paid != nil {
		paid = NonNegative(*opts.Paid)
	}

	net := summary.NetTotal.Round(domain.DisplayPrecision).Add(shipping).Sub(discount)
	tax := TaxFor(net, rate)
	gross := net.Add(tax)

	return InvoiceSeed{
		Net:      net,
		TaxRate:  rate,
		Tax:      tax,
		Gross:    gross,
		Shipping: shipping,
		Discount: discount,
		Paid:     paid.Round(domain.DisplayPrecision),
		Due:      gross.Sub(paid).Round(domain.DisplayPrecision),
	}
}

// Apply copies the seed amounts onto inv.
func (s InvoiceSeed) Apply(inv *domain.Invoice) {
	inv.AmountNet = s.Net
	inv.TaxRate = s.TaxRate
	inv.AmountTax = s.Tax
	inv.AmountGross = s.Gross
	inv.Shipping = s.Shipping
	inv.Discount = s.Discount
	inv.PaidAmount = s.Paid
	inv.AmountDue = s.Due
}

// FormatInvoiceNumber renders the sequential invoice number for a year.
func FormatInvoiceNumber(year, sequence int) string {
	return fmt.Sprintf("RE-%d-%05d", year, sequence)
}

// DueDate returns date plus termDays, falling back to the default term when termDays <= 0.
func DueDate(date time.Time, termDays int) time.Time {
	if termDays <= 0 {
		termDays = DefaultPaymentTermDays
	}
	return date.AddDate(0, 0, termDays)
}
