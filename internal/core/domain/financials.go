package domain

import "github.com/shopspring/decimal"

// DisplayPrecision is the number of fractional digits amounts are shown with.
const DisplayPrecision = 2

// FinancialSummary is the derived financial view of a project.
// It is never stored; it is recomputed from positions, flags and payments.
type FinancialSummary struct {
	NetTotal      decimal.Decimal `json:"netTotal"`
	TaxTotal      decimal.Decimal `json:"taxTotal"`
	GrossTotal    decimal.Decimal `json:"grossTotal"`
	PartnerTotal  decimal.Decimal `json:"partnerTotal"`
	Margin        decimal.Decimal `json:"margin"`
	MarginPercent decimal.Decimal `json:"marginPercent"`
	Paid          decimal.Decimal `json:"paid"`
	Open          decimal.Decimal `json:"open"`
	ExtraTotal    decimal.Decimal `json:"extraTotal"`
}

// Rounded returns a copy with every amount rounded for display.
func (s FinancialSummary) Rounded() FinancialSummary {
	return FinancialSummary{
		NetTotal:      s.NetTotal.Round(DisplayPrecision),
		TaxTotal:      s.TaxTotal.Round(DisplayPrecision),
		GrossTotal:    s.GrossTotal.Round(DisplayPrecision),
		PartnerTotal:  s.PartnerTotal.Round(DisplayPrecision),
		Margin:        s.Margin.Round(DisplayPrecision),
		MarginPercent: s.MarginPercent.Round(DisplayPrecision),
		Paid:          s.Paid.Round(DisplayPrecision),
		Open:          s.Open.Round(DisplayPrecision),
		ExtraTotal:    s.ExtraTotal.Round(DisplayPrecision),
	}
}

// IsSettled reports whether nothing is left to pay.
func (s FinancialSummary) IsSettled() bool {
	return !s.Open.IsPositive()
}

// LockState is the position lock of a project.
type LockState string

const (
	// Unlocked means no active invoice exists; positions may change.
	Unlocked LockState = "UNLOCKED"
	// Locked means a non-cancelled invoice exists; positions are frozen.
	Locked LockState = "LOCKED"
)
