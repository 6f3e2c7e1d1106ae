package finance

import (
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProjectVATRate is the flat VAT percentage applied to project totals.
var ProjectVATRate = decimal.NewFromInt(19)

var hundred = decimal.NewFromInt(100)

// TaxFor returns round(net * ratePercent / 100, 2).
func TaxFor(net, ratePercent decimal.Decimal) decimal.Decimal {
	return net.Mul(ratePercent).Div(hundred).Round(domain.DisplayPrecision)
}

// Summarize derives the financial summary of a project.
// Totals are recomputed from each position's inputs, so stale cached totals
// never leak into the summary. Only the tax amount is rounded.
func Summarize(positions []domain.Position, flags domain.ProjectFlags, payments []domain.Payment) domain.FinancialSummary {
	positionsNet := decimal.Zero
	partnerTotal := decimal.Zero
	for _, p := range positions {
		positionsNet = positionsNet.Add(ResolveTotal(p.Amount, p.Quantity, p.CustomerRate, p.CustomerMode))
		partnerTotal = partnerTotal.Add(ResolveTotal(p.Amount, p.Quantity, p.PartnerRate, p.PartnerMode))
	}

	extra := ExtraTotal(flags)
	net := positionsNet.Add(extra)
	tax := TaxFor(net, ProjectVATRate)
	gross := net.Add(tax)

	margin := net.Sub(partnerTotal)
	marginPercent := decimal.Zero
	if net.IsPositive() {
		marginPercent = margin.Div(net).Mul(hundred)
	}

	paid := SumPayments(payments)

	return domain.FinancialSummary{
		NetTotal:      net,
		TaxTotal:      tax,
		GrossTotal:    gross,
		PartnerTotal:  partnerTotal,
		Margin:        margin,
		MarginPercent: marginPercent,
		Paid:          paid,
		Open:          gross.Sub(paid),
		ExtraTotal:    extra,
	}
}

// SumPayments returns the total of all payment amounts.
func SumPayments(payments []domain.Payment) decimal.Decimal {
	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(p.Amount)
	}
	return paid
}

// Settlement describes how far the gross total has been paid.
type Settlement string

const (
	SettlementOpen     Settlement = "open"
	SettlementPartial  Settlement = "partial"
	SettlementPaid     Settlement = "paid"
	SettlementOverpaid Settlement = "overpaid"
)

// SettlementOf classifies a summary by its open balance.
func SettlementOf(s domain.FinancialSummary) Settlement {
	switch {
	case s.Open.IsNegative():
		return SettlementOverpaid
	case s.Open.IsZero():
		return SettlementPaid
	case s.Paid.IsPositive():
		return SettlementPartial
	default:
		return SettlementOpen
	}
}
