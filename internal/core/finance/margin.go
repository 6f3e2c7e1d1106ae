package finance

import (
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RatePrecision is the number of fractional digits a derived customer rate keeps.
const RatePrecision = 4

// PriceFromMargin derives a customer price from partner cost.
// markup adds percent on top of the cost, discount takes percent off it.
// The result never drops below zero.
func PriceFromMargin(partnerPrice decimal.Decimal, marginType domain.MarginType, percent decimal.Decimal) decimal.Decimal {
	factor := percent.Div(hundred)
	switch marginType {
	case domain.MarginMarkup:
		return NonNegative(partnerPrice.Mul(one.Add(factor)))
	case domain.MarginDiscount:
		return NonNegative(partnerPrice.Mul(one.Sub(factor)))
	default:
		return partnerPrice
	}
}

// ApplyMargin derives the customer rate of a unit-priced position from its
// partner total and margin settings, then recalculates both totals.
// Fixed-priced customer sides keep the entered rate.
func ApplyMargin(p domain.Position) domain.Position {
	if p.CustomerMode != domain.ModeUnit || !p.MarginType.IsValid() {
		return RecalculatePosition(p)
	}
	units := p.Amount.Mul(p.Quantity)
	if !units.IsPositive() {
		p.CustomerRate = decimal.Zero
		return RecalculatePosition(p)
	}
	partnerTotal := ResolveTotal(p.Amount, p.Quantity, p.PartnerRate, p.PartnerMode)
	customerTotal := PriceFromMargin(partnerTotal, p.MarginType, p.MarginPercent)
	p.CustomerRate = customerTotal.Div(units).Round(RatePrecision)
	return RecalculatePosition(p)
}
