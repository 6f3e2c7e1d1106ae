package finance

import (
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ResolveTotal computes a line total.
// In fixed mode the rate is a flat fee multiplied by quantity and amount is ignored.
// In unit mode the total is amount * quantity * rate.
// The result is not rounded.
func ResolveTotal(amount, quantity, rate decimal.Decimal, mode domain.PricingMode) decimal.Decimal {
	if mode == domain.ModeFixed {
		return rate.Mul(quantity)
	}
	return amount.Mul(quantity).Mul(rate)
}

// RecalculatePosition returns p with PartnerTotal and CustomerTotal overwritten
// from its current inputs.
func RecalculatePosition(p domain.Position) domain.Position {
	p.PartnerTotal = ResolveTotal(p.Amount, p.Quantity, p.PartnerRate, p.PartnerMode)
	p.CustomerTotal = ResolveTotal(p.Amount, p.Quantity, p.CustomerRate, p.CustomerMode)
	return p
}

// RecalculatePositions recalculates every position in place and returns the slice.
func RecalculatePositions(positions []domain.Position) []domain.Position {
	for i := range positions {
		positions[i] = RecalculatePosition(positions[i])
	}
	return positions
}

// PositionEdit is a partial change to a position. Nil fields are left untouched.
type PositionEdit struct {
	Description   *string
	Unit          *domain.Unit
	Amount        *decimal.Decimal
	Quantity      *decimal.Decimal
	PartnerRate   *decimal.Decimal
	PartnerMode   *domain.PricingMode
	CustomerRate  *decimal.Decimal
	CustomerMode  *domain.PricingMode
	MarginType    *domain.MarginType
	MarginPercent *decimal.Decimal
}

// ApplyPositionEdit applies edit to p and recalculates both cached totals.
// Negative numeric inputs are coerced to zero.
func ApplyPositionEdit(p domain.Position, edit PositionEdit) domain.Position {
	if edit.Description != nil {
		p.Description = *edit.Description
	}
	if edit.Unit != nil {
		p.Unit = *edit.Unit
	}
	if edit.Amount != nil {
		p.Amount = NonNegative(*edit.Amount)
	}
	if edit.Quantity != nil {
		p.Quantity = NonNegative(*edit.Quantity)
	}
	if edit.PartnerRate != nil {
		p.PartnerRate = NonNegative(*edit.PartnerRate)
	}
	if edit.PartnerMode != nil {
		p.PartnerMode = normalizeMode(*edit.PartnerMode)
	}
	if edit.CustomerRate != nil {
		p.CustomerRate = NonNegative(*edit.CustomerRate)
	}
	if edit.CustomerMode != nil {
		p.CustomerMode = normalizeMode(*edit.CustomerMode)
	}
	if edit.MarginType != nil {
		p.MarginType = *edit.MarginType
	}
	if edit.MarginPercent != nil {
		p.MarginPercent = *edit.MarginPercent
	}
	return RecalculatePosition(p)
}

func normalizeMode(m domain.PricingMode) domain.PricingMode {
	if m == domain.ModeFixed {
		return domain.ModeFixed
	}
	return domain.ModeUnit
}
