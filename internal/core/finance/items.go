package finance

import (
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InvoiceItemsFor freezes positions and surcharges into invoice lines.
// The line totals sum to the unrounded net total of the project.
func InvoiceItemsFor(positions []domain.Position, flags domain.ProjectFlags) []domain.InvoiceItem {
	items := make([]domain.InvoiceItem, 0, len(positions)+5)
	for _, p := range positions {
		var qty, price decimal.Decimal
		unit := UnitLabel(p.Unit)
		if p.CustomerMode == domain.ModeFixed {
			qty = p.Quantity
			price = p.CustomerRate
			unit = UnitLabel(domain.UnitFlat)
		} else {
			qty = p.Amount.Mul(p.Quantity)
			price = p.CustomerRate
		}
		items = append(items, domain.InvoiceItem{
			LineNo:      len(items) + 1,
			Description: p.Description,
			Quantity:    qty,
			Unit:        unit,
			UnitPrice:   price,
			Total:       ResolveTotal(p.Amount, p.Quantity, p.CustomerRate, p.CustomerMode),
		})
	}
	for _, s := range Surcharges(flags) {
		items = append(items, domain.InvoiceItem{
			LineNo:      len(items) + 1,
			Description: s.Label,
			Quantity:    s.Quantity,
			Unit:        "Stück",
			UnitPrice:   s.UnitPrice,
			Total:       s.Total,
		})
	}
	return items
}
