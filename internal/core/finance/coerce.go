package finance

import (
	"strings"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// Bounds on parsed input. Anything outside them is treated as non-numeric, since
// rounding a value like 1e2000000000 does not terminate in reasonable time.
const (
	maxInputExponent = 20
	maxInputDigits   = 30
)

// parseDecimal accepts "12.5" as well as "12,5". Thousands separators are not supported.
func parseDecimal(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, false
	}
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	if exp := d.Exponent(); exp > maxInputExponent || exp < -maxInputExponent || d.NumDigits() > maxInputDigits {
		return decimal.Zero, false
	}
	return d, true
}

// NonNegative clamps d to zero from below.
func NonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// CoerceAmount parses a rate or amount field. Non-numeric and negative input becomes 0.
func CoerceAmount(raw string) decimal.Decimal {
	d, ok := parseDecimal(raw)
	if !ok {
		return decimal.Zero
	}
	return NonNegative(d)
}

// CoerceQuantity parses a quantity field. Empty or non-numeric input becomes 1,
// negative input becomes 0.
func CoerceQuantity(raw string) decimal.Decimal {
	d, ok := parseDecimal(raw)
	if !ok {
		return one
	}
	return NonNegative(d)
}

// ParsePricingMode maps free input to a pricing mode, defaulting to unit.
func ParsePricingMode(raw string) domain.PricingMode {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "fixed", "flat", "pauschal":
		return domain.ModeFixed
	default:
		return domain.ModeUnit
	}
}

var unitAliases = map[string]domain.Unit{
	"words":     domain.UnitWords,
	"word":      domain.UnitWords,
	"wörter":    domain.UnitWords,
	"woerter":   domain.UnitWords,
	"lines":     domain.UnitLines,
	"line":      domain.UnitLines,
	"normzeile": domain.UnitLines,
	"zeilen":    domain.UnitLines,
	"pages":     domain.UnitPages,
	"page":      domain.UnitPages,
	"seiten":    domain.UnitPages,
	"seite":     domain.UnitPages,
	"hours":     domain.UnitHours,
	"hour":      domain.UnitHours,
	"stunden":   domain.UnitHours,
	"stunde":    domain.UnitHours,
	"flat":      domain.UnitFlat,
	"pauschal":  domain.UnitFlat,
}

// ParseUnit maps English or German unit labels to the unit vocabulary,
// defaulting to words.
func ParseUnit(raw string) domain.Unit {
	if u, ok := unitAliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return u
	}
	return domain.UnitWords
}

// IsKnownUnit reports whether raw is one of the unit names or labels ParseUnit understands.
func IsKnownUnit(raw string) bool {
	_, ok := unitAliases[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}

// IsKnownPricingMode reports whether raw names a pricing mode explicitly.
func IsKnownPricingMode(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "unit", "fixed", "flat", "pauschal":
		return true
	default:
		return false
	}
}

// UnitLabel is the German display label used on invoice lines.
func UnitLabel(u domain.Unit) string {
	switch u {
	case domain.UnitLines:
		return "Normzeile"
	case domain.UnitPages:
		return "Seiten"
	case domain.UnitHours:
		return "Stunden"
	case domain.UnitFlat:
		return "Pauschal"
	default:
		return "Wörter"
	}
}
