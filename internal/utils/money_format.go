package utils

import (
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatAmount formats an amount with display precision and trailing zeros.
// Example: 142.8 returns "142.80"
// Example: 33.333333 returns "33.33"
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(domain.DisplayPrecision)
}

// FormatWithPrecision formats an amount with the given precision.
// Example: amount 0.104 with precision 4 returns "0.1040"
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
