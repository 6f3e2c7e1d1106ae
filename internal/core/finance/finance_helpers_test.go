package finance_test

import (
	"testing"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	if !assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got.String()) && len(msgAndArgs) > 0 {
		t.Log(msgAndArgs...)
	}
}

// wordPosition is the reference position: 1000 words, customer 0.12, partner 0.08.
func wordPosition() domain.Position {
	return domain.Position{
		PositionID:   "pos-1",
		Description:  "Translation DE-EN",
		Unit:         domain.UnitWords,
		Amount:       dec("1000"),
		Quantity:     dec("1"),
		CustomerRate: dec("0.12"),
		CustomerMode: domain.ModeUnit,
		PartnerRate:  dec("0.08"),
		PartnerMode:  domain.ModeUnit,
	}
}

func payment(amount string) domain.Payment {
	return domain.Payment{Amount: dec(amount)}
}
