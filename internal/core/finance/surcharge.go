package finance

import (
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Fee schedule. Changing a fee is a code change.
var (
	CertificationFee  = decimal.NewFromInt(5)
	ApostilleFee      = decimal.NewFromInt(15)
	ExpressFee        = decimal.NewFromInt(15)
	ClassificationFee = decimal.NewFromInt(15)
	DefaultCopyPrice  = decimal.NewFromInt(5)
)

// SurchargeKind identifies a service surcharge.
type SurchargeKind string

const (
	SurchargeCertification  SurchargeKind = "certification"
	SurchargeApostille      SurchargeKind = "apostille"
	SurchargeExpress        SurchargeKind = "express"
	SurchargeClassification SurchargeKind = "classification"
	SurchargeCopies         SurchargeKind = "copies"
)

// Surcharge is one active fee derived from the project flags.
type Surcharge struct {
	Kind      SurchargeKind   `json:"kind"`
	Label     string          `json:"label"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Total     decimal.Decimal `json:"total"`
}

// IsClassified reports whether the classification flag is set. Only the exact
// value "ja" counts.
func IsClassified(classification string) bool {
	return classification == "ja"
}

// EffectiveCopyPrice returns the copy price, or the default when none is set.
func EffectiveCopyPrice(flags domain.ProjectFlags) decimal.Decimal {
	if flags.CopyPrice.IsPositive() {
		return flags.CopyPrice
	}
	return DefaultCopyPrice
}

// Surcharges lists the surcharges the flags activate, in a stable order.
// Surcharges apply to the customer side only.
func Surcharges(flags domain.ProjectFlags) []Surcharge {
	var out []Surcharge
	flat := func(kind SurchargeKind, label string, fee decimal.Decimal) {
		out = append(out, Surcharge{Kind: kind, Label: label, Quantity: one, UnitPrice: fee, Total: fee})
	}
	if flags.IsCertified {
		flat(SurchargeCertification, "Beglaubigung", CertificationFee)
	}
	if flags.HasApostille {
		flat(SurchargeApostille, "Apostille", ApostilleFee)
	}
	if flags.IsExpress {
		flat(SurchargeExpress, "Expresszuschlag", ExpressFee)
	}
	if IsClassified(flags.Classification) {
		flat(SurchargeClassification, "Klassifizierung", ClassificationFee)
	}
	if flags.Copies > 0 {
		price := EffectiveCopyPrice(flags)
		qty := decimal.NewFromInt(int64(flags.Copies))
		out = append(out, Surcharge{
			Kind:      SurchargeCopies,
			Label:     "Kopien",
			Quantity:  qty,
			UnitPrice: price,
			Total:     qty.Mul(price),
		})
	}
	return out
}

// ExtraTotal is the sum of all surcharges for flags.
func ExtraTotal(flags domain.ProjectFlags) decimal.Decimal {
	total := decimal.Zero
	for _, s := range Surcharges(flags) {
		total = total.Add(s.Total)
	}
	return total
}
