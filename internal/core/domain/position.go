package domain

import "github.com/shopspring/decimal"

// Unit is the billing unit of a position.
type Unit string

const (
	UnitWords Unit = "words"
	UnitLines Unit = "lines"
	UnitPages Unit = "pages"
	UnitHours Unit = "hours"
	UnitFlat  Unit = "flat"
)

// IsValid reports whether u is part of the unit vocabulary.
func (u Unit) IsValid() bool {
	switch u {
	case UnitWords, UnitLines, UnitPages, UnitHours, UnitFlat:
		return true
	}
	return false
}

// PricingMode selects how a rate turns into a line total.
type PricingMode string

const (
	// ModeUnit multiplies the rate by amount and quantity.
	ModeUnit PricingMode = "unit"
	// ModeFixed treats the rate as a flat fee, multiplied by quantity only.
	ModeFixed PricingMode = "fixed"
)

// IsValid reports whether m is a known pricing mode.
func (m PricingMode) IsValid() bool {
	return m == ModeUnit || m == ModeFixed
}

// MarginType describes how a customer price was derived from partner cost.
type MarginType string

const (
	MarginMarkup   MarginType = "markup"
	MarginDiscount MarginType = "discount"
)

// IsValid reports whether t is a known margin type.
func (t MarginType) IsValid() bool {
	return t == MarginMarkup || t == MarginDiscount
}

// Position is one billable line of a project.
// PartnerTotal and CustomerTotal are derived from the other numeric fields and
// must only be written through the rate resolver.
type Position struct {
	PositionID    string          `json:"positionID"` // Primary Key (UUID), stable across edits
	ProjectID     string          `json:"projectID"`  // FK -> projects.project_id
	SortOrder     int             `json:"sortOrder"`
	Description   string          `json:"description"`
	Unit          Unit            `json:"unit"`
	Amount        decimal.Decimal `json:"amount"`   // Quantity base, e.g. word count
	Quantity      decimal.Decimal `json:"quantity"` // Multiplier, defaults to 1
	PartnerRate   decimal.Decimal `json:"partnerRate"`
	PartnerMode   PricingMode     `json:"partnerMode"`
	PartnerTotal  decimal.Decimal `json:"partnerTotal"` // Derived
	CustomerRate  decimal.Decimal `json:"customerRate"`
	CustomerMode  PricingMode     `json:"customerMode"`
	CustomerTotal decimal.Decimal `json:"customerTotal"` // Derived
	MarginType    MarginType      `json:"marginType"`
	MarginPercent decimal.Decimal `json:"marginPercent"`
	AuditFields
}
