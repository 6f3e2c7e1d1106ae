package domain

import (
	"github.com/shopspring/decimal"
)

// ProjectMarginRow is one project line of the margin report.
type ProjectMarginRow struct {
	ProjectID     string           `json:"projectID"`
	ProjectNumber string           `json:"projectNumber"`
	Name          string           `json:"name"`
	LockState     LockState        `json:"lockState"`
	Summary       FinancialSummary `json:"summary"`
}

// MarginReport summarizes every project through the financial aggregator.
type MarginReport struct {
	Projects      []ProjectMarginRow `json:"projects"`
	NetTotal      decimal.Decimal    `json:"netTotal"`
	PartnerTotal  decimal.Decimal    `json:"partnerTotal"`
	Margin        decimal.Decimal    `json:"margin"`
	MarginPercent decimal.Decimal    `json:"marginPercent"` // Margin over net of the whole portfolio
	GrossTotal    decimal.Decimal    `json:"grossTotal"`
	Paid          decimal.Decimal    `json:"paid"`
	Receivables   decimal.Decimal    `json:"receivables"` // Sum of positive open balances of locked projects
}
