package models

import "github.com/shopspring/decimal"

// Position is the row of the project_positions table.
type Position struct {
	PositionID    string          `json:"positionID"` // Primary Key (UUID)
	ProjectID     string          `json:"projectID"`  // FK -> projects.project_id
	SortOrder     int             `json:"sortOrder"`
	Description   string          `json:"description"`
	Unit          string          `json:"unit"`
	Amount        decimal.Decimal `json:"amount"`
	Quantity      decimal.Decimal `json:"quantity"`
	PartnerRate   decimal.Decimal `json:"partnerRate"`
	PartnerMode   string          `json:"partnerMode"`
	PartnerTotal  decimal.Decimal `json:"partnerTotal"`
	CustomerRate  decimal.Decimal `json:"customerRate"`
	CustomerMode  string          `json:"customerMode"`
	CustomerTotal decimal.Decimal `json:"customerTotal"`
	MarginType    string          `json:"marginType"` // Empty when not set
	MarginPercent decimal.Decimal `json:"marginPercent"`
	AuditFields
}
