package models

import "github.com/shopspring/decimal"

// Project is the row of the projects table.
type Project struct {
	ProjectID      string          `json:"projectID"` // Primary Key (UUID)
	ProjectNumber  string          `json:"projectNumber"`
	Name           string          `json:"name"`
	CustomerID     string          `json:"customerID"`
	PartnerID      string          `json:"partnerID"` // Empty string when unassigned
	IsCertified    bool            `json:"isCertified"`
	HasApostille   bool            `json:"hasApostille"`
	IsExpress      bool            `json:"isExpress"`
	Classification string          `json:"classification"`
	Copies         int             `json:"copies"`
	CopyPrice      decimal.Decimal `json:"copyPrice"`
	AuditFields
}
