package domain

import "github.com/shopspring/decimal"

// ProjectFlags are the service options on a project that add fixed surcharges.
type ProjectFlags struct {
	IsCertified    bool            `json:"isCertified"`
	HasApostille   bool            `json:"hasApostille"`
	IsExpress      bool            `json:"isExpress"`
	Classification string          `json:"classification"` // "ja" marks a classified document
	Copies         int             `json:"copies"`
	CopyPrice      decimal.Decimal `json:"copyPrice"` // Zero means the default copy price
}

// Project is the parent record of positions, payments and invoices.
type Project struct {
	ProjectID     string       `json:"projectID"` // Primary Key (UUID)
	ProjectNumber string       `json:"projectNumber"`
	Name          string       `json:"name"`
	CustomerID    string       `json:"customerID"`
	PartnerID     string       `json:"partnerID"` // Empty when no partner is assigned yet
	Flags         ProjectFlags `json:"flags"`
	AuditFields
}
