package dto

import (
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/utils"
	"github.com/shopspring/decimal"
)

// PreviewFinancialsRequest computes a summary for unsaved editor state.
// When Flags is nil the stored project flags are used.
type PreviewFinancialsRequest struct {
	Positions []PositionInput    `json:"positions" binding:"dive"`
	Flags     *ProjectFlagsInput `json:"flags"`
}

// SurchargeResponse is one active service surcharge.
type SurchargeResponse struct {
	Kind      string          `json:"kind"`
	Label     string          `json:"label"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Total     decimal.Decimal `json:"total"`
}

// DisplaySummary is the financial summary formatted with two fractional digits.
type DisplaySummary struct {
	NetTotal      string `json:"netTotal" example:"120.00"`
	TaxTotal      string `json:"taxTotal" example:"22.80"`
	GrossTotal    string `json:"grossTotal" example:"142.80"`
	PartnerTotal  string `json:"partnerTotal" example:"80.00"`
	Margin        string `json:"margin" example:"40.00"`
	MarginPercent string `json:"marginPercent" example:"33.33"`
	Paid          string `json:"paid" example:"0.00"`
	Open          string `json:"open" example:"142.80"`
	ExtraTotal    string `json:"extraTotal" example:"0.00"`
}

// FinancialsResponse is the financial view of a project.
type FinancialsResponse struct {
	ProjectID           string                  `json:"projectID"`
	LockState           domain.LockState        `json:"lockState"`
	ActiveInvoiceID     *string                 `json:"activeInvoiceID,omitempty"`
	ActiveInvoiceNumber *string                 `json:"activeInvoiceNumber,omitempty"`
	Settlement          string                  `json:"settlement"`
	CanEditPositions    bool                    `json:"canEditPositions"`
	CanCreateInvoice    bool                    `json:"canCreateInvoice"`
	CanRecordPayment    bool                    `json:"canRecordPayment"`
	Summary             domain.FinancialSummary `json:"summary"`
	Display             DisplaySummary          `json:"display"`
	Surcharges          []SurchargeResponse     `json:"surcharges"`
	Positions           []PositionResponse      `json:"positions,omitempty"` // Only set for previews
}

// ToDisplaySummary formats every amount of s for display.
func ToDisplaySummary(s domain.FinancialSummary) DisplaySummary {
	r := s.Rounded()
	return DisplaySummary{
		NetTotal:      utils.FormatAmount(r.NetTotal),
		TaxTotal:      utils.FormatAmount(r.TaxTotal),
		GrossTotal:    utils.FormatAmount(r.GrossTotal),
		PartnerTotal:  utils.FormatAmount(r.PartnerTotal),
		Margin:        utils.FormatAmount(r.Margin),
		MarginPercent: utils.FormatAmount(r.MarginPercent),
		Paid:          utils.FormatAmount(r.Paid),
		Open:          utils.FormatAmount(r.Open),
		ExtraTotal:    utils.FormatAmount(r.ExtraTotal),
	}
}
