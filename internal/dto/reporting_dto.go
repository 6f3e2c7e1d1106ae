package dto

import (
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProjectMarginResponse represents a project row in the margin report response
type ProjectMarginResponse struct {
	ProjectID     string          `json:"projectID"`
	ProjectNumber string          `json:"projectNumber"`
	Name          string          `json:"name"`
	LockState     string          `json:"lockState"`
	NetTotal      decimal.Decimal `json:"netTotal"`
	PartnerTotal  decimal.Decimal `json:"partnerTotal"`
	Margin        decimal.Decimal `json:"margin"`
	MarginPercent decimal.Decimal `json:"marginPercent"`
	GrossTotal    decimal.Decimal `json:"grossTotal"`
	Paid          decimal.Decimal `json:"paid"`
	Open          decimal.Decimal `json:"open"`
}

// MarginReportResponse represents the portfolio margin report response
type MarginReportResponse struct {
	Projects []ProjectMarginResponse `json:"projects"`
	Totals   struct {
		NetTotal      decimal.Decimal `json:"netTotal"`
		PartnerTotal  decimal.Decimal `json:"partnerTotal"`
		Margin        decimal.Decimal `json:"margin"`
		MarginPercent decimal.Decimal `json:"marginPercent"`
		GrossTotal    decimal.Decimal `json:"grossTotal"`
		Paid          decimal.Decimal `json:"paid"`
		Receivables   decimal.Decimal `json:"receivables"`
	} `json:"totals"`
}

// ToMarginReportResponse converts a domain.MarginReport, rounding amounts for display.
func ToMarginReportResponse(r *domain.MarginReport) MarginReportResponse {
	var resp MarginReportResponse
	resp.Projects = make([]ProjectMarginResponse, len(r.Projects))
	for i, row := range r.Projects {
		s := row.Summary.Rounded()
		resp.Projects[i] = ProjectMarginResponse{
			ProjectID:     row.ProjectID,
			ProjectNumber: row.ProjectNumber,
			Name:          row.Name,
			LockState:     string(row.LockState),
			NetTotal:      s.NetTotal,
			PartnerTotal:  s.PartnerTotal,
			Margin:        s.Margin,
			MarginPercent: s.MarginPercent,
			GrossTotal:    s.GrossTotal,
			Paid:          s.Paid,
			Open:          s.Open,
		}
	}
	resp.Totals.NetTotal = r.NetTotal.Round(domain.DisplayPrecision)
	resp.Totals.PartnerTotal = r.PartnerTotal.Round(domain.DisplayPrecision)
	resp.Totals.Margin = r.Margin.Round(domain.DisplayPrecision)
	resp.Totals.MarginPercent = r.MarginPercent.Round(domain.DisplayPrecision)
	resp.Totals.GrossTotal = r.GrossTotal.Round(domain.DisplayPrecision)
	resp.Totals.Paid = r.Paid.Round(domain.DisplayPrecision)
	resp.Totals.Receivables = r.Receivables.Round(domain.DisplayPrecision)
	return resp
}
