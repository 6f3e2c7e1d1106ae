package dto

import (
	"time"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PositionInput is one position as sent by the calculation editor.
// Client-supplied totals are not accepted; they are always recomputed.
type PositionInput struct {
	PositionID    string      `json:"id" binding:"omitempty,uuid"`
	Description   string      `json:"description" binding:"max=1000"`
	Unit          string      `json:"unit" binding:"omitempty,positionunit" example:"words"`
	Amount        NumberInput `json:"amount" swaggertype:"string" example:"1000"`
	Quantity      NumberInput `json:"quantity" swaggertype:"string" example:"1"`
	PartnerRate   NumberInput `json:"partnerRate" swaggertype:"string" example:"0.08"`
	PartnerMode   string      `json:"partnerMode" binding:"omitempty,pricingmode" example:"unit"`
	CustomerRate  NumberInput `json:"customerRate" swaggertype:"string" example:"0.12"`
	CustomerMode  string      `json:"customerMode" binding:"omitempty,pricingmode" example:"unit"`
	MarginType    string      `json:"marginType" binding:"omitempty,oneof=markup discount"`
	MarginPercent NumberInput `json:"marginPercent" swaggertype:"string" example:"30"`
	ApplyMargin   bool        `json:"applyMargin"` // Derive customerRate from partner cost and margin
}

// SavePositionsRequest replaces all positions of a project.
type SavePositionsRequest struct {
	Positions []PositionInput `json:"positions" binding:"dive"`
}

// UpdatePositionRequest is a partial position edit. Absent fields stay unchanged.
type UpdatePositionRequest struct {
	Description   *string     `json:"description" binding:"omitempty,max=1000"`
	Unit          *string     `json:"unit" binding:"omitempty,positionunit"`
	Amount        NumberInput `json:"amount" swaggertype:"string"`
	Quantity      NumberInput `json:"quantity" swaggertype:"string"`
	PartnerRate   NumberInput `json:"partnerRate" swaggertype:"string"`
	PartnerMode   *string     `json:"partnerMode" binding:"omitempty,pricingmode"`
	CustomerRate  NumberInput `json:"customerRate" swaggertype:"string"`
	CustomerMode  *string     `json:"customerMode" binding:"omitempty,pricingmode"`
	MarginType    *string     `json:"marginType" binding:"omitempty,oneof=markup discount"`
	MarginPercent NumberInput `json:"marginPercent" swaggertype:"string"`
	ApplyMargin   bool        `json:"applyMargin"`
}

// PositionResponse defines the data returned for a position.
type PositionResponse struct {
	PositionID    string          `json:"id"`
	ProjectID     string          `json:"projectID"`
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
	MarginType    string          `json:"marginType,omitempty"`
	MarginPercent decimal.Decimal `json:"marginPercent"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ListPositionsResponse wraps the positions of a project with its lock state.
type ListPositionsResponse struct {
	Positions []PositionResponse `json:"positions"`
	LockState domain.LockState   `json:"lockState"`
}

// ToPositionResponse converts a domain.Position to PositionResponse DTO.
func ToPositionResponse(p domain.Position) PositionResponse {
	return PositionResponse{
		PositionID:    p.PositionID,
		ProjectID:     p.ProjectID,
		SortOrder:     p.SortOrder,
		Description:   p.Description,
		Unit:          string(p.Unit),
		Amount:        p.Amount,
		Quantity:      p.Quantity,
		PartnerRate:   p.PartnerRate,
		PartnerMode:   string(p.PartnerMode),
		PartnerTotal:  p.PartnerTotal,
		CustomerRate:  p.CustomerRate,
		CustomerMode:  string(p.CustomerMode),
		CustomerTotal: p.CustomerTotal,
		MarginType:    string(p.MarginType),
		MarginPercent: p.MarginPercent,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ToPositionResponses converts a slice of domain.Position to []PositionResponse.
func ToPositionResponses(positions []domain.Position) []PositionResponse {
	responses := make([]PositionResponse, len(positions))
	for i, p := range positions {
		responses[i] = ToPositionResponse(p)
	}
	return responses
}
