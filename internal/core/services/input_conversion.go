package services

import (
	"strings"
	"time"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/core/finance"
	"github.com/SscSPs/agency_backoffice/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// positionFromInput builds a position from editor input. Numbers are coerced,
// unknown units and modes fall back to their defaults, totals are recomputed.
func positionFromInput(projectID string, sortOrder int, in dto.PositionInput, userID string, now time.Time) domain.Position {
	id := in.PositionID
	if id == "" {
		id = uuid.NewString()
	}
	p := domain.Position{
		PositionID:    id,
		ProjectID:     projectID,
		SortOrder:     sortOrder,
		Description:   strings.TrimSpace(in.Description),
		Unit:          finance.ParseUnit(in.Unit),
		Amount:        finance.CoerceAmount(in.Amount.Raw),
		Quantity:      finance.CoerceQuantity(in.Quantity.Raw),
		PartnerRate:   finance.CoerceAmount(in.PartnerRate.Raw),
		PartnerMode:   finance.ParsePricingMode(in.PartnerMode),
		CustomerRate:  finance.CoerceAmount(in.CustomerRate.Raw),
		CustomerMode:  finance.ParsePricingMode(in.CustomerMode),
		MarginType:    domain.MarginType(in.MarginType),
		MarginPercent: finance.CoerceAmount(in.MarginPercent.Raw),
		AuditFields:   domain.NewAuditFields(userID, now),
	}
	if in.ApplyMargin {
		return finance.ApplyMargin(p)
	}
	return finance.RecalculatePosition(p)
}

// positionsFromInputs converts a full editor table, keeping its row order.
func positionsFromInputs(projectID string, inputs []dto.PositionInput, userID string, now time.Time) []domain.Position {
	positions := make([]domain.Position, len(inputs))
	for i, in := range inputs {
		positions[i] = positionFromInput(projectID, i, in, userID, now)
	}
	return positions
}

// positionEditFromRequest converts a partial edit. Only fields present in the request are set.
func positionEditFromRequest(req dto.UpdatePositionRequest) finance.PositionEdit {
	var edit finance.PositionEdit
	if req.Description != nil {
		d := strings.TrimSpace(*req.Description)
		edit.Description = &d
	}
	if req.Unit != nil {
		u := finance.ParseUnit(*req.Unit)
		edit.Unit = &u
	}
	edit.Amount = optionalAmount(req.Amount)
	if req.Quantity.Set {
		q := finance.CoerceQuantity(req.Quantity.Raw)
		edit.Quantity = &q
	}
	edit.PartnerRate = optionalAmount(req.PartnerRate)
	if req.PartnerMode != nil {
		m := finance.ParsePricingMode(*req.PartnerMode)
		edit.PartnerMode = &m
	}
	edit.CustomerRate = optionalAmount(req.CustomerRate)
	if req.CustomerMode != nil {
		m := finance.ParsePricingMode(*req.CustomerMode)
		edit.CustomerMode = &m
	}
	if req.MarginType != nil {
		mt := domain.MarginType(*req.MarginType)
		edit.MarginType = &mt
	}
	edit.MarginPercent = optionalAmount(req.MarginPercent)
	return edit
}

// flagsFromInput converts the surcharge flags of a request.
func flagsFromInput(in dto.ProjectFlagsInput) domain.ProjectFlags {
	flags := domain.ProjectFlags{
		IsCertified:    in.IsCertified,
		HasApostille:   in.HasApostille,
		IsExpress:      in.IsExpress,
		Classification: strings.TrimSpace(in.Classification),
		Copies:         max(in.Copies, 0),
		CopyPrice:      finance.DefaultCopyPrice,
	}
	if in.CopyPrice.Set {
		flags.CopyPrice = finance.CoerceAmount(in.CopyPrice.Raw)
	}
	return flags
}

// applyFlagsUpdate merges a partial flags update into flags.
func applyFlagsUpdate(flags domain.ProjectFlags, req dto.UpdateProjectFlagsRequest) domain.ProjectFlags {
	if req.IsCertified != nil {
		flags.IsCertified = *req.IsCertified
	}
	if req.HasApostille != nil {
		flags.HasApostille = *req.HasApostille
	}
	if req.IsExpress != nil {
		flags.IsExpress = *req.IsExpress
	}
	if req.Classification != nil {
		flags.Classification = strings.TrimSpace(*req.Classification)
	}
	if req.Copies != nil {
		flags.Copies = max(*req.Copies, 0)
	}
	if req.CopyPrice.Set {
		flags.CopyPrice = finance.CoerceAmount(req.CopyPrice.Raw)
	}
	return flags
}

// optionalAmount coerces n when the client sent it and returns nil otherwise.
func optionalAmount(n dto.NumberInput) *decimal.Decimal {
	if !n.Set {
		return nil
	}
	d := finance.CoerceAmount(n.Raw)
	return &d
}

// startOfDay truncates t to midnight UTC.
func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
