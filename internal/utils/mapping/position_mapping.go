package mapping

import (
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/models"
)

// ToModelPosition converts a domain Position to a model Position
func ToModelPosition(d domain.Position) models.Position {
	return models.Position{
		PositionID:    d.PositionID,
		ProjectID:     d.ProjectID,
		SortOrder:     d.SortOrder,
		Description:   d.Description,
		Unit:          string(d.Unit),
		Amount:        d.Amount,
		Quantity:      d.Quantity,
		PartnerRate:   d.PartnerRate,
		PartnerMode:   string(d.PartnerMode),
		PartnerTotal:  d.PartnerTotal,
		CustomerRate:  d.CustomerRate,
		CustomerMode:  string(d.CustomerMode),
		CustomerTotal: d.CustomerTotal,
		MarginType:    string(d.MarginType),
		MarginPercent: d.MarginPercent,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPosition converts a model Position to a domain Position
func ToDomainPosition(m models.Position) domain.Position {
	return domain.Position{
		PositionID:    m.PositionID,
		ProjectID:     m.ProjectID,
		SortOrder:     m.SortOrder,
		Description:   m.Description,
		Unit:          domain.Unit(m.Unit),
		Amount:        m.Amount,
		Quantity:      m.Quantity,
		PartnerRate:   m.PartnerRate,
		PartnerMode:   domain.PricingMode(m.PartnerMode),
		PartnerTotal:  m.PartnerTotal,
		CustomerRate:  m.CustomerRate,
		CustomerMode:  domain.PricingMode(m.CustomerMode),
		CustomerTotal: m.CustomerTotal,
		MarginType:    domain.MarginType(m.MarginType),
		MarginPercent: m.MarginPercent,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPositionSlice converts a slice of model Positions to domain Positions
func ToDomainPositionSlice(ms []models.Position) []domain.Position {
	out := make([]domain.Position, len(ms))
	for i, m := range ms {
		out[i] = ToDomainPosition(m)
	}
	return out
}
