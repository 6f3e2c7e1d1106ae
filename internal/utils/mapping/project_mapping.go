package mapping

import (
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/models"
)

// ToModelProject converts a domain Project to a model Project
func ToModelProject(d domain.Project) models.Project {
	return models.Project{
		ProjectID:      d.ProjectID,
		ProjectNumber:  d.ProjectNumber,
		Name:           d.Name,
		CustomerID:     d.CustomerID,
		PartnerID:      d.PartnerID,
		IsCertified:    d.Flags.IsCertified,
		HasApostille:   d.Flags.HasApostille,
		IsExpress:      d.Flags.IsExpress,
		Classification: d.Flags.Classification,
		Copies:         d.Flags.Copies,
		CopyPrice:      d.Flags.CopyPrice,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProject converts a model Project to a domain Project
func ToDomainProject(m models.Project) domain.Project {
	return domain.Project{
		ProjectID:     m.ProjectID,
		ProjectNumber: m.ProjectNumber,
		Name:          m.Name,
		CustomerID:    m.CustomerID,
		PartnerID:     m.PartnerID,
		Flags: domain.ProjectFlags{
			IsCertified:    m.IsCertified,
			HasApostille:   m.HasApostille,
			IsExpress:      m.IsExpress,
			Classification: m.Classification,
			Copies:         m.Copies,
			CopyPrice:      m.CopyPrice,
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProjectSlice converts a slice of model Projects to domain Projects
func ToDomainProjectSlice(ms []models.Project) []domain.Project {
	out := make([]domain.Project, len(ms))
	for i, m := range ms {
		out[i] = ToDomainProject(m)
	}
	return out
}
