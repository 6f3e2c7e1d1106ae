package dto

import (
	"time"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
)

// ProjectFlagsInput carries the surcharge flags of a project.
type ProjectFlagsInput struct {
	IsCertified    bool        `json:"isCertified"`
	HasApostille   bool        `json:"hasApostille"`
	IsExpress      bool        `json:"isExpress"`
	Classification string      `json:"classification" binding:"max=20" example:"ja"`
	Copies         int         `json:"copies"`
	CopyPrice      NumberInput `json:"copyPrice" swaggertype:"string" example:"5"`
}

// CreateProjectRequest defines the data needed to create a project.
type CreateProjectRequest struct {
	ProjectNumber string            `json:"projectNumber" binding:"required,max=50"`
	Name          string            `json:"name" binding:"required,max=255"`
	CustomerID    string            `json:"customerID" binding:"required,max=64"`
	PartnerID     string            `json:"partnerID" binding:"max=64"`
	Flags         ProjectFlagsInput `json:"flags"`
}

// UpdateProjectFlagsRequest toggles individual flags. Absent fields stay unchanged.
type UpdateProjectFlagsRequest struct {
	IsCertified    *bool       `json:"isCertified"`
	HasApostille   *bool       `json:"hasApostille"`
	IsExpress      *bool       `json:"isExpress"`
	Classification *string     `json:"classification" binding:"omitempty,max=20"`
	Copies         *int        `json:"copies"`
	CopyPrice      NumberInput `json:"copyPrice" swaggertype:"string"`
}

// ProjectResponse defines the data returned for a project.
type ProjectResponse struct {
	ProjectID     string              `json:"projectID"`
	ProjectNumber string              `json:"projectNumber"`
	Name          string              `json:"name"`
	CustomerID    string              `json:"customerID"`
	PartnerID     string              `json:"partnerID,omitempty"`
	Flags         domain.ProjectFlags `json:"flags"`
	CreatedAt     time.Time           `json:"createdAt"`
	CreatedBy     string              `json:"createdBy"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
}

// ToProjectResponse converts a domain.Project to ProjectResponse DTO.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:     p.ProjectID,
		ProjectNumber: p.ProjectNumber,
		Name:          p.Name,
		CustomerID:    p.CustomerID,
		PartnerID:     p.PartnerID,
		Flags:         p.Flags,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}
