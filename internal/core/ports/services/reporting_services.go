package services

import (
	"context"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
)

// ReportingService defines operations for generating portfolio reports
type ReportingService interface {
	// ProjectMarginReport summarizes every project and totals the portfolio.
	ProjectMarginReport(ctx context.Context) (*domain.MarginReport, error)
}
