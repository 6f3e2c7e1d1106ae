package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/core/finance"
	portsrepo "github.com/SscSPs/agency_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/agency_backoffice/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	projectRepo  portsrepo.ProjectReader
	positionRepo portsrepo.PositionReader
	paymentRepo  portsrepo.PaymentReader
	invoiceRepo  portsrepo.InvoiceReader
}

// NewReportingService creates a new reporting service with the provided options
func NewReportingService(repos portsrepo.RepositoryProvider, options ...ServiceOption) portssvc.ReportingService {
	svc := &reportingService{
		projectRepo:  repos.ProjectRepo,
		positionRepo: repos.PositionRepo,
		paymentRepo:  repos.PaymentRepo,
		invoiceRepo:  repos.InvoiceRepo,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// ProjectMarginReport summarizes every project with the same aggregator the
// financials view uses and totals the portfolio.
func (s *reportingService) ProjectMarginReport(ctx context.Context) (*domain.MarginReport, error) {
	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects for margin report")
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ProjectID
	}

	positions, err := s.positionRepo.ListPositionsByProjectIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load positions for margin report: %w", err)
	}
	payments, err := s.paymentRepo.ListPaymentsByProjectIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments for margin report: %w", err)
	}
	invoices, err := s.invoiceRepo.ListInvoicesByProjectIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices for margin report: %w", err)
	}

	report := &domain.MarginReport{
		Projects:      make([]domain.ProjectMarginRow, 0, len(projects)),
		NetTotal:      decimal.Zero,
		PartnerTotal:  decimal.Zero,
		Margin:        decimal.Zero,
		MarginPercent: decimal.Zero,
		GrossTotal:    decimal.Zero,
		Paid:          decimal.Zero,
		Receivables:   decimal.Zero,
	}

	for _, p := range projects {
		summary := finance.Summarize(positions[p.ProjectID], p.Flags, payments[p.ProjectID])
		state := finance.LockStateFor(invoices[p.ProjectID])

		report.Projects = append(report.Projects, domain.ProjectMarginRow{
			ProjectID:     p.ProjectID,
			ProjectNumber: p.ProjectNumber,
			Name:          p.Name,
			LockState:     state,
			Summary:       summary,
		})

		report.NetTotal = report.NetTotal.Add(summary.NetTotal)
		report.PartnerTotal = report.PartnerTotal.Add(summary.PartnerTotal)
		report.Margin = report.Margin.Add(summary.Margin)
		report.GrossTotal = report.GrossTotal.Add(summary.GrossTotal)
		report.Paid = report.Paid.Add(summary.Paid)
		if state == domain.Locked && summary.Open.IsPositive() {
			report.Receivables = report.Receivables.Add(summary.Open)
		}
	}

	if report.NetTotal.IsPositive() {
		report.MarginPercent = report.Margin.Div(report.NetTotal).Mul(decimal.NewFromInt(100))
	}

	s.LogInfo(ctx, "Margin report generated",
		slog.Int("project_count", len(report.Projects)),
		slog.String("net_total", report.NetTotal.String()),
		slog.String("receivables", report.Receivables.String()))
	return report, nil
}
