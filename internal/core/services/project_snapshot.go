package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/core/finance"
	portsrepo "github.com/SscSPs/agency_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/agency_backoffice/internal/dto"
)

// projectSnapshot is everything the financial view of one project is derived from.
type projectSnapshot struct {
	Project   *domain.Project
	Positions []domain.Position
	Payments  []domain.Payment
	Invoices  []domain.Invoice
}

// Gate derives the position lock from the stored invoices.
func (s *projectSnapshot) Gate() finance.Gate {
	return finance.NewGate(s.Invoices)
}

// Summary aggregates the stored positions, flags and payments.
func (s *projectSnapshot) Summary() domain.FinancialSummary {
	return finance.Summarize(s.Positions, s.Project.Flags, s.Payments)
}

// snapshotLoader reads a project with its positions, payments and invoices.
type snapshotLoader struct {
	projectRepo  portsrepo.ProjectReader
	positionRepo portsrepo.PositionReader
	paymentRepo  portsrepo.PaymentReader
	invoiceRepo  portsrepo.InvoiceReader
}

func newSnapshotLoader(repos portsrepo.RepositoryProvider) snapshotLoader {
	return snapshotLoader{
		projectRepo:  repos.ProjectRepo,
		positionRepo: repos.PositionRepo,
		paymentRepo:  repos.PaymentRepo,
		invoiceRepo:  repos.InvoiceRepo,
	}
}

func (l snapshotLoader) load(ctx context.Context, projectID string) (*projectSnapshot, error) {
	project, err := l.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load project %s: %w", projectID, err)
	}
	positions, err := l.positionRepo.ListPositionsByProjectID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load positions: %w", err)
	}
	payments, err := l.paymentRepo.ListPaymentsByProjectID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}
	invoices, err := l.invoiceRepo.ListInvoicesByProjectID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}
	return &projectSnapshot{
		Project:   project,
		Positions: positions,
		Payments:  payments,
		Invoices:  invoices,
	}, nil
}

// loadGate reads only what the lock gate needs.
func (l snapshotLoader) loadGate(ctx context.Context, projectID string) (finance.Gate, error) {
	if _, err := l.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		return finance.Gate{}, fmt.Errorf("failed to load project %s: %w", projectID, err)
	}
	invoices, err := l.invoiceRepo.ListInvoicesByProjectID(ctx, projectID)
	if err != nil {
		return finance.Gate{}, fmt.Errorf("failed to load invoices: %w", err)
	}
	return finance.NewGate(invoices), nil
}

// financialsResponse renders summary together with the lock gate and the
// actions it currently allows.
func financialsResponse(projectID string, flags domain.ProjectFlags, gate finance.Gate, summary domain.FinancialSummary) *dto.FinancialsResponse {
	resp := &dto.FinancialsResponse{
		ProjectID:        projectID,
		LockState:        gate.State,
		Settlement:       string(finance.SettlementOf(summary)),
		CanEditPositions: !gate.Locked(),
		CanCreateInvoice: !gate.Locked(),
		CanRecordPayment: gate.Locked() && summary.Open.IsPositive(),
		Summary:          summary,
		Display:          dto.ToDisplaySummary(summary),
		Surcharges:       []dto.SurchargeResponse{},
	}
	if gate.Active != nil {
		id, number := gate.Active.InvoiceID, gate.Active.InvoiceNumber
		resp.ActiveInvoiceID = &id
		resp.ActiveInvoiceNumber = &number
	}
	for _, s := range finance.Surcharges(flags) {
		resp.Surcharges = append(resp.Surcharges, dto.SurchargeResponse{
			Kind:      string(s.Kind),
			Label:     s.Label,
			Quantity:  s.Quantity,
			UnitPrice: s.UnitPrice,
			Total:     s.Total,
		})
	}
	return resp
}
