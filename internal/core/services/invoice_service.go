package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/core/finance"
	portsrepo "github.com/SscSPs/agency_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/agency_backoffice/internal/core/ports/services"
	"github.com/SscSPs/agency_backoffice/internal/dto"
	"github.com/google/uuid"
)

// invoiceService implements the InvoiceSvcFacade interface
type invoiceService struct {
	BaseService
	invoiceRepo     portsrepo.InvoiceRepositoryFacade
	loader          snapshotLoader
	guard           *SubmissionGuard
	paymentTermDays int
}

// InvoiceServiceOption is a functional option for configuring the invoice service
type InvoiceServiceOption func(*invoiceService)

// WithPaymentTermDays sets the offset of the default due date.
func WithPaymentTermDays(days int) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.paymentTermDays = days
	}
}

// WithInvoiceClock replaces the wall clock of the invoice service.
func WithInvoiceClock(now func() time.Time) InvoiceServiceOption {
	return func(s *invoiceService) {
		s.Clock = now
	}
}

// NewInvoiceService creates a new invoice service with the provided options
func NewInvoiceService(repos portsrepo.RepositoryProvider, guard *SubmissionGuard, options ...InvoiceServiceOption) portssvc.InvoiceSvcFacade {
	svc := &invoiceService{
		invoiceRepo:     repos.InvoiceRepo,
		loader:          newSnapshotLoader(repos),
		guard:           guard,
		paymentTermDays: finance.DefaultPaymentTermDays,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure invoiceService implements the InvoiceSvcFacade interface
var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice %s: %w", invoiceID, err)
	}
	return invoice, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, projectID string) (*dto.ListInvoicesResponse, error) {
	if _, err := s.loader.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		return nil, fmt.Errorf("failed to load project %s: %w", projectID, err)
	}
	invoices, err := s.invoiceRepo.ListInvoicesByProjectID(ctx, projectID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return &dto.ListInvoicesResponse{
		Invoices:  dto.ToInvoiceResponses(invoices),
		LockState: finance.LockStateFor(invoices),
	}, nil
}

// CreateInvoice freezes the current financials into a draft invoice.
// Once stored, the project is locked until the invoice is cancelled.
func (s *invoiceService) CreateInvoice(ctx context.Context, projectID string, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error) {
	release, err := s.guard.Acquire(projectID, "invoice creation")
	if err != nil {
		return nil, err
	}
	defer release()

	snapshot, err := s.loader.load(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := snapshot.Gate().CheckInvoiceCreation(); err != nil {
		return nil, err
	}

	now := s.Now()
	date := startOfDay(now)
	if req.Date != nil {
		date = startOfDay(*req.Date)
	}
	dueDate := finance.DueDate(date, s.paymentTermDays)
	if req.DueDate != nil {
		dueDate = startOfDay(*req.DueDate)
	}
	customerID := strings.TrimSpace(req.CustomerID)
	if customerID == "" {
		customerID = snapshot.Project.CustomerID
	}

	seed := finance.SeedInvoice(snapshot.Summary(), finance.SeedOptions{
		TaxRate:  optionalAmount(req.TaxRate),
		Shipping: finance.CoerceAmount(req.Shipping.Raw),
		Discount: finance.CoerceAmount(req.Discount.Raw),
		Paid:     optionalAmount(req.Paid),
	})

	invoice := domain.Invoice{
		InvoiceID:   uuid.NewString(),
		ProjectID:   projectID,
		CustomerID:  customerID,
		Date:        date,
		DueDate:     dueDate,
		Status:      domain.InvoiceDraft,
		Notes:       strings.TrimSpace(req.Notes),
		Items:       finance.InvoiceItemsFor(snapshot.Positions, snapshot.Project.Flags),
		AuditFields: domain.NewAuditFields(userID, now),
	}
	seed.Apply(&invoice)
	for i := range invoice.Items {
		invoice.Items[i].InvoiceItemID = uuid.NewString()
		invoice.Items[i].InvoiceID = invoice.InvoiceID
	}

	created, err := s.invoiceRepo.CreateInvoice(ctx, invoice)
	if err != nil {
		s.LogError(ctx, err, "Failed to create invoice", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}

	s.LogInfo(ctx, "Invoice created, positions locked",
		slog.String("project_id", projectID),
		slog.String("invoice_id", created.InvoiceID),
		slog.String("invoice_number", created.InvoiceNumber),
		slog.String("amount_gross", created.AmountGross.String()))
	return created, nil
}

// UpdateInvoiceStatus moves an invoice along the status lifecycle.
func (s *invoiceService) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, userID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get invoice %s: %w", invoiceID, err)
	}
	if err := finance.CheckStatusTransition(invoice.Status, status); err != nil {
		return nil, err
	}

	now := s.Now()
	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, invoiceID, invoice.Status, status, userID, now); err != nil {
		s.LogError(ctx, err, "Failed to update invoice status",
			slog.String("invoice_id", invoiceID),
			slog.String("status", string(status)))
		return nil, fmt.Errorf("failed to update status of invoice %s: %w", invoiceID, err)
	}

	s.LogInfo(ctx, "Invoice status changed",
		slog.String("invoice_id", invoiceID),
		slog.String("from", string(invoice.Status)),
		slog.String("to", string(status)))
	invoice.Status = status
	invoice.Touch(userID, now)
	return invoice, nil
}

// CancelInvoice cancels an invoice, which makes the project positions editable again.
func (s *invoiceService) CancelInvoice(ctx context.Context, invoiceID string, userID string) (*domain.Invoice, error) {
	return s.UpdateInvoiceStatus(ctx, invoiceID, domain.InvoiceCancelled, userID)
}
