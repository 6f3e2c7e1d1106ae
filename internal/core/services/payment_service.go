package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/agency_backoffice/internal/apperrors"
	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/core/finance"
	portsrepo "github.com/SscSPs/agency_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/agency_backoffice/internal/core/ports/services"
	"github.com/SscSPs/agency_backoffice/internal/dto"
	"github.com/google/uuid"
)

// paymentService implements the PaymentSvcFacade interface
type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryFacade
	loader      snapshotLoader
	guard       *SubmissionGuard
}

// NewPaymentService creates a new payment service with the provided options
func NewPaymentService(repos portsrepo.RepositoryProvider, guard *SubmissionGuard, options ...ServiceOption) portssvc.PaymentSvcFacade {
	svc := &paymentService{
		paymentRepo: repos.PaymentRepo,
		loader:      newSnapshotLoader(repos),
		guard:       guard,
	}
	applyOptions(&svc.BaseService, options)
	return svc
}

// Ensure paymentService implements the PaymentSvcFacade interface
var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

func (s *paymentService) ListPayments(ctx context.Context, projectID string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error) {
	if _, err := s.loader.projectRepo.FindProjectByID(ctx, projectID); err != nil {
		return nil, fmt.Errorf("failed to load project %s: %w", projectID, err)
	}

	payments, nextToken, err := s.paymentRepo.ListPaymentsPage(ctx, projectID, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return &dto.ListPaymentsResponse{
		Payments:  dto.ToPaymentResponses(payments),
		NextToken: nextToken,
	}, nil
}

// RecordPayment appends an inbound payment. It does not change the lock state.
func (s *paymentService) RecordPayment(ctx context.Context, projectID string, req dto.RecordPaymentRequest, userID string) (*dto.RecordPaymentResponse, error) {
	amount := finance.CoerceAmount(req.Amount.Raw)
	if !amount.IsPositive() {
		return nil, apperrors.NewAppError(400, "payment amount must be greater than zero", apperrors.ErrValidation)
	}

	release, err := s.guard.Acquire(projectID, "payment")
	if err != nil {
		return nil, err
	}
	defer release()

	snapshot, err := s.loader.load(ctx, projectID)
	if err != nil {
		return nil, err
	}
	gate := snapshot.Gate()
	if err := gate.CheckPaymentRecording(snapshot.Summary(), amount); err != nil {
		s.LogInfo(ctx, "Payment rejected",
			slog.String("project_id", projectID),
			slog.String("lock_state", string(gate.State)),
			slog.String("reason", err.Error()))
		return nil, err
	}

	now := s.Now()
	paymentDate := now
	if req.PaymentDate != nil {
		paymentDate = req.PaymentDate.UTC()
	}
	method := strings.TrimSpace(req.Method)
	if method == "" {
		method = domain.DefaultPaymentMethod
	}
	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		ProjectID:   projectID,
		Amount:      amount,
		PaymentDate: paymentDate,
		Method:      method,
		Note:        strings.TrimSpace(req.Note),
		AuditFields: domain.NewAuditFields(userID, now),
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		s.LogError(ctx, err, "Failed to save payment", slog.String("project_id", projectID))
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	snapshot.Payments = append(snapshot.Payments, payment)
	summary := snapshot.Summary()
	s.LogInfo(ctx, "Payment recorded",
		slog.String("project_id", projectID),
		slog.String("payment_id", payment.PaymentID),
		slog.String("amount", amount.String()),
		slog.String("open", summary.Open.String()))

	return &dto.RecordPaymentResponse{
		Payment:    dto.ToPaymentResponse(payment),
		Financials: *financialsResponse(projectID, snapshot.Project.Flags, gate, summary),
	}, nil
}
