package services

import (
	"context"

	"github.com/SscSPs/agency_backoffice/internal/dto"
)

// PaymentReaderSvc defines read operations for payment data
type PaymentReaderSvc interface {
	// ListPayments retrieves a page of payments of a project, newest first.
	ListPayments(ctx context.Context, projectID string, params dto.ListPaymentsParams) (*dto.ListPaymentsResponse, error)
}

// PaymentWriterSvc defines write operations for payment data
type PaymentWriterSvc interface {
	// RecordPayment appends a payment. It requires an active invoice and an open balance.
	RecordPayment(ctx context.Context, projectID string, req dto.RecordPaymentRequest, userID string) (*dto.RecordPaymentResponse, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
