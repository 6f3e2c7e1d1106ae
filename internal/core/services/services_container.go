package services

import (
	portsrepo "github.com/SscSPs/agency_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/agency_backoffice/internal/core/ports/services"
	"github.com/SscSPs/agency_backoffice/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	// One guard shared by every service that submits writes for a project
	guard := NewSubmissionGuard()

	return &portssvc.ServiceContainer{
		Project:   NewProjectService(repos, guard),
		Position:  NewPositionService(repos, guard),
		Payment:   NewPaymentService(repos, guard),
		Invoice:   NewInvoiceService(repos, guard, WithPaymentTermDays(cfg.PaymentTermDays)),
		Reporting: NewReportingService(repos),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ProjectSvcFacade  = (*projectService)(nil)
	_ portssvc.PositionSvcFacade = (*positionService)(nil)
	_ portssvc.PaymentSvcFacade  = (*paymentService)(nil)
	_ portssvc.InvoiceSvcFacade  = (*invoiceService)(nil)
	_ portssvc.ReportingService  = (*reportingService)(nil)
)
