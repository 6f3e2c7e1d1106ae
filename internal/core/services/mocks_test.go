package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/agency_backoffice/internal/core/domain"
	"github.com/SscSPs/agency_backoffice/internal/core/finance"
	portsrepo "github.com/SscSPs/agency_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/agency_backoffice/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mock ProjectRepository ---
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) FindProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateProjectFlags(ctx context.Context, projectID string, flags domain.ProjectFlags, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, projectID, flags, updatedBy, updatedAt)
	return args.Error(0)
}

// --- Mock PositionRepository ---
type MockPositionRepository struct {
	mock.Mock
}

func (m *MockPositionRepository) ListPositionsByProjectID(ctx context.Context, projectID string) ([]domain.Position, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Position), args.Error(1)
}

func (m *MockPositionRepository) FindPositionByID(ctx context.Context, projectID, positionID string) (*domain.Position, error) {
	args := m.Called(ctx, projectID, positionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Position), args.Error(1)
}

func (m *MockPositionRepository) ListPositionsByProjectIDs(ctx context.Context, projectIDs []string) (map[string][]domain.Position, error) {
	args := m.Called(ctx, projectIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.Position), args.Error(1)
}

func (m *MockPositionRepository) ReplacePositions(ctx context.Context, projectID string, positions []domain.Position) error {
	args := m.Called(ctx, projectID, positions)
	return args.Error(0)
}

func (m *MockPositionRepository) SavePosition(ctx context.Context, position domain.Position) error {
	args := m.Called(ctx, position)
	return args.Error(0)
}

func (m *MockPositionRepository) UpdatePosition(ctx context.Context, position domain.Position) error {
	args := m.Called(ctx, position)
	return args.Error(0)
}

func (m *MockPositionRepository) DeletePosition(ctx context.Context, projectID, positionID string) error {
	args := m.Called(ctx, projectID, positionID)
	return args.Error(0)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) ListPaymentsByProjectID(ctx context.Context, projectID string) ([]domain.Payment, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsPage(ctx context.Context, projectID string, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	args := m.Called(ctx, projectID, limit, nextToken)
	var payments []domain.Payment
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.Payment)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return payments, next, args.Error(2)
}

func (m *MockPaymentRepository) ListPaymentsByProjectIDs(ctx context.Context, projectIDs []string) (map[string][]domain.Payment, error) {
	args := m.Called(ctx, projectIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoicesByProjectID(ctx context.Context, projectID string) ([]domain.Invoice, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoicesByProjectIDs(ctx context.Context, projectIDs []string) (map[string][]domain.Invoice, error) {
	args := m.Called(ctx, projectIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) CreateInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	args := m.Called(ctx, invoice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID string, from, to domain.InvoiceStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, invoiceID, from, to, updatedBy, updatedAt)
	return args.Error(0)
}

var (
	_ portsrepo.ProjectRepositoryFacade  = (*MockProjectRepository)(nil)
	_ portsrepo.PositionRepositoryFacade = (*MockPositionRepository)(nil)
	_ portsrepo.PaymentRepositoryFacade  = (*MockPaymentRepository)(nil)
	_ portsrepo.InvoiceRepositoryFacade  = (*MockInvoiceRepository)(nil)
)

// --- Fixtures ---

var fixedNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type mockRepos struct {
	projects  *MockProjectRepository
	positions *MockPositionRepository
	payments  *MockPaymentRepository
	invoices  *MockInvoiceRepository
}

func newMockRepos() mockRepos {
	return mockRepos{
		projects:  new(MockProjectRepository),
		positions: new(MockPositionRepository),
		payments:  new(MockPaymentRepository),
		invoices:  new(MockInvoiceRepository),
	}
}

func (r mockRepos) provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProjectRepo:  r.projects,
		PositionRepo: r.positions,
		PaymentRepo:  r.payments,
		InvoiceRepo:  r.invoices,
	}
}

func (r mockRepos) assertExpectations(t mock.TestingT) {
	r.projects.AssertExpectations(t)
	r.positions.AssertExpectations(t)
	r.payments.AssertExpectations(t)
	r.invoices.AssertExpectations(t)
}

// expectSnapshot registers the reads of a full project load.
func (r mockRepos) expectSnapshot(project *domain.Project, positions []domain.Position, payments []domain.Payment, invoices []domain.Invoice) {
	r.projects.On("FindProjectByID", mock.Anything, project.ProjectID).Return(project, nil)
	r.positions.On("ListPositionsByProjectID", mock.Anything, project.ProjectID).Return(positions, nil)
	r.payments.On("ListPaymentsByProjectID", mock.Anything, project.ProjectID).Return(payments, nil)
	r.invoices.On("ListInvoicesByProjectID", mock.Anything, project.ProjectID).Return(invoices, nil)
}

// expectGate registers the reads of a lock gate load.
func (r mockRepos) expectGate(project *domain.Project, invoices []domain.Invoice) {
	r.projects.On("FindProjectByID", mock.Anything, project.ProjectID).Return(project, nil)
	r.invoices.On("ListInvoicesByProjectID", mock.Anything, project.ProjectID).Return(invoices, nil)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testProject() *domain.Project {
	return &domain.Project{
		ProjectID:     "11111111-1111-1111-1111-111111111111",
		ProjectNumber: "P-2024-001",
		Name:          "Vertrag DE-EN",
		CustomerID:    "customer-1",
		Flags:         domain.ProjectFlags{CopyPrice: dec("5")},
	}
}

// wordPosition is 1000 words at 0.12 for the customer and 0.08 for the partner.
func wordPosition(projectID string) domain.Position {
	return domain.Position{
		PositionID:    "22222222-2222-2222-2222-222222222222",
		ProjectID:     projectID,
		Unit:          domain.UnitWords,
		Amount:        dec("1000"),
		Quantity:      dec("1"),
		PartnerRate:   dec("0.08"),
		PartnerMode:   domain.ModeUnit,
		PartnerTotal:  dec("80"),
		CustomerRate:  dec("0.12"),
		CustomerMode:  domain.ModeUnit,
		CustomerTotal: dec("120"),
	}
}

func activeInvoice(projectID string) domain.Invoice {
	return domain.Invoice{
		InvoiceID:     "33333333-3333-3333-3333-333333333333",
		ProjectID:     projectID,
		InvoiceNumber: "RE-2024-00001",
		Status:        domain.InvoiceDraft,
	}
}

func cancelledInvoice(projectID string) domain.Invoice {
	inv := activeInvoice(projectID)
	inv.InvoiceID = "44444444-4444-4444-4444-444444444444"
	inv.Status = domain.InvoiceCancelled
	return inv
}

func assertDec(t assert.TestingT, want string, got decimal.Decimal, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	return assert.Truef(t, dec(want).Equal(got), "want %s, got %s %v", want, got.String(), msgAndArgs)
}

func testConfig() *config.Config {
	return &config.Config{PaymentTermDays: finance.DefaultPaymentTermDays}
}
