package pgsql

import (
	portsrepo "github.com/SscSPs/agency_backoffice/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProjectRepo:  newPgxProjectRepository(dbPool),
		PositionRepo: newPgxPositionRepository(dbPool),
		PaymentRepo:  newPgxPaymentRepository(dbPool),
		InvoiceRepo:  newPgxInvoiceRepository(dbPool),
	}
}
