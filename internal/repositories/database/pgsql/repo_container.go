package pgsql

import (
	portsrepo "github.com/biztime/biztime_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx repository onto the shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		Company: NewPgxCompanyRepository(pool),
		Invoice: NewPgxInvoiceRepository(pool),
	}
}
