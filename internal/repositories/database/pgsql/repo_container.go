package pgsql

import (
	portsrepo "github.com/imoveis-app/imoveis_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the pgx-backed repositories for the service container.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		PropertyRepo:    newPgxPropertyRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
	}
}
