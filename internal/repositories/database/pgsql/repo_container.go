package pgsql

import (
	portsrepo "github.com/SscSPs/products_accounts/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds the Postgres backed repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		InterestRateRepo:   NewPgxInterestRateRepository(dbPool),
		ProductAccountRepo: NewPgxProductAccountRepository(dbPool),
	}
}
