package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
)

// AccountReader defines read operations for account data.
type AccountReader interface {
	// FindAccountByID retrieves an account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountByCode retrieves a tenant's account by its deterministic code.
	FindAccountByCode(ctx context.Context, tx pgx.Tx, tenantID, code string) (*domain.Account, error)
}

// AccountWriter defines write operations for account data.
type AccountWriter interface {
	// SaveAccount inserts a new account within the given transaction.
	SaveAccount(ctx context.Context, tx pgx.Tx, account domain.Account) error

	// EnsureAccountByCode returns the id of the tenant's account with the given
	// code, creating it when absent. Concurrent first-creators race on the
	// unique (tenant_id, code) constraint; the loser reselects instead of failing.
	EnsureAccountByCode(ctx context.Context, tx pgx.Tx, tenantID, code string, accType domain.AccountType, currency string) (string, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces.
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
