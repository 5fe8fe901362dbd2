package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every PostgreSQL repository onto one shared pool.
func NewRepositoryProvider(pool *pgxpool.Pool) *repositories.RepositoryProvider {
	base := &BaseRepository{Pool: pool}
	return &repositories.RepositoryProvider{
		TxManager:        base,
		AccountRepo:      NewAccountRepository(pool),
		WalletRepo:       NewWalletRepository(pool),
		TransactionRepo:  NewTransactionRepository(pool),
		LedgerRepo:       NewLedgerRepository(pool),
		IdempotencyRepo:  NewIdempotencyRepository(pool),
		PolicyRepo:       NewPolicyRepository(pool),
		ExternalTransfer: NewExternalTransferRepository(pool),
	}
}
