package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
)

// TransactionReader defines read operations for transaction data. Lookups are
// tenant-scoped; a transaction id from another tenant reads as absent.
type TransactionReader interface {
	// FindTransactionByID retrieves a tenant's transaction outside any
	// transactional scope.
	FindTransactionByID(ctx context.Context, tenantID, transactionID string) (*domain.Transaction, error)

	// GetTransactionInTx retrieves a tenant's transaction inside the caller's
	// transaction.
	GetTransactionInTx(ctx context.Context, tx pgx.Tx, tenantID, transactionID string) (*domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data.
type TransactionWriter interface {
	// SaveTransaction inserts a new pending transaction.
	SaveTransaction(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error

	// MarkPosted flips a pending transaction to posted.
	MarkPosted(ctx context.Context, tx pgx.Tx, transactionID string) error

	// MarkReversed flips a tenant's posted transaction to reversed. The update
	// is conditional on the current status being posted, which is what
	// enforces at-most-one reversal; zero rows affected means the guard
	// failed.
	MarkReversed(ctx context.Context, tx pgx.Tx, tenantID, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
