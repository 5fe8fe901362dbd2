package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
)

// LedgerWriter appends posting batches. There is no update or delete path.
type LedgerWriter interface {
	// SaveBatch inserts one ledger batch and its entries atomically within the
	// caller's transaction.
	SaveBatch(ctx context.Context, tx pgx.Tx, batch domain.LedgerBatch, entries []domain.LedgerEntry) error
}

// LedgerReader defines read operations over the append-only entry log.
type LedgerReader interface {
	// FindEntriesByTransactionID retrieves the entries of the batch tied to a
	// transaction.
	FindEntriesByTransactionID(ctx context.Context, tx pgx.Tx, transactionID string) ([]domain.LedgerEntry, error)

	// SumEntriesByAccount folds an account's entries into its current balance
	// (credits minus debits), zero when none exist. Runs inside the caller's
	// transaction so it observes locks already held.
	SumEntriesByAccount(ctx context.Context, tx pgx.Tx, accountID string) (decimal.Decimal, error)

	// SumPostedDebitsToday totals today's debit entries of posted transactions
	// for an account, used for the daily-debit compliance cap.
	SumPostedDebitsToday(ctx context.Context, tx pgx.Tx, accountID string) (decimal.Decimal, error)

	// ProjectWalletBalance folds the principal account entries of a wallet
	// outside any transactional scope, for read-only balance queries.
	ProjectWalletBalance(ctx context.Context, walletID string) (string, decimal.Decimal, error)
}

// LedgerRepositoryFacade combines the ledger repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerWriter
	LedgerReader
}
