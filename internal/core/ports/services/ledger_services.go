package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
)

// LedgerSvcFacade is the posting primitive. It has no notion of wallets,
// tenants, or balances; every operation family funnels through it.
type LedgerSvcFacade interface {
	// ValidateBalanced checks a batch of posting lines: non-empty, every
	// amount > 0, a single currency, and debits equal to credits within the
	// rounding epsilon.
	ValidateBalanced(lines []domain.PostingLine) error

	// Post validates the lines and appends one batch with its entries inside
	// the caller's transaction, returning the batch id.
	Post(ctx context.Context, tx pgx.Tx, transactionID string, lines []domain.PostingLine) (string, error)
}

// BalanceSvcFacade projects wallet balances from the entry log.
type BalanceSvcFacade interface {
	// ProjectBalance computes credits minus debits for an account inside the
	// caller's transaction. Must never be cached across a lock boundary.
	ProjectBalance(ctx context.Context, tx pgx.Tx, accountID string) (decimal.Decimal, error)
}
