package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/ports/repositories"
)

// BalanceService projects account balances from the entry log. Balances are
// never stored; every read folds the entries fresh.
type BalanceService struct {
	ledgerRepo repositories.LedgerRepositoryFacade
}

// NewBalanceService creates a new BalanceService.
func NewBalanceService(ledgerRepo repositories.LedgerRepositoryFacade) *BalanceService {
	return &BalanceService{ledgerRepo: ledgerRepo}
}

// ProjectBalance computes credits minus debits for an account inside the
// caller's transaction. Callers must hold the wallet lock before projecting,
// and must not reuse a projection after the transaction ends.
func (s *BalanceService) ProjectBalance(ctx context.Context, tx pgx.Tx, accountID string) (decimal.Decimal, error) {
	return s.ledgerRepo.SumEntriesByAccount(ctx, tx, accountID)
}
