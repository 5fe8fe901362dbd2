package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/apperrors"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/ports/repositories"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/middleware"
)

// balanceEpsilon absorbs residual rounding when comparing debit and credit
// totals. Amounts themselves are exact decimals.
var balanceEpsilon = decimal.New(1, -6)

// LedgerService is the posting primitive. It validates and appends batches and
// knows nothing about wallets, tenants, or balances.
type LedgerService struct {
	ledgerRepo repositories.LedgerRepositoryFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo repositories.LedgerRepositoryFacade) *LedgerService {
	return &LedgerService{ledgerRepo: ledgerRepo}
}

// ValidateBalanced checks a batch of posting lines: non-empty, every amount
// strictly positive, one currency, and debits equal to credits within the
// rounding epsilon.
func (s *LedgerService) ValidateBalanced(lines []domain.PostingLine) error {
	if len(lines) == 0 {
		return ErrEmptyBatch
	}

	currency := lines[0].Currency
	debits := decimal.Zero
	credits := decimal.Zero
	for _, line := range lines {
		if !line.Amount.IsPositive() {
			return fmt.Errorf("%w: account %s has amount %s", ErrNonPositiveAmount, line.AccountID, line.Amount)
		}
		if line.Currency != currency {
			return fmt.Errorf("%w: %s and %s", ErrMixedCurrencies, currency, line.Currency)
		}
		switch line.Direction {
		case domain.Debit:
			debits = debits.Add(line.Amount)
		case domain.Credit:
			credits = credits.Add(line.Amount)
		default:
			return fmt.Errorf("%w: unknown direction %q", apperrors.ErrValidation, line.Direction)
		}
	}

	if debits.Sub(credits).Abs().GreaterThan(balanceEpsilon) {
		return fmt.Errorf("%w: debits %s, credits %s", ErrUnbalancedBatch, debits, credits)
	}
	return nil
}

// Post validates the lines and appends one batch with its entries inside the
// caller's transaction, returning the batch id.
func (s *LedgerService) Post(ctx context.Context, tx pgx.Tx, transactionID string, lines []domain.PostingLine) (string, error) {
	if err := s.ValidateBalanced(lines); err != nil {
		return "", err
	}

	batch := domain.LedgerBatch{
		BatchID:       uuid.NewString(),
		TransactionID: transactionID,
		PostedAt:      time.Now().UTC(),
	}
	entries := make([]domain.LedgerEntry, len(lines))
	for i, line := range lines {
		entries[i] = domain.LedgerEntry{
			EntryID:   uuid.NewString(),
			BatchID:   batch.BatchID,
			AccountID: line.AccountID,
			Direction: line.Direction,
			Amount:    line.Amount,
			Currency:  line.Currency,
		}
	}

	if err := s.ledgerRepo.SaveBatch(ctx, tx, batch, entries); err != nil {
		return "", err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Ledger batch appended",
		slog.String("batch_id", batch.BatchID),
		slog.String("transaction_id", transactionID),
		slog.Int("entries", len(entries)),
	)
	return batch.BatchID, nil
}
