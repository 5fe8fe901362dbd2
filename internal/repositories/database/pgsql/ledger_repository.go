package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/apperrors"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/models"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/utils/mapping"
)

// LedgerRepository implements the append-only entry log against PostgreSQL.
type LedgerRepository struct {
	BaseRepository
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// SaveBatch inserts one ledger batch and its entries atomically within the
// caller's transaction. Entries are queued through a pgx batch so the round
// trip count stays constant regardless of batch size.
func (r *LedgerRepository) SaveBatch(ctx context.Context, tx pgx.Tx, batch domain.LedgerBatch, entries []domain.LedgerEntry) error {
	pgBatch := &pgx.Batch{}
	pgBatch.Queue(`
		INSERT INTO ledger_batches (id, transaction_id, posted_at)
		VALUES ($1, $2, $3)`,
		batch.BatchID, batch.TransactionID, batch.PostedAt)

	for _, e := range entries {
		pgBatch.Queue(`
			INSERT INTO ledger_entries (id, batch_id, account_id, direction, amount, currency)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			e.EntryID, e.BatchID, e.AccountID, string(e.Direction), e.Amount, e.Currency)
	}

	results := tx.SendBatch(ctx, pgBatch)
	defer results.Close()

	for i := 0; i < pgBatch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			return mapPgError(err, "failed to append ledger batch")
		}
	}
	return nil
}

// FindEntriesByTransactionID retrieves the entries of the batch tied to a transaction.
func (r *LedgerRepository) FindEntriesByTransactionID(ctx context.Context, tx pgx.Tx, transactionID string) ([]domain.LedgerEntry, error) {
	query := `
		SELECT e.id, e.batch_id, e.account_id, e.direction, e.amount, e.currency
		FROM ledger_entries e
		JOIN ledger_batches b ON b.id = e.batch_id
		WHERE b.transaction_id = $1
		ORDER BY e.id ASC`

	rows, err := tx.Query(ctx, query, transactionID)
	if err != nil {
		return nil, mapPgError(err, "failed to query ledger entries")
	}
	defer rows.Close()

	var entries []models.LedgerEntry
	for rows.Next() {
		var m models.LedgerEntry
		if err := rows.Scan(&m.EntryID, &m.BatchID, &m.AccountID, &m.Direction, &m.Amount, &m.Currency); err != nil {
			return nil, mapPgError(err, "failed to scan ledger entry")
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "failed to read ledger entries")
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no ledger entries for transaction %s", apperrors.ErrNotFound, transactionID)
	}
	return mapping.ToDomainLedgerEntrySlice(entries), nil
}

// SumEntriesByAccount folds an account's entries into its current balance,
// credits minus debits. An account with no entries has a zero balance.
func (r *LedgerRepository) SumEntriesByAccount(ctx context.Context, tx pgx.Tx, accountID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN direction = 'credit' THEN amount ELSE -amount END), 0)
		FROM ledger_entries
		WHERE account_id = $1`

	var balance decimal.Decimal
	if err := tx.QueryRow(ctx, query, accountID).Scan(&balance); err != nil {
		return decimal.Zero, mapPgError(err, "failed to sum ledger entries")
	}
	return balance, nil
}

// SumPostedDebitsToday totals today's debit entries of posted transactions for
// an account. Entries of reversed transactions still count; a reversal does
// not refund the daily-debit allowance.
func (r *LedgerRepository) SumPostedDebitsToday(ctx context.Context, tx pgx.Tx, accountID string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(e.amount), 0)
		FROM ledger_entries e
		JOIN ledger_batches b ON b.id = e.batch_id
		JOIN transactions t ON t.id = b.transaction_id
		WHERE e.account_id = $1
		  AND e.direction = 'debit'
		  AND t.status IN ('posted', 'reversed')
		  AND b.posted_at >= date_trunc('day', now())`

	var total decimal.Decimal
	if err := tx.QueryRow(ctx, query, accountID).Scan(&total); err != nil {
		return decimal.Zero, mapPgError(err, "failed to sum daily debits")
	}
	return total, nil
}

// ProjectWalletBalance folds the principal account entries of a wallet outside
// any transactional scope.
func (r *LedgerRepository) ProjectWalletBalance(ctx context.Context, walletID string) (string, decimal.Decimal, error) {
	query := `
		SELECT w.currency,
		       COALESCE(SUM(CASE WHEN e.direction = 'credit' THEN e.amount WHEN e.direction = 'debit' THEN -e.amount END), 0)
		FROM wallets w
		JOIN wallet_accounts wa ON wa.wallet_id = w.id AND wa.role = 'principal'
		LEFT JOIN ledger_entries e ON e.account_id = wa.account_id
		WHERE w.id = $1
		GROUP BY w.currency`

	var currency string
	var balance decimal.Decimal
	err := r.Pool.QueryRow(ctx, query, walletID).Scan(&currency, &balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", decimal.Zero, fmt.Errorf("%w: wallet %s", apperrors.ErrNotFound, walletID)
		}
		return "", decimal.Zero, mapPgError(err, "failed to project wallet balance")
	}
	return currency, balance, nil
}
