package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/apperrors"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/models"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/utils/mapping"
)

// TransactionRepository implements transaction persistence against PostgreSQL.
type TransactionRepository struct {
	BaseRepository
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

const transactionColumns = `id, tenant_id, type, status, amount, currency, idempotency_key, original_transaction_id, created_at`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var m models.Transaction
	err := row.Scan(&m.TransactionID, &m.TenantID, &m.Type, &m.Status, &m.Amount, &m.Currency, &m.IdempotencyKey, &m.OriginalTransactionID, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapPgError(err, "failed to scan transaction")
	}
	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

// FindTransactionByID retrieves a tenant's transaction outside any
// transactional scope.
func (r *TransactionRepository) FindTransactionByID(ctx context.Context, tenantID, transactionID string) (*domain.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE tenant_id = $1 AND id = $2`, transactionColumns)
	return scanTransaction(r.Pool.QueryRow(ctx, query, tenantID, transactionID))
}

// GetTransactionInTx retrieves a tenant's transaction inside the caller's
// transaction.
func (r *TransactionRepository) GetTransactionInTx(ctx context.Context, tx pgx.Tx, tenantID, transactionID string) (*domain.Transaction, error) {
	query := fmt.Sprintf(`SELECT %s FROM transactions WHERE tenant_id = $1 AND id = $2`, transactionColumns)
	return scanTransaction(tx.QueryRow(ctx, query, tenantID, transactionID))
}

// SaveTransaction inserts a new pending transaction.
func (r *TransactionRepository) SaveTransaction(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (id, tenant_id, type, status, amount, currency, idempotency_key, original_transaction_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := tx.Exec(ctx, query, m.TransactionID, m.TenantID, m.Type, m.Status, m.Amount, m.Currency, m.IdempotencyKey, m.OriginalTransactionID, m.CreatedAt)
	if err != nil {
		return mapPgError(err, "failed to save transaction")
	}
	return nil
}

// MarkPosted flips a pending transaction to posted.
func (r *TransactionRepository) MarkPosted(ctx context.Context, tx pgx.Tx, transactionID string) error {
	query := `UPDATE transactions SET status = $1 WHERE id = $2 AND status = $3`
	tag, err := tx.Exec(ctx, query, string(domain.StatusPosted), transactionID, string(domain.StatusPending))
	if err != nil {
		return mapPgError(err, "failed to mark transaction posted")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s is not pending", apperrors.ErrConflict, transactionID)
	}
	return nil
}

// MarkReversed flips a tenant's posted transaction to reversed. The status
// guard in the WHERE clause is what enforces at-most-one reversal: of two
// racing reversers, only one update touches a row.
func (r *TransactionRepository) MarkReversed(ctx context.Context, tx pgx.Tx, tenantID, transactionID string) error {
	query := `UPDATE transactions SET status = $1 WHERE tenant_id = $2 AND id = $3 AND status = $4`
	tag, err := tx.Exec(ctx, query, string(domain.StatusReversed), tenantID, transactionID, string(domain.StatusPosted))
	if err != nil {
		return mapPgError(err, "failed to mark transaction reversed")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s is not posted", apperrors.ErrConflict, transactionID)
	}
	return nil
}
