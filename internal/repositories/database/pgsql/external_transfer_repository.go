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

// ExternalTransferRepository implements external transfer persistence against PostgreSQL.
type ExternalTransferRepository struct {
	BaseRepository
}

// NewExternalTransferRepository creates a new ExternalTransferRepository.
func NewExternalTransferRepository(pool *pgxpool.Pool) *ExternalTransferRepository {
	return &ExternalTransferRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// SaveExternalTransfer inserts a new pending external transfer.
func (r *ExternalTransferRepository) SaveExternalTransfer(ctx context.Context, tx pgx.Tx, transfer domain.ExternalTransfer) error {
	m := mapping.ToModelExternalTransfer(transfer)
	query := `
		INSERT INTO external_transfers (id, tenant_id, wallet_id, transaction_id, provider, external_reference, direction, amount, currency, status, idempotency_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := tx.Exec(ctx, query,
		m.ExternalTransferID, m.TenantID, m.WalletID, m.TransactionID, m.Provider, m.ExternalReference,
		m.Direction, m.Amount, m.Currency, m.Status, m.IdempotencyKey, m.CreatedAt)
	if err != nil {
		return mapPgError(err, "failed to save external transfer")
	}
	return nil
}

// MarkTransferPosted flips a pending external transfer to posted.
func (r *ExternalTransferRepository) MarkTransferPosted(ctx context.Context, tx pgx.Tx, externalTransferID string) error {
	query := `UPDATE external_transfers SET status = $1 WHERE id = $2 AND status = $3`
	tag, err := tx.Exec(ctx, query, string(domain.StatusPosted), externalTransferID, string(domain.StatusPending))
	if err != nil {
		return mapPgError(err, "failed to mark external transfer posted")
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: external transfer %s is not pending", apperrors.ErrConflict, externalTransferID)
	}
	return nil
}

// FindExternalTransferByID retrieves a tenant's external transfer outside any
// transactional scope.
func (r *ExternalTransferRepository) FindExternalTransferByID(ctx context.Context, tenantID, externalTransferID string) (*domain.ExternalTransfer, error) {
	query := `
		SELECT id, tenant_id, wallet_id, transaction_id, provider, external_reference, direction, amount, currency, status, idempotency_key, created_at
		FROM external_transfers
		WHERE tenant_id = $1 AND id = $2`

	var m models.ExternalTransfer
	err := r.Pool.QueryRow(ctx, query, tenantID, externalTransferID).Scan(
		&m.ExternalTransferID, &m.TenantID, &m.WalletID, &m.TransactionID, &m.Provider, &m.ExternalReference,
		&m.Direction, &m.Amount, &m.Currency, &m.Status, &m.IdempotencyKey, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapPgError(err, "failed to scan external transfer")
	}
	transfer := mapping.ToDomainExternalTransfer(m)
	return &transfer, nil
}
