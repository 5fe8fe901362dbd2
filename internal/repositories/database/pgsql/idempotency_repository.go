package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/apperrors"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
)

// IdempotencyRepository implements idempotency record persistence against PostgreSQL.
type IdempotencyRepository struct {
	BaseRepository
}

// NewIdempotencyRepository creates a new IdempotencyRepository.
func NewIdempotencyRepository(pool *pgxpool.Pool) *IdempotencyRepository {
	return &IdempotencyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// FindForUpdate reads the record for (tenantID, key) with an exclusive row
// lock. A second caller with the same key blocks here until the first one
// commits or rolls back, then observes either the stored record or nothing.
func (r *IdempotencyRepository) FindForUpdate(ctx context.Context, tx pgx.Tx, tenantID, key string) (*domain.IdempotencyRecord, error) {
	query := `
		SELECT tenant_id, key, request_hash, response_payload, created_at
		FROM idempotency_keys
		WHERE tenant_id = $1 AND key = $2
		FOR UPDATE`

	var record domain.IdempotencyRecord
	err := tx.QueryRow(ctx, query, tenantID, key).Scan(&record.TenantID, &record.Key, &record.RequestHash, &record.ResponsePayload, &record.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapPgError(err, "failed to read idempotency record")
	}
	return &record, nil
}

// SaveRecord inserts the record within the caller's transaction.
func (r *IdempotencyRepository) SaveRecord(ctx context.Context, tx pgx.Tx, record domain.IdempotencyRecord) error {
	query := `
		INSERT INTO idempotency_keys (tenant_id, key, request_hash, response_payload, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := tx.Exec(ctx, query, record.TenantID, record.Key, record.RequestHash, record.ResponsePayload, record.CreatedAt)
	if err != nil {
		return mapPgError(err, "failed to save idempotency record")
	}
	return nil
}
