package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
)

// IdempotencyRepositoryFacade persists idempotency records. Records are unique
// on (tenant_id, key) and created at most once per key.
type IdempotencyRepositoryFacade interface {
	// FindForUpdate reads the record for (tenantID, key) with an exclusive row
	// lock, serializing concurrent calls sharing the same key. Returns
	// ErrNotFound when no record exists yet.
	FindForUpdate(ctx context.Context, tx pgx.Tx, tenantID, key string) (*domain.IdempotencyRecord, error)

	// SaveRecord inserts the record. It commits together with the operation's
	// own writes; a rollback leaves neither record nor effect.
	SaveRecord(ctx context.Context, tx pgx.Tx, record domain.IdempotencyRecord) error
}
