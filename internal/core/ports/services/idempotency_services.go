package services

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
)

// Operation is the unit of work an idempotent call wraps. It runs inside the
// coordinator's transaction; its writes commit or roll back together with the
// idempotency record.
type Operation func(ctx context.Context, tx pgx.Tx) (any, error)

// IdempotencySvcFacade deduplicates retried client requests. Identical
// (key, payload) pairs replay the cached response without re-running the
// operation; an identical key with a different payload is rejected.
type IdempotencySvcFacade interface {
	Execute(ctx context.Context, tenantID, key string, payload any, op Operation) (json.RawMessage, error)
}
