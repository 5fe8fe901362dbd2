package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
)

// PolicyRepositoryFacade persists compliance policies keyed by (tenant, currency).
type PolicyRepositoryFacade interface {
	// FindPolicy retrieves the policy inside the caller's transaction. Returns
	// ErrNotFound when the tenant has no policy for the currency.
	FindPolicy(ctx context.Context, tx pgx.Tx, tenantID, currency string) (*domain.Policy, error)

	// GetPolicy retrieves the policy outside any transactional scope.
	GetPolicy(ctx context.Context, tenantID, currency string) (*domain.Policy, error)

	// UpsertPolicy creates or replaces the policy for (tenant, currency).
	UpsertPolicy(ctx context.Context, policy domain.Policy) error
}
