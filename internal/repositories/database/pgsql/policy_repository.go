package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/apperrors"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/models"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/utils/mapping"
)

// PolicyRepository implements compliance policy persistence against PostgreSQL.
type PolicyRepository struct {
	BaseRepository
}

// NewPolicyRepository creates a new PolicyRepository.
func NewPolicyRepository(pool *pgxpool.Pool) *PolicyRepository {
	return &PolicyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

const policyColumns = `tenant_id, currency, max_single_amount, max_daily_wallet_debit, max_wallet_balance, requires_kyc, updated_at`

func scanPolicy(row pgx.Row) (*domain.Policy, error) {
	var m models.CompliancePolicy
	err := row.Scan(&m.TenantID, &m.Currency, &m.MaxSingleAmount, &m.MaxDailyWalletDebit, &m.MaxWalletBalance, &m.RequiresKYC, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapPgError(err, "failed to scan compliance policy")
	}
	policy := mapping.ToDomainPolicy(m)
	return &policy, nil
}

// FindPolicy retrieves the policy inside the caller's transaction.
func (r *PolicyRepository) FindPolicy(ctx context.Context, tx pgx.Tx, tenantID, currency string) (*domain.Policy, error) {
	query := `SELECT ` + policyColumns + ` FROM compliance_policies WHERE tenant_id = $1 AND currency = $2`
	return scanPolicy(tx.QueryRow(ctx, query, tenantID, currency))
}

// GetPolicy retrieves the policy outside any transactional scope.
func (r *PolicyRepository) GetPolicy(ctx context.Context, tenantID, currency string) (*domain.Policy, error) {
	query := `SELECT ` + policyColumns + ` FROM compliance_policies WHERE tenant_id = $1 AND currency = $2`
	return scanPolicy(r.Pool.QueryRow(ctx, query, tenantID, currency))
}

// UpsertPolicy creates or replaces the policy for (tenant, currency).
func (r *PolicyRepository) UpsertPolicy(ctx context.Context, policy domain.Policy) error {
	query := `
		INSERT INTO compliance_policies (tenant_id, currency, max_single_amount, max_daily_wallet_debit, max_wallet_balance, requires_kyc, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (tenant_id, currency) DO UPDATE SET
			max_single_amount = EXCLUDED.max_single_amount,
			max_daily_wallet_debit = EXCLUDED.max_daily_wallet_debit,
			max_wallet_balance = EXCLUDED.max_wallet_balance,
			requires_kyc = EXCLUDED.requires_kyc,
			updated_at = EXCLUDED.updated_at`
	_, err := r.Pool.Exec(ctx, query,
		policy.TenantID, policy.Currency, policy.MaxSingleAmount, policy.MaxDailyWalletDebit, policy.MaxWalletBalance, policy.RequiresKYC, policy.UpdatedAt)
	if err != nil {
		return mapPgError(err, "failed to upsert compliance policy")
	}
	return nil
}
