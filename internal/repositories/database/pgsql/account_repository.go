package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/apperrors"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/models"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/utils/mapping"
)

// AccountRepository implements account persistence against PostgreSQL.
type AccountRepository struct {
	BaseRepository
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

const accountColumns = `id, tenant_id, code, type, currency, created_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var m models.Account
	err := row.Scan(&m.AccountID, &m.TenantID, &m.Code, &m.Type, &m.Currency, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapPgError(err, "failed to scan account")
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

// FindAccountByID retrieves an account by its unique identifier.
func (r *AccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE id = $1`, accountColumns)
	return scanAccount(r.Pool.QueryRow(ctx, query, accountID))
}

// FindAccountByCode retrieves a tenant's account by its deterministic code.
func (r *AccountRepository) FindAccountByCode(ctx context.Context, tx pgx.Tx, tenantID, code string) (*domain.Account, error) {
	query := fmt.Sprintf(`SELECT %s FROM accounts WHERE tenant_id = $1 AND code = $2`, accountColumns)
	return scanAccount(tx.QueryRow(ctx, query, tenantID, code))
}

// SaveAccount inserts a new account within the given transaction.
func (r *AccountRepository) SaveAccount(ctx context.Context, tx pgx.Tx, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (id, tenant_id, code, type, currency, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := tx.Exec(ctx, query, m.AccountID, m.TenantID, m.Code, m.Type, m.Currency, m.CreatedAt)
	if err != nil {
		return mapPgError(err, "failed to save account")
	}
	return nil
}

// EnsureAccountByCode returns the id of the tenant's account with the given
// code, creating it when absent. Two concurrent first-creators race on the
// unique (tenant_id, code) index; the insert carries ON CONFLICT DO NOTHING
// so the loser's statement succeeds without aborting the surrounding
// transaction, and the reselect afterwards adopts the winner's row.
func (r *AccountRepository) EnsureAccountByCode(ctx context.Context, tx pgx.Tx, tenantID, code string, accType domain.AccountType, currency string) (string, error) {
	existing, err := r.FindAccountByCode(ctx, tx, tenantID, code)
	if err == nil {
		return existing.AccountID, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return "", err
	}

	m := mapping.ToModelAccount(domain.Account{
		AccountID: uuid.NewString(),
		TenantID:  tenantID,
		Code:      code,
		Type:      accType,
		Currency:  currency,
		CreatedAt: time.Now().UTC(),
	})
	query := `
		INSERT INTO accounts (id, tenant_id, code, type, currency, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (tenant_id, code) DO NOTHING`
	if _, err := tx.Exec(ctx, query, m.AccountID, m.TenantID, m.Code, m.Type, m.Currency, m.CreatedAt); err != nil {
		return "", mapPgError(err, "failed to ensure account")
	}

	created, err := r.FindAccountByCode(ctx, tx, tenantID, code)
	if err != nil {
		return "", err
	}
	return created.AccountID, nil
}
