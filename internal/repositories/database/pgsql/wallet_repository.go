package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/apperrors"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/models"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/utils/mapping"
)

// WalletRepository implements wallet persistence against PostgreSQL.
type WalletRepository struct {
	BaseRepository
}

// NewWalletRepository creates a new WalletRepository.
func NewWalletRepository(pool *pgxpool.Pool) *WalletRepository {
	return &WalletRepository{BaseRepository: BaseRepository{Pool: pool}}
}

const walletColumns = `id, tenant_id, owner_id, currency, status, kyc_verified, created_at`

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var m models.Wallet
	err := row.Scan(&m.WalletID, &m.TenantID, &m.OwnerID, &m.Currency, &m.Status, &m.KYCVerified, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapPgError(err, "failed to scan wallet")
	}
	wallet := mapping.ToDomainWallet(m)
	return &wallet, nil
}

// FindWalletByID retrieves a wallet outside any transactional scope.
func (r *WalletRepository) FindWalletByID(ctx context.Context, tenantID, walletID string) (*domain.Wallet, error) {
	query := fmt.Sprintf(`SELECT %s FROM wallets WHERE tenant_id = $1 AND id = $2`, walletColumns)
	return scanWallet(r.Pool.QueryRow(ctx, query, tenantID, walletID))
}

// GetWalletInTx retrieves a wallet inside the caller's transaction without locking it.
func (r *WalletRepository) GetWalletInTx(ctx context.Context, tx pgx.Tx, tenantID, walletID string) (*domain.Wallet, error) {
	query := fmt.Sprintf(`SELECT %s FROM wallets WHERE tenant_id = $1 AND id = $2`, walletColumns)
	return scanWallet(tx.QueryRow(ctx, query, tenantID, walletID))
}

// FindPrincipalAccountID resolves the principal account of an active wallet.
func (r *WalletRepository) FindPrincipalAccountID(ctx context.Context, tx pgx.Tx, tenantID, walletID string) (string, error) {
	query := `
		SELECT wa.account_id
		FROM wallet_accounts wa
		JOIN wallets w ON w.id = wa.wallet_id
		WHERE w.tenant_id = $1 AND wa.wallet_id = $2 AND wa.role = $3`
	var accountID string
	err := tx.QueryRow(ctx, query, tenantID, walletID, string(domain.RolePrincipal)).Scan(&accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("%w: wallet %s has no principal account", apperrors.ErrNotFound, walletID)
		}
		return "", mapPgError(err, "failed to resolve principal account")
	}
	return accountID, nil
}

// SaveWallet inserts a new wallet within the given transaction.
func (r *WalletRepository) SaveWallet(ctx context.Context, tx pgx.Tx, wallet domain.Wallet) error {
	m := mapping.ToModelWallet(wallet)
	query := `
		INSERT INTO wallets (id, tenant_id, owner_id, currency, status, kyc_verified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := tx.Exec(ctx, query, m.WalletID, m.TenantID, m.OwnerID, m.Currency, m.Status, m.KYCVerified, m.CreatedAt)
	if err != nil {
		return mapPgError(err, "failed to save wallet")
	}
	return nil
}

// SaveWalletAccount inserts a wallet-to-account mapping.
func (r *WalletRepository) SaveWalletAccount(ctx context.Context, tx pgx.Tx, wa domain.WalletAccount) error {
	query := `
		INSERT INTO wallet_accounts (wallet_id, account_id, role)
		VALUES ($1, $2, $3)`
	_, err := tx.Exec(ctx, query, wa.WalletID, wa.AccountID, string(wa.Role))
	if err != nil {
		return mapPgError(err, "failed to save wallet account")
	}
	return nil
}

// canonicalWalletIDs deduplicates wallet ids and sorts them ascending. Every
// caller acquiring locks through this order rules out lock-order deadlocks
// between concurrent multi-wallet operations.
func canonicalWalletIDs(walletIDs []string) []string {
	seen := make(map[string]struct{}, len(walletIDs))
	ordered := make([]string, 0, len(walletIDs))
	for _, id := range walletIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ordered = append(ordered, id)
	}
	sort.Strings(ordered)
	return ordered
}

// LockWalletsForUpdate locks the given wallet rows with SELECT ... FOR UPDATE,
// in canonical id order.
func (r *WalletRepository) LockWalletsForUpdate(ctx context.Context, tx pgx.Tx, tenantID string, walletIDs []string) (map[string]domain.Wallet, error) {
	if len(walletIDs) == 0 {
		return map[string]domain.Wallet{}, nil
	}

	ordered := canonicalWalletIDs(walletIDs)

	query := fmt.Sprintf(`
		SELECT %s FROM wallets
		WHERE tenant_id = $1 AND id = ANY($2)
		ORDER BY id ASC
		FOR UPDATE`, walletColumns)

	rows, err := tx.Query(ctx, query, tenantID, ordered)
	if err != nil {
		return nil, mapPgError(err, "failed to lock wallets")
	}
	defer rows.Close()

	locked := make(map[string]domain.Wallet, len(ordered))
	for rows.Next() {
		var m models.Wallet
		if err := rows.Scan(&m.WalletID, &m.TenantID, &m.OwnerID, &m.Currency, &m.Status, &m.KYCVerified, &m.CreatedAt); err != nil {
			return nil, mapPgError(err, "failed to scan locked wallet")
		}
		locked[m.WalletID] = mapping.ToDomainWallet(m)
	}
	if err := rows.Err(); err != nil {
		return nil, mapPgError(err, "failed to read locked wallets")
	}

	if len(locked) != len(ordered) {
		for _, id := range ordered {
			if _, ok := locked[id]; !ok {
				return nil, fmt.Errorf("%w: wallet %s", apperrors.ErrNotFound, id)
			}
		}
	}
	return locked, nil
}
