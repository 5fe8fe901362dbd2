package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
)

// WalletReader defines read operations for wallet data.
type WalletReader interface {
	// FindWalletByID retrieves a wallet outside any transactional scope.
	FindWalletByID(ctx context.Context, tenantID, walletID string) (*domain.Wallet, error)

	// GetWalletInTx retrieves a wallet inside the caller's transaction without
	// locking it (used by operations whose lock scope excludes the wallet).
	GetWalletInTx(ctx context.Context, tx pgx.Tx, tenantID, walletID string) (*domain.Wallet, error)

	// FindPrincipalAccountID resolves the principal account of an active
	// wallet. Returns ErrNotFound when the wallet is missing, inactive, or has
	// no principal mapping.
	FindPrincipalAccountID(ctx context.Context, tx pgx.Tx, tenantID, walletID string) (string, error)
}

// WalletWriter defines write operations for wallet data.
type WalletWriter interface {
	// SaveWallet inserts a new wallet within the given transaction.
	SaveWallet(ctx context.Context, tx pgx.Tx, wallet domain.Wallet) error

	// SaveWalletAccount inserts a wallet-to-account mapping.
	SaveWalletAccount(ctx context.Context, tx pgx.Tx, wa domain.WalletAccount) error
}

// WalletLocker acquires exclusive row locks on wallets.
type WalletLocker interface {
	// LockWalletsForUpdate locks the given wallet rows with SELECT ... FOR
	// UPDATE. Ids are deduplicated and locked in ascending order so every
	// caller acquires cross-wallet locks in the same global order. Returns
	// ErrNotFound when any wallet does not exist for the tenant.
	LockWalletsForUpdate(ctx context.Context, tx pgx.Tx, tenantID string, walletIDs []string) (map[string]domain.Wallet, error)
}

// WalletRepositoryFacade combines all wallet-related repository interfaces.
type WalletRepositoryFacade interface {
	WalletReader
	WalletWriter
	WalletLocker
}
