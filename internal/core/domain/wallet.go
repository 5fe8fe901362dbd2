package domain

import "time"

// WalletStatus indicates whether a wallet may participate in operations.
type WalletStatus string

const (
	WalletActive WalletStatus = "active"
	WalletFrozen WalletStatus = "frozen"
	WalletClosed WalletStatus = "closed"
)

// WalletAccountRole names the function an account serves for a wallet.
type WalletAccountRole string

const (
	RolePrincipal WalletAccountRole = "principal"
)

// Wallet is a tenant-scoped value container. Its balance is never stored; it
// is projected from the ledger entries of its principal account.
type Wallet struct {
	WalletID    string       `json:"walletID"` // Primary Key (UUID)
	TenantID    string       `json:"tenantID"`
	OwnerID     string       `json:"ownerID"`
	Currency    string       `json:"currency"`
	Status      WalletStatus `json:"status"`
	KYCVerified bool         `json:"kycVerified"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// WalletAccount maps a wallet to one of its ledger accounts.
type WalletAccount struct {
	WalletID  string            `json:"walletID"`
	AccountID string            `json:"accountID"`
	Role      WalletAccountRole `json:"role"`
}
