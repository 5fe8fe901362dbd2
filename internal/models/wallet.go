package models

import "time"

// Wallet is the DB representation of a wallet.
type Wallet struct {
	WalletID    string    `db:"id"`
	TenantID    string    `db:"tenant_id"`
	OwnerID     string    `db:"owner_id"`
	Currency    string    `db:"currency"`
	Status      string    `db:"status"`
	KYCVerified bool      `db:"kyc_verified"`
	CreatedAt   time.Time `db:"created_at"`
}

// WalletAccount is the DB representation of the wallet-to-account mapping.
type WalletAccount struct {
	WalletID  string `db:"wallet_id"`
	AccountID string `db:"account_id"`
	Role      string `db:"role"`
}
