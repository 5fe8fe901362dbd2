package domain

import "time"

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "asset"
	Liability AccountType = "liability"
)

// Account is a ledger account scoped to one tenant. Accounts are created on
// demand (wallet creation, lazy clearing/treasury provisioning) and are
// immutable once created; they are never deleted.
type Account struct {
	AccountID string      `json:"accountID"` // Primary Key (UUID)
	TenantID  string      `json:"tenantID"`
	Code      string      `json:"code"` // Unique per tenant
	Type      AccountType `json:"type"`
	Currency  string      `json:"currency"`
	CreatedAt time.Time   `json:"createdAt"`
}
