package models

import "time"

// AccountType mirrors domain.AccountType for DB storage.
type AccountType string

const (
	Asset     AccountType = "asset"
	Liability AccountType = "liability"
)

// Account is the DB representation of a ledger account.
type Account struct {
	AccountID string      `db:"id"`
	TenantID  string      `db:"tenant_id"`
	Code      string      `db:"code"`
	Type      AccountType `db:"type"`
	Currency  string      `db:"currency"`
	CreatedAt time.Time   `db:"created_at"`
}
