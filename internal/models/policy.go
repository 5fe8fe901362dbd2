package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CompliancePolicy is the DB representation of a tenant's limits for one currency.
type CompliancePolicy struct {
	TenantID            string           `db:"tenant_id"`
	Currency            string           `db:"currency"`
	MaxSingleAmount     *decimal.Decimal `db:"max_single_amount"`
	MaxDailyWalletDebit *decimal.Decimal `db:"max_daily_wallet_debit"`
	MaxWalletBalance    *decimal.Decimal `db:"max_wallet_balance"`
	RequiresKYC         bool             `db:"requires_kyc"`
	UpdatedAt           time.Time        `db:"updated_at"`
}
