package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Policy holds the compliance limits for one (tenant, currency) pair. A nil
// cap means the corresponding check is skipped.
type Policy struct {
	TenantID            string           `json:"tenantID"`
	Currency            string           `json:"currency"`
	MaxSingleAmount     *decimal.Decimal `json:"maxSingleAmount,omitempty"`
	MaxDailyWalletDebit *decimal.Decimal `json:"maxDailyWalletDebit,omitempty"`
	MaxWalletBalance    *decimal.Decimal `json:"maxWalletBalance,omitempty"`
	RequiresKYC         bool             `json:"requiresKYC"`
	UpdatedAt           time.Time        `json:"updatedAt"`
}
