package dto

// UpsertPolicyRequest sets the compliance limits for one (tenant, currency).
// Nil fields clear the corresponding cap.
type UpsertPolicyRequest struct {
	MaxSingleAmount     *string `json:"max_single_amount"`
	MaxDailyWalletDebit *string `json:"max_daily_wallet_debit"`
	MaxWalletBalance    *string `json:"max_wallet_balance"`
	RequiresKYC         *bool   `json:"requires_kyc"`
}

// PolicyResponse is the read projection of a compliance policy.
type PolicyResponse struct {
	TenantID            string  `json:"tenant_id"`
	Currency            string  `json:"currency"`
	MaxSingleAmount     *string `json:"max_single_amount"`
	MaxDailyWalletDebit *string `json:"max_daily_wallet_debit"`
	MaxWalletBalance    *string `json:"max_wallet_balance"`
	RequiresKYC         bool    `json:"requires_kyc"`
}
