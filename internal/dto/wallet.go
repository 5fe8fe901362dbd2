package dto

// CreateWalletRequest opens a wallet and its principal ledger account.
type CreateWalletRequest struct {
	TenantID string `json:"tenant_id" binding:"required,uuid"`
	OwnerID  string `json:"owner_id" binding:"required"`
	Currency string `json:"currency" binding:"required,currency_code"`
}

// WalletResponse is the read projection of a wallet.
type WalletResponse struct {
	WalletID string `json:"wallet_id"`
	TenantID string `json:"tenant_id"`
	OwnerID  string `json:"owner_id"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

// BalanceResponse reports a wallet's projected balance.
type BalanceResponse struct {
	WalletID  string `json:"wallet_id"`
	Available string `json:"available"`
	Ledger    string `json:"ledger"`
	Currency  string `json:"currency"`
}
