package dto

// ValueRequest issues value into or redeems value out of a wallet against the
// tenant's treasury account.
type ValueRequest struct {
	TenantID string `json:"tenant_id" binding:"required,uuid"`
	WalletID string `json:"wallet_id" binding:"required,uuid"`
	Amount   string `json:"amount" binding:"required"`
	Currency string `json:"currency" binding:"required,currency_code"`
}

// ValueResponse echoes the request plus the posting outcome.
type ValueResponse struct {
	Operation     string `json:"operation"`
	TransactionID string `json:"transaction_id"`
	BatchID       string `json:"batch_id"`
	Status        string `json:"status"`
	TenantID      string `json:"tenant_id"`
	WalletID      string `json:"wallet_id"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
}
