package dto

// TransferRequest moves value between two wallets of one tenant.
type TransferRequest struct {
	TenantID     string `json:"tenant_id" binding:"required,uuid"`
	FromWalletID string `json:"from_wallet_id" binding:"required,uuid"`
	ToWalletID   string `json:"to_wallet_id" binding:"required,uuid"`
	Amount       string `json:"amount" binding:"required"`
	Currency     string `json:"currency" binding:"required,currency_code"`
}

// TransferResponse echoes the request plus the posting outcome.
type TransferResponse struct {
	Operation     string `json:"operation"`
	TransactionID string `json:"transaction_id"`
	BatchID       string `json:"batch_id"`
	Status        string `json:"status"`
	TenantID      string `json:"tenant_id"`
	FromWalletID  string `json:"from_wallet_id"`
	ToWalletID    string `json:"to_wallet_id"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
}

// ReversalResponse describes a posted reversal.
type ReversalResponse struct {
	Operation             string `json:"operation"`
	TransactionID         string `json:"transaction_id"`
	OriginalTransactionID string `json:"original_transaction_id"`
	BatchID               string `json:"batch_id"`
	Status                string `json:"status"`
}
