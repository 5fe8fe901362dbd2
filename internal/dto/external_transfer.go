package dto

// ExternalTransferRequest funds or defunds a wallet through a named provider.
type ExternalTransferRequest struct {
	TenantID          string `json:"tenant_id" binding:"required,uuid"`
	WalletID          string `json:"wallet_id" binding:"required,uuid"`
	Amount            string `json:"amount" binding:"required"`
	Currency          string `json:"currency" binding:"required,currency_code"`
	Provider          string `json:"provider" binding:"required"`
	ExternalReference string `json:"external_reference" binding:"required"`
}

// ExternalTransferResponse echoes the request plus the posting outcome.
type ExternalTransferResponse struct {
	ExternalTransferID string `json:"external_transfer_id"`
	TransactionID      string `json:"transaction_id"`
	BatchID            string `json:"batch_id"`
	Direction          string `json:"direction"`
	Status             string `json:"status"`
	TenantID           string `json:"tenant_id"`
	WalletID           string `json:"wallet_id"`
	Amount             string `json:"amount"`
	Currency           string `json:"currency"`
	Provider           string `json:"provider"`
	ExternalReference  string `json:"external_reference"`
}

// ExternalTransferDetail is the read-only projection of an external transfer.
type ExternalTransferDetail struct {
	ExternalTransferID string `json:"external_transfer_id"`
	TenantID           string `json:"tenant_id"`
	WalletID           string `json:"wallet_id"`
	TransactionID      string `json:"transaction_id"`
	Provider           string `json:"provider"`
	ExternalReference  string `json:"external_reference"`
	Direction          string `json:"direction"`
	Amount             string `json:"amount"`
	Currency           string `json:"currency"`
	Status             string `json:"status"`
	CreatedAt          string `json:"created_at"`
}
