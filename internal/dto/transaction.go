package dto

// TransactionResponse is the read-only projection of a transaction.
type TransactionResponse struct {
	TransactionID         string  `json:"transaction_id"`
	TenantID              string  `json:"tenant_id"`
	Type                  string  `json:"type"`
	Status                string  `json:"status"`
	Amount                string  `json:"amount"`
	Currency              string  `json:"currency"`
	OriginalTransactionID *string `json:"original_transaction_id"`
	CreatedAt             string  `json:"created_at"`
}
