package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferDirection distinguishes money entering or leaving the platform.
type TransferDirection string

const (
	DirectionCashIn  TransferDirection = "cash_in"
	DirectionCashOut TransferDirection = "cash_out"
)

// ExternalTransfer records a provider-mediated cash movement and links it to
// the ledger transaction that settled it internally.
type ExternalTransfer struct {
	ExternalTransferID string            `json:"externalTransferID"` // Primary Key (UUID)
	TenantID           string            `json:"tenantID"`
	WalletID           string            `json:"walletID"`
	TransactionID      string            `json:"transactionID"`
	Provider           string            `json:"provider"`
	ExternalReference  string            `json:"externalReference"`
	Direction          TransferDirection `json:"direction"`
	Amount             decimal.Decimal   `json:"amount"`
	Currency           string            `json:"currency"`
	Status             TransactionStatus `json:"status"`
	IdempotencyKey     string            `json:"idempotencyKey"`
	CreatedAt          time.Time         `json:"createdAt"`
}
