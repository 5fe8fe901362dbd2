package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExternalTransfer is the DB representation of a provider-mediated transfer.
type ExternalTransfer struct {
	ExternalTransferID string          `db:"id"`
	TenantID           string          `db:"tenant_id"`
	WalletID           string          `db:"wallet_id"`
	TransactionID      string          `db:"transaction_id"`
	Provider           string          `db:"provider"`
	ExternalReference  string          `db:"external_reference"`
	Direction          string          `db:"direction"`
	Amount             decimal.Decimal `db:"amount"`
	Currency           string          `db:"currency"`
	Status             string          `db:"status"`
	IdempotencyKey     string          `db:"idempotency_key"`
	CreatedAt          time.Time       `db:"created_at"`
}
