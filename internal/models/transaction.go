package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the DB representation of a transaction.
type Transaction struct {
	TransactionID         string          `db:"id"`
	TenantID              string          `db:"tenant_id"`
	Type                  string          `db:"type"`
	Status                string          `db:"status"`
	Amount                decimal.Decimal `db:"amount"`
	Currency              string          `db:"currency"`
	IdempotencyKey        string          `db:"idempotency_key"`
	OriginalTransactionID *string         `db:"original_transaction_id"`
	CreatedAt             time.Time       `db:"created_at"`
}
