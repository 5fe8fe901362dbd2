package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerBatch is the DB representation of a posting batch.
type LedgerBatch struct {
	BatchID       string    `db:"id"`
	TransactionID string    `db:"transaction_id"`
	PostedAt      time.Time `db:"posted_at"`
}

// LedgerEntry is the DB representation of one appended ledger line.
type LedgerEntry struct {
	EntryID   string          `db:"id"`
	BatchID   string          `db:"batch_id"`
	AccountID string          `db:"account_id"`
	Direction string          `db:"direction"`
	Amount    decimal.Decimal `db:"amount"`
	Currency  string          `db:"currency"`
}
