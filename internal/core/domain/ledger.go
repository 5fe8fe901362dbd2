package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryDirection indicates whether a ledger entry debits or credits its account.
type EntryDirection string

const (
	Debit  EntryDirection = "debit"
	Credit EntryDirection = "credit"
)

// Opposite returns the flipped direction, used when mirroring entries for a reversal.
func (d EntryDirection) Opposite() EntryDirection {
	if d == Debit {
		return Credit
	}
	return Debit
}

// PostingLine is one prospective ledger entry inside a batch, before posting.
type PostingLine struct {
	AccountID string          `json:"accountID"`
	Direction EntryDirection  `json:"direction"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
}

// LedgerBatch groups the entries of exactly one transaction.
type LedgerBatch struct {
	BatchID       string    `json:"batchID"` // Primary Key (UUID)
	TransactionID string    `json:"transactionID"`
	PostedAt      time.Time `json:"postedAt"`
}

// LedgerEntry is one appended line of the ledger. Entries are append-only and
// are the sole source of truth for balances.
type LedgerEntry struct {
	EntryID   string          `json:"entryID"` // Primary Key (UUID)
	BatchID   string          `json:"batchID"`
	AccountID string          `json:"accountID"`
	Direction EntryDirection  `json:"direction"`
	Amount    decimal.Decimal `json:"amount"` // Always > 0
	Currency  string          `json:"currency"`
}
