package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType names the operation family that produced a transaction.
type TransactionType string

const (
	TypeTransfer TransactionType = "transfer"
	TypeCashIn   TransactionType = "cash_in"
	TypeCashOut  TransactionType = "cash_out"
	TypeIssue    TransactionType = "issue"
	TypeRedeem   TransactionType = "redeem"
	TypeReversal TransactionType = "reversal"
)

// TransactionStatus is the lifecycle state of a transaction.
//
// pending --(ledger batch appended)--> posted --(reversal posted)--> reversed
//
// No other transitions exist. A pending row that never reached posted is a
// permanently abandoned attempt whose atomic scope rolled back.
type TransactionStatus string

const (
	StatusPending  TransactionStatus = "pending"
	StatusPosted   TransactionStatus = "posted"
	StatusReversed TransactionStatus = "reversed"
)

// Transaction records one logical money movement. It is immutable once posted
// and is never deleted.
type Transaction struct {
	TransactionID         string            `json:"transactionID"` // Primary Key (UUID)
	TenantID              string            `json:"tenantID"`
	Type                  TransactionType   `json:"type"`
	Status                TransactionStatus `json:"status"`
	Amount                decimal.Decimal   `json:"amount"`
	Currency              string            `json:"currency"`
	IdempotencyKey        string            `json:"idempotencyKey"`
	OriginalTransactionID *string           `json:"originalTransactionID,omitempty"` // Set on reversals only
	CreatedAt             time.Time         `json:"createdAt"`
}
