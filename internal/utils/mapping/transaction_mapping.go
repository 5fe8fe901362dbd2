package mapping

import (
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/models"
)

// ToModelTransaction converts a domain transaction to its DB representation.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:         d.TransactionID,
		TenantID:              d.TenantID,
		Type:                  string(d.Type),
		Status:                string(d.Status),
		Amount:                d.Amount,
		Currency:              d.Currency,
		IdempotencyKey:        d.IdempotencyKey,
		OriginalTransactionID: d.OriginalTransactionID,
		CreatedAt:             d.CreatedAt,
	}
}

// ToDomainTransaction converts a DB transaction row to the domain representation.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:         m.TransactionID,
		TenantID:              m.TenantID,
		Type:                  domain.TransactionType(m.Type),
		Status:                domain.TransactionStatus(m.Status),
		Amount:                m.Amount,
		Currency:              m.Currency,
		IdempotencyKey:        m.IdempotencyKey,
		OriginalTransactionID: m.OriginalTransactionID,
		CreatedAt:             m.CreatedAt,
	}
}
