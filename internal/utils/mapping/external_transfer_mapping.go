package mapping

import (
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/models"
)

// ToModelExternalTransfer converts a domain external transfer to its DB representation.
func ToModelExternalTransfer(d domain.ExternalTransfer) models.ExternalTransfer {
	return models.ExternalTransfer{
		ExternalTransferID: d.ExternalTransferID,
		TenantID:           d.TenantID,
		WalletID:           d.WalletID,
		TransactionID:      d.TransactionID,
		Provider:           d.Provider,
		ExternalReference:  d.ExternalReference,
		Direction:          string(d.Direction),
		Amount:             d.Amount,
		Currency:           d.Currency,
		Status:             string(d.Status),
		IdempotencyKey:     d.IdempotencyKey,
		CreatedAt:          d.CreatedAt,
	}
}

// ToDomainExternalTransfer converts a DB external transfer row to the domain representation.
func ToDomainExternalTransfer(m models.ExternalTransfer) domain.ExternalTransfer {
	return domain.ExternalTransfer{
		ExternalTransferID: m.ExternalTransferID,
		TenantID:           m.TenantID,
		WalletID:           m.WalletID,
		TransactionID:      m.TransactionID,
		Provider:           m.Provider,
		ExternalReference:  m.ExternalReference,
		Direction:          domain.TransferDirection(m.Direction),
		Amount:             m.Amount,
		Currency:           m.Currency,
		Status:             domain.TransactionStatus(m.Status),
		IdempotencyKey:     m.IdempotencyKey,
		CreatedAt:          m.CreatedAt,
	}
}
