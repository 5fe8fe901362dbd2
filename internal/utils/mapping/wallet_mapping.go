package mapping

import (
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/models"
)

// ToModelWallet converts a domain wallet to its DB representation.
func ToModelWallet(d domain.Wallet) models.Wallet {
	return models.Wallet{
		WalletID:    d.WalletID,
		TenantID:    d.TenantID,
		OwnerID:     d.OwnerID,
		Currency:    d.Currency,
		Status:      string(d.Status),
		KYCVerified: d.KYCVerified,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainWallet converts a DB wallet row to the domain representation.
func ToDomainWallet(m models.Wallet) domain.Wallet {
	return domain.Wallet{
		WalletID:    m.WalletID,
		TenantID:    m.TenantID,
		OwnerID:     m.OwnerID,
		Currency:    m.Currency,
		Status:      domain.WalletStatus(m.Status),
		KYCVerified: m.KYCVerified,
		CreatedAt:   m.CreatedAt,
	}
}
