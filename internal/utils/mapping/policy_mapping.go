package mapping

import (
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/models"
)

// ToDomainPolicy converts a DB compliance policy row to the domain representation.
func ToDomainPolicy(m models.CompliancePolicy) domain.Policy {
	return domain.Policy{
		TenantID:            m.TenantID,
		Currency:            m.Currency,
		MaxSingleAmount:     m.MaxSingleAmount,
		MaxDailyWalletDebit: m.MaxDailyWalletDebit,
		MaxWalletBalance:    m.MaxWalletBalance,
		RequiresKYC:         m.RequiresKYC,
		UpdatedAt:           m.UpdatedAt,
	}
}
