package mapping

import (
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/models"
)

// ToModelAccount converts a domain account to its DB representation.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID: d.AccountID,
		TenantID:  d.TenantID,
		Code:      d.Code,
		Type:      models.AccountType(d.Type),
		Currency:  d.Currency,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainAccount converts a DB account row to the domain representation.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID: m.AccountID,
		TenantID:  m.TenantID,
		Code:      m.Code,
		Type:      domain.AccountType(m.Type),
		Currency:  m.Currency,
		CreatedAt: m.CreatedAt,
	}
}
