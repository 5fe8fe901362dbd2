package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/dto"
)

// ComplianceGate is consulted by the orchestrator before any debit or credit
// posting. The orchestrator surfaces violations without interpreting them.
type ComplianceGate interface {
	// CheckDebit validates a prospective debit against the tenant's policy:
	// KYC requirement, single-transaction cap, and daily-debit cap.
	CheckDebit(ctx context.Context, tx pgx.Tx, tenantID, walletID, accountID string, amount decimal.Decimal, currency string) error

	// CheckCredit validates a prospective credit: KYC requirement and
	// max-balance cap over the already-projected current balance.
	CheckCredit(ctx context.Context, tx pgx.Tx, tenantID, walletID string, amount decimal.Decimal, currency string, currentBalance decimal.Decimal) error
}

// ComplianceSvcFacade adds policy administration on top of the gate.
type ComplianceSvcFacade interface {
	ComplianceGate

	GetPolicy(ctx context.Context, tenantID, currency string) (*domain.Policy, error)
	UpsertPolicy(ctx context.Context, tenantID, currency string, req dto.UpsertPolicyRequest) (*domain.Policy, error)
}
