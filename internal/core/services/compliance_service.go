package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/apperrors"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/ports/repositories"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/dto"
)

// ComplianceService enforces per (tenant, currency) policy limits. A tenant
// without a policy for the currency is unrestricted.
type ComplianceService struct {
	policyRepo repositories.PolicyRepositoryFacade
	walletRepo repositories.WalletRepositoryFacade
	ledgerRepo repositories.LedgerRepositoryFacade
}

// NewComplianceService creates a new ComplianceService.
func NewComplianceService(
	policyRepo repositories.PolicyRepositoryFacade,
	walletRepo repositories.WalletRepositoryFacade,
	ledgerRepo repositories.LedgerRepositoryFacade,
) *ComplianceService {
	return &ComplianceService{policyRepo: policyRepo, walletRepo: walletRepo, ledgerRepo: ledgerRepo}
}

// CheckDebit validates a prospective debit: KYC requirement, single-transaction
// cap, and daily-debit cap. Runs inside the caller's transaction so the daily
// total observes the locks already held.
func (s *ComplianceService) CheckDebit(ctx context.Context, tx pgx.Tx, tenantID, walletID, accountID string, amount decimal.Decimal, currency string) error {
	policy, err := s.policyRepo.FindPolicy(ctx, tx, tenantID, currency)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := s.checkKYC(ctx, tx, tenantID, walletID, policy); err != nil {
		return err
	}
	if policy.MaxSingleAmount != nil && amount.GreaterThan(*policy.MaxSingleAmount) {
		return fmt.Errorf("%w: amount %s exceeds single-transaction cap %s", ErrComplianceViolation, amount, policy.MaxSingleAmount)
	}
	if policy.MaxDailyWalletDebit != nil {
		debitedToday, err := s.ledgerRepo.SumPostedDebitsToday(ctx, tx, accountID)
		if err != nil {
			return err
		}
		if debitedToday.Add(amount).GreaterThan(*policy.MaxDailyWalletDebit) {
			return fmt.Errorf("%w: daily debit cap %s exceeded (%s already debited)", ErrComplianceViolation, policy.MaxDailyWalletDebit, debitedToday)
		}
	}
	return nil
}

// CheckCredit validates a prospective credit: KYC requirement, single-transaction
// cap, and the max-balance cap over the already-projected current balance.
func (s *ComplianceService) CheckCredit(ctx context.Context, tx pgx.Tx, tenantID, walletID string, amount decimal.Decimal, currency string, currentBalance decimal.Decimal) error {
	policy, err := s.policyRepo.FindPolicy(ctx, tx, tenantID, currency)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := s.checkKYC(ctx, tx, tenantID, walletID, policy); err != nil {
		return err
	}
	if policy.MaxSingleAmount != nil && amount.GreaterThan(*policy.MaxSingleAmount) {
		return fmt.Errorf("%w: amount %s exceeds single-transaction cap %s", ErrComplianceViolation, amount, policy.MaxSingleAmount)
	}
	if policy.MaxWalletBalance != nil && currentBalance.Add(amount).GreaterThan(*policy.MaxWalletBalance) {
		return fmt.Errorf("%w: credit would exceed max balance %s", ErrComplianceViolation, policy.MaxWalletBalance)
	}
	return nil
}

func (s *ComplianceService) checkKYC(ctx context.Context, tx pgx.Tx, tenantID, walletID string, policy *domain.Policy) error {
	if !policy.RequiresKYC {
		return nil
	}
	wallet, err := s.walletRepo.GetWalletInTx(ctx, tx, tenantID, walletID)
	if err != nil {
		return err
	}
	if !wallet.KYCVerified {
		return fmt.Errorf("%w: wallet %s is not KYC verified", ErrComplianceViolation, walletID)
	}
	return nil
}

// GetPolicy retrieves the policy for (tenant, currency).
func (s *ComplianceService) GetPolicy(ctx context.Context, tenantID, currency string) (*domain.Policy, error) {
	return s.policyRepo.GetPolicy(ctx, tenantID, currency)
}

// UpsertPolicy creates or replaces the policy for (tenant, currency). Nil cap
// fields clear the corresponding limit.
func (s *ComplianceService) UpsertPolicy(ctx context.Context, tenantID, currency string, req dto.UpsertPolicyRequest) (*domain.Policy, error) {
	maxSingle, err := parseOptionalCap(req.MaxSingleAmount, "max_single_amount")
	if err != nil {
		return nil, err
	}
	maxDaily, err := parseOptionalCap(req.MaxDailyWalletDebit, "max_daily_wallet_debit")
	if err != nil {
		return nil, err
	}
	maxBalance, err := parseOptionalCap(req.MaxWalletBalance, "max_wallet_balance")
	if err != nil {
		return nil, err
	}

	policy := domain.Policy{
		TenantID:            tenantID,
		Currency:            currency,
		MaxSingleAmount:     maxSingle,
		MaxDailyWalletDebit: maxDaily,
		MaxWalletBalance:    maxBalance,
		RequiresKYC:         req.RequiresKYC != nil && *req.RequiresKYC,
		UpdatedAt:           time.Now().UTC(),
	}
	if err := s.policyRepo.UpsertPolicy(ctx, policy); err != nil {
		return nil, err
	}
	return &policy, nil
}

func parseOptionalCap(raw *string, field string) (*decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}
	limit, err := decimal.NewFromString(*raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not a valid decimal", apperrors.ErrValidation, field)
	}
	if limit.IsNegative() {
		return nil, fmt.Errorf("%w: %s must not be negative", apperrors.ErrValidation, field)
	}
	return &limit, nil
}
