package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/ports/repositories"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/dto"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/middleware"
)

// walletCodePrefix prefixes the principal account code of a wallet.
const walletCodePrefix = "WALLET_"

// WalletService manages wallets and their balance projections.
type WalletService struct {
	txManager   repositories.TransactionManager
	walletRepo  repositories.WalletRepositoryFacade
	accountRepo repositories.AccountRepositoryFacade
	ledgerRepo  repositories.LedgerRepositoryFacade
}

// NewWalletService creates a new WalletService.
func NewWalletService(
	txManager repositories.TransactionManager,
	walletRepo repositories.WalletRepositoryFacade,
	accountRepo repositories.AccountRepositoryFacade,
	ledgerRepo repositories.LedgerRepositoryFacade,
) *WalletService {
	return &WalletService{txManager: txManager, walletRepo: walletRepo, accountRepo: accountRepo, ledgerRepo: ledgerRepo}
}

// CreateWallet opens a wallet together with its principal liability account
// and the mapping row, in one atomic scope.
func (s *WalletService) CreateWallet(ctx context.Context, req dto.CreateWalletRequest) (*dto.WalletResponse, error) {
	now := time.Now().UTC()
	wallet := domain.Wallet{
		WalletID:    uuid.NewString(),
		TenantID:    req.TenantID,
		OwnerID:     req.OwnerID,
		Currency:    req.Currency,
		Status:      domain.WalletActive,
		KYCVerified: false,
		CreatedAt:   now,
	}
	account := domain.Account{
		AccountID: uuid.NewString(),
		TenantID:  req.TenantID,
		Code:      walletCodePrefix + wallet.WalletID,
		Type:      domain.Liability,
		Currency:  req.Currency,
		CreatedAt: now,
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx)

	if err := s.walletRepo.SaveWallet(ctx, tx, wallet); err != nil {
		return nil, err
	}
	if err := s.accountRepo.SaveAccount(ctx, tx, account); err != nil {
		return nil, err
	}
	if err := s.walletRepo.SaveWalletAccount(ctx, tx, domain.WalletAccount{
		WalletID:  wallet.WalletID,
		AccountID: account.AccountID,
		Role:      domain.RolePrincipal,
	}); err != nil {
		return nil, err
	}
	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Wallet created",
		slog.String("wallet_id", wallet.WalletID),
		slog.String("tenant_id", req.TenantID),
		slog.String("currency", req.Currency),
	)
	return toWalletResponse(wallet), nil
}

// GetWallet returns the read projection of a wallet.
func (s *WalletService) GetWallet(ctx context.Context, tenantID, walletID string) (*dto.WalletResponse, error) {
	wallet, err := s.walletRepo.FindWalletByID(ctx, tenantID, walletID)
	if err != nil {
		return nil, err
	}
	return toWalletResponse(*wallet), nil
}

// GetBalance projects the wallet balance from its principal account entries.
// Available and ledger balances coincide; there is no hold concept.
func (s *WalletService) GetBalance(ctx context.Context, walletID string) (*dto.BalanceResponse, error) {
	currency, balance, err := s.ledgerRepo.ProjectWalletBalance(ctx, walletID)
	if err != nil {
		return nil, err
	}
	return &dto.BalanceResponse{
		WalletID:  walletID,
		Available: balance.String(),
		Ledger:    balance.String(),
		Currency:  currency,
	}, nil
}

func toWalletResponse(w domain.Wallet) *dto.WalletResponse {
	return &dto.WalletResponse{
		WalletID: w.WalletID,
		TenantID: w.TenantID,
		OwnerID:  w.OwnerID,
		Currency: w.Currency,
		Status:   string(w.Status),
	}
}
