package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/apperrors"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/connectors"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/ports/repositories"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/ports/services"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/dto"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/middleware"
)

// clearingCodePrefix prefixes the per-currency external clearing account code.
const clearingCodePrefix = "EXTERNAL_CLEARING_"

// IntegrationService orchestrates provider-mediated cash-in and cash-out
// against the tenant's clearing account.
type IntegrationService struct {
	registry         *connectors.Registry
	walletRepo       repositories.WalletRepositoryFacade
	accountRepo      repositories.AccountRepositoryFacade
	transactionRepo  repositories.TransactionRepositoryFacade
	externalTransfer repositories.ExternalTransferRepositoryFacade
	ledgerSvc        services.LedgerSvcFacade
	balanceSvc       services.BalanceSvcFacade
	idempotencySvc   services.IdempotencySvcFacade
	compliance       services.ComplianceGate
}

// NewIntegrationService creates a new IntegrationService.
func NewIntegrationService(
	registry *connectors.Registry,
	walletRepo repositories.WalletRepositoryFacade,
	accountRepo repositories.AccountRepositoryFacade,
	transactionRepo repositories.TransactionRepositoryFacade,
	externalTransfer repositories.ExternalTransferRepositoryFacade,
	ledgerSvc services.LedgerSvcFacade,
	balanceSvc services.BalanceSvcFacade,
	idempotencySvc services.IdempotencySvcFacade,
	compliance services.ComplianceGate,
) *IntegrationService {
	return &IntegrationService{
		registry:         registry,
		walletRepo:       walletRepo,
		accountRepo:      accountRepo,
		transactionRepo:  transactionRepo,
		externalTransfer: externalTransfer,
		ledgerSvc:        ledgerSvc,
		balanceSvc:       balanceSvc,
		idempotencySvc:   idempotencySvc,
		compliance:       compliance,
	}
}

// CashIn funds a wallet from an external provider: debit clearing, credit the
// wallet's principal account.
func (s *IntegrationService) CashIn(ctx context.Context, idempotencyKey string, req dto.ExternalTransferRequest) (*dto.ExternalTransferResponse, error) {
	return s.post(ctx, idempotencyKey, req, domain.DirectionCashIn)
}

// CashOut pays a wallet out to an external provider: debit the wallet's
// principal account, credit clearing.
func (s *IntegrationService) CashOut(ctx context.Context, idempotencyKey string, req dto.ExternalTransferRequest) (*dto.ExternalTransferResponse, error) {
	return s.post(ctx, idempotencyKey, req, domain.DirectionCashOut)
}

func (s *IntegrationService) post(ctx context.Context, idempotencyKey string, req dto.ExternalTransferRequest, direction domain.TransferDirection) (*dto.ExternalTransferResponse, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	connector, err := s.registry.Resolve(req.Provider)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, req.Provider)
	}

	params := connectors.Params{
		TenantID:          req.TenantID,
		WalletID:          req.WalletID,
		Amount:            req.Amount,
		Currency:          req.Currency,
		ExternalReference: req.ExternalReference,
	}
	switch direction {
	case domain.DirectionCashIn:
		err = connector.ValidateCashIn(ctx, params)
	case domain.DirectionCashOut:
		err = connector.ValidateCashOut(ctx, params)
	}
	if err != nil {
		return nil, err
	}

	var txnType domain.TransactionType
	if direction == domain.DirectionCashIn {
		txnType = domain.TypeCashIn
	} else {
		txnType = domain.TypeCashOut
	}

	op := func(ctx context.Context, tx pgx.Tx) (any, error) {
		wallets, err := s.walletRepo.LockWalletsForUpdate(ctx, tx, req.TenantID, []string{req.WalletID})
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrWalletUnavailable, err)
			}
			return nil, err
		}
		wallet := wallets[req.WalletID]
		if err := requireActive(wallet); err != nil {
			return nil, err
		}
		if wallet.Currency != req.Currency {
			return nil, fmt.Errorf("%w: wallet %s, request %s", ErrCurrencyMismatch, wallet.Currency, req.Currency)
		}

		walletAccount, err := s.walletRepo.FindPrincipalAccountID(ctx, tx, req.TenantID, req.WalletID)
		if err != nil {
			return nil, err
		}
		clearingAccount, err := s.accountRepo.EnsureAccountByCode(ctx, tx, req.TenantID, clearingCodePrefix+req.Currency, domain.Asset, req.Currency)
		if err != nil {
			return nil, err
		}

		var lines []domain.PostingLine
		if direction == domain.DirectionCashIn {
			balance, err := s.balanceSvc.ProjectBalance(ctx, tx, walletAccount)
			if err != nil {
				return nil, err
			}
			if err := s.compliance.CheckCredit(ctx, tx, req.TenantID, req.WalletID, amount, req.Currency, balance); err != nil {
				return nil, err
			}
			lines = []domain.PostingLine{
				{AccountID: clearingAccount, Direction: domain.Debit, Amount: amount, Currency: req.Currency},
				{AccountID: walletAccount, Direction: domain.Credit, Amount: amount, Currency: req.Currency},
			}
		} else {
			balance, err := s.balanceSvc.ProjectBalance(ctx, tx, walletAccount)
			if err != nil {
				return nil, err
			}
			if balance.LessThan(amount) {
				return nil, fmt.Errorf("%w: balance %s, requested %s", ErrInsufficientFunds, balance, amount)
			}
			if err := s.compliance.CheckDebit(ctx, tx, req.TenantID, req.WalletID, walletAccount, amount, req.Currency); err != nil {
				return nil, err
			}
			lines = []domain.PostingLine{
				{AccountID: walletAccount, Direction: domain.Debit, Amount: amount, Currency: req.Currency},
				{AccountID: clearingAccount, Direction: domain.Credit, Amount: amount, Currency: req.Currency},
			}
		}

		now := time.Now().UTC()
		txn := domain.Transaction{
			TransactionID:  uuid.NewString(),
			TenantID:       req.TenantID,
			Type:           txnType,
			Status:         domain.StatusPending,
			Amount:         amount,
			Currency:       req.Currency,
			IdempotencyKey: idempotencyKey,
			CreatedAt:      now,
		}
		if err := s.transactionRepo.SaveTransaction(ctx, tx, txn); err != nil {
			return nil, err
		}

		transfer := domain.ExternalTransfer{
			ExternalTransferID: uuid.NewString(),
			TenantID:           req.TenantID,
			WalletID:           req.WalletID,
			TransactionID:      txn.TransactionID,
			Provider:           req.Provider,
			ExternalReference:  req.ExternalReference,
			Direction:          direction,
			Amount:             amount,
			Currency:           req.Currency,
			Status:             domain.StatusPending,
			IdempotencyKey:     idempotencyKey,
			CreatedAt:          now,
		}
		if err := s.externalTransfer.SaveExternalTransfer(ctx, tx, transfer); err != nil {
			return nil, err
		}

		batchID, err := s.ledgerSvc.Post(ctx, tx, txn.TransactionID, lines)
		if err != nil {
			return nil, err
		}
		if err := s.transactionRepo.MarkPosted(ctx, tx, txn.TransactionID); err != nil {
			return nil, err
		}
		if err := s.externalTransfer.MarkTransferPosted(ctx, tx, transfer.ExternalTransferID); err != nil {
			return nil, err
		}

		middleware.GetLoggerFromCtx(ctx).Info("External transfer posted",
			slog.String("direction", string(direction)),
			slog.String("external_transfer_id", transfer.ExternalTransferID),
			slog.String("provider", req.Provider),
		)
		return &dto.ExternalTransferResponse{
			ExternalTransferID: transfer.ExternalTransferID,
			TransactionID:      txn.TransactionID,
			BatchID:            batchID,
			Direction:          string(direction),
			Status:             string(domain.StatusPosted),
			TenantID:           req.TenantID,
			WalletID:           req.WalletID,
			Amount:             req.Amount,
			Currency:           req.Currency,
			Provider:           req.Provider,
			ExternalReference:  req.ExternalReference,
		}, nil
	}

	payload := struct {
		Direction string                      `json:"direction"`
		Request   dto.ExternalTransferRequest `json:"request"`
	}{Direction: string(direction), Request: req}

	raw, err := s.idempotencySvc.Execute(ctx, req.TenantID, idempotencyKey, payload, op)
	if err != nil {
		return nil, err
	}
	var resp dto.ExternalTransferResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode external transfer response", apperrors.ErrInternal)
	}
	return &resp, nil
}

// GetExternalTransfer returns the read-only projection of a tenant's external
// transfer.
func (s *IntegrationService) GetExternalTransfer(ctx context.Context, tenantID, externalTransferID string) (*dto.ExternalTransferDetail, error) {
	transfer, err := s.externalTransfer.FindExternalTransferByID(ctx, tenantID, externalTransferID)
	if err != nil {
		return nil, err
	}
	return &dto.ExternalTransferDetail{
		ExternalTransferID: transfer.ExternalTransferID,
		TenantID:           transfer.TenantID,
		WalletID:           transfer.WalletID,
		TransactionID:      transfer.TransactionID,
		Provider:           transfer.Provider,
		ExternalReference:  transfer.ExternalReference,
		Direction:          string(transfer.Direction),
		Amount:             transfer.Amount.String(),
		Currency:           transfer.Currency,
		Status:             string(transfer.Status),
		CreatedAt:          transfer.CreatedAt.Format(time.RFC3339),
	}, nil
}
