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
	"github.com/shopspring/decimal"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/apperrors"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/ports/repositories"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/ports/services"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/dto"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/middleware"
)

// TransactionService orchestrates wallet-to-wallet transfers and reversals.
type TransactionService struct {
	walletRepo      repositories.WalletRepositoryFacade
	transactionRepo repositories.TransactionRepositoryFacade
	ledgerRepo      repositories.LedgerRepositoryFacade
	ledgerSvc       services.LedgerSvcFacade
	balanceSvc      services.BalanceSvcFacade
	idempotencySvc  services.IdempotencySvcFacade
	compliance      services.ComplianceGate
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	walletRepo repositories.WalletRepositoryFacade,
	transactionRepo repositories.TransactionRepositoryFacade,
	ledgerRepo repositories.LedgerRepositoryFacade,
	ledgerSvc services.LedgerSvcFacade,
	balanceSvc services.BalanceSvcFacade,
	idempotencySvc services.IdempotencySvcFacade,
	compliance services.ComplianceGate,
) *TransactionService {
	return &TransactionService{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		ledgerRepo:      ledgerRepo,
		ledgerSvc:       ledgerSvc,
		balanceSvc:      balanceSvc,
		idempotencySvc:  idempotencySvc,
		compliance:      compliance,
	}
}

// parseAmount converts a request amount string into a positive decimal.
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: amount %q is not a valid decimal", apperrors.ErrValidation, raw)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	return amount, nil
}

// requireActive checks that a locked wallet may participate in an operation.
func requireActive(wallet domain.Wallet) error {
	if wallet.Status != domain.WalletActive {
		return fmt.Errorf("%w: wallet %s is %s", ErrWalletUnavailable, wallet.WalletID, wallet.Status)
	}
	return nil
}

// Transfer moves value between two wallets of one tenant as one idempotent,
// atomic posting. Both wallets are locked in canonical id order before any
// balance is read.
func (s *TransactionService) Transfer(ctx context.Context, idempotencyKey string, req dto.TransferRequest) (*dto.TransferResponse, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}
	if req.FromWalletID == req.ToWalletID {
		return nil, fmt.Errorf("%w: source and destination wallets are the same", apperrors.ErrValidation)
	}

	op := func(ctx context.Context, tx pgx.Tx) (any, error) {
		wallets, err := s.walletRepo.LockWalletsForUpdate(ctx, tx, req.TenantID, []string{req.FromWalletID, req.ToWalletID})
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrWalletUnavailable, err)
			}
			return nil, err
		}
		source := wallets[req.FromWalletID]
		destination := wallets[req.ToWalletID]

		if err := requireActive(source); err != nil {
			return nil, err
		}
		if err := requireActive(destination); err != nil {
			return nil, err
		}
		if source.Currency != req.Currency || destination.Currency != req.Currency {
			return nil, fmt.Errorf("%w: wallets %s/%s, request %s", ErrCurrencyMismatch, source.Currency, destination.Currency, req.Currency)
		}

		sourceAccount, err := s.walletRepo.FindPrincipalAccountID(ctx, tx, req.TenantID, req.FromWalletID)
		if err != nil {
			return nil, err
		}
		destAccount, err := s.walletRepo.FindPrincipalAccountID(ctx, tx, req.TenantID, req.ToWalletID)
		if err != nil {
			return nil, err
		}

		sourceBalance, err := s.balanceSvc.ProjectBalance(ctx, tx, sourceAccount)
		if err != nil {
			return nil, err
		}
		if sourceBalance.LessThan(amount) {
			return nil, fmt.Errorf("%w: balance %s, requested %s", ErrInsufficientFunds, sourceBalance, amount)
		}
		if err := s.compliance.CheckDebit(ctx, tx, req.TenantID, req.FromWalletID, sourceAccount, amount, req.Currency); err != nil {
			return nil, err
		}

		destBalance, err := s.balanceSvc.ProjectBalance(ctx, tx, destAccount)
		if err != nil {
			return nil, err
		}
		if err := s.compliance.CheckCredit(ctx, tx, req.TenantID, req.ToWalletID, amount, req.Currency, destBalance); err != nil {
			return nil, err
		}

		txn := domain.Transaction{
			TransactionID:  uuid.NewString(),
			TenantID:       req.TenantID,
			Type:           domain.TypeTransfer,
			Status:         domain.StatusPending,
			Amount:         amount,
			Currency:       req.Currency,
			IdempotencyKey: idempotencyKey,
			CreatedAt:      time.Now().UTC(),
		}
		if err := s.transactionRepo.SaveTransaction(ctx, tx, txn); err != nil {
			return nil, err
		}

		batchID, err := s.ledgerSvc.Post(ctx, tx, txn.TransactionID, []domain.PostingLine{
			{AccountID: sourceAccount, Direction: domain.Debit, Amount: amount, Currency: req.Currency},
			{AccountID: destAccount, Direction: domain.Credit, Amount: amount, Currency: req.Currency},
		})
		if err != nil {
			return nil, err
		}
		if err := s.transactionRepo.MarkPosted(ctx, tx, txn.TransactionID); err != nil {
			return nil, err
		}

		middleware.GetLoggerFromCtx(ctx).Info("Transfer posted",
			slog.String("transaction_id", txn.TransactionID),
			slog.String("tenant_id", req.TenantID),
			slog.String("amount", amount.String()),
		)
		return &dto.TransferResponse{
			Operation:     string(domain.TypeTransfer),
			TransactionID: txn.TransactionID,
			BatchID:       batchID,
			Status:        string(domain.StatusPosted),
			TenantID:      req.TenantID,
			FromWalletID:  req.FromWalletID,
			ToWalletID:    req.ToWalletID,
			Amount:        req.Amount,
			Currency:      req.Currency,
		}, nil
	}

	raw, err := s.idempotencySvc.Execute(ctx, req.TenantID, idempotencyKey, req, op)
	if err != nil {
		return nil, err
	}
	var resp dto.TransferResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode transfer response", apperrors.ErrInternal)
	}
	return &resp, nil
}

// reversalPayload is the hashed request body of a reversal; reversals carry no
// client payload beyond the target transaction.
type reversalPayload struct {
	TransactionID string `json:"transaction_id"`
}

// Reverse posts a mirror batch for a posted transaction and flips the original
// to reversed, all in one atomic scope. A transaction can be reversed at most
// once, and only by the tenant it belongs to.
func (s *TransactionService) Reverse(ctx context.Context, tenantID, idempotencyKey, transactionID string) (*dto.ReversalResponse, error) {
	op := func(ctx context.Context, tx pgx.Tx) (any, error) {
		current, err := s.transactionRepo.GetTransactionInTx(ctx, tx, tenantID, transactionID)
		if err != nil {
			return nil, err
		}
		if current.Status != domain.StatusPosted {
			return nil, fmt.Errorf("%w: transaction %s is %s", ErrReversalInvalid, transactionID, current.Status)
		}

		entries, err := s.ledgerRepo.FindEntriesByTransactionID(ctx, tx, transactionID)
		if err != nil {
			return nil, err
		}
		lines := make([]domain.PostingLine, len(entries))
		for i, e := range entries {
			lines[i] = domain.PostingLine{
				AccountID: e.AccountID,
				Direction: e.Direction.Opposite(),
				Amount:    e.Amount,
				Currency:  e.Currency,
			}
		}

		reversal := domain.Transaction{
			TransactionID:         uuid.NewString(),
			TenantID:              current.TenantID,
			Type:                  domain.TypeReversal,
			Status:                domain.StatusPending,
			Amount:                current.Amount,
			Currency:              current.Currency,
			IdempotencyKey:        idempotencyKey,
			OriginalTransactionID: &transactionID,
			CreatedAt:             time.Now().UTC(),
		}
		if err := s.transactionRepo.SaveTransaction(ctx, tx, reversal); err != nil {
			return nil, err
		}

		batchID, err := s.ledgerSvc.Post(ctx, tx, reversal.TransactionID, lines)
		if err != nil {
			return nil, err
		}
		if err := s.transactionRepo.MarkPosted(ctx, tx, reversal.TransactionID); err != nil {
			return nil, err
		}
		if err := s.transactionRepo.MarkReversed(ctx, tx, tenantID, transactionID); err != nil {
			if errors.Is(err, apperrors.ErrConflict) {
				return nil, fmt.Errorf("%w: transaction %s", ErrReversalInvalid, transactionID)
			}
			return nil, err
		}

		middleware.GetLoggerFromCtx(ctx).Info("Transaction reversed",
			slog.String("transaction_id", transactionID),
			slog.String("reversal_id", reversal.TransactionID),
		)
		return &dto.ReversalResponse{
			Operation:             string(domain.TypeReversal),
			TransactionID:         reversal.TransactionID,
			OriginalTransactionID: transactionID,
			BatchID:               batchID,
			Status:                string(domain.StatusPosted),
		}, nil
	}

	raw, err := s.idempotencySvc.Execute(ctx, tenantID, idempotencyKey, reversalPayload{TransactionID: transactionID}, op)
	if err != nil {
		return nil, err
	}
	var resp dto.ReversalResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode reversal response", apperrors.ErrInternal)
	}
	return &resp, nil
}

// GetTransaction returns the read-only projection of a tenant's transaction.
func (s *TransactionService) GetTransaction(ctx context.Context, tenantID, transactionID string) (*dto.TransactionResponse, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, tenantID, transactionID)
	if err != nil {
		return nil, err
	}
	return &dto.TransactionResponse{
		TransactionID:         txn.TransactionID,
		TenantID:              txn.TenantID,
		Type:                  string(txn.Type),
		Status:                string(txn.Status),
		Amount:                txn.Amount.String(),
		Currency:              txn.Currency,
		OriginalTransactionID: txn.OriginalTransactionID,
		CreatedAt:             txn.CreatedAt.Format(time.RFC3339),
	}, nil
}
