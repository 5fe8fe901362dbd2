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
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/ports/repositories"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/ports/services"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/dto"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/middleware"
)

// treasuryCodePrefix prefixes the per-currency internal treasury account code.
const treasuryCodePrefix = "INTERNAL_TREASURY_"

// ValueService orchestrates issuance and redemption against the tenant's
// treasury account. The treasury is provisioned lazily on first use.
type ValueService struct {
	walletRepo      repositories.WalletRepositoryFacade
	accountRepo     repositories.AccountRepositoryFacade
	transactionRepo repositories.TransactionRepositoryFacade
	ledgerSvc       services.LedgerSvcFacade
	balanceSvc      services.BalanceSvcFacade
	idempotencySvc  services.IdempotencySvcFacade
	compliance      services.ComplianceGate
}

// NewValueService creates a new ValueService.
func NewValueService(
	walletRepo repositories.WalletRepositoryFacade,
	accountRepo repositories.AccountRepositoryFacade,
	transactionRepo repositories.TransactionRepositoryFacade,
	ledgerSvc services.LedgerSvcFacade,
	balanceSvc services.BalanceSvcFacade,
	idempotencySvc services.IdempotencySvcFacade,
	compliance services.ComplianceGate,
) *ValueService {
	return &ValueService{
		walletRepo:      walletRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		ledgerSvc:       ledgerSvc,
		balanceSvc:      balanceSvc,
		idempotencySvc:  idempotencySvc,
		compliance:      compliance,
	}
}

// Issue mints value into a wallet: debit treasury, credit the wallet's
// principal account.
func (s *ValueService) Issue(ctx context.Context, idempotencyKey string, req dto.ValueRequest) (*dto.ValueResponse, error) {
	return s.post(ctx, idempotencyKey, req, domain.TypeIssue)
}

// Redeem burns value out of a wallet: debit the wallet's principal account,
// credit treasury.
func (s *ValueService) Redeem(ctx context.Context, idempotencyKey string, req dto.ValueRequest) (*dto.ValueResponse, error) {
	return s.post(ctx, idempotencyKey, req, domain.TypeRedeem)
}

func (s *ValueService) post(ctx context.Context, idempotencyKey string, req dto.ValueRequest, opType domain.TransactionType) (*dto.ValueResponse, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
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
		treasuryAccount, err := s.accountRepo.EnsureAccountByCode(ctx, tx, req.TenantID, treasuryCodePrefix+req.Currency, domain.Asset, req.Currency)
		if err != nil {
			return nil, err
		}

		var lines []domain.PostingLine
		switch opType {
		case domain.TypeIssue:
			balance, err := s.balanceSvc.ProjectBalance(ctx, tx, walletAccount)
			if err != nil {
				return nil, err
			}
			if err := s.compliance.CheckCredit(ctx, tx, req.TenantID, req.WalletID, amount, req.Currency, balance); err != nil {
				return nil, err
			}
			lines = []domain.PostingLine{
				{AccountID: treasuryAccount, Direction: domain.Debit, Amount: amount, Currency: req.Currency},
				{AccountID: walletAccount, Direction: domain.Credit, Amount: amount, Currency: req.Currency},
			}
		case domain.TypeRedeem:
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
				{AccountID: treasuryAccount, Direction: domain.Credit, Amount: amount, Currency: req.Currency},
			}
		default:
			return nil, fmt.Errorf("%w: unsupported value operation %s", apperrors.ErrInternal, opType)
		}

		txn := domain.Transaction{
			TransactionID:  uuid.NewString(),
			TenantID:       req.TenantID,
			Type:           opType,
			Status:         domain.StatusPending,
			Amount:         amount,
			Currency:       req.Currency,
			IdempotencyKey: idempotencyKey,
			CreatedAt:      time.Now().UTC(),
		}
		if err := s.transactionRepo.SaveTransaction(ctx, tx, txn); err != nil {
			return nil, err
		}

		batchID, err := s.ledgerSvc.Post(ctx, tx, txn.TransactionID, lines)
		if err != nil {
			return nil, err
		}
		if err := s.transactionRepo.MarkPosted(ctx, tx, txn.TransactionID); err != nil {
			return nil, err
		}

		middleware.GetLoggerFromCtx(ctx).Info("Value operation posted",
			slog.String("operation", string(opType)),
			slog.String("transaction_id", txn.TransactionID),
			slog.String("wallet_id", req.WalletID),
		)
		return &dto.ValueResponse{
			Operation:     string(opType),
			TransactionID: txn.TransactionID,
			BatchID:       batchID,
			Status:        string(domain.StatusPosted),
			TenantID:      req.TenantID,
			WalletID:      req.WalletID,
			Amount:        req.Amount,
			Currency:      req.Currency,
		}, nil
	}

	// Issue and redeem with identical bodies must not collide on one key.
	payload := struct {
		Operation string           `json:"operation"`
		Request   dto.ValueRequest `json:"request"`
	}{Operation: string(opType), Request: req}

	raw, err := s.idempotencySvc.Execute(ctx, req.TenantID, idempotencyKey, payload, op)
	if err != nil {
		return nil, err
	}
	var resp dto.ValueResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("%w: failed to decode value response", apperrors.ErrInternal)
	}
	return &resp, nil
}
