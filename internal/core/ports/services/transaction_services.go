package services

import (
	"context"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/dto"
)

// TransactionSvcFacade orchestrates wallet-to-wallet transfers and reversals.
type TransactionSvcFacade interface {
	// Transfer moves value between two wallets as one idempotent, atomic
	// posting. Both wallets are locked in canonical id order before any
	// balance read.
	Transfer(ctx context.Context, idempotencyKey string, req dto.TransferRequest) (*dto.TransferResponse, error)

	// Reverse posts a mirror batch for a tenant's posted transaction and
	// flips the original to reversed. A transaction can be reversed at most
	// once, and only by its own tenant.
	Reverse(ctx context.Context, tenantID, idempotencyKey, transactionID string) (*dto.ReversalResponse, error)

	// GetTransaction returns the read-only projection of a tenant's
	// transaction.
	GetTransaction(ctx context.Context, tenantID, transactionID string) (*dto.TransactionResponse, error)
}

// ValueSvcFacade orchestrates issuance and redemption against the tenant's
// treasury account.
type ValueSvcFacade interface {
	Issue(ctx context.Context, idempotencyKey string, req dto.ValueRequest) (*dto.ValueResponse, error)
	Redeem(ctx context.Context, idempotencyKey string, req dto.ValueRequest) (*dto.ValueResponse, error)
}

// IntegrationSvcFacade orchestrates provider-mediated cash-in and cash-out
// against the tenant's clearing account.
type IntegrationSvcFacade interface {
	CashIn(ctx context.Context, idempotencyKey string, req dto.ExternalTransferRequest) (*dto.ExternalTransferResponse, error)
	CashOut(ctx context.Context, idempotencyKey string, req dto.ExternalTransferRequest) (*dto.ExternalTransferResponse, error)
	GetExternalTransfer(ctx context.Context, tenantID, externalTransferID string) (*dto.ExternalTransferDetail, error)
}

// WalletSvcFacade manages wallets and their balance projections.
type WalletSvcFacade interface {
	CreateWallet(ctx context.Context, req dto.CreateWalletRequest) (*dto.WalletResponse, error)
	GetWallet(ctx context.Context, tenantID, walletID string) (*dto.WalletResponse, error)
	GetBalance(ctx context.Context, walletID string) (*dto.BalanceResponse, error)
}
