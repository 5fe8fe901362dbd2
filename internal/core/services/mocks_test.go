package services_test

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
	portsrepo "github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/ports/repositories"
	portssvc "github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/ports/services"
)

// --- Mock TransactionManager ---

type MockTxManager struct {
	mock.Mock
}

var _ portsrepo.TransactionManager = (*MockTxManager)(nil)

func (m *MockTxManager) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTxManager) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTxManager) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock WalletRepository ---

type MockWalletRepository struct {
	mock.Mock
}

var _ portsrepo.WalletRepositoryFacade = (*MockWalletRepository)(nil)

func (m *MockWalletRepository) FindWalletByID(ctx context.Context, tenantID, walletID string) (*domain.Wallet, error) {
	args := m.Called(ctx, tenantID, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) GetWalletInTx(ctx context.Context, tx pgx.Tx, tenantID, walletID string) (*domain.Wallet, error) {
	args := m.Called(ctx, tx, tenantID, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) FindPrincipalAccountID(ctx context.Context, tx pgx.Tx, tenantID, walletID string) (string, error) {
	args := m.Called(ctx, tx, tenantID, walletID)
	return args.String(0), args.Error(1)
}

func (m *MockWalletRepository) SaveWallet(ctx context.Context, tx pgx.Tx, wallet domain.Wallet) error {
	args := m.Called(ctx, tx, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) SaveWalletAccount(ctx context.Context, tx pgx.Tx, wa domain.WalletAccount) error {
	args := m.Called(ctx, tx, wa)
	return args.Error(0)
}

func (m *MockWalletRepository) LockWalletsForUpdate(ctx context.Context, tx pgx.Tx, tenantID string, walletIDs []string) (map[string]domain.Wallet, error) {
	args := m.Called(ctx, tx, tenantID, walletIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Wallet), args.Error(1)
}

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByCode(ctx context.Context, tx pgx.Tx, tenantID, code string) (*domain.Account, error) {
	args := m.Called(ctx, tx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, tx pgx.Tx, account domain.Account) error {
	args := m.Called(ctx, tx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) EnsureAccountByCode(ctx context.Context, tx pgx.Tx, tenantID, code string, accType domain.AccountType, currency string) (string, error) {
	args := m.Called(ctx, tx, tenantID, code, accType, currency)
	return args.String(0), args.Error(1)
}

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, tenantID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, tenantID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) GetTransactionInTx(ctx context.Context, tx pgx.Tx, tenantID, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, tx, tenantID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	args := m.Called(ctx, tx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) MarkPosted(ctx context.Context, tx pgx.Tx, transactionID string) error {
	args := m.Called(ctx, tx, transactionID)
	return args.Error(0)
}

func (m *MockTransactionRepository) MarkReversed(ctx context.Context, tx pgx.Tx, tenantID, transactionID string) error {
	args := m.Called(ctx, tx, tenantID, transactionID)
	return args.Error(0)
}

// --- Mock LedgerRepository ---

type MockLedgerRepository struct {
	mock.Mock
}

var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) SaveBatch(ctx context.Context, tx pgx.Tx, batch domain.LedgerBatch, entries []domain.LedgerEntry) error {
	args := m.Called(ctx, tx, batch, entries)
	return args.Error(0)
}

func (m *MockLedgerRepository) FindEntriesByTransactionID(ctx context.Context, tx pgx.Tx, transactionID string) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, tx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) SumEntriesByAccount(ctx context.Context, tx pgx.Tx, accountID string) (decimal.Decimal, error) {
	args := m.Called(ctx, tx, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) SumPostedDebitsToday(ctx context.Context, tx pgx.Tx, accountID string) (decimal.Decimal, error) {
	args := m.Called(ctx, tx, accountID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) ProjectWalletBalance(ctx context.Context, walletID string) (string, decimal.Decimal, error) {
	args := m.Called(ctx, walletID)
	return args.String(0), args.Get(1).(decimal.Decimal), args.Error(2)
}

// --- Mock IdempotencyRepository ---

type MockIdempotencyRepository struct {
	mock.Mock
}

var _ portsrepo.IdempotencyRepositoryFacade = (*MockIdempotencyRepository)(nil)

func (m *MockIdempotencyRepository) FindForUpdate(ctx context.Context, tx pgx.Tx, tenantID, key string) (*domain.IdempotencyRecord, error) {
	args := m.Called(ctx, tx, tenantID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IdempotencyRecord), args.Error(1)
}

func (m *MockIdempotencyRepository) SaveRecord(ctx context.Context, tx pgx.Tx, record domain.IdempotencyRecord) error {
	args := m.Called(ctx, tx, record)
	return args.Error(0)
}

// --- Mock PolicyRepository ---

type MockPolicyRepository struct {
	mock.Mock
}

var _ portsrepo.PolicyRepositoryFacade = (*MockPolicyRepository)(nil)

func (m *MockPolicyRepository) FindPolicy(ctx context.Context, tx pgx.Tx, tenantID, currency string) (*domain.Policy, error) {
	args := m.Called(ctx, tx, tenantID, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Policy), args.Error(1)
}

func (m *MockPolicyRepository) GetPolicy(ctx context.Context, tenantID, currency string) (*domain.Policy, error) {
	args := m.Called(ctx, tenantID, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Policy), args.Error(1)
}

func (m *MockPolicyRepository) UpsertPolicy(ctx context.Context, policy domain.Policy) error {
	args := m.Called(ctx, policy)
	return args.Error(0)
}

// --- Mock ExternalTransferRepository ---

type MockExternalTransferRepository struct {
	mock.Mock
}

var _ portsrepo.ExternalTransferRepositoryFacade = (*MockExternalTransferRepository)(nil)

func (m *MockExternalTransferRepository) SaveExternalTransfer(ctx context.Context, tx pgx.Tx, transfer domain.ExternalTransfer) error {
	args := m.Called(ctx, tx, transfer)
	return args.Error(0)
}

func (m *MockExternalTransferRepository) MarkTransferPosted(ctx context.Context, tx pgx.Tx, externalTransferID string) error {
	args := m.Called(ctx, tx, externalTransferID)
	return args.Error(0)
}

func (m *MockExternalTransferRepository) FindExternalTransferByID(ctx context.Context, tenantID, externalTransferID string) (*domain.ExternalTransfer, error) {
	args := m.Called(ctx, tenantID, externalTransferID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExternalTransfer), args.Error(1)
}

// --- Mock ComplianceGate ---

type MockComplianceGate struct {
	mock.Mock
}

var _ portssvc.ComplianceGate = (*MockComplianceGate)(nil)

func (m *MockComplianceGate) CheckDebit(ctx context.Context, tx pgx.Tx, tenantID, walletID, accountID string, amount decimal.Decimal, currency string) error {
	args := m.Called(ctx, tx, tenantID, walletID, accountID, amount, currency)
	return args.Error(0)
}

func (m *MockComplianceGate) CheckCredit(ctx context.Context, tx pgx.Tx, tenantID, walletID string, amount decimal.Decimal, currency string, currentBalance decimal.Decimal) error {
	args := m.Called(ctx, tx, tenantID, walletID, amount, currency, currentBalance)
	return args.Error(0)
}

// --- Passthrough idempotency coordinator ---

// passthroughIdempotency runs the wrapped operation directly with a nil
// transaction, bypassing deduplication. Orchestrator tests use it so their
// assertions target the operation body, not the coordinator.
type passthroughIdempotency struct{}

var _ portssvc.IdempotencySvcFacade = passthroughIdempotency{}

func (passthroughIdempotency) Execute(ctx context.Context, tenantID, key string, payload any, op portssvc.Operation) (json.RawMessage, error) {
	result, err := op(ctx, nil)
	if err != nil {
		return nil, err
	}
	return json.Marshal(result)
}
