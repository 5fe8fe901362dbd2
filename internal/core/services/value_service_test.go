package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/services"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/dto"
)

type ValueServiceTestSuite struct {
	suite.Suite
	mockWalletRepo      *MockWalletRepository
	mockAccountRepo     *MockAccountRepository
	mockTransactionRepo *MockTransactionRepository
	mockLedgerRepo      *MockLedgerRepository
	mockCompliance      *MockComplianceGate
	service             *services.ValueService

	tenantID        string
	walletID        string
	walletAccount   string
	treasuryAccount string
}

func (s *ValueServiceTestSuite) SetupTest() {
	s.mockWalletRepo = new(MockWalletRepository)
	s.mockAccountRepo = new(MockAccountRepository)
	s.mockTransactionRepo = new(MockTransactionRepository)
	s.mockLedgerRepo = new(MockLedgerRepository)
	s.mockCompliance = new(MockComplianceGate)

	ledgerSvc := services.NewLedgerService(s.mockLedgerRepo)
	balanceSvc := services.NewBalanceService(s.mockLedgerRepo)
	s.service = services.NewValueService(
		s.mockWalletRepo, s.mockAccountRepo, s.mockTransactionRepo,
		ledgerSvc, balanceSvc, passthroughIdempotency{}, s.mockCompliance,
	)

	s.tenantID = uuid.NewString()
	s.walletID = uuid.NewString()
	s.walletAccount = uuid.NewString()
	s.treasuryAccount = uuid.NewString()
}

func (s *ValueServiceTestSuite) valueRequest(amount string) dto.ValueRequest {
	return dto.ValueRequest{
		TenantID: s.tenantID,
		WalletID: s.walletID,
		Amount:   amount,
		Currency: "USD",
	}
}

func (s *ValueServiceTestSuite) lockActiveWallet(ctx context.Context) {
	s.mockWalletRepo.On("LockWalletsForUpdate", ctx, nil, s.tenantID, []string{s.walletID}).
		Return(map[string]domain.Wallet{
			s.walletID: {WalletID: s.walletID, TenantID: s.tenantID, Currency: "USD", Status: domain.WalletActive},
		}, nil).Once()
	s.mockWalletRepo.On("FindPrincipalAccountID", ctx, nil, s.tenantID, s.walletID).Return(s.walletAccount, nil).Once()
	s.mockAccountRepo.On("EnsureAccountByCode", ctx, nil, s.tenantID, "INTERNAL_TREASURY_USD", domain.Asset, "USD").
		Return(s.treasuryAccount, nil).Once()
}

func (s *ValueServiceTestSuite) TestIssue_DebitsTreasuryCreditsWallet() {
	ctx := context.Background()
	s.lockActiveWallet(ctx)

	s.mockLedgerRepo.On("SumEntriesByAccount", ctx, nil, s.walletAccount).Return(decimal.Zero, nil).Once()
	s.mockCompliance.On("CheckCredit", ctx, nil, s.tenantID, s.walletID, mock.Anything, "USD", mock.Anything).Return(nil).Once()
	s.mockTransactionRepo.On("SaveTransaction", ctx, nil, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	var entries []domain.LedgerEntry
	s.mockLedgerRepo.On("SaveBatch", ctx, nil, mock.AnythingOfType("domain.LedgerBatch"), mock.AnythingOfType("[]domain.LedgerEntry")).
		Run(func(args mock.Arguments) {
			entries = args.Get(3).([]domain.LedgerEntry)
		}).
		Return(nil).Once()
	s.mockTransactionRepo.On("MarkPosted", ctx, nil, mock.AnythingOfType("string")).Return(nil).Once()

	resp, err := s.service.Issue(ctx, uuid.NewString(), s.valueRequest("1000"))

	s.Require().NoError(err)
	s.Equal(string(domain.TypeIssue), resp.Operation)
	s.Require().Len(entries, 2)
	s.Equal(s.treasuryAccount, entries[0].AccountID)
	s.Equal(domain.Debit, entries[0].Direction)
	s.Equal(s.walletAccount, entries[1].AccountID)
	s.Equal(domain.Credit, entries[1].Direction)
}

func (s *ValueServiceTestSuite) TestRedeem_DebitsWalletCreditsTreasury() {
	ctx := context.Background()
	s.lockActiveWallet(ctx)

	s.mockLedgerRepo.On("SumEntriesByAccount", ctx, nil, s.walletAccount).Return(decimal.RequireFromString("1000"), nil).Once()
	s.mockCompliance.On("CheckDebit", ctx, nil, s.tenantID, s.walletID, s.walletAccount, mock.Anything, "USD").Return(nil).Once()
	s.mockTransactionRepo.On("SaveTransaction", ctx, nil, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	var entries []domain.LedgerEntry
	s.mockLedgerRepo.On("SaveBatch", ctx, nil, mock.AnythingOfType("domain.LedgerBatch"), mock.AnythingOfType("[]domain.LedgerEntry")).
		Run(func(args mock.Arguments) {
			entries = args.Get(3).([]domain.LedgerEntry)
		}).
		Return(nil).Once()
	s.mockTransactionRepo.On("MarkPosted", ctx, nil, mock.AnythingOfType("string")).Return(nil).Once()

	resp, err := s.service.Redeem(ctx, uuid.NewString(), s.valueRequest("250"))

	s.Require().NoError(err)
	s.Equal(string(domain.TypeRedeem), resp.Operation)
	s.Require().Len(entries, 2)
	s.Equal(s.walletAccount, entries[0].AccountID)
	s.Equal(domain.Debit, entries[0].Direction)
	s.Equal(s.treasuryAccount, entries[1].AccountID)
	s.Equal(domain.Credit, entries[1].Direction)
}

func (s *ValueServiceTestSuite) TestRedeem_InsufficientFunds() {
	ctx := context.Background()
	s.lockActiveWallet(ctx)

	s.mockLedgerRepo.On("SumEntriesByAccount", ctx, nil, s.walletAccount).Return(decimal.RequireFromString("100"), nil).Once()

	_, err := s.service.Redeem(ctx, uuid.NewString(), s.valueRequest("250"))

	s.Require().ErrorIs(err, services.ErrInsufficientFunds)
	s.mockLedgerRepo.AssertNotCalled(s.T(), "SaveBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *ValueServiceTestSuite) TestIssue_RejectsNonPositiveAmount() {
	_, err := s.service.Issue(context.Background(), uuid.NewString(), s.valueRequest("-5"))

	s.Require().Error(err)
	s.mockWalletRepo.AssertNotCalled(s.T(), "LockWalletsForUpdate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestValueServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ValueServiceTestSuite))
}
