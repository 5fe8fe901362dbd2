package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/apperrors"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/services"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/dto"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/handlers"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/platform/config"
)

// --- Mock WalletService ---
type MockWalletService struct {
	mock.Mock
}

func (m *MockWalletService) CreateWallet(ctx context.Context, req dto.CreateWalletRequest) (*dto.WalletResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.WalletResponse), args.Error(1)
}

func (m *MockWalletService) GetWallet(ctx context.Context, tenantID, walletID string) (*dto.WalletResponse, error) {
	args := m.Called(ctx, tenantID, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.WalletResponse), args.Error(1)
}

func (m *MockWalletService) GetBalance(ctx context.Context, walletID string) (*dto.BalanceResponse, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BalanceResponse), args.Error(1)
}

type WalletHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockWalletSvc *MockWalletService
}

func (s *WalletHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.mockWalletSvc = new(MockWalletService)

	s.router = gin.New()
	handlers.RegisterRoutes(s.router, &config.Config{}, &services.ServiceContainer{
		Wallet: s.mockWalletSvc,
	})
}

func (s *WalletHandlerTestSuite) TestCreateWallet_Success() {
	tenantID := uuid.NewString()
	body := `{"tenant_id":"` + tenantID + `","owner_id":"owner-1","currency":"USD"}`

	s.mockWalletSvc.On("CreateWallet", mock.Anything, mock.AnythingOfType("dto.CreateWalletRequest")).
		Return(&dto.WalletResponse{
			WalletID: uuid.NewString(),
			TenantID: tenantID,
			OwnerID:  "owner-1",
			Currency: "USD",
			Status:   "active",
		}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/wallets", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusCreated, w.Code)
	var resp dto.WalletResponse
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("active", resp.Status)
}

func (s *WalletHandlerTestSuite) TestCreateWallet_RejectsBadCurrency() {
	body := `{"tenant_id":"` + uuid.NewString() + `","owner_id":"owner-1","currency":"usd"}`

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/wallets", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockWalletSvc.AssertNotCalled(s.T(), "CreateWallet", mock.Anything, mock.Anything)
}

func (s *WalletHandlerTestSuite) TestGetWallet_NotFound() {
	tenantID := uuid.NewString()
	walletID := uuid.NewString()

	s.mockWalletSvc.On("GetWallet", mock.Anything, tenantID, walletID).Return(nil, apperrors.ErrNotFound).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/wallets/"+walletID, nil)
	req.Header.Set("X-Tenant-ID", tenantID)
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *WalletHandlerTestSuite) TestGetWallet_MissingTenantHeader() {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/wallets/"+uuid.NewString(), nil)
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
	s.mockWalletSvc.AssertNotCalled(s.T(), "GetWallet", mock.Anything, mock.Anything, mock.Anything)
}

func (s *WalletHandlerTestSuite) TestTransferWithoutIdempotencyKeyRejected() {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transfers", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
}

func TestWalletHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WalletHandlerTestSuite))
}
