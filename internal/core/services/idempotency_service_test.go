package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/apperrors"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/services"
)

type IdempotencyServiceTestSuite struct {
	suite.Suite
	mockTxManager *MockTxManager
	mockRepo      *MockIdempotencyRepository
	service       *services.IdempotencyService

	tenantID string
	key      string
}

func (s *IdempotencyServiceTestSuite) SetupTest() {
	s.mockTxManager = new(MockTxManager)
	s.mockRepo = new(MockIdempotencyRepository)
	s.service = services.NewIdempotencyService(s.mockTxManager, s.mockRepo)

	s.tenantID = uuid.NewString()
	s.key = uuid.NewString()

	s.mockTxManager.On("Begin", mock.Anything).Return((pgx.Tx)(nil), nil)
	s.mockTxManager.On("Rollback", mock.Anything, mock.Anything).Return(nil)
}

type samplePayload struct {
	WalletID string `json:"wallet_id"`
	Amount   string `json:"amount"`
}

func (s *IdempotencyServiceTestSuite) TestFirstCallRunsOperationAndStoresRecord() {
	ctx := context.Background()
	s.mockRepo.On("FindForUpdate", ctx, nil, s.tenantID, s.key).Return(nil, apperrors.ErrNotFound).Once()

	var savedRecord domain.IdempotencyRecord
	s.mockRepo.On("SaveRecord", ctx, nil, mock.AnythingOfType("domain.IdempotencyRecord")).
		Run(func(args mock.Arguments) {
			savedRecord = args.Get(2).(domain.IdempotencyRecord)
		}).
		Return(nil).Once()
	s.mockTxManager.On("Commit", ctx, mock.Anything).Return(nil).Once()

	ran := 0
	raw, err := s.service.Execute(ctx, s.tenantID, s.key, samplePayload{WalletID: "w1", Amount: "10"}, func(ctx context.Context, tx pgx.Tx) (any, error) {
		ran++
		return map[string]string{"status": "posted"}, nil
	})

	s.Require().NoError(err)
	s.Equal(1, ran)
	s.JSONEq(`{"status":"posted"}`, string(raw))
	s.Equal(s.tenantID, savedRecord.TenantID)
	s.Equal(s.key, savedRecord.Key)
	s.NotEmpty(savedRecord.RequestHash)
	s.JSONEq(`{"status":"posted"}`, string(savedRecord.ResponsePayload))
	s.mockRepo.AssertExpectations(s.T())
}

func (s *IdempotencyServiceTestSuite) TestReplayReturnsStoredResponseWithoutRerunning() {
	ctx := context.Background()
	payload := samplePayload{WalletID: "w1", Amount: "10"}

	// First call captures the hash the coordinator derives for the payload.
	var storedHash string
	s.mockRepo.On("FindForUpdate", ctx, nil, s.tenantID, s.key).Return(nil, apperrors.ErrNotFound).Once()
	s.mockRepo.On("SaveRecord", ctx, nil, mock.AnythingOfType("domain.IdempotencyRecord")).
		Run(func(args mock.Arguments) {
			storedHash = args.Get(2).(domain.IdempotencyRecord).RequestHash
		}).
		Return(nil).Once()
	s.mockTxManager.On("Commit", ctx, mock.Anything).Return(nil).Once()

	first, err := s.service.Execute(ctx, s.tenantID, s.key, payload, func(ctx context.Context, tx pgx.Tx) (any, error) {
		return map[string]string{"id": "txn-1"}, nil
	})
	s.Require().NoError(err)

	// Second call finds the record and must not run the operation.
	s.mockRepo.On("FindForUpdate", ctx, nil, s.tenantID, s.key).Return(&domain.IdempotencyRecord{
		TenantID:        s.tenantID,
		Key:             s.key,
		RequestHash:     storedHash,
		ResponsePayload: json.RawMessage(first),
	}, nil).Once()

	replayed, err := s.service.Execute(ctx, s.tenantID, s.key, payload, func(ctx context.Context, tx pgx.Tx) (any, error) {
		s.Fail("operation must not run on replay")
		return nil, nil
	})

	s.Require().NoError(err)
	s.Equal(string(first), string(replayed))
}

func (s *IdempotencyServiceTestSuite) TestSameKeyDifferentPayloadIsRejected() {
	ctx := context.Background()

	var storedHash string
	s.mockRepo.On("FindForUpdate", ctx, nil, s.tenantID, s.key).Return(nil, apperrors.ErrNotFound).Once()
	s.mockRepo.On("SaveRecord", ctx, nil, mock.AnythingOfType("domain.IdempotencyRecord")).
		Run(func(args mock.Arguments) {
			storedHash = args.Get(2).(domain.IdempotencyRecord).RequestHash
		}).
		Return(nil).Once()
	s.mockTxManager.On("Commit", ctx, mock.Anything).Return(nil).Once()

	_, err := s.service.Execute(ctx, s.tenantID, s.key, samplePayload{WalletID: "w1", Amount: "10"}, func(ctx context.Context, tx pgx.Tx) (any, error) {
		return map[string]string{"ok": "yes"}, nil
	})
	s.Require().NoError(err)

	s.mockRepo.On("FindForUpdate", ctx, nil, s.tenantID, s.key).Return(&domain.IdempotencyRecord{
		TenantID:    s.tenantID,
		Key:         s.key,
		RequestHash: storedHash,
	}, nil).Once()

	_, err = s.service.Execute(ctx, s.tenantID, s.key, samplePayload{WalletID: "w1", Amount: "999"}, func(ctx context.Context, tx pgx.Tx) (any, error) {
		s.Fail("operation must not run on a conflicting payload")
		return nil, nil
	})

	s.Require().Error(err)
	s.ErrorIs(err, services.ErrIdempotencyConflict)
}

func (s *IdempotencyServiceTestSuite) TestOperationErrorRollsBackWithoutSaving() {
	ctx := context.Background()
	boom := errors.New("posting failed")

	s.mockRepo.On("FindForUpdate", ctx, nil, s.tenantID, s.key).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.Execute(ctx, s.tenantID, s.key, samplePayload{WalletID: "w1", Amount: "10"}, func(ctx context.Context, tx pgx.Tx) (any, error) {
		return nil, boom
	})

	s.Require().ErrorIs(err, boom)
	s.mockRepo.AssertNotCalled(s.T(), "SaveRecord", mock.Anything, mock.Anything, mock.Anything)
	s.mockTxManager.AssertNotCalled(s.T(), "Commit", mock.Anything, mock.Anything)
}

func TestIdempotencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IdempotencyServiceTestSuite))
}

// Hash stability: two payloads that differ only in JSON field order must be
// treated as the same request.
func TestHashStableUnderFieldReordering(t *testing.T) {
	tenantID := uuid.NewString()
	key := uuid.NewString()
	ctx := context.Background()

	mockTxManager := new(MockTxManager)
	mockRepo := new(MockIdempotencyRepository)
	svc := services.NewIdempotencyService(mockTxManager, mockRepo)

	mockTxManager.On("Begin", mock.Anything).Return((pgx.Tx)(nil), nil)
	mockTxManager.On("Rollback", mock.Anything, mock.Anything).Return(nil)
	mockTxManager.On("Commit", mock.Anything, mock.Anything).Return(nil)

	var storedHash string
	mockRepo.On("FindForUpdate", ctx, nil, tenantID, key).Return(nil, apperrors.ErrNotFound).Once()
	mockRepo.On("SaveRecord", ctx, nil, mock.AnythingOfType("domain.IdempotencyRecord")).
		Run(func(args mock.Arguments) {
			storedHash = args.Get(2).(domain.IdempotencyRecord).RequestHash
		}).
		Return(nil).Once()

	first, err := svc.Execute(ctx, tenantID, key, json.RawMessage(`{"a":1,"b":2}`), func(ctx context.Context, tx pgx.Tx) (any, error) {
		return map[string]bool{"done": true}, nil
	})
	require.NoError(t, err)

	mockRepo.On("FindForUpdate", ctx, nil, tenantID, key).Return(&domain.IdempotencyRecord{
		TenantID:        tenantID,
		Key:             key,
		RequestHash:     storedHash,
		ResponsePayload: json.RawMessage(first),
	}, nil).Once()

	replayed, err := svc.Execute(ctx, tenantID, key, json.RawMessage(`{"b":2,"a":1}`), func(ctx context.Context, tx pgx.Tx) (any, error) {
		t.Fatal("reordered payload must replay, not re-run")
		return nil, nil
	})

	require.NoError(t, err)
	assert.Equal(t, string(first), string(replayed))
}
