package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/apperrors"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/services"
)

func line(accountID string, dir domain.EntryDirection, amount string) domain.PostingLine {
	return domain.PostingLine{
		AccountID: accountID,
		Direction: dir,
		Amount:    decimal.RequireFromString(amount),
		Currency:  "USD",
	}
}

func TestValidateBalanced(t *testing.T) {
	svc := services.NewLedgerService(new(MockLedgerRepository))
	a := uuid.NewString()
	b := uuid.NewString()

	tests := []struct {
		name    string
		lines   []domain.PostingLine
		wantErr error
	}{
		{
			name:    "empty batch",
			lines:   nil,
			wantErr: services.ErrEmptyBatch,
		},
		{
			name: "balanced pair",
			lines: []domain.PostingLine{
				line(a, domain.Debit, "100"),
				line(b, domain.Credit, "100"),
			},
		},
		{
			name: "balanced multi leg",
			lines: []domain.PostingLine{
				line(a, domain.Debit, "70"),
				line(a, domain.Debit, "30"),
				line(b, domain.Credit, "100"),
			},
		},
		{
			name: "unbalanced",
			lines: []domain.PostingLine{
				line(a, domain.Debit, "100"),
				line(b, domain.Credit, "90"),
			},
			wantErr: services.ErrUnbalancedBatch,
		},
		{
			name: "zero amount",
			lines: []domain.PostingLine{
				line(a, domain.Debit, "0"),
				line(b, domain.Credit, "0"),
			},
			wantErr: services.ErrNonPositiveAmount,
		},
		{
			name: "negative amount",
			lines: []domain.PostingLine{
				line(a, domain.Debit, "-5"),
				line(b, domain.Credit, "-5"),
			},
			wantErr: services.ErrNonPositiveAmount,
		},
		{
			name: "mixed currencies",
			lines: []domain.PostingLine{
				line(a, domain.Debit, "100"),
				{AccountID: b, Direction: domain.Credit, Amount: decimal.RequireFromString("100"), Currency: "EUR"},
			},
			wantErr: services.ErrMixedCurrencies,
		},
		{
			name: "difference within epsilon",
			lines: []domain.PostingLine{
				line(a, domain.Debit, "100.0000001"),
				line(b, domain.Credit, "100.0000002"),
			},
		},
		{
			name: "difference beyond epsilon",
			lines: []domain.PostingLine{
				line(a, domain.Debit, "100.00001"),
				line(b, domain.Credit, "100"),
			},
			wantErr: services.ErrUnbalancedBatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ValidateBalanced(tt.lines)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPost_AppendsBatchAndEntries(t *testing.T) {
	repo := new(MockLedgerRepository)
	svc := services.NewLedgerService(repo)
	ctx := context.Background()

	transactionID := uuid.NewString()
	lines := []domain.PostingLine{
		line(uuid.NewString(), domain.Debit, "42.50"),
		line(uuid.NewString(), domain.Credit, "42.50"),
	}

	var saved []domain.LedgerEntry
	repo.On("SaveBatch", ctx, nil, mock.AnythingOfType("domain.LedgerBatch"), mock.AnythingOfType("[]domain.LedgerEntry")).
		Run(func(args mock.Arguments) {
			saved = args.Get(3).([]domain.LedgerEntry)
		}).
		Return(nil).Once()

	batchID, err := svc.Post(ctx, nil, transactionID, lines)

	require.NoError(t, err)
	require.NotEmpty(t, batchID)
	require.Len(t, saved, 2)
	for i, entry := range saved {
		assert.Equal(t, batchID, entry.BatchID)
		assert.Equal(t, lines[i].AccountID, entry.AccountID)
		assert.Equal(t, lines[i].Direction, entry.Direction)
		assert.True(t, lines[i].Amount.Equal(entry.Amount))
		assert.NotEmpty(t, entry.EntryID)
	}
	repo.AssertExpectations(t)
}

func TestPost_RejectsUnbalancedWithoutWriting(t *testing.T) {
	repo := new(MockLedgerRepository)
	svc := services.NewLedgerService(repo)

	_, err := svc.Post(context.Background(), nil, uuid.NewString(), []domain.PostingLine{
		line(uuid.NewString(), domain.Debit, "10"),
	})

	assert.ErrorIs(t, err, services.ErrUnbalancedBatch)
	repo.AssertNotCalled(t, "SaveBatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
