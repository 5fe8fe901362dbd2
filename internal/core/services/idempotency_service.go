package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/apperrors"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/ports/repositories"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/ports/services"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/middleware"
)

// IdempotencyService deduplicates retried client requests. It owns the atomic
// scope: the wrapped operation's writes and the idempotency record commit or
// roll back together, so a key can never exist without its effect.
type IdempotencyService struct {
	txManager       repositories.TransactionManager
	idempotencyRepo repositories.IdempotencyRepositoryFacade
}

// NewIdempotencyService creates a new IdempotencyService.
func NewIdempotencyService(txManager repositories.TransactionManager, idempotencyRepo repositories.IdempotencyRepositoryFacade) *IdempotencyService {
	return &IdempotencyService{txManager: txManager, idempotencyRepo: idempotencyRepo}
}

// hashPayload produces a stable fingerprint of the request payload. The
// payload is remarshalled through map values so object keys come out sorted;
// two payloads differing only in field order hash identically.
func hashPayload(payload any) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal payload", apperrors.ErrInternal)
	}
	var normalized any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return "", fmt.Errorf("%w: failed to normalize payload", apperrors.ErrInternal)
	}
	canonical, err := json.Marshal(normalized)
	if err != nil {
		return "", fmt.Errorf("%w: failed to canonicalize payload", apperrors.ErrInternal)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// Execute runs op exactly once per (tenantID, key). A retry with the same
// payload replays the stored response byte for byte without re-running op; the
// same key with a different payload is rejected. Concurrent calls sharing a
// key serialize on the locked record row.
func (s *IdempotencyService) Execute(ctx context.Context, tenantID, key string, payload any, op services.Operation) (json.RawMessage, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	hash, err := hashPayload(payload)
	if err != nil {
		return nil, err
	}

	tx, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.txManager.Rollback(ctx, tx)

	record, err := s.idempotencyRepo.FindForUpdate(ctx, tx, tenantID, key)
	if err == nil {
		if record.RequestHash != hash {
			return nil, fmt.Errorf("%w: key %s", ErrIdempotencyConflict, key)
		}
		logger.Info("Idempotent replay", slog.String("tenant_id", tenantID), slog.String("idempotency_key", key))
		return record.ResponsePayload, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	result, err := op(ctx, tx)
	if err != nil {
		return nil, err
	}

	response, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal operation response", apperrors.ErrInternal)
	}

	if err := s.idempotencyRepo.SaveRecord(ctx, tx, domain.IdempotencyRecord{
		TenantID:        tenantID,
		Key:             key,
		RequestHash:     hash,
		ResponsePayload: response,
		CreatedAt:       time.Now().UTC(),
	}); err != nil {
		return nil, err
	}

	if err := s.txManager.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return response, nil
}
