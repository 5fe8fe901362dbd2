package services

import (
	"fmt"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/apperrors"
)

// Posting batch validation failures. All unwrap to apperrors.ErrValidation.
var (
	ErrEmptyBatch        = fmt.Errorf("%w: posting batch has no lines", apperrors.ErrValidation)
	ErrNonPositiveAmount = fmt.Errorf("%w: posting amounts must be greater than zero", apperrors.ErrValidation)
	ErrMixedCurrencies   = fmt.Errorf("%w: posting batch mixes currencies", apperrors.ErrValidation)
	ErrUnbalancedBatch   = fmt.Errorf("%w: debits do not equal credits", apperrors.ErrValidation)
)

// Orchestration failures surfaced to callers.
var (
	ErrInsufficientFunds   = fmt.Errorf("%w: insufficient funds", apperrors.ErrConflict)
	ErrCurrencyMismatch    = fmt.Errorf("%w: currency mismatch", apperrors.ErrValidation)
	ErrWalletUnavailable   = fmt.Errorf("%w: wallet unavailable", apperrors.ErrConflict)
	ErrIdempotencyConflict = fmt.Errorf("%w: idempotency key reused with a different payload", apperrors.ErrConflict)
	ErrReversalInvalid     = fmt.Errorf("%w: transaction cannot be reversed", apperrors.ErrConflict)
	ErrUnknownProvider     = fmt.Errorf("%w: unknown provider", apperrors.ErrConflict)
	ErrComplianceViolation = fmt.Errorf("%w: compliance policy violation", apperrors.ErrConflict)
)
