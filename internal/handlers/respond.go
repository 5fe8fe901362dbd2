package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/apperrors"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/services"
)

// idempotencyKeyHeader carries the client-chosen deduplication key on every
// money-moving request.
const idempotencyKeyHeader = "Idempotency-Key"

// tenantHeader scopes read-only requests that carry no body.
const tenantHeader = "X-Tenant-ID"

// respondError maps the service error taxonomy onto HTTP statuses. Specific
// business failures are matched before the generic sentinels they wrap.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, services.ErrComplianceViolation):
		logger.Warn("Compliance violation", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrIdempotencyConflict),
		errors.Is(err, services.ErrInsufficientFunds),
		errors.Is(err, services.ErrCurrencyMismatch),
		errors.Is(err, services.ErrReversalInvalid),
		errors.Is(err, services.ErrUnknownProvider),
		errors.Is(err, services.ErrWalletUnavailable):
		logger.Warn("Operation rejected", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Conflicting state", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrTransient):
		logger.Warn("Transient store failure", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "temporarily unavailable, retry with the same idempotency key"})
	default:
		logger.Error("Unexpected failure", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// requireIdempotencyKey extracts the mandatory Idempotency-Key header. On a
// missing key it writes the 400 response and reports false.
func requireIdempotencyKey(c *gin.Context) (string, bool) {
	key := c.GetHeader(idempotencyKeyHeader)
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Idempotency-Key header is required"})
		return "", false
	}
	return key, true
}

// requireTenant extracts the mandatory X-Tenant-ID header on read routes.
func requireTenant(c *gin.Context) (string, bool) {
	tenantID := c.GetHeader(tenantHeader)
	if tenantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Tenant-ID header is required"})
		return "", false
	}
	return tenantID, true
}
