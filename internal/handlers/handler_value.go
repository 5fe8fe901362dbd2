package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/ports/services"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/dto"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/middleware"
)

// valueHandler handles issuance and redemption requests.
type valueHandler struct {
	valueService portssvc.ValueSvcFacade
}

func newValueHandler(valueService portssvc.ValueSvcFacade) *valueHandler {
	return &valueHandler{valueService: valueService}
}

func registerValueRoutes(rg *gin.RouterGroup, valueService portssvc.ValueSvcFacade) {
	h := newValueHandler(valueService)
	value := rg.Group("/value")
	value.POST("/issue", h.issue)
	value.POST("/redeem", h.redeem)
}

func (h *valueHandler) issue(c *gin.Context) {
	h.post(c, h.valueService.Issue)
}

func (h *valueHandler) redeem(c *gin.Context) {
	h.post(c, h.valueService.Redeem)
}

func (h *valueHandler) post(c *gin.Context, op func(ctx context.Context, key string, req dto.ValueRequest) (*dto.ValueResponse, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	key, ok := requireIdempotencyKey(c)
	if !ok {
		return
	}
	var req dto.ValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind value request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	resp, err := op(c.Request.Context(), key, req)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
