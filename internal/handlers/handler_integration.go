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

// integrationHandler handles provider-mediated cash movements.
type integrationHandler struct {
	integrationService portssvc.IntegrationSvcFacade
}

func newIntegrationHandler(integrationService portssvc.IntegrationSvcFacade) *integrationHandler {
	return &integrationHandler{integrationService: integrationService}
}

func registerIntegrationRoutes(rg *gin.RouterGroup, integrationService portssvc.IntegrationSvcFacade) {
	h := newIntegrationHandler(integrationService)
	transfers := rg.Group("/external-transfers")
	transfers.POST("/cash-in", h.cashIn)
	transfers.POST("/cash-out", h.cashOut)
	transfers.GET("/:externalTransferID", h.getExternalTransfer)
}

func (h *integrationHandler) cashIn(c *gin.Context) {
	h.post(c, h.integrationService.CashIn)
}

func (h *integrationHandler) cashOut(c *gin.Context) {
	h.post(c, h.integrationService.CashOut)
}

func (h *integrationHandler) post(c *gin.Context, op func(ctx context.Context, key string, req dto.ExternalTransferRequest) (*dto.ExternalTransferResponse, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	key, ok := requireIdempotencyKey(c)
	if !ok {
		return
	}
	var req dto.ExternalTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind external transfer request", slog.String("error", err.Error()))
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

func (h *integrationHandler) getExternalTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	resp, err := h.integrationService.GetExternalTransfer(c.Request.Context(), tenantID, c.Param("externalTransferID"))
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
