package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
	portssvc "github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/ports/services"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/dto"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/middleware"
)

// policyHandler administers compliance policies.
type policyHandler struct {
	complianceService portssvc.ComplianceSvcFacade
}

func newPolicyHandler(complianceService portssvc.ComplianceSvcFacade) *policyHandler {
	return &policyHandler{complianceService: complianceService}
}

func registerPolicyRoutes(rg *gin.RouterGroup, complianceService portssvc.ComplianceSvcFacade) {
	h := newPolicyHandler(complianceService)
	policies := rg.Group("/tenants/:tenantID/policies")
	policies.PUT("/:currency", h.upsertPolicy)
	policies.GET("/:currency", h.getPolicy)
}

func (h *policyHandler) upsertPolicy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpsertPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind policy request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	policy, err := h.complianceService.UpsertPolicy(c.Request.Context(), c.Param("tenantID"), c.Param("currency"), req)
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, toPolicyResponse(policy))
}

func (h *policyHandler) getPolicy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	policy, err := h.complianceService.GetPolicy(c.Request.Context(), c.Param("tenantID"), c.Param("currency"))
	if err != nil {
		respondError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, toPolicyResponse(policy))
}

func toPolicyResponse(p *domain.Policy) dto.PolicyResponse {
	return dto.PolicyResponse{
		TenantID:            p.TenantID,
		Currency:            p.Currency,
		MaxSingleAmount:     decimalString(p.MaxSingleAmount),
		MaxDailyWalletDebit: decimalString(p.MaxDailyWalletDebit),
		MaxWalletBalance:    decimalString(p.MaxWalletBalance),
		RequiresKYC:         p.RequiresKYC,
	}
}

func decimalString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
