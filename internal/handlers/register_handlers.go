package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/services"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, svc *services.ServiceContainer) {
	registerCurrencyCodeValidator()

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	v1 := r.Group("/api/v1")
	registerWalletRoutes(v1, svc.Wallet)
	registerTransactionRoutes(v1, svc.Transaction)
	registerValueRoutes(v1, svc.Value)
	registerIntegrationRoutes(v1, svc.Integration)
	registerPolicyRoutes(v1, svc.Compliance)
}

// registerCurrencyCodeValidator teaches the binding layer the currency_code
// tag used on money-moving DTOs: three uppercase ASCII letters.
func registerCurrencyCodeValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("currency_code", func(fl validator.FieldLevel) bool {
		code := fl.Field().String()
		if len(code) != 3 {
			return false
		}
		for _, r := range code {
			if r < 'A' || r > 'Z' {
				return false
			}
		}
		return true
	})
}
