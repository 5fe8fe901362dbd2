package services

import (
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/connectors"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/ports/repositories"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/ports/services"
)

// ServiceContainer bundles the service facades handed to the handlers.
type ServiceContainer struct {
	Ledger      services.LedgerSvcFacade
	Balance     services.BalanceSvcFacade
	Idempotency services.IdempotencySvcFacade
	Compliance  services.ComplianceSvcFacade
	Transaction services.TransactionSvcFacade
	Value       services.ValueSvcFacade
	Integration services.IntegrationSvcFacade
	Wallet      services.WalletSvcFacade
}

// NewServiceContainer wires the full service graph on top of the repositories
// and the connector registry.
func NewServiceContainer(repos *repositories.RepositoryProvider, registry *connectors.Registry) *ServiceContainer {
	ledgerSvc := NewLedgerService(repos.LedgerRepo)
	balanceSvc := NewBalanceService(repos.LedgerRepo)
	idempotencySvc := NewIdempotencyService(repos.TxManager, repos.IdempotencyRepo)
	complianceSvc := NewComplianceService(repos.PolicyRepo, repos.WalletRepo, repos.LedgerRepo)

	return &ServiceContainer{
		Ledger:      ledgerSvc,
		Balance:     balanceSvc,
		Idempotency: idempotencySvc,
		Compliance:  complianceSvc,
		Transaction: NewTransactionService(repos.WalletRepo, repos.TransactionRepo, repos.LedgerRepo, ledgerSvc, balanceSvc, idempotencySvc, complianceSvc),
		Value:       NewValueService(repos.WalletRepo, repos.AccountRepo, repos.TransactionRepo, ledgerSvc, balanceSvc, idempotencySvc, complianceSvc),
		Integration: NewIntegrationService(registry, repos.WalletRepo, repos.AccountRepo, repos.TransactionRepo, repos.ExternalTransfer, ledgerSvc, balanceSvc, idempotencySvc, complianceSvc),
		Wallet:      NewWalletService(repos.TxManager, repos.WalletRepo, repos.AccountRepo, repos.LedgerRepo),
	}
}
