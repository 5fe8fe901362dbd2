package repositories

// RepositoryProvider bundles the concrete repositories handed to the service
// container. Populated once at startup by the storage adapter.
type RepositoryProvider struct {
	TxManager        TransactionManager
	AccountRepo      AccountRepositoryFacade
	WalletRepo       WalletRepositoryFacade
	TransactionRepo  TransactionRepositoryFacade
	LedgerRepo       LedgerRepositoryFacade
	IdempotencyRepo  IdempotencyRepositoryFacade
	PolicyRepo       PolicyRepositoryFacade
	ExternalTransfer ExternalTransferRepositoryFacade
}
