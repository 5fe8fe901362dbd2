package connectors

import "context"

// Params describes one prospective external transfer for provider validation.
type Params struct {
	TenantID          string
	WalletID          string
	Amount            string
	Currency          string
	ExternalReference string
}

// Connector is the capability set an external cash provider must implement.
// Implementations validate only; the ledger posting stays in the core.
type Connector interface {
	// Provider returns the registry name this connector answers to.
	Provider() string

	ValidateCashIn(ctx context.Context, params Params) error
	ValidateCashOut(ctx context.Context, params Params) error
}
