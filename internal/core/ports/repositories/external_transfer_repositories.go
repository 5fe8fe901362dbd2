package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/core/domain"
)

// ExternalTransferRepositoryFacade persists provider-mediated transfer records.
type ExternalTransferRepositoryFacade interface {
	// SaveExternalTransfer inserts a new pending external transfer.
	SaveExternalTransfer(ctx context.Context, tx pgx.Tx, transfer domain.ExternalTransfer) error

	// MarkTransferPosted flips a pending external transfer to posted.
	MarkTransferPosted(ctx context.Context, tx pgx.Tx, externalTransferID string) error

	// FindExternalTransferByID retrieves a tenant's external transfer outside
	// any transactional scope.
	FindExternalTransferByID(ctx context.Context, tenantID, externalTransferID string) (*domain.ExternalTransfer, error)
}
