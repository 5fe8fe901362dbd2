package connectors

import (
	"context"
	"fmt"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/apperrors"
)

// MockConnector approves every operation that carries an external reference.
// Used for local development and tests.
type MockConnector struct{}

func (MockConnector) Provider() string { return "mock" }

func (MockConnector) ValidateCashIn(_ context.Context, params Params) error {
	if params.ExternalReference == "" {
		return fmt.Errorf("%w: mock connector requires an external reference", apperrors.ErrValidation)
	}
	return nil
}

func (MockConnector) ValidateCashOut(_ context.Context, params Params) error {
	if params.ExternalReference == "" {
		return fmt.Errorf("%w: mock connector requires an external reference", apperrors.ErrValidation)
	}
	return nil
}
