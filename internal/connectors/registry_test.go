package connectors_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/apperrors"
	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/connectors"
)

func TestRegistryResolvesRegisteredConnector(t *testing.T) {
	registry := connectors.NewRegistry()
	registry.Register(connectors.MockConnector{})

	c, err := registry.Resolve("mock")

	require.NoError(t, err)
	assert.Equal(t, "mock", c.Provider())
}

func TestRegistryUnknownProvider(t *testing.T) {
	registry := connectors.NewRegistry()

	_, err := registry.Resolve("nope")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMockConnectorRequiresExternalReference(t *testing.T) {
	c := connectors.MockConnector{}
	ctx := context.Background()

	assert.NoError(t, c.ValidateCashIn(ctx, connectors.Params{ExternalReference: "ref-1"}))
	assert.ErrorIs(t, c.ValidateCashIn(ctx, connectors.Params{}), apperrors.ErrValidation)
	assert.ErrorIs(t, c.ValidateCashOut(ctx, connectors.Params{}), apperrors.ErrValidation)
}
