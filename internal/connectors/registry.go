package connectors

import (
	"fmt"
	"sync"

	"github.com/Roinflames/fintech-core-engine-v0.1.0/internal/apperrors"
)

// Registry maps provider names to connectors. Populated at process start and
// extendable at runtime; lookups of unknown names are a typed error, not a crash.
type Registry struct {
	mu         sync.RWMutex
	connectors map[string]Connector
}

// NewRegistry creates an empty connector registry.
func NewRegistry() *Registry {
	return &Registry{connectors: make(map[string]Connector)}
}

// Register adds or replaces the connector under its provider name.
func (r *Registry) Register(c Connector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.connectors[c.Provider()] = c
}

// Resolve returns the connector for a provider name.
func (r *Registry) Resolve(provider string) (Connector, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.connectors[provider]
	if !ok {
		return nil, fmt.Errorf("%w: unknown provider %q", apperrors.ErrNotFound, provider)
	}
	return c, nil
}
