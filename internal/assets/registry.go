package assets

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"strongroom/internal/sentinel"
	"strongroom/pkg/domain"
)

// ErrNotFound is returned when an asset is not in the registry.
var ErrNotFound = sentinel.ErrNotFound

// Registry is the in-memory approved-asset list. Read paths mirror the
// external collaborator contract: list everything, look up by symbol, or
// probe by address without an error for untracked tokens.
type Registry struct {
	mu      sync.RWMutex
	bySym   map[string]*Asset
	addrIdx map[domain.Address]string
}

func NewRegistry() *Registry {
	return &Registry{
		bySym:   make(map[string]*Asset),
		addrIdx: make(map[domain.Address]string),
	}
}

// Approve adds an asset if neither its symbol nor address is already registered.
func (r *Registry) Approve(_ context.Context, a *Asset) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToUpper(a.Symbol)
	if _, exists := r.bySym[key]; exists {
		return fmt.Errorf("asset symbol already registered: %w", sentinel.ErrInvalidInput)
	}
	if _, exists := r.addrIdx[a.Address]; exists {
		return fmt.Errorf("asset address already registered: %w", sentinel.ErrInvalidInput)
	}
	cp := *a
	r.bySym[key] = &cp
	r.addrIdx[a.Address] = key
	return nil
}

// List returns every approved asset. An empty registry yields an empty slice.
func (r *Registry) List(_ context.Context) ([]Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Asset, 0, len(r.bySym))
	for _, a := range r.bySym {
		out = append(out, *a)
	}
	return out, nil
}

// Get retrieves an approved asset by symbol (case-insensitive).
func (r *Registry) Get(_ context.Context, symbol string) (*Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if a, ok := r.bySym[strings.ToUpper(symbol)]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, ErrNotFound
}

// GetByAddress probes the registry by token address. Untracked addresses
// return (nil, false) rather than an error: callers such as RemoveAsset only
// need to know whether the token counts toward collateral.
func (r *Registry) GetByAddress(_ context.Context, address domain.Address) (*Asset, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if key, ok := r.addrIdx[address]; ok {
		cp := *r.bySym[key]
		return &cp, true
	}
	return nil, false
}
