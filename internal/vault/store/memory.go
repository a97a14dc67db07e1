// Package store persists vault aggregates.
package store

import (
	"context"
	"sync"

	"strongroom/internal/sentinel"
	"strongroom/internal/vault/models"
	"strongroom/pkg/domain"
)

// ErrNotFound is returned when a vault is not found.
var ErrNotFound = sentinel.ErrNotFound

// InMemory stores vaults in memory. It hands out clones so callers mutate
// snapshots and commit through Update, which keeps the service's
// all-or-nothing rollback semantics honest.
type InMemory struct {
	mu     sync.RWMutex
	vaults map[string]*models.Vault
}

func NewInMemory() *InMemory {
	return &InMemory{vaults: make(map[string]*models.Vault)}
}

// Create persists a new vault.
func (s *InMemory) Create(_ context.Context, v *models.Vault) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := v.ID.String()
	if _, exists := s.vaults[key]; exists {
		return sentinel.ErrInvalidState
	}
	s.vaults[key] = v.Clone()
	return nil
}

// Update commits a mutated snapshot.
func (s *InMemory) Update(_ context.Context, v *models.Vault) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := v.ID.String()
	if _, exists := s.vaults[key]; !exists {
		return ErrNotFound
	}
	s.vaults[key] = v.Clone()
	return nil
}

// FindByID retrieves a vault snapshot.
func (s *InMemory) FindByID(_ context.Context, vaultID domain.VaultID) (*models.Vault, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.vaults[vaultID.String()]; ok {
		return v.Clone(), nil
	}
	return nil, ErrNotFound
}

// List returns snapshots of every vault, for indexing endpoints.
func (s *InMemory) List(_ context.Context) ([]*models.Vault, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Vault, 0, len(s.vaults))
	for _, v := range s.vaults {
		out = append(out, v.Clone())
	}
	return out, nil
}
