// Package domain provides type-safe identifiers to prevent mixing up IDs at compile time.
package domain

import (
	"github.com/google/uuid"

	dErrors "strongroom/pkg/domain-errors"
)

// VaultID identifies a single collateral vault.
type VaultID uuid.UUID

// ParseVaultID validates a vault ID at trust boundaries (handlers, API inputs).
func ParseVaultID(s string) (VaultID, error) {
	if s == "" {
		return VaultID(uuid.Nil), dErrors.New(dErrors.CodeInvalidInput, "vault ID cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return VaultID(uuid.Nil), dErrors.New(dErrors.CodeInvalidInput, "invalid vault ID format")
	}
	return VaultID(id), nil
}

func NewVaultID() VaultID { return VaultID(uuid.New()) }

func (id VaultID) String() string { return uuid.UUID(id).String() }

// IsNil is used for service-layer validation. Nil IDs pass parsing so store
// lookups can return proper "not found" errors for consistency.
func (id VaultID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
