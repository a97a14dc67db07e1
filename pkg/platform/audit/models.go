// Package audit defines the observable record of vault state changes.
// Events are emitted from domain logic and fanned out to sinks for external
// indexing; they are not part of persisted vault state.
package audit

import (
	"time"

	"cosmossdk.io/math"

	"strongroom/pkg/domain"
)

// Event captures one value-changing vault action. Keep it transport-agnostic
// so publishers can fan out to logs, metrics, or brokers.
type Event struct {
	Timestamp time.Time
	VaultID   domain.VaultID
	Action    Action
	Asset     domain.Address
	Amount    math.Int
	Fee       math.Int
	Recipient domain.Address
	RequestID string
}

type Action string

const (
	ActionVaultCreated      Action = "vault_created"
	ActionOwnerChanged      Action = "owner_changed"
	ActionPeggedMinted      Action = "pegged_minted"
	ActionPeggedBurned      Action = "pegged_burned"
	ActionCollateralRemoved Action = "collateral_removed"
	ActionAssetRemoved      Action = "asset_removed"
	ActionCollateralSwapped Action = "collateral_swapped"
	ActionVaultLiquidated   Action = "vault_liquidated"
)
