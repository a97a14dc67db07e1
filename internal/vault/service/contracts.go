package service

//go:generate mockgen -source=contracts.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"cosmossdk.io/math"

	"strongroom/internal/assets"
	"strongroom/internal/protocol"
	"strongroom/internal/vault/models"
	"strongroom/pkg/domain"
	"strongroom/pkg/platform/audit"
)

// VaultStore defines the persistence contract for vault aggregates.
type VaultStore interface {
	Create(ctx context.Context, v *models.Vault) error
	Update(ctx context.Context, v *models.Vault) error
	FindByID(ctx context.Context, vaultID domain.VaultID) (*models.Vault, error)
	List(ctx context.Context) ([]*models.Vault, error)
}

// AssetRegistry is the approved-asset list collaborator. Untracked addresses
// resolve to (nil, false) so sweeps of residual tokens skip the collateral gate.
type AssetRegistry interface {
	List(ctx context.Context) ([]assets.Asset, error)
	Get(ctx context.Context, symbol string) (*assets.Asset, error)
	GetByAddress(ctx context.Context, address domain.Address) (*assets.Asset, bool)
}

// Valuer converts between asset amounts and the reference currency. The
// engine values collateral with average prices only; spot pricing belongs to
// the venue.
type Valuer interface {
	ToReferenceCurrency(ctx context.Context, asset assets.Asset, amount math.Int) (math.Int, error)
	FromReferenceCurrency(ctx context.Context, asset assets.Asset, value math.Int) (math.Int, error)
}

// PeggedLedger issues and redeems the pegged unit and settles fees in it.
type PeggedLedger interface {
	Issue(ctx context.Context, to domain.Address, amount math.Int) error
	Redeem(ctx context.Context, from domain.Address, amount math.Int) error
	Transfer(ctx context.Context, from, to domain.Address, amount math.Int) error
}

// CollateralLedger custodies vault balances of the native asset and tokens.
type CollateralLedger interface {
	BalanceOf(ctx context.Context, asset, holder domain.Address) (math.Int, error)
	Transfer(ctx context.Context, asset, from, to domain.Address, amount math.Int) error
	Wrap(ctx context.Context, holder domain.Address, amount math.Int) error
	Unwrap(ctx context.Context, holder domain.Address, amount math.Int) error
}

// ExchangeVenue is the single-hop exact-input exchange primitive. The venue
// enforces minimumAmountOut as a hard floor.
type ExchangeVenue interface {
	Exchange(ctx context.Context, inputAsset, outputAsset domain.Address, amountIn, minimumAmountOut math.Int, recipient domain.Address, deadline time.Time) (math.Int, error)
}

// ConfigSource serves the registry authority's live parameters. Operations
// re-read on every call; nothing is cached.
type ConfigSource interface {
	Config(ctx context.Context) (protocol.Config, error)
}

// AuditPublisher receives lifecycle events for external indexing.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}
