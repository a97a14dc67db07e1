// Package seeder provisions demo market data for development deployments:
// approved assets, oracle prices, and venue inventory. Production wiring
// replaces this with real registry and oracle feeds.
package seeder

import (
	"context"
	"fmt"
	"log/slog"

	"cosmossdk.io/math"
	"github.com/shopspring/decimal"

	"strongroom/internal/assets"
	"strongroom/internal/bank"
	"strongroom/internal/oracle"
	"strongroom/internal/venue"
	"strongroom/pkg/domain"
)

// Seeder populates the in-memory collaborators with demo data.
type Seeder struct {
	registry *assets.Registry
	oracle   *oracle.Oracle
	bank     *bank.Ledger
	venue    *venue.Venue
	logger   *slog.Logger
}

func New(registry *assets.Registry, o *oracle.Oracle, b *bank.Ledger, v *venue.Venue, logger *slog.Logger) *Seeder {
	return &Seeder{registry: registry, oracle: o, bank: b, venue: v, logger: logger}
}

// SeedAll approves demo collateral assets, prices them, and stocks the venue
// so swaps settle out of the box.
func (s *Seeder) SeedAll(ctx context.Context, wrappedNative domain.Address) error {
	s.logger.Info("seeding demo market data...")

	demo := []struct {
		asset assets.Asset
		price decimal.Decimal
	}{
		// Prices are reference smallest units per whole token.
		{assets.Asset{Symbol: "WETH", Address: domain.NewAddress(), Decimals: 18}, decimal.New(2000, 6)},
		{assets.Asset{Symbol: "WBTC", Address: domain.NewAddress(), Decimals: 8}, decimal.New(60_000, 6)},
		{assets.Asset{Symbol: "LINK", Address: domain.NewAddress(), Decimals: 18}, decimal.New(15, 6)},
	}

	for _, d := range demo {
		if err := s.registry.Approve(ctx, &d.asset); err != nil {
			return fmt.Errorf("failed to approve %s: %w", d.asset.Symbol, err)
		}
		s.oracle.SetPrice(d.asset.Address, d.price)
		s.venue.List(d.asset)

		// Venue inventory: a million whole tokens of each.
		inventory := math.NewInt(1_000_000).Mul(math.NewIntWithDecimal(1, int(d.asset.Decimals)))
		if err := s.bank.Deposit(ctx, d.asset.Address, s.venue.Address(), inventory); err != nil {
			return fmt.Errorf("failed to stock venue with %s: %w", d.asset.Symbol, err)
		}
		s.logger.Info("seeded asset",
			"symbol", d.asset.Symbol,
			"address", d.asset.Address.String(),
			"price", d.price.String(),
		)
	}

	// Native and wrapped native trade at par with each other.
	nativePrice := decimal.New(3000, 6)
	s.oracle.SetPrice(domain.NativeAddress, nativePrice)
	s.oracle.SetPrice(wrappedNative, nativePrice)
	s.venue.List(assets.Asset{Symbol: "WNAT", Address: wrappedNative, Decimals: 18})
	if err := s.bank.Deposit(ctx, wrappedNative, s.venue.Address(), math.NewIntWithDecimal(1_000_000, 18)); err != nil {
		return fmt.Errorf("failed to stock venue with wrapped native: %w", err)
	}

	s.logger.Info("demo market data seeded", "assets", len(demo)+1)
	return nil
}
