// Package venue implements the single-hop exact-input exchange collaborator.
// It prices swaps off the oracle's spot tables, charges its own fee, and
// enforces the caller's minimum-output floor, refusing the trade outright
// when the floor cannot be met.
package venue

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cosmossdk.io/math"

	"strongroom/internal/assets"
	"strongroom/internal/oracle"
	"strongroom/internal/sentinel"
	"strongroom/pkg/domain"
	dErrors "strongroom/pkg/domain-errors"
)

// Bank is the slice of the collateral ledger the venue needs to settle trades.
type Bank interface {
	Transfer(ctx context.Context, asset, from, to domain.Address, amount math.Int) error
}

// Venue holds its own inventory under a dedicated address and settles
// exact-input exchanges against it.
type Venue struct {
	mu      sync.RWMutex
	address domain.Address
	feeBps  int64
	oracle  *oracle.Oracle
	bank    Bank
	listed  map[domain.Address]assets.Asset
}

func New(address domain.Address, feeBps int64, o *oracle.Oracle, bank Bank) (*Venue, error) {
	if address.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "venue address required")
	}
	if feeBps < 0 || feeBps >= 10_000 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "venue fee out of range")
	}
	return &Venue{
		address: address,
		feeBps:  feeBps,
		oracle:  o,
		bank:    bank,
		listed:  make(map[domain.Address]assets.Asset),
	}, nil
}

// List makes an asset tradable. The venue needs decimals for quoting, so
// wrapped native and registry tokens are listed explicitly at wiring time.
func (v *Venue) List(a assets.Asset) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.listed[a.Address] = a
}

// Address is where the venue custodies its inventory.
func (v *Venue) Address() domain.Address { return v.address }

// Exchange performs an exact-input swap. The input is pulled from the
// recipient, the quoted output is paid from venue inventory, and the trade
// fails whole when output would land below minimumAmountOut or the deadline
// has passed.
func (v *Venue) Exchange(ctx context.Context, inputAsset, outputAsset domain.Address, amountIn, minimumAmountOut math.Int, recipient domain.Address, deadline time.Time) (math.Int, error) {
	if !deadline.IsZero() && time.Now().After(deadline) {
		return math.ZeroInt(), fmt.Errorf("deadline passed: %w", sentinel.ErrInvalidInput)
	}
	if amountIn.IsNegative() {
		return math.ZeroInt(), fmt.Errorf("negative input: %w", sentinel.ErrInvalidInput)
	}

	in, ok := v.assetFor(inputAsset)
	if !ok {
		return math.ZeroInt(), fmt.Errorf("input asset not listed: %w", sentinel.ErrNotFound)
	}
	out, ok := v.assetFor(outputAsset)
	if !ok {
		return math.ZeroInt(), fmt.Errorf("output asset not listed: %w", sentinel.ErrNotFound)
	}

	valueIn, err := v.oracle.ToReferenceCurrencySpot(ctx, in, amountIn)
	if err != nil {
		return math.ZeroInt(), err
	}
	// Venue fee comes off the quoted value before conversion to output units.
	quoted := valueIn.MulRaw(10_000 - v.feeBps).QuoRaw(10_000)
	amountOut, err := v.oracle.FromReferenceCurrencySpot(ctx, out, quoted)
	if err != nil {
		return math.ZeroInt(), err
	}

	if amountOut.LT(minimumAmountOut) {
		return math.ZeroInt(), fmt.Errorf("output %s below minimum %s: %w", amountOut, minimumAmountOut, sentinel.ErrSlippage)
	}

	if err := v.bank.Transfer(ctx, inputAsset, recipient, v.address, amountIn); err != nil {
		return math.ZeroInt(), err
	}
	if err := v.bank.Transfer(ctx, outputAsset, v.address, recipient, amountOut); err != nil {
		return math.ZeroInt(), err
	}
	return amountOut, nil
}

func (v *Venue) assetFor(address domain.Address) (assets.Asset, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	a, ok := v.listed[address]
	return a, ok
}
