// Package oracle implements the valuation service: bidirectional conversion
// between asset amounts and the common reference currency.
package oracle

import (
	"context"
	"fmt"
	"sync"

	"cosmossdk.io/math"
	"github.com/shopspring/decimal"

	"strongroom/internal/assets"
	"strongroom/internal/sentinel"
	"strongroom/pkg/domain"
)

// Oracle keeps a per-asset price table. Prices are quoted in reference
// smallest units per whole token, so converting an amount in token smallest
// units divides by 10^decimals. Average prices feed collateral valuation;
// spot prices feed venue-facing conversions.
type Oracle struct {
	mu      sync.RWMutex
	average map[domain.Address]decimal.Decimal
	spot    map[domain.Address]decimal.Decimal
}

func New() *Oracle {
	return &Oracle{
		average: make(map[domain.Address]decimal.Decimal),
		spot:    make(map[domain.Address]decimal.Decimal),
	}
}

// SetAveragePrice updates the time-weighted price for an asset.
func (o *Oracle) SetAveragePrice(address domain.Address, price decimal.Decimal) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.average[address] = price
}

// SetSpotPrice updates the instantaneous price for an asset.
func (o *Oracle) SetSpotPrice(address domain.Address, price decimal.Decimal) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.spot[address] = price
}

// SetPrice updates both tables at once, for wiring and tests.
func (o *Oracle) SetPrice(address domain.Address, price decimal.Decimal) {
	o.SetAveragePrice(address, price)
	o.SetSpotPrice(address, price)
}

// ToReferenceCurrency converts an asset amount to reference-currency value
// using the average price. Results truncate toward zero.
func (o *Oracle) ToReferenceCurrency(_ context.Context, asset assets.Asset, amount math.Int) (math.Int, error) {
	price, err := o.averageFor(asset.Address)
	if err != nil {
		return math.ZeroInt(), err
	}
	return toValue(amount, price, asset.Decimals), nil
}

// ToReferenceCurrencySpot converts an asset amount using the spot price.
func (o *Oracle) ToReferenceCurrencySpot(_ context.Context, asset assets.Asset, amount math.Int) (math.Int, error) {
	price, err := o.spotFor(asset.Address)
	if err != nil {
		return math.ZeroInt(), err
	}
	return toValue(amount, price, asset.Decimals), nil
}

// FromReferenceCurrency converts a reference-currency value into asset
// smallest units using the average price. Results truncate toward zero.
func (o *Oracle) FromReferenceCurrency(_ context.Context, asset assets.Asset, value math.Int) (math.Int, error) {
	price, err := o.averageFor(asset.Address)
	if err != nil {
		return math.ZeroInt(), err
	}
	if price.IsZero() {
		return math.ZeroInt(), fmt.Errorf("zero price for %s: %w", asset.Address, sentinel.ErrUnavailable)
	}
	amount := decimal.NewFromBigInt(value.BigInt(), 0).
		Shift(int32(asset.Decimals)).
		Div(price).
		Floor()
	return math.NewIntFromBigInt(amount.BigInt()), nil
}

// FromReferenceCurrencySpot converts a reference-currency value into asset
// smallest units using the spot price, for venue-facing quotes.
func (o *Oracle) FromReferenceCurrencySpot(_ context.Context, asset assets.Asset, value math.Int) (math.Int, error) {
	price, err := o.spotFor(asset.Address)
	if err != nil {
		return math.ZeroInt(), err
	}
	if price.IsZero() {
		return math.ZeroInt(), fmt.Errorf("zero price for %s: %w", asset.Address, sentinel.ErrUnavailable)
	}
	amount := decimal.NewFromBigInt(value.BigInt(), 0).
		Shift(int32(asset.Decimals)).
		Div(price).
		Floor()
	return math.NewIntFromBigInt(amount.BigInt()), nil
}

func (o *Oracle) averageFor(address domain.Address) (decimal.Decimal, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	price, ok := o.average[address]
	if !ok {
		return decimal.Zero, fmt.Errorf("no average price for %s: %w", address, sentinel.ErrNotFound)
	}
	return price, nil
}

func (o *Oracle) spotFor(address domain.Address) (decimal.Decimal, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	price, ok := o.spot[address]
	if !ok {
		return decimal.Zero, fmt.Errorf("no spot price for %s: %w", address, sentinel.ErrNotFound)
	}
	return price, nil
}

func toValue(amount math.Int, price decimal.Decimal, decimals uint8) math.Int {
	value := decimal.NewFromBigInt(amount.BigInt(), 0).
		Mul(price).
		Shift(-int32(decimals)).
		Floor()
	return math.NewIntFromBigInt(value.BigInt())
}
