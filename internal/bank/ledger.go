// Package bank implements the collateral custody ledger: per-holder balances
// of the native asset and registry tokens, with the transfer primitives the
// vault engine drives during withdrawals, sweeps, and swaps.
package bank

import (
	"context"
	"fmt"
	"sync"

	"cosmossdk.io/math"

	"strongroom/internal/sentinel"
	"strongroom/pkg/domain"
)

// Ledger is the in-memory balance book. Asset keys use token addresses; the
// native asset lives under the zero-address sentinel like any other entry.
type Ledger struct {
	mu       sync.RWMutex
	balances map[domain.Address]map[domain.Address]math.Int
	rejects  map[domain.Address]bool
	wrapped  domain.Address
}

func NewLedger(wrappedNative domain.Address) *Ledger {
	return &Ledger{
		balances: make(map[domain.Address]map[domain.Address]math.Int),
		rejects:  make(map[domain.Address]bool),
		wrapped:  wrappedNative,
	}
}

// BalanceOf reports the holder's balance of an asset. Unknown pairs are zero.
func (l *Ledger) BalanceOf(_ context.Context, asset, holder domain.Address) (math.Int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balanceLocked(asset, holder), nil
}

// Deposit credits a holder, for genesis funding and venue inventory.
func (l *Ledger) Deposit(_ context.Context, asset, holder domain.Address, amount math.Int) error {
	if amount.IsNegative() {
		return fmt.Errorf("negative deposit: %w", sentinel.ErrInvalidInput)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.credit(asset, holder, amount)
	return nil
}

// Transfer moves amount of asset between holders. It fails loudly when the
// sender balance is insufficient or the recipient refuses the transfer.
func (l *Ledger) Transfer(_ context.Context, asset, from, to domain.Address, amount math.Int) error {
	if amount.IsNegative() {
		return fmt.Errorf("negative transfer: %w", sentinel.ErrInvalidInput)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.rejects[to] {
		return fmt.Errorf("recipient %s refused %s: %w", to, asset, sentinel.ErrTransferRejected)
	}
	bal := l.balanceLocked(asset, from)
	if bal.LT(amount) {
		return fmt.Errorf("balance %s below transfer %s: %w", bal, amount, sentinel.ErrInsufficientFunds)
	}
	l.balances[asset][from] = bal.Sub(amount)
	l.credit(asset, to, amount)
	return nil
}

// Wrap converts a holder's native balance into the wrapped representation.
func (l *Ledger) Wrap(_ context.Context, holder domain.Address, amount math.Int) error {
	return l.convert(holder, domain.NativeAddress, l.wrapped, amount)
}

// Unwrap converts a holder's wrapped-native balance back to native units.
func (l *Ledger) Unwrap(_ context.Context, holder domain.Address, amount math.Int) error {
	return l.convert(holder, l.wrapped, domain.NativeAddress, amount)
}

// SetRejecting marks a holder as refusing incoming transfers. Tests use it to
// simulate recipients that revert.
func (l *Ledger) SetRejecting(holder domain.Address, rejecting bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.rejects[holder] = rejecting
}

func (l *Ledger) convert(holder, fromAsset, toAsset domain.Address, amount math.Int) error {
	if amount.IsNegative() {
		return fmt.Errorf("negative conversion: %w", sentinel.ErrInvalidInput)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	bal := l.balanceLocked(fromAsset, holder)
	if bal.LT(amount) {
		return fmt.Errorf("balance %s below conversion %s: %w", bal, amount, sentinel.ErrInsufficientFunds)
	}
	l.balances[fromAsset][holder] = bal.Sub(amount)
	l.credit(toAsset, holder, amount)
	return nil
}

func (l *Ledger) balanceLocked(asset, holder domain.Address) math.Int {
	if holders, ok := l.balances[asset]; ok {
		if bal, ok := holders[holder]; ok {
			return bal
		}
	}
	return math.ZeroInt()
}

func (l *Ledger) credit(asset, holder domain.Address, amount math.Int) {
	if _, ok := l.balances[asset]; !ok {
		l.balances[asset] = make(map[domain.Address]math.Int)
	}
	l.balances[asset][holder] = l.balanceLocked(asset, holder).Add(amount)
}
