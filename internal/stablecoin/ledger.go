// Package stablecoin implements the pegged-unit issuance ledger. The vault
// engine drives issuance and redemption; holders move balances freely.
package stablecoin

import (
	"context"
	"fmt"
	"sync"

	"cosmossdk.io/math"

	"strongroom/internal/sentinel"
	"strongroom/pkg/domain"
)

// Ledger tracks pegged-unit balances and total supply in memory.
type Ledger struct {
	mu       sync.RWMutex
	balances map[domain.Address]math.Int
	supply   math.Int
}

func NewLedger() *Ledger {
	return &Ledger{
		balances: make(map[domain.Address]math.Int),
		supply:   math.ZeroInt(),
	}
}

// Issue credits newly created pegged units to a holder.
func (l *Ledger) Issue(_ context.Context, to domain.Address, amount math.Int) error {
	if amount.IsNegative() {
		return fmt.Errorf("negative issuance: %w", sentinel.ErrInvalidInput)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balances[to] = l.balanceLocked(to).Add(amount)
	l.supply = l.supply.Add(amount)
	return nil
}

// Redeem destroys pegged units from a holder's balance.
func (l *Ledger) Redeem(_ context.Context, from domain.Address, amount math.Int) error {
	if amount.IsNegative() {
		return fmt.Errorf("negative redemption: %w", sentinel.ErrInvalidInput)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	bal := l.balanceLocked(from)
	if bal.LT(amount) {
		return fmt.Errorf("balance %s below redemption %s: %w", bal, amount, sentinel.ErrInsufficientFunds)
	}
	l.balances[from] = bal.Sub(amount)
	l.supply = l.supply.Sub(amount)
	return nil
}

// Transfer moves pegged units between holders, used for fee settlement.
func (l *Ledger) Transfer(_ context.Context, from, to domain.Address, amount math.Int) error {
	if amount.IsNegative() {
		return fmt.Errorf("negative transfer: %w", sentinel.ErrInvalidInput)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	bal := l.balanceLocked(from)
	if bal.LT(amount) {
		return fmt.Errorf("balance %s below transfer %s: %w", bal, amount, sentinel.ErrInsufficientFunds)
	}
	l.balances[from] = bal.Sub(amount)
	l.balances[to] = l.balanceLocked(to).Add(amount)
	return nil
}

// BalanceOf reports a holder's pegged-unit balance.
func (l *Ledger) BalanceOf(_ context.Context, holder domain.Address) (math.Int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balanceLocked(holder), nil
}

// TotalSupply reports outstanding pegged units across all holders.
func (l *Ledger) TotalSupply(_ context.Context) (math.Int, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.supply, nil
}

func (l *Ledger) balanceLocked(holder domain.Address) math.Int {
	if bal, ok := l.balances[holder]; ok {
		return bal
	}
	return math.ZeroInt()
}
