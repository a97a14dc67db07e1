package stablecoin

import (
	"context"
	"errors"
	"testing"

	"cosmossdk.io/math"

	"strongroom/internal/sentinel"
	"strongroom/pkg/domain"
)

const (
	alice = domain.Address("0x0000000000000000000000000000000000000a11")
	bob   = domain.Address("0x0000000000000000000000000000000000000b0b")
)

func TestIssueRedeemSupply(t *testing.T) {
	l := NewLedger()
	ctx := context.Background()

	if err := l.Issue(ctx, alice, math.NewInt(1000)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	supply, _ := l.TotalSupply(ctx)
	if !supply.Equal(math.NewInt(1000)) {
		t.Fatalf("expected supply 1000, got %s", supply)
	}

	if err := l.Redeem(ctx, alice, math.NewInt(400)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bal, _ := l.BalanceOf(ctx, alice)
	supply, _ = l.TotalSupply(ctx)
	if !bal.Equal(math.NewInt(600)) || !supply.Equal(math.NewInt(600)) {
		t.Fatalf("expected 600/600, got %s/%s", bal, supply)
	}
}

func TestRedeemInsufficientBalance(t *testing.T) {
	l := NewLedger()
	err := l.Redeem(context.Background(), alice, math.NewInt(1))
	if !errors.Is(err, sentinel.ErrInsufficientFunds) {
		t.Fatalf("expected insufficient funds, got %v", err)
	}
}

func TestTransferMovesBalanceNotSupply(t *testing.T) {
	l := NewLedger()
	ctx := context.Background()
	_ = l.Issue(ctx, alice, math.NewInt(100))

	if err := l.Transfer(ctx, alice, bob, math.NewInt(30)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	aliceBal, _ := l.BalanceOf(ctx, alice)
	bobBal, _ := l.BalanceOf(ctx, bob)
	supply, _ := l.TotalSupply(ctx)
	if !aliceBal.Equal(math.NewInt(70)) || !bobBal.Equal(math.NewInt(30)) {
		t.Fatalf("unexpected balances %s/%s", aliceBal, bobBal)
	}
	if !supply.Equal(math.NewInt(100)) {
		t.Fatalf("transfer must not change supply, got %s", supply)
	}

	if err := l.Transfer(ctx, bob, alice, math.NewInt(31)); !errors.Is(err, sentinel.ErrInsufficientFunds) {
		t.Fatalf("expected insufficient funds, got %v", err)
	}
}
