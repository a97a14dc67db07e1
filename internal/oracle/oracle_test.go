package oracle

import (
	"context"
	"testing"

	"cosmossdk.io/math"
	"github.com/shopspring/decimal"

	"strongroom/internal/assets"
)

var weth = assets.Asset{Symbol: "WETH", Address: "0x00000000000000000000000000000000000000e1", Decimals: 18}

func TestToReferenceCurrency(t *testing.T) {
	o := New()
	// 2000 reference units per whole token.
	o.SetAveragePrice(weth.Address, decimal.NewFromInt(2000))

	// 1.5 tokens.
	amount, _ := math.NewIntFromString("1500000000000000000")
	value, err := o.ToReferenceCurrency(context.Background(), weth, amount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !value.Equal(math.NewInt(3000)) {
		t.Fatalf("expected 3000, got %s", value)
	}
}

func TestToReferenceCurrencyTruncates(t *testing.T) {
	o := New()
	o.SetAveragePrice(weth.Address, decimal.NewFromInt(3))

	// 0.5 tokens at price 3 is 1.5, truncated to 1.
	amount, _ := math.NewIntFromString("500000000000000000")
	value, err := o.ToReferenceCurrency(context.Background(), weth, amount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !value.Equal(math.NewInt(1)) {
		t.Fatalf("expected truncation to 1, got %s", value)
	}
}

func TestSpotAndAverageAreIndependent(t *testing.T) {
	o := New()
	o.SetAveragePrice(weth.Address, decimal.NewFromInt(2000))
	o.SetSpotPrice(weth.Address, decimal.NewFromInt(1900))

	amount, _ := math.NewIntFromString("1000000000000000000")

	avg, err := o.ToReferenceCurrency(context.Background(), weth, amount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	spot, err := o.ToReferenceCurrencySpot(context.Background(), weth, amount)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !avg.Equal(math.NewInt(2000)) || !spot.Equal(math.NewInt(1900)) {
		t.Fatalf("expected 2000/1900, got %s/%s", avg, spot)
	}
}

func TestFromReferenceCurrencyRoundTrip(t *testing.T) {
	o := New()
	o.SetAveragePrice(weth.Address, decimal.NewFromInt(2000))

	amount, err := o.FromReferenceCurrency(context.Background(), weth, math.NewInt(1000))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 1000 reference units at 2000/token is 0.5 tokens.
	want, _ := math.NewIntFromString("500000000000000000")
	if !amount.Equal(want) {
		t.Fatalf("expected %s, got %s", want, amount)
	}
}

func TestMissingPrice(t *testing.T) {
	o := New()
	if _, err := o.ToReferenceCurrency(context.Background(), weth, math.NewInt(1)); err == nil {
		t.Fatalf("expected error for unpriced asset")
	}
	if _, err := o.FromReferenceCurrency(context.Background(), weth, math.NewInt(1)); err == nil {
		t.Fatalf("expected error for unpriced asset")
	}
}
