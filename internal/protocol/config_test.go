package protocol

import (
	"context"
	"testing"
)

func validConfig() Config {
	return Config{
		MintFeeRate:                50,
		BurnFeeRate:                50,
		SwapFeeRate:                30,
		CollateralizationThreshold: 15_000,
		Authority:                  "0x0000000000000000000000000000000000000aaa",
		Treasury:                   "0x0000000000000000000000000000000000000fee",
	}
}

func TestNewStoreValidates(t *testing.T) {
	if _, err := NewStore(validConfig()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := validConfig()
	bad.CollateralizationThreshold = 9_000
	if _, err := NewStore(bad); err == nil {
		t.Fatalf("expected rejection of sub-100%% threshold")
	}

	bad = validConfig()
	bad.MintFeeRate = 10_001
	if _, err := NewStore(bad); err == nil {
		t.Fatalf("expected rejection of fee above 100%%")
	}

	bad = validConfig()
	bad.Treasury = ""
	if _, err := NewStore(bad); err == nil {
		t.Fatalf("expected rejection of missing treasury")
	}
}

func TestUpdateTakesEffectOnNextRead(t *testing.T) {
	s, err := NewStore(validConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	next := validConfig()
	next.CollateralizationThreshold = 20_000
	if err := s.Update(ctx, next); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := s.Config(ctx)
	if got.CollateralizationThreshold != 20_000 {
		t.Fatalf("expected live read of updated threshold, got %d", got.CollateralizationThreshold)
	}

	bad := validConfig()
	bad.BurnFeeRate = -1
	if err := s.Update(ctx, bad); err == nil {
		t.Fatalf("expected validation failure on update")
	}
}
