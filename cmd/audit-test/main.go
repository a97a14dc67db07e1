// Package main is a manual smoke tool for the audit pipeline: it emits vault
// events through the async store publisher, floods the buffer to exercise the
// drop path, and reports what reached the store.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"cosmossdk.io/math"

	"strongroom/pkg/domain"
	"strongroom/pkg/platform/audit"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	store := audit.NewInMemoryStore()
	publisher := audit.NewStorePublisher(
		store,
		audit.WithAsyncBuffer(10), // Small buffer to test backpressure
		audit.WithPublisherLogger(logger),
	)

	ctx := context.Background()
	vaultID := domain.NewVaultID()

	fmt.Println("\n=== Audit Publisher Test ===")

	// Test 1: Emit some events normally
	fmt.Println("1. Emitting 5 events (should all succeed)...")
	for i := 0; i < 5; i++ {
		event := audit.Event{
			VaultID:   vaultID,
			Action:    audit.ActionPeggedMinted,
			Amount:    math.NewInt(int64(100 * (i + 1))),
			Fee:       math.NewInt(1),
			Recipient: domain.NewAddress(),
		}
		if err := publisher.Emit(ctx, event); err != nil {
			fmt.Printf("   Event %d failed: %v\n", i+1, err)
		} else {
			fmt.Printf("   Event %d emitted\n", i+1)
		}
		time.Sleep(50 * time.Millisecond) // Small delay to let worker process
	}

	// Give worker time to process
	time.Sleep(200 * time.Millisecond)

	// Test 2: Flood the buffer to trigger drops
	fmt.Println("\n2. Flooding buffer with 20 events (buffer size is 10)...")
	for i := 0; i < 20; i++ {
		event := audit.Event{
			VaultID: vaultID,
			Action:  audit.ActionCollateralSwapped,
			Amount:  math.NewInt(int64(i + 1)),
			Fee:     math.ZeroInt(),
		}
		_ = publisher.Emit(ctx, event)
	}
	fmt.Println("   Emitted 20 events; drops are logged above")

	// Drain what remains
	publisher.Close()

	// Test 3: Check store contents
	fmt.Println("\n3. Checking store contents...")
	events, err := store.ListByVault(ctx, vaultID.String())
	if err != nil {
		fmt.Printf("   Failed to list events: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("   Total events in store for vault %s: %d\n", vaultID, len(events))
	for _, e := range events {
		fmt.Printf("   %s  %-20s amount=%s fee=%s\n",
			e.Timestamp.Format(time.RFC3339), e.Action, e.Amount, e.Fee)
	}
}
