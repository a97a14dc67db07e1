package service_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"strongroom/internal/vault/service"
	"strongroom/pkg/domain"
	dErrors "strongroom/pkg/domain-errors"
)

func TestSwap_ExchangesWithinVault(t *testing.T) {
	f := newFixture(t)
	vault := f.createVault(t)
	f.fund(t, vault, f.gold.Address, 2000)

	// 0.5% engine fee takes 5 off the top; the venue's 1% fee turns the
	// remaining 995 into 985 silver.
	out, err := f.svc.Swap(f.ctx, service.SwapCommand{
		VaultID: vault.ID, Caller: f.owner,
		InputAsset: f.gold.Address, OutputAsset: f.silver.Address,
		AmountIn: math.NewInt(1000), MinimumAmountOut: math.ZeroInt(),
	})
	require.NoError(t, err)
	require.Equal(t, int64(985), out.Int64())

	require.Equal(t, int64(1000), f.balance(t, f.gold.Address, vault.Address))
	require.Equal(t, int64(985), f.balance(t, f.silver.Address, vault.Address))
	require.Equal(t, int64(5), f.balance(t, f.gold.Address, f.treasury))
}

func TestSwap_CallerFloorEnforced(t *testing.T) {
	f := newFixture(t)
	vault := f.createVault(t)
	f.fund(t, vault, f.gold.Address, 2000)

	_, err := f.svc.Swap(f.ctx, service.SwapCommand{
		VaultID: vault.ID, Caller: f.owner,
		InputAsset: f.gold.Address, OutputAsset: f.silver.Address,
		AmountIn: math.NewInt(1000), MinimumAmountOut: math.NewInt(990),
	})
	require.True(t, dErrors.HasCode(err, dErrors.CodeSlippage))

	// The fee is refunded when the trade fails whole.
	require.Equal(t, int64(2000), f.balance(t, f.gold.Address, vault.Address))
	require.Equal(t, int64(0), f.balance(t, f.silver.Address, vault.Address))
	require.Equal(t, int64(0), f.balance(t, f.gold.Address, f.treasury))
}

func TestSwap_PreservesCollateralization(t *testing.T) {
	f := newFixture(t)
	vault := f.createVault(t)
	f.fund(t, vault, f.gold.Address, 2000)
	f.mint(t, vault, 1300) // minted 1306, requiring 1959 in collateral value

	// Swapping 1000 gold away leaves 1000 in place, so the proceeds must be
	// worth at least 959. With silver trading at twice its average price the
	// venue delivers only 492 units, and the engine's floor rejects the trade.
	f.oracle.SetSpotPrice(f.silver.Address, decimal.NewFromInt(2))

	_, err := f.svc.Swap(f.ctx, service.SwapCommand{
		VaultID: vault.ID, Caller: f.owner,
		InputAsset: f.gold.Address, OutputAsset: f.silver.Address,
		AmountIn: math.NewInt(1000), MinimumAmountOut: math.ZeroInt(),
	})
	require.True(t, dErrors.HasCode(err, dErrors.CodeSlippage))
	require.Equal(t, int64(2000), f.balance(t, f.gold.Address, vault.Address))

	// At parity the venue pays 985, clearing the 959 floor, and the minted
	// amount is untouched by the swap.
	f.oracle.SetSpotPrice(f.silver.Address, decimal.NewFromInt(1))

	out, err := f.svc.Swap(f.ctx, service.SwapCommand{
		VaultID: vault.ID, Caller: f.owner,
		InputAsset: f.gold.Address, OutputAsset: f.silver.Address,
		AmountIn: math.NewInt(1000), MinimumAmountOut: math.ZeroInt(),
	})
	require.NoError(t, err)
	require.Equal(t, int64(985), out.Int64())

	status, err := f.svc.Status(f.ctx, vault.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1306), status.MintedAmount.Int64())
}

func TestSwap_NativeInput(t *testing.T) {
	f := newFixture(t)
	vault := f.createVault(t)
	f.fund(t, vault, domain.NativeAddress, 1000)

	out, err := f.svc.Swap(f.ctx, service.SwapCommand{
		VaultID: vault.ID, Caller: f.owner,
		InputAsset: domain.NativeAddress, OutputAsset: f.gold.Address,
		AmountIn: math.NewInt(200), MinimumAmountOut: math.ZeroInt(),
	})
	require.NoError(t, err)
	require.Equal(t, int64(197), out.Int64())

	// Fee of 1 paid native, 199 wrapped and traded away.
	require.Equal(t, int64(800), f.balance(t, domain.NativeAddress, vault.Address))
	require.Equal(t, int64(0), f.balance(t, f.wrapped, vault.Address))
	require.Equal(t, int64(197), f.balance(t, f.gold.Address, vault.Address))
	require.Equal(t, int64(1), f.balance(t, domain.NativeAddress, f.treasury))
}

func TestSwap_NativeOutput(t *testing.T) {
	f := newFixture(t)
	vault := f.createVault(t)
	f.fund(t, vault, f.gold.Address, 2000)

	out, err := f.svc.Swap(f.ctx, service.SwapCommand{
		VaultID: vault.ID, Caller: f.owner,
		InputAsset: f.gold.Address, OutputAsset: domain.NativeAddress,
		AmountIn: math.NewInt(1000), MinimumAmountOut: math.ZeroInt(),
	})
	require.NoError(t, err)
	require.Equal(t, int64(985), out.Int64())

	// Proceeds arrive wrapped and are unwrapped back to native in place.
	require.Equal(t, int64(985), f.balance(t, domain.NativeAddress, vault.Address))
	require.Equal(t, int64(0), f.balance(t, f.wrapped, vault.Address))
	require.Equal(t, int64(1000), f.balance(t, f.gold.Address, vault.Address))
}

func TestSwap_SameAsset(t *testing.T) {
	f := newFixture(t)
	vault := f.createVault(t)

	_, err := f.svc.Swap(f.ctx, service.SwapCommand{
		VaultID: vault.ID, Caller: f.owner,
		InputAsset: f.gold.Address, OutputAsset: f.gold.Address,
		AmountIn: math.NewInt(100), MinimumAmountOut: math.ZeroInt(),
	})
	require.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func TestSwap_OwnerOnly(t *testing.T) {
	f := newFixture(t)
	vault := f.createVault(t)
	f.fund(t, vault, f.gold.Address, 2000)

	_, err := f.svc.Swap(f.ctx, service.SwapCommand{
		VaultID: vault.ID, Caller: f.recipient,
		InputAsset: f.gold.Address, OutputAsset: f.silver.Address,
		AmountIn: math.NewInt(100), MinimumAmountOut: math.ZeroInt(),
	})
	require.True(t, dErrors.HasCode(err, dErrors.CodeForbidden))
}

func TestSwap_DeadlinePassed(t *testing.T) {
	f := newFixture(t)
	vault := f.createVault(t)
	f.fund(t, vault, f.gold.Address, 2000)

	_, err := f.svc.Swap(f.ctx, service.SwapCommand{
		VaultID: vault.ID, Caller: f.owner,
		InputAsset: f.gold.Address, OutputAsset: f.silver.Address,
		AmountIn: math.NewInt(100), MinimumAmountOut: math.ZeroInt(),
		Deadline: time.Now().Add(-time.Minute),
	})
	require.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
	require.Equal(t, int64(2000), f.balance(t, f.gold.Address, vault.Address))
}

func TestSwap_LiquidatedVault(t *testing.T) {
	f := newFixture(t)
	vault := f.createVault(t)
	f.fund(t, vault, f.gold.Address, 100)
	f.mint(t, vault, 60)
	f.oracle.SetAveragePrice(f.gold.Address, decimal.NewFromFloat(0.1))
	_, err := f.svc.Liquidate(f.ctx, f.authority, vault.ID)
	require.NoError(t, err)

	_, err = f.svc.Swap(f.ctx, service.SwapCommand{
		VaultID: vault.ID, Caller: f.owner,
		InputAsset: f.gold.Address, OutputAsset: f.silver.Address,
		AmountIn: math.NewInt(10), MinimumAmountOut: math.ZeroInt(),
	})
	require.True(t, dErrors.HasCode(err, dErrors.CodeVaultLiquidated))
}
