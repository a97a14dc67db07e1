package service_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"strongroom/internal/vault/service"
	"strongroom/pkg/domain"
	dErrors "strongroom/pkg/domain-errors"
)

func TestRemoveCollateral_FreeWhenNothingMinted(t *testing.T) {
	f := newFixture(t)
	vault := f.createVault(t)
	f.fund(t, vault, f.gold.Address, 2000)

	err := f.svc.RemoveCollateral(f.ctx, service.RemoveCollateralCommand{
		VaultID: vault.ID, Caller: f.owner, Asset: f.gold.Address,
		Amount: math.NewInt(2000), Recipient: f.recipient,
	})
	require.NoError(t, err)
	require.Equal(t, int64(2000), f.balance(t, f.gold.Address, f.recipient))
	require.Equal(t, int64(0), f.balance(t, f.gold.Address, vault.Address))
}

func TestRemoveCollateral_GateAgainstMinted(t *testing.T) {
	f := newFixture(t)
	vault := f.createVault(t)
	f.fund(t, vault, f.gold.Address, 2000)
	f.mint(t, vault, 1300) // minted 1306, ceiling 1333, headroom 27

	// The removed value comes off the ceiling one for one: 1333 - 27 = 1306.
	err := f.svc.RemoveCollateral(f.ctx, service.RemoveCollateralCommand{
		VaultID: vault.ID, Caller: f.owner, Asset: f.gold.Address,
		Amount: math.NewInt(27), Recipient: f.recipient,
	})
	require.NoError(t, err)

	// One more unit would leave the ceiling at 1305, below the minted 1306.
	err = f.svc.RemoveCollateral(f.ctx, service.RemoveCollateralCommand{
		VaultID: vault.ID, Caller: f.owner, Asset: f.gold.Address,
		Amount: math.NewInt(1), Recipient: f.recipient,
	})
	require.True(t, dErrors.HasCode(err, dErrors.CodeUndercollateralized))
	require.Equal(t, int64(1973), f.balance(t, f.gold.Address, vault.Address))
}

func TestRemoveCollateral_ValueAboveCeilingRejected(t *testing.T) {
	f := newFixture(t)
	vault := f.createVault(t)
	f.fund(t, vault, f.gold.Address, 2000)
	f.mint(t, vault, 10) // minted 10, ceiling 1333

	// A removal worth more than the whole ceiling is rejected outright, even
	// though the 500 left behind would comfortably back the minted 10.
	err := f.svc.RemoveCollateral(f.ctx, service.RemoveCollateralCommand{
		VaultID: vault.ID, Caller: f.owner, Asset: f.gold.Address,
		Amount: math.NewInt(1500), Recipient: f.recipient,
	})
	require.True(t, dErrors.HasCode(err, dErrors.CodeUndercollateralized))
	require.Equal(t, int64(2000), f.balance(t, f.gold.Address, vault.Address))
}

func TestRemoveCollateral_RejectsNativeAddress(t *testing.T) {
	f := newFixture(t)
	vault := f.createVault(t)

	err := f.svc.RemoveCollateral(f.ctx, service.RemoveCollateralCommand{
		VaultID: vault.ID, Caller: f.owner, Asset: domain.NativeAddress,
		Amount: math.NewInt(1), Recipient: f.recipient,
	})
	require.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func TestRemoveCollateral_UnapprovedAsset(t *testing.T) {
	f := newFixture(t)
	vault := f.createVault(t)

	err := f.svc.RemoveCollateral(f.ctx, service.RemoveCollateralCommand{
		VaultID: vault.ID, Caller: f.owner, Asset: domain.NewAddress(),
		Amount: math.NewInt(1), Recipient: f.recipient,
	})
	require.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
}

func TestRemoveCollateralNative(t *testing.T) {
	f := newFixture(t)
	vault := f.createVault(t)
	f.fund(t, vault, f.gold.Address, 2000)
	f.fund(t, vault, domain.NativeAddress, 500)
	f.mint(t, vault, 1100) // ceiling on 2500 is 1666; minted 1105

	// Dropping all 500 native takes the ceiling to 1166, still above 1105.
	err := f.svc.RemoveCollateralNative(f.ctx, service.RemoveCollateralCommand{
		VaultID: vault.ID, Caller: f.owner,
		Amount: math.NewInt(500), Recipient: f.recipient,
	})
	require.NoError(t, err)
	require.Equal(t, int64(500), f.balance(t, domain.NativeAddress, f.recipient))

	// Gold alone gives a ceiling of 1333, headroom 228; removing 229 fails.
	err = f.svc.RemoveCollateral(f.ctx, service.RemoveCollateralCommand{
		VaultID: vault.ID, Caller: f.owner, Asset: f.gold.Address,
		Amount: math.NewInt(229), Recipient: f.recipient,
	})
	require.True(t, dErrors.HasCode(err, dErrors.CodeUndercollateralized))
}

func TestRemoveAsset_UntrackedTokenLeavesFreely(t *testing.T) {
	f := newFixture(t)
	vault := f.createVault(t)
	f.fund(t, vault, f.gold.Address, 2000)
	f.mint(t, vault, 1300)

	junk := domain.NewAddress()
	f.fund(t, vault, junk, 777)

	// The junk token carries no collateral value, so the gate never engages
	// even with the vault minted close to its ceiling.
	err := f.svc.RemoveAsset(f.ctx, service.RemoveAssetCommand{
		VaultID: vault.ID, Caller: f.owner, Asset: junk,
		Amount: math.NewInt(777), Recipient: f.recipient,
	})
	require.NoError(t, err)
	require.Equal(t, int64(777), f.balance(t, junk, f.recipient))
}

func TestRemoveAsset_ApprovedTokenStillGated(t *testing.T) {
	f := newFixture(t)
	vault := f.createVault(t)
	f.fund(t, vault, f.gold.Address, 2000)
	f.mint(t, vault, 1300)

	err := f.svc.RemoveAsset(f.ctx, service.RemoveAssetCommand{
		VaultID: vault.ID, Caller: f.owner, Asset: f.gold.Address,
		Amount: math.NewInt(100), Recipient: f.recipient,
	})
	require.True(t, dErrors.HasCode(err, dErrors.CodeUndercollateralized))
	require.Equal(t, int64(2000), f.balance(t, f.gold.Address, vault.Address))
}

func TestWithdraw_OwnerOnly(t *testing.T) {
	f := newFixture(t)
	vault := f.createVault(t)
	f.fund(t, vault, f.gold.Address, 2000)

	err := f.svc.RemoveCollateral(f.ctx, service.RemoveCollateralCommand{
		VaultID: vault.ID, Caller: f.recipient, Asset: f.gold.Address,
		Amount: math.NewInt(10), Recipient: f.recipient,
	})
	require.True(t, dErrors.HasCode(err, dErrors.CodeForbidden))
}

func TestWithdraw_LiquidatedVault(t *testing.T) {
	f := newFixture(t)
	vault := f.createVault(t)
	f.fund(t, vault, f.gold.Address, 100)

	// Mint, crash the price, liquidate, then try to withdraw.
	f.mint(t, vault, 60)
	f.oracle.SetAveragePrice(f.gold.Address, decimal.NewFromFloat(0.1))
	_, err := f.svc.Liquidate(f.ctx, f.authority, vault.ID)
	require.NoError(t, err)

	err = f.svc.RemoveCollateral(f.ctx, service.RemoveCollateralCommand{
		VaultID: vault.ID, Caller: f.owner, Asset: f.gold.Address,
		Amount: math.NewInt(1), Recipient: f.recipient,
	})
	require.True(t, dErrors.HasCode(err, dErrors.CodeVaultLiquidated))
}
