package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"strongroom/internal/assets"
	"strongroom/internal/protocol"
	"strongroom/internal/sentinel"
	"strongroom/internal/vault/models"
	"strongroom/internal/vault/service"
	"strongroom/internal/vault/service/mocks"
	"strongroom/pkg/domain"
	dErrors "strongroom/pkg/domain-errors"
)

// mockDeps bundles one mock per collaborator so failure-injection tests can
// script exact call sequences.
type mockDeps struct {
	store      *mocks.MockVaultStore
	registry   *mocks.MockAssetRegistry
	valuer     *mocks.MockValuer
	pegged     *mocks.MockPeggedLedger
	collateral *mocks.MockCollateralLedger
	venue      *mocks.MockExchangeVenue
	config     *mocks.MockConfigSource

	svc *service.VaultService
}

func newMockDeps(ctrl *gomock.Controller) *mockDeps {
	d := &mockDeps{
		store:      mocks.NewMockVaultStore(ctrl),
		registry:   mocks.NewMockAssetRegistry(ctrl),
		valuer:     mocks.NewMockValuer(ctrl),
		pegged:     mocks.NewMockPeggedLedger(ctrl),
		collateral: mocks.NewMockCollateralLedger(ctrl),
		venue:      mocks.NewMockExchangeVenue(ctrl),
		config:     mocks.NewMockConfigSource(ctrl),
	}
	d.svc = service.New(d.store, d.registry, d.valuer, d.pegged, d.collateral, d.venue, d.config)
	return d
}

func testConfig(authority, treasury domain.Address) protocol.Config {
	return protocol.Config{
		MintFeeRate:                50,
		BurnFeeRate:                50,
		SwapFeeRate:                50,
		CollateralizationThreshold: 15_000,
		Authority:                  authority,
		Treasury:                   treasury,
	}
}

func newTestVault(t *testing.T, owner, authority domain.Address) *models.Vault {
	t.Helper()
	vault, err := models.NewVault(domain.NewVaultID(), domain.NewAddress(), owner, authority, time.Now())
	require.NoError(t, err)
	return vault
}

// captureUpdates records each committed minted amount so tests can assert the
// commit-then-restore sequence.
func captureUpdates(d *mockDeps, committed *[]int64, times int) {
	d.store.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, v *models.Vault) error {
			*committed = append(*committed, v.MintedAmount.Int64())
			return nil
		},
	).Times(times)
}

func TestMint_RollsBackWhenFeeIssuanceFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newMockDeps(ctrl)
	ctx := context.Background()

	owner := domain.NewAddress()
	authority := domain.NewAddress()
	treasury := domain.NewAddress()
	vault := newTestVault(t, owner, authority)

	d.config.EXPECT().Config(gomock.Any()).Return(testConfig(authority, treasury), nil).AnyTimes()
	d.store.EXPECT().FindByID(gomock.Any(), vault.ID).Return(vault.Clone(), nil)

	// Collateral worth 2000, ceiling 1333: the 1300 + 6 fee mint fits.
	d.collateral.EXPECT().BalanceOf(gomock.Any(), domain.NativeAddress, vault.Address).Return(math.NewInt(2000), nil).AnyTimes()
	d.valuer.EXPECT().ToReferenceCurrency(gomock.Any(), gomock.Any(), gomock.Any()).Return(math.NewInt(2000), nil).AnyTimes()
	d.registry.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()

	var committed []int64
	captureUpdates(d, &committed, 2)

	d.pegged.EXPECT().Issue(gomock.Any(), owner, math.NewInt(1300)).Return(nil)
	d.pegged.EXPECT().Issue(gomock.Any(), treasury, math.NewInt(6)).
		Return(fmt.Errorf("treasury refused: %w", sentinel.ErrTransferRejected))
	d.pegged.EXPECT().Redeem(gomock.Any(), owner, math.NewInt(1300)).Return(nil)

	_, err := d.svc.Mint(ctx, service.MintCommand{
		VaultID: vault.ID, Caller: owner, Recipient: owner, Amount: math.NewInt(1300),
	})
	require.True(t, dErrors.HasCode(err, dErrors.CodeTransferRejected))

	// Committed 1306, then restored the pre-mint snapshot.
	require.Equal(t, []int64{1306, 0}, committed)
}

func TestBurn_RollsBackWhenFeeSettlementFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newMockDeps(ctrl)
	ctx := context.Background()

	owner := domain.NewAddress()
	authority := domain.NewAddress()
	treasury := domain.NewAddress()
	vault := newTestVault(t, owner, authority)
	vault.MintedAmount = math.NewInt(1306)

	d.config.EXPECT().Config(gomock.Any()).Return(testConfig(authority, treasury), nil).AnyTimes()
	d.store.EXPECT().FindByID(gomock.Any(), vault.ID).Return(vault.Clone(), nil)

	var committed []int64
	captureUpdates(d, &committed, 2)

	d.pegged.EXPECT().Redeem(gomock.Any(), owner, math.NewInt(1000)).Return(nil)
	d.pegged.EXPECT().Transfer(gomock.Any(), owner, treasury, math.NewInt(5)).
		Return(fmt.Errorf("fee short: %w", sentinel.ErrInsufficientFunds))
	d.pegged.EXPECT().Issue(gomock.Any(), owner, math.NewInt(1000)).Return(nil)

	_, err := d.svc.Burn(ctx, service.BurnCommand{
		VaultID: vault.ID, Caller: owner, Amount: math.NewInt(1000),
	})
	require.True(t, dErrors.HasCode(err, dErrors.CodeInsufficientFunds))
	require.Equal(t, []int64{306, 1306}, committed)
}

func TestLiquidate_ReversesPartialSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newMockDeps(ctrl)
	ctx := context.Background()

	owner := domain.NewAddress()
	authority := domain.NewAddress()
	treasury := domain.NewAddress()
	vault := newTestVault(t, owner, authority)
	vault.MintedAmount = math.NewInt(1306)

	gold := assets.Asset{Symbol: "GOLD", Address: domain.NewAddress(), Decimals: 0}
	silver := assets.Asset{Symbol: "SILV", Address: domain.NewAddress(), Decimals: 0}

	d.config.EXPECT().Config(gomock.Any()).Return(testConfig(authority, treasury), nil).AnyTimes()
	d.store.EXPECT().FindByID(gomock.Any(), vault.ID).Return(vault.Clone(), nil)

	// Post-crash valuation: 1250 total, ceiling 833, eligible against 1306.
	d.collateral.EXPECT().BalanceOf(gomock.Any(), domain.NativeAddress, vault.Address).Return(math.ZeroInt(), nil).AnyTimes()
	d.registry.EXPECT().List(gomock.Any()).Return([]assets.Asset{gold, silver}, nil).AnyTimes()
	d.collateral.EXPECT().BalanceOf(gomock.Any(), gold.Address, vault.Address).Return(math.NewInt(2000), nil).AnyTimes()
	d.collateral.EXPECT().BalanceOf(gomock.Any(), silver.Address, vault.Address).Return(math.NewInt(500), nil).AnyTimes()
	d.valuer.EXPECT().ToReferenceCurrency(gomock.Any(), gold, gomock.Any()).Return(math.NewInt(1000), nil).AnyTimes()
	d.valuer.EXPECT().ToReferenceCurrency(gomock.Any(), silver, gomock.Any()).Return(math.NewInt(250), nil).AnyTimes()

	var committed []int64
	captureUpdates(d, &committed, 2)

	// Gold sweeps fine, silver fails, gold comes back.
	d.collateral.EXPECT().Transfer(gomock.Any(), gold.Address, vault.Address, treasury, math.NewInt(2000)).Return(nil)
	d.collateral.EXPECT().Transfer(gomock.Any(), silver.Address, vault.Address, treasury, math.NewInt(500)).
		Return(fmt.Errorf("treasury refused: %w", sentinel.ErrTransferRejected))
	d.collateral.EXPECT().Transfer(gomock.Any(), gold.Address, treasury, vault.Address, math.NewInt(2000)).Return(nil)

	_, err := d.svc.Liquidate(ctx, authority, vault.ID)
	require.True(t, dErrors.HasCode(err, dErrors.CodeTransferRejected))
	require.Equal(t, []int64{0, 1306}, committed)
}

func TestSwap_RefundsFeeWhenExchangeFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := newMockDeps(ctrl)
	ctx := context.Background()

	owner := domain.NewAddress()
	authority := domain.NewAddress()
	treasury := domain.NewAddress()
	vault := newTestVault(t, owner, authority)

	gold := assets.Asset{Symbol: "GOLD", Address: domain.NewAddress(), Decimals: 0}
	silver := assets.Asset{Symbol: "SILV", Address: domain.NewAddress(), Decimals: 0}

	d.config.EXPECT().Config(gomock.Any()).Return(testConfig(authority, treasury), nil).AnyTimes()
	d.store.EXPECT().FindByID(gomock.Any(), vault.ID).Return(vault.Clone(), nil)
	d.registry.EXPECT().GetByAddress(gomock.Any(), gold.Address).Return(&gold, true).AnyTimes()
	d.registry.EXPECT().GetByAddress(gomock.Any(), silver.Address).Return(&silver, true).AnyTimes()

	// Nothing minted, so no invariant floor is computed; only the venue fails.
	d.collateral.EXPECT().Transfer(gomock.Any(), gold.Address, vault.Address, treasury, math.NewInt(5)).Return(nil)
	d.venue.EXPECT().Exchange(gomock.Any(), gold.Address, silver.Address, math.NewInt(995), math.ZeroInt(), vault.Address, gomock.Any()).
		Return(math.ZeroInt(), fmt.Errorf("floor not met: %w", sentinel.ErrSlippage))
	d.collateral.EXPECT().Transfer(gomock.Any(), gold.Address, treasury, vault.Address, math.NewInt(5)).Return(nil)

	_, err := d.svc.Swap(ctx, service.SwapCommand{
		VaultID: vault.ID, Caller: owner,
		InputAsset: gold.Address, OutputAsset: silver.Address,
		AmountIn: math.NewInt(1000), MinimumAmountOut: math.ZeroInt(),
	})
	require.True(t, dErrors.HasCode(err, dErrors.CodeSlippage))
}
