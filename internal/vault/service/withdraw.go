package service

import (
	"context"

	"cosmossdk.io/math"

	"strongroom/internal/assets"
	"strongroom/internal/protocol"
	"strongroom/internal/vault/models"
	"strongroom/pkg/domain"
	dErrors "strongroom/pkg/domain-errors"
	"strongroom/pkg/platform/audit"
)

// RemoveCollateral withdraws an approved collateral token to a recipient.
// The withdrawal gate rejects the removal when the remaining collateral would
// no longer back the outstanding minted amount.
func (s *VaultService) RemoveCollateral(ctx context.Context, cmd RemoveCollateralCommand) error {
	if err := requireVaultID(cmd.VaultID); err != nil {
		return err
	}
	if err := requireAddress(cmd.Recipient, "recipient"); err != nil {
		return err
	}
	if err := requirePositiveAmount(cmd.Amount); err != nil {
		return err
	}
	if cmd.Asset.IsNative() {
		return dErrors.New(dErrors.CodeBadRequest, "native withdrawals use the dedicated native operation")
	}

	ctx, span := s.startSpan(ctx, "vault.remove_collateral", cmd.VaultID)
	var opErr error
	defer func() { endSpan(span, opErr) }()

	opErr = s.tx.run(ctx, cmd.VaultID.String(), func(ctx context.Context) error {
		asset, ok := s.registry.GetByAddress(ctx, cmd.Asset)
		if !ok {
			return dErrors.New(dErrors.CodeNotFound, "asset is not approved collateral")
		}
		return s.withdraw(ctx, cmd.VaultID, cmd.Caller, *asset, cmd.Amount, cmd.Recipient, true, audit.ActionCollateralRemoved)
	})
	return opErr
}

// RemoveCollateralNative withdraws the vault's chain-native balance, subject
// to the same gate as token collateral.
func (s *VaultService) RemoveCollateralNative(ctx context.Context, cmd RemoveCollateralCommand) error {
	if err := requireVaultID(cmd.VaultID); err != nil {
		return err
	}
	if err := requireAddress(cmd.Recipient, "recipient"); err != nil {
		return err
	}
	if err := requirePositiveAmount(cmd.Amount); err != nil {
		return err
	}

	ctx, span := s.startSpan(ctx, "vault.remove_collateral_native", cmd.VaultID)
	var opErr error
	defer func() { endSpan(span, opErr) }()

	opErr = s.tx.run(ctx, cmd.VaultID.String(), func(ctx context.Context) error {
		return s.withdraw(ctx, cmd.VaultID, cmd.Caller, nativeAsset(), cmd.Amount, cmd.Recipient, true, audit.ActionCollateralRemoved)
	})
	return opErr
}

// RemoveAsset sweeps an arbitrary token out of the vault, for dust and
// airdrops that are not collateral. If the address turns out to be approved
// collateral, the withdrawal gate applies exactly as it would for
// RemoveCollateral; untracked tokens carry no collateral value and leave
// freely.
func (s *VaultService) RemoveAsset(ctx context.Context, cmd RemoveAssetCommand) error {
	if err := requireVaultID(cmd.VaultID); err != nil {
		return err
	}
	if err := requireAddress(cmd.Asset, "asset"); err != nil {
		return err
	}
	if err := requireAddress(cmd.Recipient, "recipient"); err != nil {
		return err
	}
	if err := requirePositiveAmount(cmd.Amount); err != nil {
		return err
	}

	ctx, span := s.startSpan(ctx, "vault.remove_asset", cmd.VaultID)
	var opErr error
	defer func() { endSpan(span, opErr) }()

	opErr = s.tx.run(ctx, cmd.VaultID.String(), func(ctx context.Context) error {
		asset, tracked := s.registry.GetByAddress(ctx, cmd.Asset)
		if !tracked {
			if cmd.Asset.IsNative() {
				asset = &assets.Asset{Symbol: nativeAsset().Symbol, Address: domain.NativeAddress, Decimals: models.NativeDecimals}
				tracked = true
			} else {
				asset = &assets.Asset{Address: cmd.Asset}
			}
		}
		return s.withdraw(ctx, cmd.VaultID, cmd.Caller, *asset, cmd.Amount, cmd.Recipient, tracked, audit.ActionAssetRemoved)
	})
	return opErr
}

// withdraw is the shared owner-gated transfer out of the vault. Callers hold
// the vault lock. When gated, the removal is valued and checked against the
// post-removal mint ceiling before the transfer happens; the transfer is the
// only external effect, so no rollback is needed.
func (s *VaultService) withdraw(ctx context.Context, vaultID domain.VaultID, caller domain.Address, asset assets.Asset, amount math.Int, recipient domain.Address, gated bool, action audit.Action) error {
	vault, err := s.vaults.FindByID(ctx, vaultID)
	if err != nil {
		return wrapVaultErr(err)
	}
	if caller != vault.Owner {
		return dErrors.New(dErrors.CodeForbidden, "only the vault owner may withdraw")
	}
	if !vault.IsActive() {
		return dErrors.New(dErrors.CodeVaultLiquidated, "vault is liquidated")
	}

	var fee = math.ZeroInt()
	if gated && vault.MintedAmount.IsPositive() {
		cfg, err := s.liveConfig(ctx)
		if err != nil {
			return err
		}
		total, err := s.TotalCollateralValue(ctx, vault)
		if err != nil {
			return err
		}
		removed, err := s.valuer.ToReferenceCurrency(ctx, asset, amount)
		if err != nil {
			return wrapExternalErr(err, "withdrawal valuation")
		}
		// The removed value comes off the current mint ceiling at face value,
		// not off the collateral total before the threshold division. A
		// removal worth more than the whole ceiling saturates to a rejection.
		ceiling := total.MulRaw(protocol.OneHundredPercent).QuoRaw(cfg.CollateralizationThreshold)
		if removed.GT(ceiling) || vault.MintedAmount.GT(ceiling.Sub(removed)) {
			return dErrors.New(dErrors.CodeUndercollateralized, "withdrawal would leave the minted amount unbacked")
		}
	}

	if err := s.collateral.Transfer(ctx, asset.Address, vault.Address, recipient, amount); err != nil {
		return wrapExternalErr(err, "collateral withdrawal")
	}

	s.auditEmitter.emit(ctx, audit.Event{
		VaultID:   vault.ID,
		Action:    action,
		Asset:     asset.Address,
		Amount:    amount,
		Fee:       fee,
		Recipient: recipient,
	})
	return nil
}
