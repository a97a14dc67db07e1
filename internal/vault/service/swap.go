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

// Swap exchanges one collateral asset for another without the collateral
// leaving custody: input and proceeds both live at the vault address, and the
// minted amount is untouched. The engine computes the minimum output that
// keeps the vault collateralized after the input value leaves, raises the
// caller's own floor to it if needed, and lets the venue enforce it. Native
// legs are bridged through the wrapped representation around the exchange.
func (s *VaultService) Swap(ctx context.Context, cmd SwapCommand) (math.Int, error) {
	if err := requireVaultID(cmd.VaultID); err != nil {
		return math.ZeroInt(), err
	}
	if err := requirePositiveAmount(cmd.AmountIn); err != nil {
		return math.ZeroInt(), err
	}
	if err := requireAmount(cmd.MinimumAmountOut); err != nil {
		return math.ZeroInt(), err
	}
	if cmd.InputAsset == cmd.OutputAsset {
		return math.ZeroInt(), dErrors.New(dErrors.CodeBadRequest, "input and output assets must differ")
	}

	ctx, span := s.startSpan(ctx, "vault.swap", cmd.VaultID)
	var opErr error
	defer func() { endSpan(span, opErr) }()

	var (
		amountOut = math.ZeroInt()
		fee       = math.ZeroInt()
	)
	opErr = s.tx.run(ctx, cmd.VaultID.String(), func(ctx context.Context) error {
		vault, err := s.vaults.FindByID(ctx, cmd.VaultID)
		if err != nil {
			return wrapVaultErr(err)
		}
		if cmd.Caller != vault.Owner {
			return dErrors.New(dErrors.CodeForbidden, "only the vault owner may swap collateral")
		}
		if !vault.IsActive() {
			return dErrors.New(dErrors.CodeVaultLiquidated, "vault is liquidated")
		}

		cfg, err := s.liveConfig(ctx)
		if err != nil {
			return err
		}
		inputAsset, err := s.resolveSwapAsset(ctx, cmd.InputAsset)
		if err != nil {
			return err
		}
		outputAsset, err := s.resolveSwapAsset(ctx, cmd.OutputAsset)
		if err != nil {
			return err
		}

		fee = cmd.AmountIn.MulRaw(cfg.SwapFeeRate).QuoRaw(protocol.OneHundredPercent)
		amountNet := cmd.AmountIn.Sub(fee)
		if !amountNet.IsPositive() {
			return dErrors.New(dErrors.CodeBadRequest, "swap amount does not cover the fee")
		}

		minOut, err := s.preservingMinimum(ctx, vault, cfg, inputAsset, outputAsset, cmd.AmountIn)
		if err != nil {
			return err
		}
		if cmd.MinimumAmountOut.GT(minOut) {
			minOut = cmd.MinimumAmountOut
		}

		// Venue trades wrapped units; native legs are converted at the edges.
		venueIn := cmd.InputAsset
		venueOut := cmd.OutputAsset
		if cmd.InputAsset.IsNative() {
			venueIn = cfg.WrappedNative
		}
		if cmd.OutputAsset.IsNative() {
			venueOut = cfg.WrappedNative
		}

		if fee.IsPositive() {
			if err := s.collateral.Transfer(ctx, cmd.InputAsset, vault.Address, cfg.Treasury, fee); err != nil {
				return wrapExternalErr(err, "swap fee settlement")
			}
		}
		refundFee := func() {
			if !fee.IsPositive() {
				return
			}
			if err := s.collateral.Transfer(ctx, cmd.InputAsset, cfg.Treasury, vault.Address, fee); err != nil {
				s.auditEmitter.compensationFailed(ctx, vault.ID, "refund swap fee", err)
			}
		}

		if cmd.InputAsset.IsNative() {
			if err := s.collateral.Wrap(ctx, vault.Address, amountNet); err != nil {
				refundFee()
				return wrapExternalErr(err, "native wrap")
			}
		}

		amountOut, err = s.venue.Exchange(ctx, venueIn, venueOut, amountNet, minOut, vault.Address, cmd.Deadline)
		if err != nil {
			if cmd.InputAsset.IsNative() {
				if uErr := s.collateral.Unwrap(ctx, vault.Address, amountNet); uErr != nil {
					s.auditEmitter.compensationFailed(ctx, vault.ID, "unwrap swap input", uErr)
				}
			}
			refundFee()
			return wrapExternalErr(err, "collateral exchange")
		}

		if cmd.OutputAsset.IsNative() {
			if err := s.collateral.Unwrap(ctx, vault.Address, amountOut); err != nil {
				// Proceeds stay in the vault in wrapped form; the swap itself
				// has settled, so this is not unwound.
				return wrapExternalErr(err, "native unwrap")
			}
		}
		return nil
	})
	if opErr != nil {
		return math.ZeroInt(), opErr
	}

	s.auditEmitter.emit(ctx, audit.Event{
		VaultID:   cmd.VaultID,
		Action:    audit.ActionCollateralSwapped,
		Asset:     cmd.InputAsset,
		Amount:    cmd.AmountIn,
		Fee:       fee,
		Recipient: cmd.OutputAsset,
	})
	if s.metrics != nil {
		s.metrics.IncrementSwaps()
	}
	return amountOut, nil
}

// preservingMinimum computes the smallest output amount that keeps the vault
// collateralized once the full input amount (fee included) has left. Vaults
// with nothing minted have no floor beyond the caller's own.
func (s *VaultService) preservingMinimum(ctx context.Context, vault *models.Vault, cfg protocol.Config, inputAsset, outputAsset assets.Asset, amountIn math.Int) (math.Int, error) {
	if !vault.MintedAmount.IsPositive() {
		return math.ZeroInt(), nil
	}

	total, err := s.TotalCollateralValue(ctx, vault)
	if err != nil {
		return math.ZeroInt(), err
	}
	inputValue, err := s.valuer.ToReferenceCurrency(ctx, inputAsset, amountIn)
	if err != nil {
		return math.ZeroInt(), wrapExternalErr(err, "swap input valuation")
	}

	remaining := total.Sub(inputValue)
	if remaining.IsNegative() {
		remaining = math.ZeroInt()
	}
	required := vault.MintedAmount.MulRaw(cfg.CollateralizationThreshold).QuoRaw(protocol.OneHundredPercent)
	shortfall := required.Sub(remaining)
	if !shortfall.IsPositive() {
		return math.ZeroInt(), nil
	}

	minOut, err := s.valuer.FromReferenceCurrency(ctx, outputAsset, shortfall)
	if err != nil {
		return math.ZeroInt(), wrapExternalErr(err, "swap floor conversion")
	}
	return minOut, nil
}

// resolveSwapAsset maps a swap leg to a priceable asset: the native sentinel
// to the native pseudo-asset, anything else to its registry entry.
func (s *VaultService) resolveSwapAsset(ctx context.Context, address domain.Address) (assets.Asset, error) {
	if address.IsNative() {
		return nativeAsset(), nil
	}
	asset, ok := s.registry.GetByAddress(ctx, address)
	if !ok {
		return assets.Asset{}, dErrors.New(dErrors.CodeNotFound, "swap asset is not approved collateral")
	}
	return *asset, nil
}
