package service

import (
	"context"
	"sort"
	"time"

	"cosmossdk.io/math"

	"strongroom/internal/vault/models"
	"strongroom/pkg/domain"
	dErrors "strongroom/pkg/domain-errors"
	"strongroom/pkg/platform/audit"
)

// sweep is one completed collateral movement, remembered so a later failure
// in the same liquidation can reverse it.
type sweep struct {
	asset  domain.Address
	amount math.Int
}

// Liquidate seizes an undercollateralized vault: the liquidation latch is set,
// the minted balance is zeroed, and every collateral position is swept to the
// treasury. The sweep is all-or-nothing; if any transfer fails, the completed
// transfers are reversed and the vault returns to its pre-liquidation state.
func (s *VaultService) Liquidate(ctx context.Context, caller domain.Address, vaultID domain.VaultID) (*models.Vault, error) {
	if err := requireVaultID(vaultID); err != nil {
		return nil, err
	}

	ctx, span := s.startSpan(ctx, "vault.liquidate", vaultID)
	var opErr error
	defer func() { endSpan(span, opErr) }()

	var (
		updated *models.Vault
		seized  math.Int
	)
	opErr = s.tx.run(ctx, vaultID.String(), func(ctx context.Context) error {
		vault, err := s.vaults.FindByID(ctx, vaultID)
		if err != nil {
			return wrapVaultErr(err)
		}
		if caller != vault.RegistryAuthority {
			return dErrors.New(dErrors.CodeForbidden, "only the registry authority may liquidate")
		}
		if !vault.IsActive() {
			return dErrors.New(dErrors.CodeVaultLiquidated, "vault is already liquidated")
		}

		cfg, err := s.liveConfig(ctx)
		if err != nil {
			return err
		}
		maxMintable, err := s.maxMintableWith(ctx, vault, cfg)
		if err != nil {
			return err
		}
		if !vault.MintedAmount.GT(maxMintable) {
			return dErrors.New(dErrors.CodeNotLiquidatable, "vault is sufficiently collateralized")
		}

		prior := vault.Clone()
		if err := vault.Liquidate(time.Now()); err != nil {
			return err
		}
		if err := s.vaults.Update(ctx, vault); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update vault")
		}

		seized, err = s.sweepCollateral(ctx, vault, cfg.Treasury)
		if err != nil {
			s.restore(ctx, prior, "liquidation")
			return err
		}

		updated = vault
		return nil
	})
	if opErr != nil {
		return nil, opErr
	}

	s.auditEmitter.emit(ctx, audit.Event{
		VaultID:   updated.ID,
		Action:    audit.ActionVaultLiquidated,
		Amount:    seized,
		Fee:       math.ZeroInt(),
		Recipient: caller,
	})
	if s.metrics != nil {
		s.metrics.IncrementLiquidations()
	}
	return updated, nil
}

// sweepCollateral moves every positive balance the vault holds to the
// treasury: native first, then approved tokens in symbol order. Returns the
// total reference-currency value seized.
func (s *VaultService) sweepCollateral(ctx context.Context, vault *models.Vault, treasury domain.Address) (math.Int, error) {
	var done []sweep
	reverse := func() {
		for i := len(done) - 1; i >= 0; i-- {
			step := done[i]
			if err := s.collateral.Transfer(ctx, step.asset, treasury, vault.Address, step.amount); err != nil {
				s.auditEmitter.compensationFailed(ctx, vault.ID, "return swept collateral", err)
			}
		}
	}

	seized := math.ZeroInt()

	nativeBal, err := s.collateral.BalanceOf(ctx, domain.NativeAddress, vault.Address)
	if err != nil {
		return math.ZeroInt(), wrapExternalErr(err, "native balance lookup")
	}
	if nativeBal.IsPositive() {
		if err := s.collateral.Transfer(ctx, domain.NativeAddress, vault.Address, treasury, nativeBal); err != nil {
			return math.ZeroInt(), wrapExternalErr(err, "native sweep")
		}
		done = append(done, sweep{asset: domain.NativeAddress, amount: nativeBal})
		value, err := s.valuer.ToReferenceCurrency(ctx, nativeAsset(), nativeBal)
		if err != nil {
			reverse()
			return math.ZeroInt(), wrapExternalErr(err, "native valuation")
		}
		seized = seized.Add(value)
	}

	approved, err := s.registry.List(ctx)
	if err != nil {
		reverse()
		return math.ZeroInt(), wrapExternalErr(err, "asset registry scan")
	}
	sort.Slice(approved, func(i, j int) bool { return approved[i].Symbol < approved[j].Symbol })

	for _, asset := range approved {
		bal, err := s.collateral.BalanceOf(ctx, asset.Address, vault.Address)
		if err != nil {
			reverse()
			return math.ZeroInt(), wrapExternalErr(err, "collateral balance lookup")
		}
		if !bal.IsPositive() {
			continue
		}
		if err := s.collateral.Transfer(ctx, asset.Address, vault.Address, treasury, bal); err != nil {
			reverse()
			return math.ZeroInt(), wrapExternalErr(err, "collateral sweep")
		}
		done = append(done, sweep{asset: asset.Address, amount: bal})
		value, err := s.valuer.ToReferenceCurrency(ctx, asset, bal)
		if err != nil {
			reverse()
			return math.ZeroInt(), wrapExternalErr(err, "collateral valuation")
		}
		seized = seized.Add(value)
	}
	return seized, nil
}
