package service

import (
	"context"
	"time"

	"cosmossdk.io/math"

	"strongroom/internal/protocol"
	"strongroom/internal/vault/models"
	dErrors "strongroom/pkg/domain-errors"
	"strongroom/pkg/platform/audit"
)

// Mint issues cmd.Amount pegged units to the recipient and records
// amount+fee against the vault's minted balance. The collateralization gate
// is checked against live valuation before anything moves; if issuing the
// recipient or the treasury fails, the recorded balance is rolled back so the
// minted amount never exceeds what was actually issued.
func (s *VaultService) Mint(ctx context.Context, cmd MintCommand) (*models.Vault, error) {
	if err := requireVaultID(cmd.VaultID); err != nil {
		return nil, err
	}
	if err := requireAddress(cmd.Recipient, "recipient"); err != nil {
		return nil, err
	}
	if err := requirePositiveAmount(cmd.Amount); err != nil {
		return nil, err
	}

	ctx, span := s.startSpan(ctx, "vault.mint", cmd.VaultID)
	var opErr error
	defer func() { endSpan(span, opErr) }()

	var (
		updated *models.Vault
		fee     math.Int
	)
	opErr = s.tx.run(ctx, cmd.VaultID.String(), func(ctx context.Context) error {
		vault, err := s.vaults.FindByID(ctx, cmd.VaultID)
		if err != nil {
			return wrapVaultErr(err)
		}
		if cmd.Caller != vault.Owner {
			return dErrors.New(dErrors.CodeForbidden, "only the vault owner may mint")
		}
		if !vault.IsActive() {
			return dErrors.New(dErrors.CodeVaultLiquidated, "vault is liquidated")
		}

		cfg, err := s.liveConfig(ctx)
		if err != nil {
			return err
		}
		fee = cmd.Amount.MulRaw(cfg.MintFeeRate).QuoRaw(protocol.OneHundredPercent)
		total := cmd.Amount.Add(fee)

		maxMintable, err := s.maxMintableWith(ctx, vault, cfg)
		if err != nil {
			return err
		}
		if vault.MintedAmount.Add(total).GT(maxMintable) {
			return dErrors.New(dErrors.CodeUndercollateralized, "mint would exceed the collateral-backed ceiling")
		}

		prior := vault.Clone()
		if err := vault.RecordMint(total, time.Now()); err != nil {
			return err
		}
		if err := s.vaults.Update(ctx, vault); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update vault")
		}

		if err := s.pegged.Issue(ctx, cmd.Recipient, cmd.Amount); err != nil {
			s.restore(ctx, prior, "mint issuance")
			return wrapExternalErr(err, "pegged issuance")
		}
		if fee.IsPositive() {
			if err := s.pegged.Issue(ctx, cfg.Treasury, fee); err != nil {
				if rErr := s.pegged.Redeem(ctx, cmd.Recipient, cmd.Amount); rErr != nil {
					s.auditEmitter.compensationFailed(ctx, vault.ID, "redeem minted amount", rErr)
				}
				s.restore(ctx, prior, "mint fee issuance")
				return wrapExternalErr(err, "fee issuance")
			}
		}

		updated = vault
		return nil
	})
	if opErr != nil {
		return nil, opErr
	}

	s.auditEmitter.emit(ctx, audit.Event{
		VaultID:   updated.ID,
		Action:    audit.ActionPeggedMinted,
		Amount:    cmd.Amount,
		Fee:       fee,
		Recipient: cmd.Recipient,
	})
	if s.metrics != nil {
		s.metrics.IncrementMints()
	}
	return updated, nil
}

// Burn retires cmd.Amount pegged units from the caller's balance and reduces
// the vault's minted amount by the same quantity. Anyone holding pegged units
// may burn against any active vault; the burn fee moves caller to treasury in
// pegged units and leaves the minted balance untouched.
func (s *VaultService) Burn(ctx context.Context, cmd BurnCommand) (*models.Vault, error) {
	if err := requireVaultID(cmd.VaultID); err != nil {
		return nil, err
	}
	if err := requireAddress(cmd.Caller, "caller"); err != nil {
		return nil, err
	}
	if err := requirePositiveAmount(cmd.Amount); err != nil {
		return nil, err
	}

	ctx, span := s.startSpan(ctx, "vault.burn", cmd.VaultID)
	var opErr error
	defer func() { endSpan(span, opErr) }()

	var (
		updated *models.Vault
		fee     math.Int
	)
	opErr = s.tx.run(ctx, cmd.VaultID.String(), func(ctx context.Context) error {
		vault, err := s.vaults.FindByID(ctx, cmd.VaultID)
		if err != nil {
			return wrapVaultErr(err)
		}

		cfg, err := s.liveConfig(ctx)
		if err != nil {
			return err
		}
		fee = cmd.Amount.MulRaw(cfg.BurnFeeRate).QuoRaw(protocol.OneHundredPercent)

		prior := vault.Clone()
		if err := vault.RecordBurn(cmd.Amount, time.Now()); err != nil {
			return err
		}
		if err := s.vaults.Update(ctx, vault); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update vault")
		}

		if err := s.pegged.Redeem(ctx, cmd.Caller, cmd.Amount); err != nil {
			s.restore(ctx, prior, "burn redemption")
			return wrapExternalErr(err, "pegged redemption")
		}
		if fee.IsPositive() {
			if err := s.pegged.Transfer(ctx, cmd.Caller, cfg.Treasury, fee); err != nil {
				if rErr := s.pegged.Issue(ctx, cmd.Caller, cmd.Amount); rErr != nil {
					s.auditEmitter.compensationFailed(ctx, vault.ID, "reissue burned amount", rErr)
				}
				s.restore(ctx, prior, "burn fee settlement")
				return wrapExternalErr(err, "fee settlement")
			}
		}

		updated = vault
		return nil
	})
	if opErr != nil {
		return nil, opErr
	}

	s.auditEmitter.emit(ctx, audit.Event{
		VaultID:   updated.ID,
		Action:    audit.ActionPeggedBurned,
		Amount:    cmd.Amount,
		Fee:       fee,
		Recipient: cmd.Caller,
	})
	if s.metrics != nil {
		s.metrics.IncrementBurns()
	}
	return updated, nil
}

// restore writes a pre-operation snapshot back after a collaborator failure.
// A store that cannot accept the restore leaves inconsistent state behind, so
// that failure is logged at the highest severity rather than swallowed.
func (s *VaultService) restore(ctx context.Context, prior *models.Vault, stage string) {
	if err := s.vaults.Update(ctx, prior); err != nil {
		s.auditEmitter.compensationFailed(ctx, prior.ID, stage+" rollback", err)
	}
}
