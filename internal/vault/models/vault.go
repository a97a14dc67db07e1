package models

import (
	"time"

	"cosmossdk.io/math"

	"strongroom/pkg/domain"
	dErrors "strongroom/pkg/domain-errors"
)

const (
	// Version tags status responses so external indexers can match schemas.
	Version = "1.0.0"
	// VaultType distinguishes this vault flavor in multi-vault deployments.
	VaultType = "collateral"
	// NativeDecimals is the smallest-unit scale of the chain-native asset.
	NativeDecimals = 18
)

// Vault is the settlement core's single aggregate: one owner, one basket of
// collateral, one outstanding minted balance, and a one-way liquidation latch.
type Vault struct {
	ID                domain.VaultID `json:"id"`
	Address           domain.Address `json:"address"`
	Owner             domain.Address `json:"owner"`
	RegistryAuthority domain.Address `json:"registry_authority"`
	MintedAmount      math.Int       `json:"minted_amount"`
	Liquidated        bool           `json:"liquidated"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

func NewVault(id domain.VaultID, address, owner, authority domain.Address, now time.Time) (*Vault, error) {
	if id.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "vault ID required")
	}
	if address.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "vault custody address required")
	}
	if owner.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "vault owner required")
	}
	if authority.IsNil() {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "registry authority required")
	}
	return &Vault{
		ID:                id,
		Address:           address,
		Owner:             owner,
		RegistryAuthority: authority,
		MintedAmount:      math.ZeroInt(),
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// IsActive reports whether owner value actions are still permitted.
func (v *Vault) IsActive() bool { return !v.Liquidated }

// RecordMint adds the issued amount plus fee to the outstanding minted
// balance. The collateralization check happens in the service against live
// valuation before this is called; the model only guards terminal state and
// sign.
func (v *Vault) RecordMint(total math.Int, now time.Time) error {
	if v.Liquidated {
		return dErrors.New(dErrors.CodeVaultLiquidated, "vault is liquidated")
	}
	if total.IsNegative() {
		return dErrors.New(dErrors.CodeInvariantViolation, "mint total cannot be negative")
	}
	v.MintedAmount = v.MintedAmount.Add(total)
	v.UpdatedAt = now
	return nil
}

// RecordBurn reduces the outstanding minted balance. The burn fee is settled
// separately in pegged units and never touches this balance.
func (v *Vault) RecordBurn(amount math.Int, now time.Time) error {
	if v.Liquidated {
		return dErrors.New(dErrors.CodeVaultLiquidated, "vault is liquidated")
	}
	if amount.IsNegative() {
		return dErrors.New(dErrors.CodeInvariantViolation, "burn amount cannot be negative")
	}
	if v.MintedAmount.LT(amount) {
		return dErrors.New(dErrors.CodeInsufficientMinted, "burn exceeds outstanding minted amount")
	}
	v.MintedAmount = v.MintedAmount.Sub(amount)
	v.UpdatedAt = now
	return nil
}

// Liquidate latches the terminal state and zeroes the minted balance.
// The transition is one-way: a liquidated vault never reactivates.
func (v *Vault) Liquidate(now time.Time) error {
	if v.Liquidated {
		return dErrors.New(dErrors.CodeInvariantViolation, "vault is already liquidated")
	}
	v.Liquidated = true
	v.MintedAmount = math.ZeroInt()
	v.UpdatedAt = now
	return nil
}

// ChangeOwner reassigns the vault. Only the registry authority may invoke
// this; the service enforces the caller check.
func (v *Vault) ChangeOwner(newOwner domain.Address, now time.Time) error {
	if newOwner.IsNil() {
		return dErrors.New(dErrors.CodeInvariantViolation, "new owner required")
	}
	v.Owner = newOwner
	v.UpdatedAt = now
	return nil
}

// Clone returns an independent copy so stores can hand out snapshots.
func (v *Vault) Clone() *Vault {
	cp := *v
	return &cp
}
