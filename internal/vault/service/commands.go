package service

import (
	"time"

	"cosmossdk.io/math"

	"strongroom/pkg/domain"
)

// MintCommand requests issuance of new pegged units against the vault's
// collateral. The fee is charged on top of Amount and both count against the
// mint ceiling.
type MintCommand struct {
	VaultID   domain.VaultID
	Caller    domain.Address
	Recipient domain.Address
	Amount    math.Int
}

// BurnCommand retires pegged units from the caller's balance and reduces the
// vault's outstanding minted amount. The fee is settled separately in pegged
// units and does not reduce the minted balance.
type BurnCommand struct {
	VaultID domain.VaultID
	Caller  domain.Address
	Amount  math.Int
}

// RemoveCollateralCommand withdraws an approved collateral token (or the
// native asset, through the dedicated operation) to a recipient.
type RemoveCollateralCommand struct {
	VaultID   domain.VaultID
	Caller    domain.Address
	Asset     domain.Address
	Amount    math.Int
	Recipient domain.Address
}

// RemoveAssetCommand sweeps an arbitrary token out of the vault. If the token
// happens to be approved collateral the withdrawal gate still applies.
type RemoveAssetCommand struct {
	VaultID   domain.VaultID
	Caller    domain.Address
	Asset     domain.Address
	Amount    math.Int
	Recipient domain.Address
}

// SwapCommand exchanges one collateral asset for another inside the vault.
// MinimumAmountOut is the caller's own floor; the engine raises it to
// whatever preserves collateralization, whichever is higher.
type SwapCommand struct {
	VaultID          domain.VaultID
	Caller           domain.Address
	InputAsset       domain.Address
	OutputAsset      domain.Address
	AmountIn         math.Int
	MinimumAmountOut math.Int
	Deadline         time.Time
}
