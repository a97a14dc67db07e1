package models

import (
	"cosmossdk.io/math"

	"strongroom/pkg/domain"
)

// CollateralPosition is one asset's contribution to the vault's basket.
type CollateralPosition struct {
	Symbol  string         `json:"symbol"`
	Address domain.Address `json:"address"`
	Balance math.Int       `json:"balance"`
	Value   math.Int       `json:"value"`
}

// Status is the public read model: everything derived from live balances and
// prices at query time, never cached.
type Status struct {
	ID                   domain.VaultID       `json:"id"`
	Address              domain.Address       `json:"address"`
	Owner                domain.Address       `json:"owner"`
	MintedAmount         math.Int             `json:"minted_amount"`
	MaxMintable          math.Int             `json:"max_mintable"`
	TotalCollateralValue math.Int             `json:"total_collateral_value"`
	Collateral           []CollateralPosition `json:"collateral"`
	Liquidated           bool                 `json:"liquidated"`
	Version              string               `json:"version"`
	VaultType            string               `json:"vault_type"`
}
