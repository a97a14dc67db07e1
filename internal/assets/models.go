// Package assets implements the approved-asset registry: the authoritative
// list of tokens a vault may count toward its collateral value.
package assets

import (
	"strings"

	"strongroom/pkg/domain"
	dErrors "strongroom/pkg/domain-errors"
)

// Asset describes one approved collateral token. The native asset is
// represented with the zero-address sentinel and is not registry-tracked.
type Asset struct {
	Symbol   string         `json:"symbol"`
	Address  domain.Address `json:"address"`
	Decimals uint8          `json:"decimals"`
}

func NewAsset(symbol string, address domain.Address, decimals uint8) (*Asset, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "asset symbol cannot be empty")
	}
	if len(symbol) > 16 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "asset symbol must be 16 characters or less")
	}
	if address.IsNil() || address.IsNative() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "asset address required")
	}
	if decimals > 30 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "asset decimals out of range")
	}
	return &Asset{Symbol: symbol, Address: address, Decimals: decimals}, nil
}
