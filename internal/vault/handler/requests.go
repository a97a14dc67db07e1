package handler

import (
	"strings"
	"time"

	"cosmossdk.io/math"

	"strongroom/pkg/domain"
	dErrors "strongroom/pkg/domain-errors"
)

// nativeAssetRef is the friendly alias clients may use instead of spelling
// out the zero address for the chain-native asset.
const nativeAssetRef = "native"

// CreateVaultRequest opens a vault for an owner address.
type CreateVaultRequest struct {
	Owner string `json:"owner"`
}

func (r *CreateVaultRequest) Validate() error {
	if r == nil || r.Owner == "" {
		return dErrors.New(dErrors.CodeValidation, "owner is required")
	}
	return nil
}

// SetOwnerRequest reassigns a vault to a new owner.
type SetOwnerRequest struct {
	NewOwner string `json:"new_owner"`
}

func (r *SetOwnerRequest) Validate() error {
	if r == nil || r.NewOwner == "" {
		return dErrors.New(dErrors.CodeValidation, "new_owner is required")
	}
	return nil
}

// MintRequest issues pegged units against the vault's collateral.
type MintRequest struct {
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
}

func (r *MintRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.Recipient == "" {
		return dErrors.New(dErrors.CodeValidation, "recipient is required")
	}
	if r.Amount == "" {
		return dErrors.New(dErrors.CodeValidation, "amount is required")
	}
	return nil
}

// BurnRequest retires pegged units from the caller's balance.
type BurnRequest struct {
	Amount string `json:"amount"`
}

func (r *BurnRequest) Validate() error {
	if r == nil || r.Amount == "" {
		return dErrors.New(dErrors.CodeValidation, "amount is required")
	}
	return nil
}

// RemoveCollateralRequest withdraws collateral to a recipient. Asset is
// omitted for the native operation.
type RemoveCollateralRequest struct {
	Asset     string `json:"asset,omitempty"`
	Amount    string `json:"amount"`
	Recipient string `json:"recipient"`
}

func (r *RemoveCollateralRequest) Validate(requireAsset bool) error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if requireAsset && r.Asset == "" {
		return dErrors.New(dErrors.CodeValidation, "asset is required")
	}
	if r.Amount == "" {
		return dErrors.New(dErrors.CodeValidation, "amount is required")
	}
	if r.Recipient == "" {
		return dErrors.New(dErrors.CodeValidation, "recipient is required")
	}
	return nil
}

// SwapRequest exchanges one collateral asset for another inside the vault.
type SwapRequest struct {
	InputAsset       string `json:"input_asset"`
	OutputAsset      string `json:"output_asset"`
	AmountIn         string `json:"amount_in"`
	MinimumAmountOut string `json:"minimum_amount_out,omitempty"`
	Deadline         string `json:"deadline,omitempty"`
}

func (r *SwapRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if r.InputAsset == "" || r.OutputAsset == "" {
		return dErrors.New(dErrors.CodeValidation, "input_asset and output_asset are required")
	}
	if r.AmountIn == "" {
		return dErrors.New(dErrors.CodeValidation, "amount_in is required")
	}
	return nil
}

func parseAmount(s string) (math.Int, error) {
	amount, ok := math.NewIntFromString(s)
	if !ok {
		return math.ZeroInt(), dErrors.New(dErrors.CodeValidation, "invalid amount")
	}
	return amount, nil
}

func parseOptionalAmount(s string) (math.Int, error) {
	if s == "" {
		return math.ZeroInt(), nil
	}
	return parseAmount(s)
}

// parseAssetRef resolves an asset reference: the literal "native" maps to
// the zero-address sentinel, anything else must be a token address.
func parseAssetRef(s string) (domain.Address, error) {
	if strings.EqualFold(strings.TrimSpace(s), nativeAssetRef) {
		return domain.NativeAddress, nil
	}
	return domain.ParseAddress(s)
}

func parseOptionalDeadline(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	deadline, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, dErrors.New(dErrors.CodeValidation, "deadline must be RFC 3339")
	}
	return deadline, nil
}
