package handler

import (
	"time"

	"strongroom/internal/vault/models"
	"strongroom/pkg/platform/audit"
)

// VaultResponse is the wire form of a vault aggregate. Amounts are decimal
// strings so clients never lose precision to floating point.
type VaultResponse struct {
	ID           string    `json:"id"`
	Address      string    `json:"address"`
	Owner        string    `json:"owner"`
	MintedAmount string    `json:"minted_amount"`
	Liquidated   bool      `json:"liquidated"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toVaultResponse(v *models.Vault) VaultResponse {
	return VaultResponse{
		ID:           v.ID.String(),
		Address:      v.Address.String(),
		Owner:        v.Owner.String(),
		MintedAmount: v.MintedAmount.String(),
		Liquidated:   v.Liquidated,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

// ListResponse wraps the vault index.
type ListResponse struct {
	Vaults []VaultResponse `json:"vaults"`
}

func toListResponse(vaults []*models.Vault) ListResponse {
	out := make([]VaultResponse, 0, len(vaults))
	for _, v := range vaults {
		out = append(out, toVaultResponse(v))
	}
	return ListResponse{Vaults: out}
}

// CollateralPositionResponse is one asset line in a status response.
type CollateralPositionResponse struct {
	Symbol  string `json:"symbol"`
	Address string `json:"address"`
	Balance string `json:"balance"`
	Value   string `json:"value"`
}

// StatusResponse is the public read model of a vault, priced live.
type StatusResponse struct {
	ID                   string                       `json:"id"`
	Address              string                       `json:"address"`
	Owner                string                       `json:"owner"`
	MintedAmount         string                       `json:"minted_amount"`
	MaxMintable          string                       `json:"max_mintable"`
	TotalCollateralValue string                       `json:"total_collateral_value"`
	Collateral           []CollateralPositionResponse `json:"collateral"`
	Liquidated           bool                         `json:"liquidated"`
	Version              string                       `json:"version"`
	VaultType            string                       `json:"vault_type"`
}

func toStatusResponse(st *models.Status) StatusResponse {
	positions := make([]CollateralPositionResponse, 0, len(st.Collateral))
	for _, p := range st.Collateral {
		positions = append(positions, CollateralPositionResponse{
			Symbol:  p.Symbol,
			Address: p.Address.String(),
			Balance: p.Balance.String(),
			Value:   p.Value.String(),
		})
	}
	return StatusResponse{
		ID:                   st.ID.String(),
		Address:              st.Address.String(),
		Owner:                st.Owner.String(),
		MintedAmount:         st.MintedAmount.String(),
		MaxMintable:          st.MaxMintable.String(),
		TotalCollateralValue: st.TotalCollateralValue.String(),
		Collateral:           positions,
		Liquidated:           st.Liquidated,
		Version:              st.Version,
		VaultType:            st.VaultType,
	}
}

// SwapResponse reports the settled output of a collateral swap.
type SwapResponse struct {
	AmountOut string `json:"amount_out"`
}

// RemovedResponse acknowledges a completed withdrawal.
type RemovedResponse struct {
	Removed bool `json:"removed"`
}

// AuditEventResponse is one entry in a vault's audit history.
type AuditEventResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Asset     string    `json:"asset,omitempty"`
	Amount    string    `json:"amount,omitempty"`
	Fee       string    `json:"fee,omitempty"`
	Recipient string    `json:"recipient,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
}

// AuditTrailResponse wraps a vault's audit history, oldest first.
type AuditTrailResponse struct {
	Events []AuditEventResponse `json:"events"`
}

func toAuditTrailResponse(events []audit.Event) AuditTrailResponse {
	out := make([]AuditEventResponse, 0, len(events))
	for _, e := range events {
		entry := AuditEventResponse{
			Timestamp: e.Timestamp,
			Action:    string(e.Action),
			RequestID: e.RequestID,
		}
		if !e.Asset.IsNil() {
			entry.Asset = e.Asset.String()
		}
		if !e.Amount.IsNil() {
			entry.Amount = e.Amount.String()
		}
		if !e.Fee.IsNil() {
			entry.Fee = e.Fee.String()
		}
		if !e.Recipient.IsNil() {
			entry.Recipient = e.Recipient.String()
		}
		out = append(out, entry)
	}
	return AuditTrailResponse{Events: out}
}
