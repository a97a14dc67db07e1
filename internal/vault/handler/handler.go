// Package handler exposes the vault engine over HTTP. Identity comes from
// the caller middleware; authorization (owner vs registry authority) is
// enforced in the service layer, so the handlers only parse, delegate, and
// translate errors.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"cosmossdk.io/math"
	"github.com/go-chi/chi/v5"

	"strongroom/internal/platform/middleware"
	"strongroom/internal/vault/models"
	"strongroom/internal/vault/service"
	"strongroom/pkg/domain"
	dErrors "strongroom/pkg/domain-errors"
	"strongroom/pkg/platform/audit"
	"strongroom/pkg/platform/httputil"
)

// Service defines the vault operations the HTTP surface needs.
type Service interface {
	CreateVault(ctx context.Context, caller, owner domain.Address) (*models.Vault, error)
	SetOwner(ctx context.Context, caller domain.Address, vaultID domain.VaultID, newOwner domain.Address) (*models.Vault, error)
	Status(ctx context.Context, vaultID domain.VaultID) (*models.Status, error)
	List(ctx context.Context) ([]*models.Vault, error)
	Mint(ctx context.Context, cmd service.MintCommand) (*models.Vault, error)
	Burn(ctx context.Context, cmd service.BurnCommand) (*models.Vault, error)
	Liquidate(ctx context.Context, caller domain.Address, vaultID domain.VaultID) (*models.Vault, error)
	RemoveCollateral(ctx context.Context, cmd service.RemoveCollateralCommand) error
	RemoveCollateralNative(ctx context.Context, cmd service.RemoveCollateralCommand) error
	RemoveAsset(ctx context.Context, cmd service.RemoveAssetCommand) error
	Swap(ctx context.Context, cmd service.SwapCommand) (math.Int, error)
}

// AuditTrail serves per-vault audit history. Optional; the audit route is
// only mounted when a trail is configured.
type AuditTrail interface {
	ListByVault(ctx context.Context, vaultID string) ([]audit.Event, error)
}

// Handler handles vault endpoints.
type Handler struct {
	logger *slog.Logger
	vaults Service
	trail  AuditTrail
}

// Option configures the Handler.
type Option func(*Handler)

// WithAuditTrail mounts the per-vault audit history endpoint.
func WithAuditTrail(trail AuditTrail) Option {
	return func(h *Handler) {
		h.trail = trail
	}
}

// New creates a new vault Handler.
func New(vaults Service, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{logger: logger, vaults: vaults}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register registers the vault routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/vaults", func(r chi.Router) {
		r.Post("/", h.handleCreateVault)
		r.Get("/", h.handleListVaults)
		r.Route("/{vaultID}", func(r chi.Router) {
			r.Get("/", h.handleStatus)
			r.Put("/owner", h.handleSetOwner)
			r.Post("/mint", h.handleMint)
			r.Post("/burn", h.handleBurn)
			r.Post("/liquidate", h.handleLiquidate)
			r.Post("/collateral/remove", h.handleRemoveCollateral)
			r.Post("/collateral/remove-native", h.handleRemoveCollateralNative)
			r.Post("/assets/remove", h.handleRemoveAsset)
			r.Post("/swap", h.handleSwap)
			if h.trail != nil {
				r.Get("/audit", h.handleAuditTrail)
			}
		})
	})
}

// caller pulls the authenticated address out of the context. The middleware
// guarantees it is present on every registered route.
func (h *Handler) caller(ctx context.Context, w http.ResponseWriter) (domain.Address, bool) {
	caller := middleware.GetCaller(ctx)
	if caller.IsNil() {
		h.logger.ErrorContext(ctx, "caller missing from context despite auth middleware",
			"request_id", middleware.GetRequestID(ctx),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return "", false
	}
	return caller, true
}

func (h *Handler) vaultID(w http.ResponseWriter, r *http.Request) (domain.VaultID, bool) {
	vaultID, err := domain.ParseVaultID(chi.URLParam(r, "vaultID"))
	if err != nil {
		httputil.WriteError(w, err)
		return vaultID, false
	}
	return vaultID, true
}

func (h *Handler) handleCreateVault(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.caller(ctx, w)
	if !ok {
		return
	}

	req, err := httputil.DecodeJSON[CreateVaultRequest](w, r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}
	owner, err := domain.ParseAddress(req.Owner)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	vault, err := h.vaults.CreateVault(ctx, caller, owner)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to create vault",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, toVaultResponse(vault))
}

func (h *Handler) handleListVaults(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vaults, err := h.vaults.List(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toListResponse(vaults))
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vaultID, ok := h.vaultID(w, r)
	if !ok {
		return
	}

	status, err := h.vaults.Status(ctx, vaultID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toStatusResponse(status))
}

func (h *Handler) handleSetOwner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.caller(ctx, w)
	if !ok {
		return
	}
	vaultID, ok := h.vaultID(w, r)
	if !ok {
		return
	}

	req, err := httputil.DecodeJSON[SetOwnerRequest](w, r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}
	newOwner, err := domain.ParseAddress(req.NewOwner)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	vault, err := h.vaults.SetOwner(ctx, caller, vaultID, newOwner)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toVaultResponse(vault))
}

func (h *Handler) handleMint(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.caller(ctx, w)
	if !ok {
		return
	}
	vaultID, ok := h.vaultID(w, r)
	if !ok {
		return
	}

	req, err := httputil.DecodeJSON[MintRequest](w, r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}
	recipient, err := domain.ParseAddress(req.Recipient)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	vault, err := h.vaults.Mint(ctx, service.MintCommand{
		VaultID:   vaultID,
		Caller:    caller,
		Recipient: recipient,
		Amount:    amount,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "mint rejected",
			"request_id", middleware.GetRequestID(ctx),
			"vault_id", vaultID.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toVaultResponse(vault))
}

func (h *Handler) handleBurn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.caller(ctx, w)
	if !ok {
		return
	}
	vaultID, ok := h.vaultID(w, r)
	if !ok {
		return
	}

	req, err := httputil.DecodeJSON[BurnRequest](w, r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	vault, err := h.vaults.Burn(ctx, service.BurnCommand{
		VaultID: vaultID,
		Caller:  caller,
		Amount:  amount,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toVaultResponse(vault))
}

func (h *Handler) handleLiquidate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.caller(ctx, w)
	if !ok {
		return
	}
	vaultID, ok := h.vaultID(w, r)
	if !ok {
		return
	}

	vault, err := h.vaults.Liquidate(ctx, caller, vaultID)
	if err != nil {
		h.logger.WarnContext(ctx, "liquidation rejected",
			"request_id", middleware.GetRequestID(ctx),
			"vault_id", vaultID.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toVaultResponse(vault))
}

func (h *Handler) handleRemoveCollateral(w http.ResponseWriter, r *http.Request) {
	h.handleWithdrawal(w, r, true, func(ctx context.Context, cmd service.RemoveCollateralCommand) error {
		return h.vaults.RemoveCollateral(ctx, cmd)
	})
}

func (h *Handler) handleRemoveCollateralNative(w http.ResponseWriter, r *http.Request) {
	h.handleWithdrawal(w, r, false, func(ctx context.Context, cmd service.RemoveCollateralCommand) error {
		return h.vaults.RemoveCollateralNative(ctx, cmd)
	})
}

func (h *Handler) handleWithdrawal(w http.ResponseWriter, r *http.Request, requireAsset bool, op func(context.Context, service.RemoveCollateralCommand) error) {
	ctx := r.Context()
	caller, ok := h.caller(ctx, w)
	if !ok {
		return
	}
	vaultID, ok := h.vaultID(w, r)
	if !ok {
		return
	}

	req, err := httputil.DecodeJSON[RemoveCollateralRequest](w, r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := req.Validate(requireAsset); err != nil {
		httputil.WriteError(w, err)
		return
	}

	cmd := service.RemoveCollateralCommand{VaultID: vaultID, Caller: caller}
	if requireAsset {
		cmd.Asset, err = domain.ParseAddress(req.Asset)
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
	}
	cmd.Amount, err = parseAmount(req.Amount)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	cmd.Recipient, err = domain.ParseAddress(req.Recipient)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := op(ctx, cmd); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, RemovedResponse{Removed: true})
}

func (h *Handler) handleRemoveAsset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.caller(ctx, w)
	if !ok {
		return
	}
	vaultID, ok := h.vaultID(w, r)
	if !ok {
		return
	}

	req, err := httputil.DecodeJSON[RemoveCollateralRequest](w, r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := req.Validate(true); err != nil {
		httputil.WriteError(w, err)
		return
	}

	asset, err := parseAssetRef(req.Asset)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	amount, err := parseAmount(req.Amount)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	recipient, err := domain.ParseAddress(req.Recipient)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if err := h.vaults.RemoveAsset(ctx, service.RemoveAssetCommand{
		VaultID:   vaultID,
		Caller:    caller,
		Asset:     asset,
		Amount:    amount,
		Recipient: recipient,
	}); err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, RemovedResponse{Removed: true})
}

func (h *Handler) handleSwap(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller, ok := h.caller(ctx, w)
	if !ok {
		return
	}
	vaultID, ok := h.vaultID(w, r)
	if !ok {
		return
	}

	req, err := httputil.DecodeJSON[SwapRequest](w, r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	input, err := parseAssetRef(req.InputAsset)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	output, err := parseAssetRef(req.OutputAsset)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	amountIn, err := parseAmount(req.AmountIn)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	minOut, err := parseOptionalAmount(req.MinimumAmountOut)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	deadline, err := parseOptionalDeadline(req.Deadline)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	amountOut, err := h.vaults.Swap(ctx, service.SwapCommand{
		VaultID:          vaultID,
		Caller:           caller,
		InputAsset:       input,
		OutputAsset:      output,
		AmountIn:         amountIn,
		MinimumAmountOut: minOut,
		Deadline:         deadline,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "swap rejected",
			"request_id", middleware.GetRequestID(ctx),
			"vault_id", vaultID.String(),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, SwapResponse{AmountOut: amountOut.String()})
}

func (h *Handler) handleAuditTrail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vaultID, ok := h.vaultID(w, r)
	if !ok {
		return
	}

	// Resolve the vault first so unknown IDs still read as 404s.
	if _, err := h.vaults.Status(ctx, vaultID); err != nil {
		httputil.WriteError(w, err)
		return
	}

	events, err := h.trail.ListByVault(ctx, vaultID.String())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toAuditTrailResponse(events))
}
