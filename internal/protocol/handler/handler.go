// Package handler exposes the protocol configuration surface: anyone
// authenticated may read the live parameters, only the registry authority
// may change them.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"strongroom/internal/platform/middleware"
	"strongroom/internal/protocol"
	"strongroom/pkg/domain"
	dErrors "strongroom/pkg/domain-errors"
	"strongroom/pkg/platform/httputil"
)

// Store defines the configuration operations the admin surface needs.
type Store interface {
	Config(ctx context.Context) (protocol.Config, error)
	Update(ctx context.Context, cfg protocol.Config) error
}

// Handler handles protocol administration endpoints.
type Handler struct {
	logger *slog.Logger
	store  Store
}

// New creates a new protocol Handler.
func New(store Store, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, store: store}
}

// Register registers the protocol routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/admin/protocol", h.handleGetConfig)
	r.Put("/admin/protocol", h.handleUpdateConfig)
}

// ConfigResponse is the wire form of the protocol parameters.
type ConfigResponse struct {
	MintFeeRate                int64  `json:"mint_fee_rate"`
	BurnFeeRate                int64  `json:"burn_fee_rate"`
	SwapFeeRate                int64  `json:"swap_fee_rate"`
	CollateralizationThreshold int64  `json:"collateralization_threshold"`
	Authority                  string `json:"authority"`
	Treasury                   string `json:"treasury"`
	ExchangeVenue              string `json:"exchange_venue"`
	WrappedNative              string `json:"wrapped_native"`
}

func toConfigResponse(cfg protocol.Config) ConfigResponse {
	return ConfigResponse{
		MintFeeRate:                cfg.MintFeeRate,
		BurnFeeRate:                cfg.BurnFeeRate,
		SwapFeeRate:                cfg.SwapFeeRate,
		CollateralizationThreshold: cfg.CollateralizationThreshold,
		Authority:                  cfg.Authority.String(),
		Treasury:                   cfg.Treasury.String(),
		ExchangeVenue:              cfg.ExchangeVenue.String(),
		WrappedNative:              cfg.WrappedNative.String(),
	}
}

// UpdateConfigRequest changes fee rates, the threshold, or the treasury.
// The authority and infrastructure addresses are fixed at boot and cannot be
// changed over HTTP.
type UpdateConfigRequest struct {
	MintFeeRate                *int64 `json:"mint_fee_rate,omitempty"`
	BurnFeeRate                *int64 `json:"burn_fee_rate,omitempty"`
	SwapFeeRate                *int64 `json:"swap_fee_rate,omitempty"`
	CollateralizationThreshold *int64 `json:"collateralization_threshold,omitempty"`
	Treasury                   string `json:"treasury,omitempty"`
}

func (h *Handler) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.store.Config(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toConfigResponse(cfg))
}

func (h *Handler) handleUpdateConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	caller := middleware.GetCaller(ctx)
	if caller.IsNil() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return
	}

	cfg, err := h.store.Config(ctx)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	if caller != cfg.Authority {
		httputil.WriteError(w, dErrors.New(dErrors.CodeForbidden, "only the registry authority may change protocol parameters"))
		return
	}

	req, err := httputil.DecodeJSON[UpdateConfigRequest](w, r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	if req.MintFeeRate != nil {
		cfg.MintFeeRate = *req.MintFeeRate
	}
	if req.BurnFeeRate != nil {
		cfg.BurnFeeRate = *req.BurnFeeRate
	}
	if req.SwapFeeRate != nil {
		cfg.SwapFeeRate = *req.SwapFeeRate
	}
	if req.CollateralizationThreshold != nil {
		cfg.CollateralizationThreshold = *req.CollateralizationThreshold
	}
	if req.Treasury != "" {
		treasury, err := domain.ParseAddress(req.Treasury)
		if err != nil {
			httputil.WriteError(w, err)
			return
		}
		cfg.Treasury = treasury
	}

	if err := h.store.Update(ctx, cfg); err != nil {
		h.logger.WarnContext(ctx, "protocol update rejected",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toConfigResponse(cfg))
}
