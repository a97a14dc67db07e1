package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"strongroom/internal/platform/middleware"
	"strongroom/internal/protocol"
	"strongroom/internal/protocol/handler"
	"strongroom/pkg/domain"
)

func setup(t *testing.T) (chi.Router, *protocol.Store, domain.Address) {
	t.Helper()
	authority := domain.NewAddress()
	store, err := protocol.NewStore(protocol.Config{
		MintFeeRate:                50,
		BurnFeeRate:                50,
		SwapFeeRate:                50,
		CollateralizationThreshold: 15_000,
		Authority:                  authority,
		Treasury:                   domain.NewAddress(),
	})
	require.NoError(t, err)

	router := chi.NewRouter()
	handler.New(store, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(router)
	return router, store, authority
}

func doJSON(t *testing.T, router chi.Router, caller domain.Address, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req = req.WithContext(middleware.WithCaller(req.Context(), caller))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetConfig(t *testing.T) {
	router, _, authority := setup(t)

	rec := doJSON(t, router, authority, http.MethodGet, "/admin/protocol", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.ConfigResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, int64(50), resp.MintFeeRate)
	require.Equal(t, int64(15_000), resp.CollateralizationThreshold)
	require.Equal(t, authority.String(), resp.Authority)
}

func TestUpdateConfig(t *testing.T) {
	router, store, authority := setup(t)

	newThreshold := int64(20_000)
	rec := doJSON(t, router, authority, http.MethodPut, "/admin/protocol", map[string]any{
		"collateralization_threshold": newThreshold,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	cfg, err := store.Config(context.Background())
	require.NoError(t, err)
	require.Equal(t, newThreshold, cfg.CollateralizationThreshold)
	// Untouched fields survive a partial update.
	require.Equal(t, int64(50), cfg.MintFeeRate)
}

func TestUpdateConfig_AuthorityOnly(t *testing.T) {
	router, _, _ := setup(t)

	rec := doJSON(t, router, domain.NewAddress(), http.MethodPut, "/admin/protocol", map[string]any{
		"mint_fee_rate": 10,
	})
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUpdateConfig_RejectsInvalidThreshold(t *testing.T) {
	router, _, authority := setup(t)

	// Below 100% the vault could never be liquidated into solvency.
	rec := doJSON(t, router, authority, http.MethodPut, "/admin/protocol", map[string]any{
		"collateralization_threshold": 5_000,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
