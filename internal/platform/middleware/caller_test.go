package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"strongroom/pkg/domain"
	dErrors "strongroom/pkg/domain-errors"
)

type stubValidator struct {
	caller domain.Address
	err    error
}

func (s stubValidator) Validate(string) (domain.Address, error) {
	return s.caller, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRequireCaller_SetsCallerContext(t *testing.T) {
	caller := domain.NewAddress()

	var seen domain.Address
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetCaller(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := RequireCaller(stubValidator{caller: caller}, discardLogger())(next)

	req := httptest.NewRequest(http.MethodGet, "/vaults", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, caller, seen)
}

func TestRequireCaller_MissingHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("handler should not run without a token")
	})
	handler := RequireCaller(stubValidator{}, discardLogger())(next)

	req := httptest.NewRequest(http.MethodGet, "/vaults", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireCaller_InvalidToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("handler should not run with an invalid token")
	})
	validator := stubValidator{err: dErrors.New(dErrors.CodeUnauthorized, "bad token")}
	handler := RequireCaller(validator, discardLogger())(next)

	req := httptest.NewRequest(http.MethodGet, "/vaults", nil)
	req.Header.Set("Authorization", "Bearer forged")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequestID_Generated(t *testing.T) {
	var captured string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = GetRequestID(r.Context())
	})

	rec := httptest.NewRecorder()
	RequestID(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, captured)
	require.Equal(t, captured, rec.Header().Get("X-Request-ID"))
}

func TestRequestID_ClientProvided(t *testing.T) {
	var captured string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = GetRequestID(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-123")
	RequestID(next).ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, "req-123", captured)
}
