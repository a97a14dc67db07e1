package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"strongroom/internal/platform/token"
	"strongroom/pkg/domain"
)

// TestContext holds state between test steps. Tokens are minted locally with
// the same signing key the server is configured with.
type TestContext struct {
	BaseURL          string
	HTTPClient       *http.Client
	Tokens           *token.Service
	Authority        domain.Address
	LastResponse     *http.Response
	LastResponseBody []byte
	CallerToken      string
	Caller           domain.Address
	Owner            domain.Address
	VaultID          string
}

// NewTestContext creates a new test context.
func NewTestContext() *TestContext {
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	signingKey := os.Getenv("JWT_SIGNING_KEY")
	if signingKey == "" {
		signingKey = "dev-secret-key-change-in-production"
	}

	tc := &TestContext{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		Tokens: token.NewService(signingKey, "strongroom", 15*time.Minute),
	}
	if raw := os.Getenv("AUTHORITY_ADDRESS"); raw != "" {
		if addr, err := domain.ParseAddress(raw); err == nil {
			tc.Authority = addr
		}
	}
	return tc
}

// Reset clears per-scenario state while keeping connection settings.
func (tc *TestContext) Reset() {
	tc.LastResponse = nil
	tc.LastResponseBody = nil
	tc.CallerToken = ""
	tc.Caller = ""
	tc.Owner = ""
	tc.VaultID = ""
}

// AuthenticateAs mints a caller token for the given address.
func (tc *TestContext) AuthenticateAs(caller domain.Address) error {
	signed, err := tc.Tokens.Generate(caller)
	if err != nil {
		return fmt.Errorf("failed to generate caller token: %w", err)
	}
	tc.Caller = caller
	tc.CallerToken = signed
	return nil
}

// POST makes an authenticated POST request and stores the response.
func (tc *TestContext) POST(path string, body any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, tc.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	tc.setAuth(req)
	return tc.do(req)
}

// GET makes a GET request and stores the response.
func (tc *TestContext) GET(path string) error {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, tc.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	tc.setAuth(req)
	return tc.do(req)
}

// PUT makes an authenticated PUT request and stores the response.
func (tc *TestContext) PUT(path string, body any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPut, tc.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	tc.setAuth(req)
	return tc.do(req)
}

func (tc *TestContext) setAuth(req *http.Request) {
	if tc.CallerToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.CallerToken)
	}
}

func (tc *TestContext) do(req *http.Request) error {
	resp, err := tc.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}

	tc.LastResponse = resp
	tc.LastResponseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

// GetResponseField extracts a field from the JSON response.
func (tc *TestContext) GetResponseField(field string) (any, error) {
	var data map[string]any
	if err := json.Unmarshal(tc.LastResponseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	value, ok := data[field]
	if !ok {
		return nil, fmt.Errorf("field %s not found in response", field)
	}
	return value, nil
}

// ResponseContains checks if the response body contains a field or text.
func (tc *TestContext) ResponseContains(text string) bool {
	if strings.Contains(string(tc.LastResponseBody), text) {
		return true
	}
	var data map[string]any
	if err := json.Unmarshal(tc.LastResponseBody, &data); err == nil {
		if _, ok := data[text]; ok {
			return true
		}
	}
	return false
}

// GetLastResponseStatus returns the status code of the last response.
func (tc *TestContext) GetLastResponseStatus() int {
	if tc.LastResponse == nil {
		return 0
	}
	return tc.LastResponse.StatusCode
}
