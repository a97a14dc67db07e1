// Package main provides a CLI tool for generating caller tokens for the
// strongroom API. These tokens use the dev signing key and will NOT work in
// production.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"strongroom/internal/platform/token"
	"strongroom/pkg/domain"
)

const (
	// Dev signing key - matches config.go when JWT_SIGNING_KEY is not set
	devSigningKey = "dev-secret-key-change-in-production"

	defaultIssuer   = "strongroom"
	defaultTokenTTL = 15 * time.Minute
)

type tokenOutput struct {
	Token     string            `json:"token"`
	Caller    string            `json:"caller"`
	ExpiresIn string            `json:"expires_in"`
	Usage     map[string]string `json:"usage"`
}

func main() {
	address := flag.String("address", "", "Caller address (UUID). Generated if empty.")
	signingKey := flag.String("signing-key", devSigningKey, "JWT signing key. Must match the server's JWT_SIGNING_KEY.")
	ttl := flag.Duration("ttl", defaultTokenTTL, "Token time-to-live")
	jsonOutput := flag.Bool("json", false, "Output as JSON")
	flag.Usage = printUsage
	flag.Parse()

	caller := parseOrGenerateAddress(*address)

	svc := token.NewService(*signingKey, defaultIssuer, *ttl)
	signed, err := svc.Generate(caller)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating token: %v\n", err)
		os.Exit(1)
	}

	if *jsonOutput {
		printJSON(tokenOutput{
			Token:     signed,
			Caller:    caller.String(),
			ExpiresIn: ttl.String(),
			Usage: map[string]string{
				"header": "Authorization: Bearer <token>",
			},
		})
		return
	}

	fmt.Println("Caller Token (JWT)")
	fmt.Println("==================")
	fmt.Printf("Caller:     %s\n", caller)
	fmt.Printf("Expires In: %s\n", ttl)
	fmt.Println()
	fmt.Println("Token:")
	fmt.Println(signed)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  curl -H \"Authorization: Bearer <token>\" http://localhost:8080/vaults")
}

func printUsage() {
	fmt.Println(`tokengen - Generate caller tokens for the strongroom API

WARNING: Defaults to the dev signing key. Tokens will NOT work against a
         server configured with a production JWT_SIGNING_KEY.

Usage:
  tokengen [flags]

Examples:
  # Generate a token for a fresh caller address
  tokengen

  # Generate a token for a known address (e.g. the configured authority)
  tokengen -address "550e8400-e29b-41d4-a716-446655440000"

  # Longer-lived token, JSON output
  tokengen -ttl 1h -json`)
	fmt.Println()
	fmt.Println("Flags:")
	flag.PrintDefaults()
}

func parseOrGenerateAddress(input string) domain.Address {
	if input == "" {
		return domain.NewAddress()
	}
	parsed, err := domain.ParseAddress(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid address: %s\n", input)
		os.Exit(1)
	}
	return parsed
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}
