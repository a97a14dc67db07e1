package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr          string
	Environment   string
	JWTSigningKey string
	TokenTTL      time.Duration
}

// Genesis captures the protocol parameters the server boots with. The
// authority can change fee rates and the threshold at runtime through the
// admin surface; these are only the starting values.
type Genesis struct {
	MintFeeRate                int64
	BurnFeeRate                int64
	SwapFeeRate                int64
	CollateralizationThreshold int64
	VenueFeeRate               int64
	Authority                  string
	Treasury                   string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("STRONGROOM_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	environment := os.Getenv("STRONGROOM_ENV")
	if environment == "" {
		environment = "development"
	}
	jwtSigningKey := os.Getenv("JWT_SIGNING_KEY")
	if jwtSigningKey == "" {
		// Development default - must be overridden in production.
		jwtSigningKey = "dev-secret-key-change-in-production"
	}
	tokenTTL := 15 * time.Minute
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			tokenTTL = d
		}
	}
	return Server{
		Addr:          addr,
		Environment:   environment,
		JWTSigningKey: jwtSigningKey,
		TokenTTL:      tokenTTL,
	}
}

// GenesisFromEnv reads the boot-time protocol parameters, with conservative
// defaults: 0.5% fees and a 150% collateralization threshold.
func GenesisFromEnv() Genesis {
	return Genesis{
		MintFeeRate:                envInt64("MINT_FEE_BPS", 50),
		BurnFeeRate:                envInt64("BURN_FEE_BPS", 50),
		SwapFeeRate:                envInt64("SWAP_FEE_BPS", 50),
		CollateralizationThreshold: envInt64("COLLATERALIZATION_THRESHOLD_BPS", 15_000),
		VenueFeeRate:               envInt64("VENUE_FEE_BPS", 100),
		Authority:                  os.Getenv("AUTHORITY_ADDRESS"),
		Treasury:                   os.Getenv("TREASURY_ADDRESS"),
	}
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
