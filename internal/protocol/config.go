// Package protocol holds the registry authority's live configuration: fee
// rates, the collateralization threshold, and the protocol addresses every
// vault operation reads at call time. Nothing here is cached by callers, so
// an update takes effect on the next valuation.
package protocol

import (
	"context"
	"sync"

	"strongroom/pkg/domain"
	dErrors "strongroom/pkg/domain-errors"
)

// OneHundredPercent is the fixed-point scale for rates and thresholds.
// Rates are expressed in basis points: 50 is 0.5%, 15000 is 150%.
const OneHundredPercent int64 = 10_000

// Config is one consistent snapshot of protocol parameters.
type Config struct {
	MintFeeRate                int64          `json:"mint_fee_rate"`
	BurnFeeRate                int64          `json:"burn_fee_rate"`
	SwapFeeRate                int64          `json:"swap_fee_rate"`
	CollateralizationThreshold int64          `json:"collateralization_threshold"`
	Authority                  domain.Address `json:"authority"`
	Treasury                   domain.Address `json:"treasury"`
	ExchangeVenue              domain.Address `json:"exchange_venue"`
	WrappedNative              domain.Address `json:"wrapped_native"`
}

func (c Config) validate() error {
	if c.CollateralizationThreshold < OneHundredPercent {
		return dErrors.New(dErrors.CodeValidation, "collateralization threshold must be at least 100%")
	}
	for _, rate := range []int64{c.MintFeeRate, c.BurnFeeRate, c.SwapFeeRate} {
		if rate < 0 || rate > OneHundredPercent {
			return dErrors.New(dErrors.CodeValidation, "fee rates must be between 0 and 100%")
		}
	}
	if c.Authority.IsNil() || c.Treasury.IsNil() {
		return dErrors.New(dErrors.CodeValidation, "authority and treasury addresses are required")
	}
	return nil
}

// Store serves live configuration reads and authority updates.
type Store struct {
	mu  sync.RWMutex
	cfg Config
}

func NewStore(cfg Config) (*Store, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Store{cfg: cfg}, nil
}

// Config returns the current snapshot. Callers must re-read per operation
// rather than holding on to the result.
func (s *Store) Config(_ context.Context) (Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg, nil
}

// Update replaces the configuration after validation.
func (s *Store) Update(_ context.Context, cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	return nil
}
