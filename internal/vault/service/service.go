// Package service implements the vault settlement engine: collateral
// valuation, mint/burn accounting with fee extraction, forced liquidation,
// withdrawal gating, and collateral-preserving swaps.
//
// Every mutating operation follows the same discipline: check invariants
// against live configuration and prices, commit internal ledger state, and
// only then invoke value-moving collaborators. A collaborator failure rolls
// the committed state back before the error surfaces, so no partial
// application is ever observable between operations.
package service

import (
	"context"
	"sort"
	"time"

	"cosmossdk.io/math"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"strongroom/internal/protocol"
	vaultmetrics "strongroom/internal/vault/metrics"
	"strongroom/internal/vault/models"
	"strongroom/pkg/domain"
	dErrors "strongroom/pkg/domain-errors"
	"strongroom/pkg/platform/audit"
)

// VaultService orchestrates vault operations against external collaborators.
type VaultService struct {
	vaults     VaultStore
	registry   AssetRegistry
	valuer     Valuer
	pegged     PeggedLedger
	collateral CollateralLedger
	venue      ExchangeVenue
	config     ConfigSource

	auditEmitter *auditEmitter
	metrics      *vaultmetrics.Metrics
	tracer       trace.Tracer
	tx           *vaultTx
}

func New(
	vaults VaultStore,
	registry AssetRegistry,
	valuer Valuer,
	pegged PeggedLedger,
	collateral CollateralLedger,
	venue ExchangeVenue,
	config ConfigSource,
	opts ...Option,
) *VaultService {
	cfg := &serviceConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	tracer := cfg.tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("strongroom/vault")
	}
	return &VaultService{
		vaults:       vaults,
		registry:     registry,
		valuer:       valuer,
		pegged:       pegged,
		collateral:   collateral,
		venue:        venue,
		config:       config,
		auditEmitter: newAuditEmitter(cfg.logger, cfg.auditPublisher),
		metrics:      cfg.metrics,
		tracer:       tracer,
		tx:           newVaultTx(),
	}
}

// CreateVault registers a new vault for an owner. Only the registry
// authority may create vaults; the authority identity is fixed into the
// vault at creation and never changes.
func (s *VaultService) CreateVault(ctx context.Context, caller, owner domain.Address) (*models.Vault, error) {
	if err := requireAddress(owner, "owner"); err != nil {
		return nil, err
	}
	cfg, err := s.liveConfig(ctx)
	if err != nil {
		return nil, err
	}
	if caller != cfg.Authority {
		return nil, dErrors.New(dErrors.CodeForbidden, "only the registry authority may create vaults")
	}

	vault, err := models.NewVault(domain.NewVaultID(), domain.NewAddress(), owner, cfg.Authority, time.Now())
	if err != nil {
		return nil, err
	}
	if err := s.vaults.Create(ctx, vault); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create vault")
	}

	s.auditEmitter.emit(ctx, audit.Event{
		VaultID:   vault.ID,
		Action:    audit.ActionVaultCreated,
		Amount:    math.ZeroInt(),
		Fee:       math.ZeroInt(),
		Recipient: owner,
	})
	if s.metrics != nil {
		s.metrics.IncrementVaultsCreated()
	}
	return vault, nil
}

// SetOwner reassigns a vault's owner. Authority-only; there is no
// self-service transfer.
func (s *VaultService) SetOwner(ctx context.Context, caller domain.Address, vaultID domain.VaultID, newOwner domain.Address) (*models.Vault, error) {
	if err := requireVaultID(vaultID); err != nil {
		return nil, err
	}
	if err := requireAddress(newOwner, "new owner"); err != nil {
		return nil, err
	}

	var updated *models.Vault
	err := s.tx.run(ctx, vaultID.String(), func(ctx context.Context) error {
		vault, err := s.vaults.FindByID(ctx, vaultID)
		if err != nil {
			return wrapVaultErr(err)
		}
		if caller != vault.RegistryAuthority {
			return dErrors.New(dErrors.CodeForbidden, "only the registry authority may change the owner")
		}
		if err := vault.ChangeOwner(newOwner, time.Now()); err != nil {
			return err
		}
		if err := s.vaults.Update(ctx, vault); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update vault")
		}
		updated = vault
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.auditEmitter.emit(ctx, audit.Event{
		VaultID:   updated.ID,
		Action:    audit.ActionOwnerChanged,
		Amount:    math.ZeroInt(),
		Fee:       math.ZeroInt(),
		Recipient: newOwner,
	})
	return updated, nil
}

// TotalCollateralValue sums the reference-currency value of every approved
// asset the vault holds, plus its native balance, from live balances and
// live average prices.
func (s *VaultService) TotalCollateralValue(ctx context.Context, vault *models.Vault) (math.Int, error) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveValuation(start)
		}
	}()

	total := math.ZeroInt()

	nativeBal, err := s.collateral.BalanceOf(ctx, domain.NativeAddress, vault.Address)
	if err != nil {
		return math.ZeroInt(), wrapExternalErr(err, "native balance lookup")
	}
	if nativeBal.IsPositive() {
		value, err := s.valuer.ToReferenceCurrency(ctx, nativeAsset(), nativeBal)
		if err != nil {
			return math.ZeroInt(), wrapExternalErr(err, "native valuation")
		}
		total = total.Add(value)
	}

	approved, err := s.registry.List(ctx)
	if err != nil {
		return math.ZeroInt(), wrapExternalErr(err, "asset registry scan")
	}
	for _, asset := range approved {
		bal, err := s.collateral.BalanceOf(ctx, asset.Address, vault.Address)
		if err != nil {
			return math.ZeroInt(), wrapExternalErr(err, "collateral balance lookup")
		}
		if bal.IsZero() {
			continue
		}
		value, err := s.valuer.ToReferenceCurrency(ctx, asset, bal)
		if err != nil {
			return math.ZeroInt(), wrapExternalErr(err, "collateral valuation")
		}
		total = total.Add(value)
	}
	return total, nil
}

// MaxMintable derives the mint ceiling from live collateral value and the
// live collateralization threshold.
func (s *VaultService) MaxMintable(ctx context.Context, vault *models.Vault) (math.Int, error) {
	cfg, err := s.liveConfig(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}
	return s.maxMintableWith(ctx, vault, cfg)
}

func (s *VaultService) maxMintableWith(ctx context.Context, vault *models.Vault, cfg protocol.Config) (math.Int, error) {
	total, err := s.TotalCollateralValue(ctx, vault)
	if err != nil {
		return math.ZeroInt(), err
	}
	return total.MulRaw(protocol.OneHundredPercent).QuoRaw(cfg.CollateralizationThreshold), nil
}

// Undercollateralized reports whether the minted amount exceeds the current
// mint ceiling. Pure predicate; it is the liquidation eligibility gate.
func (s *VaultService) Undercollateralized(ctx context.Context, vaultID domain.VaultID) (bool, error) {
	if err := requireVaultID(vaultID); err != nil {
		return false, err
	}
	vault, err := s.vaults.FindByID(ctx, vaultID)
	if err != nil {
		return false, wrapVaultErr(err)
	}
	maxMintable, err := s.MaxMintable(ctx, vault)
	if err != nil {
		return false, err
	}
	return vault.MintedAmount.GT(maxMintable), nil
}

// Status is the public read model, recomputed from live balances and prices.
// Liquidated vaults still answer, with zero minted amount and the flag set.
func (s *VaultService) Status(ctx context.Context, vaultID domain.VaultID) (*models.Status, error) {
	if err := requireVaultID(vaultID); err != nil {
		return nil, err
	}
	vault, err := s.vaults.FindByID(ctx, vaultID)
	if err != nil {
		return nil, wrapVaultErr(err)
	}
	cfg, err := s.liveConfig(ctx)
	if err != nil {
		return nil, err
	}

	positions := make([]models.CollateralPosition, 0, 4)
	total := math.ZeroInt()

	nativeBal, err := s.collateral.BalanceOf(ctx, domain.NativeAddress, vault.Address)
	if err != nil {
		return nil, wrapExternalErr(err, "native balance lookup")
	}
	if nativeBal.IsPositive() {
		value, err := s.valuer.ToReferenceCurrency(ctx, nativeAsset(), nativeBal)
		if err != nil {
			return nil, wrapExternalErr(err, "native valuation")
		}
		total = total.Add(value)
		positions = append(positions, models.CollateralPosition{
			Symbol:  nativeAsset().Symbol,
			Address: domain.NativeAddress,
			Balance: nativeBal,
			Value:   value,
		})
	}

	approved, err := s.registry.List(ctx)
	if err != nil {
		return nil, wrapExternalErr(err, "asset registry scan")
	}
	for _, asset := range approved {
		bal, err := s.collateral.BalanceOf(ctx, asset.Address, vault.Address)
		if err != nil {
			return nil, wrapExternalErr(err, "collateral balance lookup")
		}
		value := math.ZeroInt()
		if bal.IsPositive() {
			value, err = s.valuer.ToReferenceCurrency(ctx, asset, bal)
			if err != nil {
				return nil, wrapExternalErr(err, "collateral valuation")
			}
			total = total.Add(value)
		}
		positions = append(positions, models.CollateralPosition{
			Symbol:  asset.Symbol,
			Address: asset.Address,
			Balance: bal,
			Value:   value,
		})
	}
	sort.Slice(positions, func(i, j int) bool { return positions[i].Symbol < positions[j].Symbol })

	return &models.Status{
		ID:                   vault.ID,
		Address:              vault.Address,
		Owner:                vault.Owner,
		MintedAmount:         vault.MintedAmount,
		MaxMintable:          total.MulRaw(protocol.OneHundredPercent).QuoRaw(cfg.CollateralizationThreshold),
		TotalCollateralValue: total,
		Collateral:           positions,
		Liquidated:           vault.Liquidated,
		Version:              models.Version,
		VaultType:            models.VaultType,
	}, nil
}

// List returns snapshots of every vault, for external indexing.
func (s *VaultService) List(ctx context.Context) ([]*models.Vault, error) {
	vaults, err := s.vaults.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list vaults")
	}
	return vaults, nil
}

func (s *VaultService) liveConfig(ctx context.Context) (protocol.Config, error) {
	cfg, err := s.config.Config(ctx)
	if err != nil {
		return protocol.Config{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read protocol configuration")
	}
	return cfg, nil
}

func (s *VaultService) startSpan(ctx context.Context, name string, vaultID domain.VaultID) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, name, trace.WithAttributes(
		attribute.String("vault.id", vaultID.String()),
	))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
