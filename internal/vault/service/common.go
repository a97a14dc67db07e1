package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"cosmossdk.io/math"

	"strongroom/internal/assets"
	"strongroom/internal/sentinel"
	"strongroom/internal/vault/models"
	"strongroom/pkg/domain"
	dErrors "strongroom/pkg/domain-errors"
	"strongroom/pkg/platform/audit"
)

func requireVaultID(vaultID domain.VaultID) error {
	if vaultID.IsNil() {
		return dErrors.New(dErrors.CodeBadRequest, "vault ID required")
	}
	return nil
}

func requireAddress(addr domain.Address, label string) error {
	if addr.IsNil() {
		return dErrors.New(dErrors.CodeBadRequest, label+" required")
	}
	return nil
}

func requireAmount(amount math.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return dErrors.New(dErrors.CodeBadRequest, "amount cannot be negative")
	}
	return nil
}

func requirePositiveAmount(amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return dErrors.New(dErrors.CodeBadRequest, "amount must be positive")
	}
	return nil
}

// nativeAsset is the pseudo-entry used to value the vault's chain-native
// balance, which the registry does not track.
func nativeAsset() assets.Asset {
	return assets.Asset{Symbol: "NATIVE", Address: domain.NativeAddress, Decimals: models.NativeDecimals}
}

// Error wrapping helpers translate sentinel errors to domain errors exactly once.

func wrapVaultErr(err error) error {
	if errors.Is(err, sentinel.ErrNotFound) {
		return dErrors.New(dErrors.CodeNotFound, "vault not found")
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "vault lookup failed")
}

func wrapExternalErr(err error, action string) error {
	switch {
	case errors.Is(err, sentinel.ErrTransferRejected):
		return dErrors.Wrap(err, dErrors.CodeTransferRejected, action+": transfer rejected")
	case errors.Is(err, sentinel.ErrInsufficientFunds):
		return dErrors.Wrap(err, dErrors.CodeInsufficientFunds, action+": insufficient balance")
	case errors.Is(err, sentinel.ErrSlippage):
		return dErrors.Wrap(err, dErrors.CodeSlippage, action+": output below required minimum")
	case errors.Is(err, sentinel.ErrInvalidInput):
		return dErrors.Wrap(err, dErrors.CodeBadRequest, action+": rejected input")
	case errors.Is(err, sentinel.ErrNotFound), errors.Is(err, sentinel.ErrUnavailable):
		return dErrors.Wrap(err, dErrors.CodeInternal, action+": collaborator unavailable")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, action+" failed")
	}
}

// auditEmitter handles audit logging and event emission.
type auditEmitter struct {
	logger    *slog.Logger
	publisher AuditPublisher
}

func newAuditEmitter(logger *slog.Logger, publisher AuditPublisher) *auditEmitter {
	return &auditEmitter{logger: logger, publisher: publisher}
}

func (e *auditEmitter) emit(ctx context.Context, event audit.Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if e.logger != nil {
		e.logger.InfoContext(ctx, string(event.Action),
			"log_type", "audit",
			"vault_id", event.VaultID.String(),
			"asset", event.Asset.String(),
			"amount", event.Amount.String(),
			"fee", event.Fee.String(),
			"recipient", event.Recipient.String(),
		)
	}
	if e.publisher == nil {
		return
	}
	if err := e.publisher.Emit(ctx, event); err != nil && e.logger != nil {
		e.logger.ErrorContext(ctx, "failed to emit audit event",
			"event", string(event.Action),
			"error", err,
		)
	}
}

// compensationFailed records a rollback step that could not complete. State
// may be inconsistent at this point, so the failure is never swallowed.
func (e *auditEmitter) compensationFailed(ctx context.Context, vaultID domain.VaultID, stage string, err error) {
	if e.logger == nil {
		return
	}
	e.logger.ErrorContext(ctx, "compensation step failed, manual reconciliation required",
		"vault_id", vaultID.String(),
		"stage", stage,
		"error", err,
	)
}
