package service

import (
	"context"
	"time"

	dErrors "strongroom/pkg/domain-errors"
	psync "strongroom/pkg/platform/sync"
)

const defaultTxTimeout = 5 * time.Second

// vaultTx serializes mutating operations per vault. Holding the vault's lock
// for the whole operation means concurrent callers on other goroutines block
// until the first operation has committed or rolled back, and then observe
// only final state. The lock is not reentrant: a collaborator must not call
// back into the service for the same vault on the goroutine that holds it,
// and the operation deadline does not bound the Lock wait.
type vaultTx struct {
	guard   *psync.KeyedMutex
	timeout time.Duration
}

func newVaultTx() *vaultTx {
	return &vaultTx{guard: psync.NewKeyedMutex(), timeout: defaultTxTimeout}
}

func (t *vaultTx) run(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "operation aborted: context cancelled")
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	t.guard.Lock(key)
	defer t.guard.Unlock(key)

	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "operation aborted: context cancelled")
	}

	return fn(ctx)
}
