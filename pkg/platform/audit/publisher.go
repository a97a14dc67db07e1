package audit

import (
	"context"
	"log/slog"
	"sync"
)

// Publisher receives vault lifecycle events for external indexing.
type Publisher interface {
	Emit(ctx context.Context, event Event) error
}

// LogPublisher writes events to structured logs. It is the default sink; a
// broker-backed publisher can replace it without touching domain code.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Emit(ctx context.Context, event Event) error {
	p.logger.InfoContext(ctx, string(event.Action),
		"log_type", "audit",
		"vault_id", event.VaultID.String(),
		"asset", event.Asset.String(),
		"amount", event.Amount.String(),
		"fee", event.Fee.String(),
		"recipient", event.Recipient.String(),
		"request_id", event.RequestID,
	)
	return nil
}

// MemoryPublisher records events for tests.
type MemoryPublisher struct {
	mu     sync.Mutex
	events []Event
}

func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{}
}

func (p *MemoryPublisher) Emit(_ context.Context, event Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

// Events returns a copy of everything emitted so far.
func (p *MemoryPublisher) Events() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Event, len(p.events))
	copy(out, p.events)
	return out
}
