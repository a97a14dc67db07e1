package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Store persists audit events and serves per-vault queries.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByVault(ctx context.Context, vaultID string) ([]Event, error)
}

// InMemoryStore keeps events in memory, keyed by vault.
type InMemoryStore struct {
	mu     sync.RWMutex
	events map[string][]Event
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{events: make(map[string][]Event)}
}

func (s *InMemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := event.VaultID.String()
	s.events[key] = append(s.events[key], event)
	return nil
}

func (s *InMemoryStore) ListByVault(_ context.Context, vaultID string) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Event{}, s.events[vaultID]...), nil
}

func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = make(map[string][]Event)
}

// StorePublisher persists emitted events through a Store. With an async
// buffer configured, events are queued and written by a background goroutine;
// the hot path never blocks on the sink.
type StorePublisher struct {
	store  Store
	events chan Event
	wg     sync.WaitGroup
	logger *slog.Logger
	async  bool
}

// StorePublisherOption configures the StorePublisher.
type StorePublisherOption func(*StorePublisher)

// WithAsyncBuffer enables async processing with the specified buffer size.
// When the buffer is full, events are dropped rather than blocking callers.
func WithAsyncBuffer(size int) StorePublisherOption {
	return func(p *StorePublisher) {
		if size > 0 {
			p.events = make(chan Event, size)
			p.async = true
		}
	}
}

// WithPublisherLogger sets a logger for async error and drop reporting.
func WithPublisherLogger(logger *slog.Logger) StorePublisherOption {
	return func(p *StorePublisher) {
		p.logger = logger
	}
}

func NewStorePublisher(store Store, opts ...StorePublisherOption) *StorePublisher {
	p := &StorePublisher{store: store}
	for _, opt := range opts {
		opt(p)
	}
	if p.async {
		p.wg.Add(1)
		go p.processEvents()
	}
	return p
}

func (p *StorePublisher) processEvents() {
	defer p.wg.Done()
	for event := range p.events {
		if err := p.store.Append(context.Background(), event); err != nil {
			if p.logger != nil {
				p.logger.Error("failed to persist audit event",
					"error", err,
					"action", event.Action,
					"vault_id", event.VaultID.String(),
				)
			}
		}
	}
}

// Close shuts down the async publisher and waits for pending events to drain.
func (p *StorePublisher) Close() {
	if p.async && p.events != nil {
		close(p.events)
		p.wg.Wait()
	}
}

func (p *StorePublisher) Emit(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if p.async {
		select {
		case p.events <- event:
			return nil
		default:
			if p.logger != nil {
				p.logger.Warn("audit buffer full, event dropped",
					"action", event.Action,
					"vault_id", event.VaultID.String(),
				)
			}
			return nil
		}
	}
	return p.store.Append(ctx, event)
}

// Multi fans one event out to several publishers. The first error wins but
// every publisher still sees the event.
type Multi []Publisher

func (m Multi) Emit(ctx context.Context, event Event) error {
	var first error
	for _, p := range m {
		if err := p.Emit(ctx, event); err != nil && first == nil {
			first = err
		}
	}
	return first
}
