package event

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/beerworks/backend/internal/domain/shared"
	"github.com/beerworks/backend/internal/infrastructure/async"
	"go.uber.org/zap"
)

// AsyncEventBus implements shared.EventBus with in-memory pub/sub. Handler
// dispatch runs on the worker pool: Publish hands each (event, handler) pair
// to the pool and returns immediately, so publishers never block on handlers
// and never observe handler failures. Delivery is at-most-once with no
// ordering guarantee across concurrently published events.
type AsyncEventBus struct {
	mu       sync.RWMutex
	byType   map[string][]shared.EventHandler
	wildcard []shared.EventHandler // receive every event type

	pool    *async.Pool
	logger  *zap.Logger
	stopped atomic.Bool
}

// NewAsyncEventBus creates a new in-memory event bus backed by the given pool
func NewAsyncEventBus(pool *async.Pool, logger *zap.Logger) *AsyncEventBus {
	return &AsyncEventBus{
		byType: make(map[string][]shared.EventHandler),
		pool:   pool,
		logger: logger,
	}
}

// Publish dispatches events to all registered handlers asynchronously.
// Dispatch goes through the pool's non-blocking path: publishers frequently
// run on pool workers themselves (bulk imports publish per row), so a
// blocking enqueue here could deadlock the pool against a full queue.
func (b *AsyncEventBus) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	// Handlers outlive the request: detach from the caller's cancellation
	// while keeping its values.
	handlerCtx := context.WithoutCancel(ctx)

	for _, ev := range events {
		if b.stopped.Load() {
			b.logger.Warn("event dropped, bus is stopped",
				zap.String("event_type", ev.EventType()),
				zap.String("event_id", ev.EventID().String()),
			)
			continue
		}
		for _, handler := range b.handlersFor(ev.EventType()) {
			ev, handler := ev, handler
			err := b.pool.Dispatch(func() {
				if err := handler.Handle(handlerCtx, ev); err != nil {
					b.logger.Error("handler failed to process event",
						zap.String("event_type", ev.EventType()),
						zap.String("event_id", ev.EventID().String()),
						zap.Error(err),
					)
				}
			})
			if err != nil {
				b.logger.Warn("event dropped, pool is stopping",
					zap.String("event_type", ev.EventType()),
					zap.String("event_id", ev.EventID().String()),
				)
			}
		}
	}
	return nil
}

// Subscribe registers a handler. With no explicit event types the handler's
// own EventTypes decides; a handler reporting none becomes a wildcard and
// receives everything.
func (b *AsyncEventBus) Subscribe(handler shared.EventHandler, eventTypes ...string) {
	if len(eventTypes) == 0 {
		eventTypes = handler.EventTypes()
	}

	b.mu.Lock()
	if len(eventTypes) == 0 {
		b.wildcard = append(b.wildcard, handler)
	}
	for _, eventType := range eventTypes {
		b.byType[eventType] = append(b.byType[eventType], handler)
	}
	b.mu.Unlock()

	b.logger.Debug("handler subscribed",
		zap.Strings("event_types", eventTypes),
	)
}

// Unsubscribe removes a handler from every event type
func (b *AsyncEventBus) Unsubscribe(handler shared.EventHandler) {
	b.mu.Lock()
	b.wildcard = without(b.wildcard, handler)
	for eventType, handlers := range b.byType {
		b.byType[eventType] = without(handlers, handler)
		if len(b.byType[eventType]) == 0 {
			delete(b.byType, eventType)
		}
	}
	b.mu.Unlock()

	b.logger.Debug("handler unsubscribed")
}

func (b *AsyncEventBus) handlersFor(eventType string) []shared.EventHandler {
	b.mu.RLock()
	defer b.mu.RUnlock()

	typed := b.byType[eventType]
	result := make([]shared.EventHandler, 0, len(typed)+len(b.wildcard))
	result = append(result, typed...)
	result = append(result, b.wildcard...)
	return result
}

func without(handlers []shared.EventHandler, target shared.EventHandler) []shared.EventHandler {
	result := handlers[:0:0]
	for _, h := range handlers {
		if h != target {
			result = append(result, h)
		}
	}
	return result
}

// Start starts the event bus
func (b *AsyncEventBus) Start(ctx context.Context) error {
	b.stopped.Store(false)
	b.logger.Info("event bus started")
	return nil
}

// Stop stops accepting events; in-flight dispatches drain with the worker pool
func (b *AsyncEventBus) Stop(ctx context.Context) error {
	b.stopped.Store(true)
	b.logger.Info("event bus stopped")
	return nil
}

// Ensure AsyncEventBus implements EventBus
var _ shared.EventBus = (*AsyncEventBus)(nil)
