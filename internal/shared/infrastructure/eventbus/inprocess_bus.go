package eventbus

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/felixgeelhaar/tasktracker/internal/shared/domain"
)

// EventConsumer handles specific event types.
type EventConsumer interface {
	// EventTypes returns the routing keys this consumer handles,
	// e.g. ["tasks.task.created"].
	EventTypes() []string

	// Handle processes the event.
	Handle(ctx context.Context, event domain.DomainEvent) error
}

// InProcessEventBus delivers domain events synchronously to registered
// consumers. Consumer failures are logged and never returned to the publisher.
type InProcessEventBus struct {
	consumers map[string][]EventConsumer
	mu        sync.RWMutex
	logger    *slog.Logger
}

// NewInProcessEventBus creates a new in-process event bus.
func NewInProcessEventBus(logger *slog.Logger) *InProcessEventBus {
	if logger == nil {
		logger = slog.Default()
	}
	return &InProcessEventBus{
		consumers: make(map[string][]EventConsumer),
		logger:    logger,
	}
}

// RegisterConsumer adds a consumer for its declared event types.
func (b *InProcessEventBus) RegisterConsumer(consumer EventConsumer) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, eventType := range consumer.EventTypes() {
		b.consumers[eventType] = append(b.consumers[eventType], consumer)
		b.logger.Debug("registered consumer for event type",
			"event_type", eventType,
		)
	}
}

// ConsumerCount returns the total number of registered consumer instances.
func (b *InProcessEventBus) ConsumerCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	count := 0
	for _, consumers := range b.consumers {
		count += len(consumers)
	}
	return count
}

// Publish dispatches events in order to every consumer registered for their
// routing keys.
func (b *InProcessEventBus) Publish(ctx context.Context, events ...domain.DomainEvent) error {
	for _, event := range events {
		b.dispatch(ctx, event)
	}
	return nil
}

func (b *InProcessEventBus) dispatch(ctx context.Context, event domain.DomainEvent) {
	b.mu.RLock()
	consumers := b.consumers[event.RoutingKey()]
	b.mu.RUnlock()

	if len(consumers) == 0 {
		b.logger.Debug("no consumers for event type",
			"routing_key", event.RoutingKey(),
		)
		return
	}

	start := time.Now()
	for _, consumer := range consumers {
		if err := consumer.Handle(ctx, event); err != nil {
			// Continue with the remaining consumers.
			b.logger.Error("consumer failed to handle event",
				"routing_key", event.RoutingKey(),
				"event_id", event.EventID(),
				"error", err,
			)
		}
	}

	b.logger.Debug("event dispatched",
		"routing_key", event.RoutingKey(),
		"event_id", event.EventID(),
		"aggregate_id", event.AggregateID(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

// Close is a no-op for the in-process bus.
func (b *InProcessEventBus) Close() error {
	return nil
}
