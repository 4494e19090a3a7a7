package subscribers

import (
	"context"
	"log/slog"

	"github.com/felixgeelhaar/tasktracker/internal/shared/domain"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/domain/task"
	"github.com/felixgeelhaar/tasktracker/pkg/observability"
)

// MetricsSubscriber counts task lifecycle events.
type MetricsSubscriber struct {
	metrics observability.Metrics
	logger  *slog.Logger
}

// NewMetricsSubscriber creates a new metrics subscriber.
func NewMetricsSubscriber(metrics observability.Metrics, logger *slog.Logger) *MetricsSubscriber {
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &MetricsSubscriber{metrics: metrics, logger: logger}
}

// EventTypes returns the event types this subscriber handles.
func (s *MetricsSubscriber) EventTypes() []string {
	return []string{
		task.RoutingKeyCreated,
		task.RoutingKeyCompleted,
		task.RoutingKeyDeleted,
	}
}

// Handle processes a task event.
func (s *MetricsSubscriber) Handle(ctx context.Context, event domain.DomainEvent) error {
	switch event.RoutingKey() {
	case task.RoutingKeyCreated:
		tags := []observability.Tag(nil)
		if created, ok := event.(*task.TaskCreated); ok {
			tags = append(tags, observability.T("priority", created.Priority))
		}
		s.metrics.Counter(observability.MetricTasksCreated, 1, tags...)
	case task.RoutingKeyCompleted:
		s.metrics.Counter(observability.MetricTasksCompleted, 1)
	case task.RoutingKeyDeleted:
		s.metrics.Counter(observability.MetricTasksDeleted, 1)
	default:
		s.logger.DebugContext(ctx, "unhandled event type", "routing_key", event.RoutingKey())
		return nil
	}

	s.logger.DebugContext(ctx, "task event",
		"routing_key", event.RoutingKey(),
		"task_id", event.AggregateID(),
	)
	return nil
}
