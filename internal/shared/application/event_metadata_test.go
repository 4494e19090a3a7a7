package application

import (
	"context"
	"testing"
	"time"

	"github.com/felixgeelhaar/tasktracker/internal/shared/domain"
	"github.com/felixgeelhaar/tasktracker/pkg/observability"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewEventMetadata(t *testing.T) {
	t.Run("carries correlation id from context", func(t *testing.T) {
		ctx := observability.WithCorrelationID(context.Background(), "corr-1")

		metadata := NewEventMetadata(ctx)

		assert.Equal(t, "corr-1", metadata.CorrelationID)
	})

	t.Run("empty without correlation id", func(t *testing.T) {
		assert.Empty(t, NewEventMetadata(context.Background()).CorrelationID)
	})
}

type testEvent struct {
	domain.BaseEvent
}

// nonSetterEvent is a domain event that doesn't implement SetMetadata.
type nonSetterEvent struct {
	eventID uuid.UUID
}

func (e nonSetterEvent) EventID() uuid.UUID             { return e.eventID }
func (e nonSetterEvent) AggregateID() string            { return "" }
func (e nonSetterEvent) AggregateType() string          { return "test" }
func (e nonSetterEvent) RoutingKey() string             { return "test.event" }
func (e nonSetterEvent) OccurredAt() time.Time          { return time.Time{} }
func (e nonSetterEvent) Metadata() domain.EventMetadata { return domain.EventMetadata{} }

func TestApplyEventMetadata(t *testing.T) {
	t.Run("applies metadata to pointer events", func(t *testing.T) {
		first := &testEvent{BaseEvent: domain.NewBaseEvent("a", "Task", "tasks.task.created")}
		second := &testEvent{BaseEvent: domain.NewBaseEvent("b", "Task", "tasks.task.deleted")}
		metadata := domain.EventMetadata{CorrelationID: "corr-2"}

		ApplyEventMetadata([]domain.DomainEvent{first, second}, metadata)

		assert.Equal(t, metadata, first.Metadata())
		assert.Equal(t, metadata, second.Metadata())
	})

	t.Run("skips events without setter", func(t *testing.T) {
		event := nonSetterEvent{eventID: uuid.New()}

		assert.NotPanics(t, func() {
			ApplyEventMetadata([]domain.DomainEvent{event}, domain.EventMetadata{CorrelationID: "x"})
		})
		assert.Empty(t, event.Metadata().CorrelationID)
	})

	t.Run("handles empty slice", func(t *testing.T) {
		assert.NotPanics(t, func() {
			ApplyEventMetadata(nil, domain.EventMetadata{})
		})
	})
}
