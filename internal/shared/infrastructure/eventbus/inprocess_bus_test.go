package eventbus

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"

	"github.com/felixgeelhaar/tasktracker/internal/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockConsumer struct {
	mock.Mock
	types []string
}

func (m *mockConsumer) EventTypes() []string { return m.types }

func (m *mockConsumer) Handle(ctx context.Context, event domain.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestInProcessEventBus_Publish(t *testing.T) {
	ctx := context.Background()

	t.Run("dispatches to matching consumers only", func(t *testing.T) {
		bus := NewInProcessEventBus(testLogger())
		created := &mockConsumer{types: []string{"tasks.task.created"}}
		deleted := &mockConsumer{types: []string{"tasks.task.deleted"}}
		bus.RegisterConsumer(created)
		bus.RegisterConsumer(deleted)

		event := domain.NewBaseEvent("task-1", "Task", "tasks.task.created")
		created.On("Handle", ctx, event).Return(nil).Once()

		require.NoError(t, bus.Publish(ctx, event))

		created.AssertExpectations(t)
		deleted.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("consumer error does not fail publish or stop other consumers", func(t *testing.T) {
		bus := NewInProcessEventBus(testLogger())
		failing := &mockConsumer{types: []string{"tasks.task.completed"}}
		healthy := &mockConsumer{types: []string{"tasks.task.completed"}}
		bus.RegisterConsumer(failing)
		bus.RegisterConsumer(healthy)

		event := domain.NewBaseEvent("task-1", "Task", "tasks.task.completed")
		failing.On("Handle", ctx, event).Return(errors.New("boom"))
		healthy.On("Handle", ctx, event).Return(nil)

		require.NoError(t, bus.Publish(ctx, event))

		failing.AssertExpectations(t)
		healthy.AssertExpectations(t)
	})

	t.Run("no consumers is fine", func(t *testing.T) {
		bus := NewInProcessEventBus(nil)
		assert.NoError(t, bus.Publish(ctx, domain.NewBaseEvent("x", "Task", "tasks.task.created")))
	})
}

func TestInProcessEventBus_ConsumerCount(t *testing.T) {
	bus := NewInProcessEventBus(testLogger())
	assert.Equal(t, 0, bus.ConsumerCount())

	bus.RegisterConsumer(&mockConsumer{types: []string{"a", "b"}})
	bus.RegisterConsumer(&mockConsumer{types: []string{"a"}})

	assert.Equal(t, 3, bus.ConsumerCount())
	assert.NoError(t, bus.Close())
}
