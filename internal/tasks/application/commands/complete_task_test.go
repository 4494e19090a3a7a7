package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/felixgeelhaar/tasktracker/internal/tasks/domain/task"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/domain/value_objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func existingTasks(t *testing.T) task.Collection {
	t.Helper()
	first, err := task.NewTask("first", value_objects.MustParseDate("2024-06-01"), value_objects.PriorityHigh)
	require.NoError(t, err)
	second, err := task.NewTask("second", value_objects.MustParseDate("2024-06-02"), value_objects.PriorityLow)
	require.NoError(t, err)
	return task.Collection{first, second}
}

func TestCompleteTaskHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("successfully completes task", func(t *testing.T) {
		tasks := existingTasks(t)
		repo := new(mockTaskRepo)
		s, publisher := newTestSession(t, repo, tasks)
		handler := NewCompleteTaskHandler(s)
		repo.On("Save", ctx, mock.MatchedBy(func(c task.Collection) bool {
			return c.Len() == 2 && c[0].IsCompleted() && !c[1].IsCompleted()
		})).Return(nil)

		result, err := handler.Handle(ctx, CompleteTaskCommand{TaskID: tasks[0].ID()})

		require.NoError(t, err)
		assert.True(t, result.Found)
		assert.False(t, result.AlreadyCompleted)
		assert.Equal(t, []string{task.RoutingKeyCompleted}, publisher.routingKeys())
		assert.Equal(t, tasks[0].ID(), publisher.events[0].AggregateID())
		repo.AssertExpectations(t)
	})

	t.Run("completing twice is idempotent", func(t *testing.T) {
		tasks := existingTasks(t)
		repo := new(mockTaskRepo)
		s, publisher := newTestSession(t, repo, tasks)
		handler := NewCompleteTaskHandler(s)
		repo.On("Save", ctx, mock.Anything).Return(nil)

		_, err := handler.Handle(ctx, CompleteTaskCommand{TaskID: tasks[0].ID()})
		require.NoError(t, err)
		afterFirst := s.Tasks()

		result, err := handler.Handle(ctx, CompleteTaskCommand{TaskID: tasks[0].ID()})

		require.NoError(t, err)
		assert.True(t, result.AlreadyCompleted)
		assert.True(t, afterFirst.Equal(s.Tasks()))
		assert.Len(t, publisher.events, 1, "no second completion event")
		repo.AssertNumberOfCalls(t, "Save", 2)
	})

	t.Run("unknown id is a silent no-op that still saves", func(t *testing.T) {
		tasks := existingTasks(t)
		repo := new(mockTaskRepo)
		s, publisher := newTestSession(t, repo, tasks)
		handler := NewCompleteTaskHandler(s)
		repo.On("Save", ctx, tasks).Return(nil)

		result, err := handler.Handle(ctx, CompleteTaskCommand{TaskID: "does-not-exist"})

		require.NoError(t, err)
		assert.False(t, result.Found)
		assert.True(t, tasks.Equal(s.Tasks()))
		assert.Empty(t, publisher.events)
		repo.AssertExpectations(t)
	})

	t.Run("returns save error", func(t *testing.T) {
		tasks := existingTasks(t)
		repo := new(mockTaskRepo)
		s, _ := newTestSession(t, repo, tasks)
		handler := NewCompleteTaskHandler(s)
		saveErr := errors.New("read-only filesystem")
		repo.On("Save", ctx, mock.Anything).Return(saveErr)

		result, err := handler.Handle(ctx, CompleteTaskCommand{TaskID: tasks[1].ID()})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, saveErr)
		completed, _ := s.Tasks().Find(tasks[1].ID())
		assert.True(t, completed.IsCompleted(), "memory keeps the change")
	})
}
