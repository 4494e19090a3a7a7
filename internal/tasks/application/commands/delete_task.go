package commands

import (
	"context"

	sharedApplication "github.com/felixgeelhaar/tasktracker/internal/shared/application"
	"github.com/felixgeelhaar/tasktracker/internal/shared/domain"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/domain/task"
)

// DeleteTaskCommand contains the data needed to delete a task.
type DeleteTaskCommand struct {
	TaskID string
}

func (DeleteTaskCommand) CommandName() string { return "tasks.delete" }

// DeleteTaskResult reports whether a task was removed.
type DeleteTaskResult struct {
	Found bool
}

// DeleteTaskHandler handles the DeleteTaskCommand.
type DeleteTaskHandler struct {
	store TaskStore
}

var _ sharedApplication.CommandHandler[DeleteTaskCommand, *DeleteTaskResult] = (*DeleteTaskHandler)(nil)

// NewDeleteTaskHandler creates a new DeleteTaskHandler.
func NewDeleteTaskHandler(store TaskStore) *DeleteTaskHandler {
	return &DeleteTaskHandler{store: store}
}

// Handle removes the task. An unknown id is not an error; the list is saved
// either way.
func (h *DeleteTaskHandler) Handle(ctx context.Context, cmd DeleteTaskCommand) (*DeleteTaskResult, error) {
	result := &DeleteTaskResult{}

	err := h.store.Apply(ctx, func(current task.Collection) (task.Collection, []domain.DomainEvent, error) {
		_, result.Found = current.Find(cmd.TaskID)

		var events []domain.DomainEvent
		if result.Found {
			deleted := task.NewTaskDeleted(cmd.TaskID)
			events = append(events, &deleted)
		}
		return current.Delete(cmd.TaskID), events, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
