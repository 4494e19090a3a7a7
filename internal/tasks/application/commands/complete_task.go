package commands

import (
	"context"

	sharedApplication "github.com/felixgeelhaar/tasktracker/internal/shared/application"
	"github.com/felixgeelhaar/tasktracker/internal/shared/domain"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/domain/task"
)

// CompleteTaskCommand contains the data needed to complete a task.
type CompleteTaskCommand struct {
	TaskID string
}

func (CompleteTaskCommand) CommandName() string { return "tasks.complete" }

// CompleteTaskResult reports what the command found.
type CompleteTaskResult struct {
	Found            bool
	AlreadyCompleted bool
}

// CompleteTaskHandler handles the CompleteTaskCommand.
type CompleteTaskHandler struct {
	store TaskStore
}

var _ sharedApplication.CommandHandler[CompleteTaskCommand, *CompleteTaskResult] = (*CompleteTaskHandler)(nil)

// NewCompleteTaskHandler creates a new CompleteTaskHandler.
func NewCompleteTaskHandler(store TaskStore) *CompleteTaskHandler {
	return &CompleteTaskHandler{store: store}
}

// Handle marks the task completed. Unknown or already completed ids are not
// errors; the list is saved either way.
func (h *CompleteTaskHandler) Handle(ctx context.Context, cmd CompleteTaskCommand) (*CompleteTaskResult, error) {
	result := &CompleteTaskResult{}

	err := h.store.Apply(ctx, func(current task.Collection) (task.Collection, []domain.DomainEvent, error) {
		existing, found := current.Find(cmd.TaskID)
		result.Found = found
		result.AlreadyCompleted = found && existing.IsCompleted()

		var events []domain.DomainEvent
		if found && !existing.IsCompleted() {
			completed := task.NewTaskCompleted(cmd.TaskID)
			events = append(events, &completed)
		}
		return current.Complete(cmd.TaskID), events, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
