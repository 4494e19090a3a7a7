package commands

import (
	"context"
	"strings"

	sharedApplication "github.com/felixgeelhaar/tasktracker/internal/shared/application"
	"github.com/felixgeelhaar/tasktracker/internal/shared/domain"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/domain/task"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/domain/value_objects"
)

// CreateTaskCommand contains the data needed to create a task.
type CreateTaskCommand struct {
	Name     string
	DueDate  string // YYYY-MM-DD
	Priority string // High, Medium or Low, any case
}

func (CreateTaskCommand) CommandName() string { return "tasks.create" }

// CreateTaskResult contains the result of creating a task.
type CreateTaskResult struct {
	TaskID string
}

// CreateTaskHandler handles the CreateTaskCommand.
type CreateTaskHandler struct {
	store TaskStore
}

var _ sharedApplication.CommandHandler[CreateTaskCommand, *CreateTaskResult] = (*CreateTaskHandler)(nil)

// NewCreateTaskHandler creates a new CreateTaskHandler.
func NewCreateTaskHandler(store TaskStore) *CreateTaskHandler {
	return &CreateTaskHandler{store: store}
}

// Handle executes the CreateTaskCommand. Input problems are reported as
// *task.ValidationError and leave the task list untouched.
func (h *CreateTaskHandler) Handle(ctx context.Context, cmd CreateTaskCommand) (*CreateTaskResult, error) {
	t, err := buildTask(cmd)
	if err != nil {
		return nil, err
	}

	err = h.store.Apply(ctx, func(current task.Collection) (task.Collection, []domain.DomainEvent, error) {
		created := task.NewTaskCreated(t)
		return current.Append(t), []domain.DomainEvent{&created}, nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateTaskResult{TaskID: t.ID()}, nil
}

func buildTask(cmd CreateTaskCommand) (task.Task, error) {
	if strings.TrimSpace(cmd.DueDate) == "" {
		return task.Task{}, &task.ValidationError{Field: "due_date", Err: task.ErrMissingDueDate}
	}
	dueDate, err := value_objects.ParseDate(cmd.DueDate)
	if err != nil {
		return task.Task{}, &task.ValidationError{Field: "due_date", Err: err}
	}

	priority, err := value_objects.ParsePriority(cmd.Priority)
	if err != nil {
		return task.Task{}, &task.ValidationError{Field: "priority", Err: err}
	}

	return task.NewTask(cmd.Name, dueDate, priority)
}
