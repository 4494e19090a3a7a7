package queries

import (
	"context"
	"time"

	"github.com/felixgeelhaar/tasktracker/internal/shared/application"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/domain/task"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/domain/value_objects"
)

// TaskSource provides the current task list.
type TaskSource interface {
	Tasks() task.Collection
}

// TaskDTO is a data transfer object for tasks.
type TaskDTO struct {
	ID        string
	Name      string
	DueDate   value_objects.Date
	Priority  value_objects.Priority
	Completed bool
	Overdue   bool
	CreatedAt time.Time
}

// ListTasksQuery contains the parameters for listing tasks.
type ListTasksQuery struct {
	Priority value_objects.Priority   // PriorityNone = all
	Window   value_objects.DateWindow // WindowNone = all
	Today    value_objects.Date       // zero = current local date
}

func (ListTasksQuery) QueryName() string { return "tasks.list" }

// TaskList is the result of a ListTasksQuery.
type TaskList struct {
	Pending   []TaskDTO
	Completed []TaskDTO
}

// ListTasksHandler handles the ListTasksQuery.
type ListTasksHandler struct {
	source TaskSource
}

var _ application.QueryHandler[ListTasksQuery, *TaskList] = (*ListTasksHandler)(nil)

// NewListTasksHandler creates a new ListTasksHandler.
func NewListTasksHandler(source TaskSource) *ListTasksHandler {
	return &ListTasksHandler{source: source}
}

// Handle executes the ListTasksQuery. Filters narrow the pending tasks only;
// completed tasks are always listed in full.
func (h *ListTasksHandler) Handle(ctx context.Context, query ListTasksQuery) (*TaskList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	today := query.Today
	if today.IsZero() {
		today = value_objects.Today()
	}

	pending, completed := PartitionByCompletion(h.source.Tasks())
	pending = FilterByPriority(pending, query.Priority)
	pending = FilterByDateWindow(pending, query.Window, today)

	return &TaskList{
		Pending:   toTaskDTOs(pending, today),
		Completed: toTaskDTOs(completed, today),
	}, nil
}

func toTaskDTOs(tasks task.Collection, today value_objects.Date) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, t := range tasks {
		dtos[i] = TaskDTO{
			ID:        t.ID(),
			Name:      t.Name(),
			DueDate:   t.DueDate(),
			Priority:  t.Priority(),
			Completed: t.IsCompleted(),
			Overdue:   IsOverdue(t, today),
			CreatedAt: t.CreatedAt(),
		}
	}
	return dtos
}
