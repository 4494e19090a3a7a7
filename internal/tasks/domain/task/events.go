package task

import (
	"github.com/felixgeelhaar/tasktracker/internal/shared/domain"
)

const (
	AggregateType = "Task"

	RoutingKeyCreated   = "tasks.task.created"
	RoutingKeyCompleted = "tasks.task.completed"
	RoutingKeyDeleted   = "tasks.task.deleted"
)

// TaskCreated is emitted when a new task is added to the list.
type TaskCreated struct {
	domain.BaseEvent
	Name     string `json:"name"`
	Priority string `json:"priority"`
	DueDate  string `json:"due_date"`
}

// NewTaskCreated creates a TaskCreated event.
func NewTaskCreated(t Task) TaskCreated {
	return TaskCreated{
		BaseEvent: domain.NewBaseEvent(t.ID(), AggregateType, RoutingKeyCreated),
		Name:      t.Name(),
		Priority:  t.Priority().String(),
		DueDate:   t.DueDate().String(),
	}
}

// TaskCompleted is emitted when a task is marked completed.
type TaskCompleted struct {
	domain.BaseEvent
}

// NewTaskCompleted creates a TaskCompleted event.
func NewTaskCompleted(taskID string) TaskCompleted {
	return TaskCompleted{
		BaseEvent: domain.NewBaseEvent(taskID, AggregateType, RoutingKeyCompleted),
	}
}

// TaskDeleted is emitted when a task is removed from the list.
type TaskDeleted struct {
	domain.BaseEvent
}

// NewTaskDeleted creates a TaskDeleted event.
func NewTaskDeleted(taskID string) TaskDeleted {
	return TaskDeleted{
		BaseEvent: domain.NewBaseEvent(taskID, AggregateType, RoutingKeyDeleted),
	}
}
