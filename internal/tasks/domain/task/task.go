package task

import (
	"strings"
	"time"

	"github.com/felixgeelhaar/tasktracker/internal/tasks/domain/value_objects"
	"github.com/google/uuid"
)

// Task is a single entry on the task list.
//
// Tasks are values: the only state change, completion, returns a new Task.
type Task struct {
	id        string
	name      string
	dueDate   value_objects.Date
	priority  value_objects.Priority
	completed bool
	createdAt time.Time
}

// NewTask creates a pending task with a fresh id.
func NewTask(name string, dueDate value_objects.Date, priority value_objects.Priority) (Task, error) {
	if strings.TrimSpace(name) == "" {
		return Task{}, invalid("name", ErrEmptyName)
	}
	if dueDate.IsZero() {
		return Task{}, invalid("due_date", ErrMissingDueDate)
	}
	if !priority.IsValid() {
		return Task{}, invalid("priority", value_objects.ErrInvalidPriority)
	}

	return Task{
		id:       uuid.New().String(),
		name:     name,
		dueDate:  dueDate,
		priority: priority,
		// Storage keeps whole seconds only.
		createdAt: time.Now().Truncate(time.Second),
	}, nil
}

// RehydrateTask recreates a task from persisted state.
func RehydrateTask(
	id, name string,
	dueDate value_objects.Date,
	priority value_objects.Priority,
	completed bool,
	createdAt time.Time,
) (Task, error) {
	if strings.TrimSpace(id) == "" {
		return Task{}, invalid("id", ErrEmptyID)
	}
	if strings.TrimSpace(name) == "" {
		return Task{}, invalid("name", ErrEmptyName)
	}
	if dueDate.IsZero() {
		return Task{}, invalid("due_date", ErrMissingDueDate)
	}
	if !priority.IsValid() {
		return Task{}, invalid("priority", value_objects.ErrInvalidPriority)
	}

	return Task{
		id:        id,
		name:      name,
		dueDate:   dueDate,
		priority:  priority,
		completed: completed,
		createdAt: createdAt,
	}, nil
}

// Getters

func (t Task) ID() string                       { return t.id }
func (t Task) Name() string                     { return t.name }
func (t Task) DueDate() value_objects.Date      { return t.dueDate }
func (t Task) Priority() value_objects.Priority { return t.priority }
func (t Task) IsCompleted() bool                { return t.completed }
func (t Task) CreatedAt() time.Time             { return t.createdAt }

// Complete returns a copy of the task marked as completed.
// Completing an already completed task returns it unchanged.
func (t Task) Complete() Task {
	t.completed = true
	return t
}

// Equal reports whether two tasks hold the same data.
func (t Task) Equal(other Task) bool {
	return t.id == other.id &&
		t.name == other.name &&
		t.dueDate.Equal(other.dueDate) &&
		t.priority == other.priority &&
		t.completed == other.completed &&
		t.createdAt.Equal(other.createdAt)
}
