package queries

import (
	"github.com/felixgeelhaar/tasktracker/internal/tasks/domain/task"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/domain/value_objects"
)

// IsOverdue reports whether a pending task is due strictly before today.
// Completed tasks are never overdue.
func IsOverdue(t task.Task, today value_objects.Date) bool {
	return !t.IsCompleted() && t.DueDate().Before(today)
}

// FilterByPriority returns the tasks with the given priority, in order.
// PriorityNone returns the input unchanged.
func FilterByPriority(tasks task.Collection, priority value_objects.Priority) task.Collection {
	if priority == value_objects.PriorityNone {
		return tasks.Clone()
	}
	return filter(tasks, func(t task.Task) bool {
		return t.Priority() == priority
	})
}

// FilterByDateWindow returns the tasks whose due date falls in window.
//
// WindowOverdue selects on due date alone and keeps completed tasks, unlike
// IsOverdue.
func FilterByDateWindow(tasks task.Collection, window value_objects.DateWindow, today value_objects.Date) task.Collection {
	switch window {
	case value_objects.WindowToday:
		return filter(tasks, func(t task.Task) bool {
			return t.DueDate().Equal(today)
		})
	case value_objects.WindowThisWeek:
		end := today.AddDays(value_objects.ThisWeekSpanDays)
		return filter(tasks, func(t task.Task) bool {
			d := t.DueDate()
			return !d.Before(today) && !d.After(end)
		})
	case value_objects.WindowOverdue:
		return filter(tasks, func(t task.Task) bool {
			return t.DueDate().Before(today)
		})
	default:
		return tasks.Clone()
	}
}

// PartitionByCompletion splits tasks into pending and completed, keeping
// relative order within each part.
func PartitionByCompletion(tasks task.Collection) (pending, completed task.Collection) {
	pending = make(task.Collection, 0, len(tasks))
	completed = make(task.Collection, 0)
	for _, t := range tasks {
		if t.IsCompleted() {
			completed = append(completed, t)
		} else {
			pending = append(pending, t)
		}
	}
	return pending, completed
}

func filter(tasks task.Collection, keep func(task.Task) bool) task.Collection {
	out := make(task.Collection, 0, len(tasks))
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
