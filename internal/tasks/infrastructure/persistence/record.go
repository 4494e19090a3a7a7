package persistence

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/tasktracker/internal/tasks/domain/task"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/domain/value_objects"
)

// CreatedAtLayout is the stored form of a task's creation time. It carries
// no offset and is read back in the local zone, so a time inside a DST
// fall-back hour, or a file moved between zones, may load as a different
// instant.
const CreatedAtLayout = "2006-01-02 15:04:05"

// taskRecord is the stored shape of one task.
type taskRecord struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	DueDate   string `json:"due_date"`
	Priority  string `json:"priority"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"created_at"`
}

func toRecord(t task.Task) (taskRecord, error) {
	if !t.Priority().IsValid() {
		return taskRecord{}, fmt.Errorf("task %q: %w", t.ID(), value_objects.ErrInvalidPriority)
	}
	if t.DueDate().IsZero() {
		return taskRecord{}, fmt.Errorf("task %q: %w", t.ID(), task.ErrMissingDueDate)
	}
	r := taskRecord{
		ID:        t.ID(),
		Name:      t.Name(),
		DueDate:   t.DueDate().String(),
		Priority:  t.Priority().String(),
		Completed: t.IsCompleted(),
	}
	if !t.CreatedAt().IsZero() {
		r.CreatedAt = t.CreatedAt().Local().Format(CreatedAtLayout)
	}
	return r, nil
}

// fromRecord accepts the same lenient forms as the command parsers
// (surrounding spaces on due_date, any case for priority). Save writes them
// back in canonical form.
func fromRecord(r taskRecord) (task.Task, error) {
	dueDate, err := value_objects.ParseDate(r.DueDate)
	if err != nil {
		return task.Task{}, fmt.Errorf("task %q due_date: %w", r.ID, err)
	}
	priority, err := value_objects.ParsePriority(r.Priority)
	if err != nil {
		return task.Task{}, fmt.Errorf("task %q priority: %w", r.ID, err)
	}

	var createdAt time.Time
	if r.CreatedAt != "" {
		createdAt, err = time.ParseInLocation(CreatedAtLayout, r.CreatedAt, time.Local)
		if err != nil {
			return task.Task{}, fmt.Errorf("task %q created_at: %w", r.ID, err)
		}
	}

	return task.RehydrateTask(r.ID, r.Name, dueDate, priority, r.Completed, createdAt)
}

func toRecords(tasks task.Collection) ([]taskRecord, error) {
	records := make([]taskRecord, 0, len(tasks))
	for _, t := range tasks {
		r, err := toRecord(t)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

func fromRecords(records []taskRecord) (task.Collection, error) {
	tasks := make(task.Collection, 0, len(records))
	for _, r := range records {
		t, err := fromRecord(r)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := tasks.Validate(); err != nil {
		return nil, err
	}
	return tasks, nil
}
