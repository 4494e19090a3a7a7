// Package icalendar exports the task list as iCalendar to-do items so it can be
// opened in calendar applications.
package icalendar

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/emersion/go-ical"

	"github.com/felixgeelhaar/tasktracker/internal/tasks/domain/task"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/domain/value_objects"
)

// ProductID identifies the exporting application in the PRODID property.
const ProductID = "-//tasktracker//Task Export//EN"

// VTODO STATUS values.
const (
	StatusNeedsAction = "NEEDS-ACTION"
	StatusCompleted   = "COMPLETED"
)

// ErrNoTasks is returned when there is nothing to export.
var ErrNoTasks = errors.New("no tasks to export")

// Exporter converts tasks to iCalendar VTODO components.
type Exporter struct {
	now func() time.Time
}

// NewExporter creates a new Exporter.
func NewExporter() *Exporter {
	return &Exporter{now: time.Now}
}

// Calendar builds a VCALENDAR holding one VTODO per task, in list order.
func (e *Exporter) Calendar(tasks task.Collection) (*ical.Calendar, error) {
	if tasks.Len() == 0 {
		return nil, ErrNoTasks
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)

	stamp := e.now().UTC()
	for _, t := range tasks {
		cal.Children = append(cal.Children, toTodo(t, stamp))
	}
	return cal, nil
}

// Export writes tasks to w as an iCalendar stream.
func (e *Exporter) Export(w io.Writer, tasks task.Collection) error {
	cal, err := e.Calendar(tasks)
	if err != nil {
		return err
	}
	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return fmt.Errorf("failed to encode calendar: %w", err)
	}
	return nil
}

func toTodo(t task.Task, stamp time.Time) *ical.Component {
	todo := ical.NewComponent(ical.CompToDo)
	todo.Props.SetText(ical.PropUID, t.ID())
	todo.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
	todo.Props.SetText(ical.PropSummary, t.Name())
	todo.Props.SetDate(ical.PropDue, t.DueDate().Time())

	priority := ical.NewProp(ical.PropPriority)
	priority.Value = strconv.Itoa(PriorityValue(t.Priority()))
	todo.Props.Set(priority)

	if t.IsCompleted() {
		todo.Props.SetText(ical.PropStatus, StatusCompleted)
	} else {
		todo.Props.SetText(ical.PropStatus, StatusNeedsAction)
	}

	if !t.CreatedAt().IsZero() {
		todo.Props.SetDateTime(ical.PropCreated, t.CreatedAt().UTC())
	}
	return todo
}

// PriorityValue maps a priority onto the iCalendar 1 (highest) to 9 (lowest)
// scale. 0 means undefined.
func PriorityValue(p value_objects.Priority) int {
	switch p {
	case value_objects.PriorityHigh:
		return 1
	case value_objects.PriorityMedium:
		return 5
	case value_objects.PriorityLow:
		return 9
	default:
		return 0
	}
}
