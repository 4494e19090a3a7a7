package cli

import (
	"fmt"

	"github.com/felixgeelhaar/tasktracker/internal/tasks/domain/value_objects"
)

// ParseTodayFlag parses an optional --today override. Empty means the current
// local date.
func ParseTodayFlag(s string) (value_objects.Date, error) {
	if s == "" {
		return value_objects.Today(), nil
	}
	d, err := value_objects.ParseDate(s)
	if err != nil {
		return value_objects.Date{}, fmt.Errorf("invalid --today, use YYYY-MM-DD: %w", err)
	}
	return d, nil
}
