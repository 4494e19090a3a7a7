package value_objects

import (
	"errors"
	"fmt"
	"strings"
)

// DateWindow is a named due-date range used for filtering.
type DateWindow int

const (
	// WindowNone applies no date filtering.
	WindowNone DateWindow = iota
	WindowToday
	WindowThisWeek
	WindowOverdue
)

// ThisWeekSpanDays is how far past today the ThisWeek window reaches.
// The window is inclusive at both ends, so it covers eight calendar days.
const ThisWeekSpanDays = 7

var (
	ErrInvalidDateWindow = errors.New("invalid date window")
)

var windowNames = map[DateWindow]string{
	WindowNone:     "All",
	WindowToday:    "Today",
	WindowThisWeek: "This Week",
	WindowOverdue:  "Overdue",
}

var windowValues = map[string]DateWindow{
	"":          WindowNone,
	"all":       WindowNone,
	"none":      WindowNone,
	"today":     WindowToday,
	"this week": WindowThisWeek,
	"this-week": WindowThisWeek,
	"thisweek":  WindowThisWeek,
	"week":      WindowThisWeek,
	"overdue":   WindowOverdue,
}

// ParseDateWindow creates a DateWindow from a string.
func ParseDateWindow(s string) (DateWindow, error) {
	w, ok := windowValues[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return WindowNone, fmt.Errorf("%w: %q", ErrInvalidDateWindow, s)
	}
	return w, nil
}

// String returns the display name of the window.
func (w DateWindow) String() string {
	if name, ok := windowNames[w]; ok {
		return name
	}
	return "unknown"
}

// IsValid returns true if the window is a known value.
func (w DateWindow) IsValid() bool {
	_, ok := windowNames[w]
	return ok
}
