package value_objects

import (
	"errors"
	"fmt"
	"strings"
)

// Priority represents task urgency level.
type Priority int

const (
	// PriorityNone is the zero value. It never appears on a stored task and
	// doubles as the "all priorities" filter.
	PriorityNone Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

var (
	ErrInvalidPriority = errors.New("invalid priority value")
)

var priorityNames = map[Priority]string{
	PriorityLow:    "Low",
	PriorityMedium: "Medium",
	PriorityHigh:   "High",
}

var priorityValues = map[string]Priority{
	"low":    PriorityLow,
	"medium": PriorityMedium,
	"high":   PriorityHigh,
}

// Priorities lists the assignable priorities from most to least urgent.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// ParsePriority creates a Priority from a string.
func ParsePriority(s string) (Priority, error) {
	p, ok := priorityValues[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return PriorityNone, fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}
	return p, nil
}

// ParsePriorityFilter is like ParsePriority but also accepts "all" and the
// empty string, both of which map to PriorityNone.
func ParsePriorityFilter(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return PriorityNone, nil
	}
	return ParsePriority(s)
}

// String returns the string representation of the priority.
func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	if p == PriorityNone {
		return "All"
	}
	return "unknown"
}

// IsValid returns true if the priority can be assigned to a task.
func (p Priority) IsValid() bool {
	_, ok := priorityNames[p]
	return ok
}

// Weight returns a numeric weight for sorting (higher = more important).
func (p Priority) Weight() int {
	return int(p)
}

// MarshalText implements encoding.TextMarshaler.
func (p Priority) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPriority, int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Priority) UnmarshalText(text []byte) error {
	parsed, err := ParsePriority(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
