package value_objects

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the canonical textual form of a Date.
const DateLayout = "2006-01-02"

var (
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)

// Date is a calendar date without time of day or zone.
// The zero value is the "no date" value and reports IsZero. Every constructed
// date is set, including 0001-01-01.
type Date struct {
	value time.Time // always midnight UTC
	set   bool
}

// NewDate creates a Date from its calendar components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{value: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), set: true}
}

// DateOf returns the calendar date of t as observed in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// Today returns the current local calendar date.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a date in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{value: t, set: true}, nil
}

// MustParseDate parses a date or panics on error.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// IsZero returns true if the date is unset.
func (d Date) IsZero() bool {
	return !d.set
}

// Year, Month and Day return the calendar components.
func (d Date) Year() int         { return d.value.Year() }
func (d Date) Month() time.Month { return d.value.Month() }
func (d Date) Day() int          { return d.value.Day() }

// AddDays returns the date n days later (or earlier for negative n).
func (d Date) AddDays(n int) Date {
	if !d.set {
		return d
	}
	return Date{value: d.value.AddDate(0, 0, n), set: true}
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.value.Before(other.value)
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.value.After(other.value)
}

// Equal reports whether d and other are the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.value.Equal(other.value)
}

// Compare returns -1, 0 or +1.
func (d Date) Compare(other Date) int {
	return d.value.Compare(other.value)
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return d.value
}

// String returns the date as YYYY-MM-DD, or "" for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.value.Format(DateLayout)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return nil, ErrInvalidDate
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
