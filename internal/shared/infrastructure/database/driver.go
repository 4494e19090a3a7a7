package database

import (
	"fmt"
	"strings"
)

// Driver represents a storage backend type.
type Driver string

const (
	// DriverJSON stores the task list in a single indented JSON file.
	DriverJSON Driver = "json"
	// DriverSQLite stores the task list in a SQLite database.
	DriverSQLite Driver = "sqlite"
)

// String returns the string representation of the driver.
func (d Driver) String() string {
	return string(d)
}

// IsValid returns true if the driver is a known type.
func (d Driver) IsValid() bool {
	switch d {
	case DriverJSON, DriverSQLite:
		return true
	default:
		return false
	}
}

// ParseDriver parses a driver name. The empty string selects DriverJSON.
func ParseDriver(s string) (Driver, error) {
	d := Driver(strings.ToLower(strings.TrimSpace(s)))
	if d == "" {
		return DriverJSON, nil
	}
	if !d.IsValid() {
		return "", fmt.Errorf("unknown storage driver %q (supported: json, sqlite)", s)
	}
	return d, nil
}
