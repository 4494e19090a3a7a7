package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/felixgeelhaar/tasktracker/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/tasktracker/internal/shared/infrastructure/database/sqlite"
	"github.com/felixgeelhaar/tasktracker/internal/shared/infrastructure/security"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/domain/task"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/infrastructure/persistence"
)

// RepositoryFactory creates the task repository for a storage driver.
type RepositoryFactory struct {
	driver database.Driver
	path   string
}

// NewRepositoryFactory creates a new repository factory.
func NewRepositoryFactory(driver database.Driver, path string) *RepositoryFactory {
	return &RepositoryFactory{driver: driver, path: path}
}

// Driver returns the storage driver.
func (f *RepositoryFactory) Driver() database.Driver {
	return f.driver
}

// TaskRepository creates a task repository for the configured driver. The
// returned closer releases any resources the repository holds.
func (f *RepositoryFactory) TaskRepository(ctx context.Context) (task.Repository, io.Closer, error) {
	path, err := f.resolvePath()
	if err != nil {
		return nil, nil, err
	}

	switch f.driver {
	case database.DriverJSON:
		return persistence.NewJSONTaskRepository(path), nopCloser{}, nil

	case database.DriverSQLite:
		db, err := sqlite.Open(ctx, path)
		if err != nil {
			return nil, nil, err
		}
		repo, err := persistence.NewSQLiteTaskRepository(ctx, db, path)
		if err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return repo, repo, nil

	default:
		return nil, nil, fmt.Errorf("unsupported driver: %s", f.driver)
	}
}

// resolvePath validates the storage path. SQLite URIs are passed through.
func (f *RepositoryFactory) resolvePath() (string, error) {
	if f.driver == database.DriverSQLite && strings.HasPrefix(f.path, "file:") {
		return f.path, nil
	}
	path, err := security.ValidateStoragePath(f.path)
	if err != nil {
		return "", fmt.Errorf("invalid storage path: %w", err)
	}
	return path, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
