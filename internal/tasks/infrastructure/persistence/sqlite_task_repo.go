package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/felixgeelhaar/tasktracker/internal/shared/infrastructure/migrations"
	sharedPersistence "github.com/felixgeelhaar/tasktracker/internal/shared/infrastructure/persistence"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/domain/task"
)

// SQLiteTaskRepository implements task.Repository using SQLite.
type SQLiteTaskRepository struct {
	dbConn *sql.DB
	path   string
}

// NewSQLiteTaskRepository creates a new SQLite task repository and ensures
// the schema is migrated. path is only used in error reports.
func NewSQLiteTaskRepository(ctx context.Context, dbConn *sql.DB, path string) (*SQLiteTaskRepository, error) {
	if err := migrations.RunSQLiteMigrations(ctx, dbConn); err != nil {
		return nil, fmt.Errorf("failed to migrate tasks schema: %w", err)
	}
	return &SQLiteTaskRepository{dbConn: dbConn, path: path}, nil
}

// Load reads all tasks in creation order.
func (r *SQLiteTaskRepository) Load(ctx context.Context) (task.Collection, error) {
	rows, err := sharedPersistence.Executor(ctx, r.dbConn).QueryContext(ctx, `
		SELECT id, name, due_date, priority, completed, created_at
		FROM tasks
		ORDER BY position ASC`)
	if err != nil {
		return nil, &LoadError{Path: r.path, Err: err}
	}
	defer rows.Close()

	var records []taskRecord
	for rows.Next() {
		var rec taskRecord
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.DueDate, &rec.Priority, &rec.Completed, &rec.CreatedAt); err != nil {
			return nil, &LoadError{Path: r.path, Err: err}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &LoadError{Path: r.path, Err: err}
	}

	tasks, err := fromRecords(records)
	if err != nil {
		return nil, &LoadError{Path: r.path, Err: err}
	}
	return tasks, nil
}

// Save replaces all stored tasks inside a single transaction.
func (r *SQLiteTaskRepository) Save(ctx context.Context, tasks task.Collection) error {
	records, err := toRecords(tasks)
	if err != nil {
		return &SaveError{Path: r.path, Err: err}
	}

	err = sharedPersistence.InTx(ctx, r.dbConn, func(ctx context.Context) error {
		exec := sharedPersistence.Executor(ctx, r.dbConn)
		if _, err := exec.ExecContext(ctx, `DELETE FROM tasks`); err != nil {
			return err
		}

		stmt, err := exec.PrepareContext(ctx, `
			INSERT INTO tasks (id, position, name, due_date, priority, completed, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for i, rec := range records {
			if _, err := stmt.ExecContext(ctx, rec.ID, i, rec.Name, rec.DueDate, rec.Priority, rec.Completed, rec.CreatedAt); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return &SaveError{Path: r.path, Err: err}
	}
	return nil
}

// Close closes the underlying database.
func (r *SQLiteTaskRepository) Close() error {
	return r.dbConn.Close()
}
