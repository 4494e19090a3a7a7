package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/felixgeelhaar/tasktracker/internal/tasks/domain/task"
)

// JSONTaskRepository implements task.Repository on a single JSON file.
type JSONTaskRepository struct {
	path string
}

// NewJSONTaskRepository creates a repository backed by the file at path.
// The file does not need to exist yet.
func NewJSONTaskRepository(path string) *JSONTaskRepository {
	return &JSONTaskRepository{path: path}
}

// Path returns the backing file path.
func (r *JSONTaskRepository) Path() string {
	return r.path
}

// Load reads the task list. A missing file yields an empty list.
func (r *JSONTaskRepository) Load(ctx context.Context) (task.Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return task.Collection{}, nil
		}
		return nil, &LoadError{Path: r.path, Err: err}
	}

	var records []taskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &LoadError{Path: r.path, Err: err}
	}

	tasks, err := fromRecords(records)
	if err != nil {
		return nil, &LoadError{Path: r.path, Err: err}
	}
	return tasks, nil
}

// Save replaces the stored task list. The file is written to a temporary
// sibling and renamed into place, so readers see either the old or the new
// content, never a partial write.
func (r *JSONTaskRepository) Save(ctx context.Context, tasks task.Collection) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	records, err := toRecords(tasks)
	if err != nil {
		return &SaveError{Path: r.path, Err: err}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &SaveError{Path: r.path, Err: err}
	}
	data = append(data, '\n')

	if err := writeFileAtomic(r.path, data, 0o600); err != nil {
		return &SaveError{Path: r.path, Err: err}
	}
	return nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}
	committed = true
	return syncDir(dir)
}

func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
