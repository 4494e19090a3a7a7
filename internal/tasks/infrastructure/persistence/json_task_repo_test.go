package persistence

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/felixgeelhaar/tasktracker/internal/tasks/domain/task"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/domain/value_objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTasks(t *testing.T) task.Collection {
	t.Helper()
	created := time.Date(2024, 5, 1, 9, 30, 15, 0, time.Local)

	first, err := task.RehydrateTask("a1", "Write report", value_objects.MustParseDate("2024-06-01"),
		value_objects.PriorityHigh, false, created)
	require.NoError(t, err)
	second, err := task.RehydrateTask("b2", "Buy milk", value_objects.MustParseDate("2024-05-20"),
		value_objects.PriorityLow, true, created.Add(time.Hour))
	require.NoError(t, err)
	third, err := task.NewTask("Call bank", value_objects.MustParseDate("2024-07-15"), value_objects.PriorityMedium)
	require.NoError(t, err)

	return task.Collection{first, second, third}
}

func TestJSONTaskRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.json")
	repo := NewJSONTaskRepository(path)
	tasks := sampleTasks(t)

	require.NoError(t, repo.Save(ctx, tasks))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, len(tasks))
	for i := range tasks {
		assert.Equal(t, tasks[i].ID(), loaded[i].ID())
		assert.Equal(t, tasks[i].Name(), loaded[i].Name())
		assert.True(t, tasks[i].DueDate().Equal(loaded[i].DueDate()))
		assert.Equal(t, tasks[i].Priority(), loaded[i].Priority())
		assert.Equal(t, tasks[i].IsCompleted(), loaded[i].IsCompleted())
		assert.True(t, tasks[i].CreatedAt().Equal(loaded[i].CreatedAt()))
	}
}

func TestJSONTaskRepository_SaveEmptyList(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.json")
	repo := NewJSONTaskRepository(path)

	require.NoError(t, repo.Save(ctx, task.Collection{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestJSONTaskRepository_StoredFormat(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "tasks.json")
	repo := NewJSONTaskRepository(path)
	tasks := sampleTasks(t)[:1]

	require.NoError(t, repo.Save(ctx, tasks))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, "a1", raw[0]["id"])
	assert.Equal(t, "Write report", raw[0]["name"])
	assert.Equal(t, "2024-06-01", raw[0]["due_date"])
	assert.Equal(t, "High", raw[0]["priority"])
	assert.Equal(t, false, raw[0]["completed"])
	assert.Equal(t, "2024-05-01 09:30:15", raw[0]["created_at"])

	assert.Contains(t, string(data), "\n  {\n    \"id\": \"a1\"")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestJSONTaskRepository_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file yields empty list", func(t *testing.T) {
		repo := NewJSONTaskRepository(filepath.Join(t.TempDir(), "absent.json"))

		loaded, err := repo.Load(ctx)

		require.NoError(t, err)
		assert.NotNil(t, loaded)
		assert.Empty(t, loaded)
	})

	t.Run("preserves stored ids", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.json")
		content := `[{"id":"42","name":"Legacy","due_date":"2023-12-31","priority":"medium","completed":true,"created_at":"2023-12-01 10:00:00"}]`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		loaded, err := NewJSONTaskRepository(path).Load(ctx)

		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, "42", loaded[0].ID())
		assert.Equal(t, value_objects.PriorityMedium, loaded[0].Priority())
		assert.True(t, loaded[0].IsCompleted())
	})

	t.Run("accepts the first day of year one as a due date", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.json")
		content := `[{"id":"y1","name":"Ancient","due_date":"0001-01-01","priority":"High","completed":false,"created_at":""}]`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		loaded, err := NewJSONTaskRepository(path).Load(ctx)

		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.Equal(t, "0001-01-01", loaded[0].DueDate().String())
	})

	t.Run("normalises hand-edited fields on the next save", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.json")
		content := `[{"id":"h1","name":"Edited","due_date":" 2024-01-01","priority":"high","completed":false,"created_at":""}]`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
		repo := NewJSONTaskRepository(path)

		loaded, err := repo.Load(ctx)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, loaded))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var stored []map[string]any
		require.NoError(t, json.Unmarshal(data, &stored))
		require.Len(t, stored, 1)
		assert.Equal(t, "2024-01-01", stored[0]["due_date"])
		assert.Equal(t, "High", stored[0]["priority"])
		assert.Equal(t, "Edited", stored[0]["name"])
	})

	t.Run("accepts missing created_at", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.json")
		content := `[{"id":"x","name":"Old","due_date":"2024-01-01","priority":"Low","completed":false}]`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		loaded, err := NewJSONTaskRepository(path).Load(ctx)

		require.NoError(t, err)
		require.Len(t, loaded, 1)
		assert.True(t, loaded[0].CreatedAt().IsZero())
	})

	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `[{"id": "a1",`},
		{"not a list", `{"id": "a1"}`},
		{"bad due date", `[{"id":"a1","name":"x","due_date":"06/01/2024","priority":"High","completed":false,"created_at":""}]`},
		{"bad priority", `[{"id":"a1","name":"x","due_date":"2024-06-01","priority":"Urgent","completed":false,"created_at":""}]`},
		{"empty name", `[{"id":"a1","name":"","due_date":"2024-06-01","priority":"High","completed":false,"created_at":""}]`},
		{"bad created_at", `[{"id":"a1","name":"x","due_date":"2024-06-01","priority":"High","completed":false,"created_at":"yesterday"}]`},
		{"duplicate ids", `[{"id":"a1","name":"x","due_date":"2024-06-01","priority":"High","completed":false,"created_at":""},{"id":"a1","name":"y","due_date":"2024-06-02","priority":"Low","completed":false,"created_at":""}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tasks.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			loaded, err := NewJSONTaskRepository(path).Load(ctx)

			assert.Nil(t, loaded)
			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, path, loadErr.Path)
		})
	}

	t.Run("duplicate ids unwrap to domain error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.json")
		require.NoError(t, os.WriteFile(path, []byte(tests[len(tests)-1].content), 0o600))

		_, err := NewJSONTaskRepository(path).Load(ctx)

		assert.ErrorIs(t, err, task.ErrDuplicateID)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := NewJSONTaskRepository(filepath.Join(t.TempDir(), "tasks.json")).Load(cctx)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestJSONTaskRepository_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid task leaves previous file intact", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "tasks.json")
		repo := NewJSONTaskRepository(path)
		require.NoError(t, repo.Save(ctx, sampleTasks(t)))
		before, err := os.ReadFile(path)
		require.NoError(t, err)

		err = repo.Save(ctx, task.Collection{task.Task{}})

		var saveErr *SaveError
		require.ErrorAs(t, err, &saveErr)
		after, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("creates missing directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "deeper", "tasks.json")

		require.NoError(t, NewJSONTaskRepository(path).Save(ctx, sampleTasks(t)))

		_, err := os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("leaves no temporary files behind", func(t *testing.T) {
		dir := t.TempDir()
		repo := NewJSONTaskRepository(filepath.Join(dir, "tasks.json"))

		require.NoError(t, repo.Save(ctx, sampleTasks(t)))
		require.NoError(t, repo.Save(ctx, task.Collection{}))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "tasks.json", entries[0].Name())
	})

	t.Run("overwrites previous content", func(t *testing.T) {
		repo := NewJSONTaskRepository(filepath.Join(t.TempDir(), "tasks.json"))
		tasks := sampleTasks(t)
		require.NoError(t, repo.Save(ctx, tasks))

		remaining := tasks.Delete(tasks[0].ID())
		require.NoError(t, repo.Save(ctx, remaining))

		loaded, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Len(t, loaded, 2)
		_, found := loaded.Find(tasks[0].ID())
		assert.False(t, found)
	})
}
