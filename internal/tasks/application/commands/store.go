package commands

import (
	"context"

	"github.com/felixgeelhaar/tasktracker/internal/tasks/application/session"
)

// TaskStore applies a mutation to the task list and persists the result.
// *session.Session implements it.
type TaskStore interface {
	Apply(ctx context.Context, mutate session.Mutation) error
}
