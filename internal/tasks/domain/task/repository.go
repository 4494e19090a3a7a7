package task

import "context"

// Repository loads and stores the whole task collection.
type Repository interface {
	Load(ctx context.Context) (Collection, error)
	Save(ctx context.Context, tasks Collection) error
}
