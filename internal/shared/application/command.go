package application

import "context"

// Command represents a command that modifies system state.
type Command interface {
	CommandName() string
}

// CommandHandler handles a specific command type and reports its outcome.
type CommandHandler[C Command, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}
