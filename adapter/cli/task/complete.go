package task

import (
	"fmt"

	"github.com/felixgeelhaar/tasktracker/adapter/cli"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/application/commands"
	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete [task-id]",
	Short: "Mark a task as complete",
	Long: `Mark a task as complete by its ID.

Examples:
  tasktracker task complete 550e8400-e29b-41d4-a716-446655440000`,
	Aliases: []string{"done"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.CompleteTaskHandler == nil {
			return cli.ErrNotInitialized
		}

		taskID := args[0]
		result, err := app.CompleteTaskHandler.Handle(cmd.Context(), commands.CompleteTaskCommand{TaskID: taskID})
		if err != nil {
			return fmt.Errorf("failed to complete task: %w", err)
		}

		out := cmd.OutOrStdout()
		switch {
		case !result.Found:
			fmt.Fprintf(out, "No task with id %s\n", taskID)
		case result.AlreadyCompleted:
			fmt.Fprintf(out, "Task already completed: %s\n", taskID)
		default:
			fmt.Fprintf(out, "Task completed: %s\n", taskID)
		}
		return nil
	},
}
