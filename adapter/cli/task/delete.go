package task

import (
	"fmt"

	"github.com/felixgeelhaar/tasktracker/adapter/cli"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/application/commands"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [task-id]",
	Short:   "Delete a task",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.DeleteTaskHandler == nil {
			return cli.ErrNotInitialized
		}

		taskID := args[0]
		result, err := app.DeleteTaskHandler.Handle(cmd.Context(), commands.DeleteTaskCommand{TaskID: taskID})
		if err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}

		if !result.Found {
			fmt.Fprintf(cmd.OutOrStdout(), "No task with id %s\n", taskID)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Task deleted: %s\n", taskID)
		return nil
	},
}
