package task

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/tasktracker/adapter/cli"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/application/commands"
	taskDomain "github.com/felixgeelhaar/tasktracker/internal/tasks/domain/task"
	"github.com/spf13/cobra"
)

var (
	priority string
	dueDate  string
)

var createCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new task",
	Long: `Add a new task with a name, a due date and a priority.

Examples:
  tasktracker task add "Complete project report" --due 2024-06-01
  tasktracker task add "Review PR" --due 2024-06-03 -p high`,
	Aliases: []string{"create", "new"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.CreateTaskHandler == nil {
			return cli.ErrNotInitialized
		}

		name := args[0]
		result, err := app.CreateTaskHandler.Handle(cmd.Context(), commands.CreateTaskCommand{
			Name:     name,
			DueDate:  dueDate,
			Priority: priority,
		})
		if err != nil {
			var verr *taskDomain.ValidationError
			if errors.As(err, &verr) {
				return fmt.Errorf("invalid %s: %w", verr.Field, verr.Err)
			}
			return fmt.Errorf("failed to create task: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Task created: %s\n", result.TaskID)
		fmt.Fprintf(out, "  name: %s\n", name)
		fmt.Fprintf(out, "  due: %s\n", dueDate)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&priority, "priority", "p", "medium", "task priority (low, medium, high)")
	createCmd.Flags().StringVar(&dueDate, "due", "", "due date (YYYY-MM-DD)")
	_ = createCmd.MarkFlagRequired("due")
}
