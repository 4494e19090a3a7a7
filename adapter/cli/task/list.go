package task

import (
	"fmt"
	"io"
	"strings"

	"github.com/felixgeelhaar/tasktracker/adapter/cli"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/application/queries"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/domain/value_objects"
	"github.com/spf13/cobra"
)

var (
	filterPriority string
	filterWindow   string
	listToday      string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List pending and completed tasks. Filters narrow the pending tasks only.

Filter Options:
  --priority    Filter by priority (high, medium, low, all)
  --window      Filter by due date (today, this-week, overdue, all)
  --today       Evaluate windows against this date (YYYY-MM-DD)

Examples:
  tasktracker task list
  tasktracker task list --priority high
  tasktracker task list --window overdue`,
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListTasksHandler == nil {
			return cli.ErrNotInitialized
		}

		p, err := value_objects.ParsePriorityFilter(filterPriority)
		if err != nil {
			return fmt.Errorf("invalid --priority: %w", err)
		}
		w, err := value_objects.ParseDateWindow(filterWindow)
		if err != nil {
			return fmt.Errorf("invalid --window: %w", err)
		}
		today, err := cli.ParseTodayFlag(listToday)
		if err != nil {
			return err
		}

		result, err := app.ListTasksHandler.Handle(cmd.Context(), queries.ListTasksQuery{
			Priority: p,
			Window:   w,
			Today:    today,
		})
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(result.Pending) == 0 && len(result.Completed) == 0 {
			fmt.Fprintln(out, "No tasks found.")
			return nil
		}

		printSection(out, "Pending", result.Pending, today)
		printSection(out, "Completed", result.Completed, today)
		return nil
	},
}

func printSection(out io.Writer, title string, tasks []queries.TaskDTO, today value_objects.Date) {
	fmt.Fprintf(out, "%s (%d):\n", title, len(tasks))
	fmt.Fprintln(out, strings.Repeat("-", 60))
	for _, t := range tasks {
		dueMarker := ""
		switch {
		case t.Overdue:
			dueMarker = " [OVERDUE]"
		case !t.Completed && t.DueDate.Equal(today):
			dueMarker = " [TODAY]"
		}

		fmt.Fprintf(out, "%s %s %s%s\n", statusIcon(t.Completed), t.Name, priorityBadge(t.Priority), dueMarker)
		fmt.Fprintf(out, "   ID: %s\n", t.ID)
		fmt.Fprintf(out, "   Due: %s\n", t.DueDate)
	}
	fmt.Fprintln(out)
}

func statusIcon(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

func priorityBadge(p value_objects.Priority) string {
	switch p {
	case value_objects.PriorityHigh:
		return "(!)"
	case value_objects.PriorityMedium:
		return "(~)"
	case value_objects.PriorityLow:
		return "(.)"
	default:
		return ""
	}
}

func init() {
	listCmd.Flags().StringVarP(&filterPriority, "priority", "p", "all", "filter by priority (high, medium, low, all)")
	listCmd.Flags().StringVarP(&filterWindow, "window", "w", "all", "filter by due date (today, this-week, overdue, all)")
	listCmd.Flags().StringVar(&listToday, "today", "", "evaluate windows against this date (YYYY-MM-DD)")
}
