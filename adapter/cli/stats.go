package cli

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/tasktracker/internal/tasks/application/queries"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/domain/value_objects"
	"github.com/spf13/cobra"
)

var statsToday string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task statistics",
	Long: `Display totals for the task list: completed, pending and overdue
counts plus a per-priority breakdown.

Examples:
  tasktracker stats
  tasktracker stats --today 2024-06-01`,
	Aliases: []string{"summary"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.GetStatsHandler == nil {
			return ErrNotInitialized
		}

		today, err := ParseTodayFlag(statsToday)
		if err != nil {
			return err
		}

		result, err := app.GetStatsHandler.Handle(cmd.Context(), queries.GetStatsQuery{Today: today})
		if err != nil {
			return fmt.Errorf("failed to compute stats: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Task Stats")
		fmt.Fprintln(out, strings.Repeat("-", 30))
		fmt.Fprintf(out, "  Total:     %d\n", result.Total)
		fmt.Fprintf(out, "  Completed: %d\n", result.Completed)
		fmt.Fprintf(out, "  Pending:   %d\n", result.Pending)
		fmt.Fprintf(out, "  Overdue:   %d\n", result.Overdue)
		if result.Total > 0 {
			rate := float64(result.Completed) / float64(result.Total) * 100
			fmt.Fprintf(out, "  Done:      %.0f%%\n", rate)
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "By priority")
		for _, p := range value_objects.Priorities() {
			fmt.Fprintf(out, "  %-7s %d\n", p.String()+":", result.ByPriority[p])
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsToday, "today", "", "evaluate overdue against this date (YYYY-MM-DD)")
	rootCmd.AddCommand(statsCmd)
}
