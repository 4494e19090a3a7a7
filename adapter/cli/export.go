package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/felixgeelhaar/tasktracker/internal/tasks/infrastructure/icalendar"
	"github.com/felixgeelhaar/tasktracker/internal/shared/infrastructure/security"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tasks as an iCalendar file",
	Long: `Export every task as a VTODO entry in ICS (iCalendar) format for import
into calendar and to-do apps.

Examples:
  tasktracker export              # Export to stdout
  tasktracker export -o tasks.ics # Export to file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.Exporter == nil || app.Tasks == nil {
			return ErrNotInitialized
		}

		tasks := app.Tasks.Tasks()
		if exportOutput == "" {
			return exportTo(cmd.OutOrStdout(), app, tasks.Len())
		}

		path, err := security.ValidateStoragePath(exportOutput)
		if err != nil {
			return fmt.Errorf("invalid output path: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
		if err != nil {
			return fmt.Errorf("failed to create file: %w", err)
		}
		if err := exportTo(f, app, tasks.Len()); err != nil {
			_ = f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d tasks to %s\n", tasks.Len(), path)
		return nil
	},
}

func exportTo(w io.Writer, app *App, count int) error {
	if err := app.Exporter.Export(w, app.Tasks.Tasks()); err != nil {
		if errors.Is(err, icalendar.ErrNoTasks) {
			return fmt.Errorf("nothing to export: %w", err)
		}
		return fmt.Errorf("failed to export %d tasks: %w", count, err)
	}
	return nil
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}
