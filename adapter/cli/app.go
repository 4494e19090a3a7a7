package cli

import (
	"errors"

	"github.com/felixgeelhaar/tasktracker/internal/tasks/application/commands"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/application/queries"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/infrastructure/icalendar"
)

// ErrNotInitialized is returned by commands run before SetApp.
var ErrNotInitialized = errors.New("application not initialized")

// App holds the CLI application dependencies.
type App struct {
	// Command handlers
	CreateTaskHandler   *commands.CreateTaskHandler
	CompleteTaskHandler *commands.CompleteTaskHandler
	DeleteTaskHandler   *commands.DeleteTaskHandler

	// Query handlers
	ListTasksHandler *queries.ListTasksHandler
	GetStatsHandler  *queries.GetStatsHandler

	// Export
	Tasks    queries.TaskSource
	Exporter *icalendar.Exporter
}

// NewApp creates a new CLI application with the provided handlers.
func NewApp(
	createTaskHandler *commands.CreateTaskHandler,
	completeTaskHandler *commands.CompleteTaskHandler,
	deleteTaskHandler *commands.DeleteTaskHandler,
	listTasksHandler *queries.ListTasksHandler,
	getStatsHandler *queries.GetStatsHandler,
) *App {
	return &App{
		CreateTaskHandler:   createTaskHandler,
		CompleteTaskHandler: completeTaskHandler,
		DeleteTaskHandler:   deleteTaskHandler,
		ListTasksHandler:    listTasksHandler,
		GetStatsHandler:     getStatsHandler,
	}
}

// SetExporter configures the calendar export.
func (a *App) SetExporter(tasks queries.TaskSource, exporter *icalendar.Exporter) {
	a.Tasks = tasks
	a.Exporter = exporter
}

// app is the global CLI application instance
var app *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return app
}
