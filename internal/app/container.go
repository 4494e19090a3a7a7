package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/felixgeelhaar/tasktracker/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/tasktracker/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/application/commands"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/application/queries"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/application/session"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/application/subscribers"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/domain/task"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/infrastructure/icalendar"
	"github.com/felixgeelhaar/tasktracker/pkg/config"
	"github.com/felixgeelhaar/tasktracker/pkg/observability"
)

// Container holds all application dependencies.
type Container struct {
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *observability.InMemoryMetrics

	// Storage
	Driver   database.Driver
	TaskRepo task.Repository
	EventBus *eventbus.InProcessEventBus
	Session  *session.Session

	// Command handlers
	CreateTaskHandler   *commands.CreateTaskHandler
	CompleteTaskHandler *commands.CompleteTaskHandler
	DeleteTaskHandler   *commands.DeleteTaskHandler

	// Query handlers
	ListTasksHandler *queries.ListTasksHandler
	GetStatsHandler  *queries.GetStatsHandler

	Exporter *icalendar.Exporter

	// LoadErr is set when stored tasks could not be read at startup. The
	// container is still usable and starts from an empty list.
	LoadErr error

	closer io.Closer
}

// NewContainer creates and wires all application dependencies and loads the
// stored task list.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	driver := cfg.Driver()
	path := cfg.StoragePath()

	repo, closer, err := NewRepositoryFactory(driver, path).TaskRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create task repository: %w", err)
	}

	c := &Container{
		Config:   cfg,
		Logger:   logger,
		Metrics:  observability.NewInMemoryMetrics(),
		Driver:   driver,
		TaskRepo: repo,
		Exporter: icalendar.NewExporter(),
		closer:   closer,
	}

	c.EventBus = eventbus.NewInProcessEventBus(logger)
	c.EventBus.RegisterConsumer(subscribers.NewMetricsSubscriber(c.Metrics, logger))

	c.Session = session.New(repo, logger,
		session.WithPublisher(c.EventBus),
		session.WithMetrics(c.Metrics),
	)

	c.CreateTaskHandler = commands.NewCreateTaskHandler(c.Session)
	c.CompleteTaskHandler = commands.NewCompleteTaskHandler(c.Session)
	c.DeleteTaskHandler = commands.NewDeleteTaskHandler(c.Session)
	c.ListTasksHandler = queries.NewListTasksHandler(c.Session)
	c.GetStatsHandler = queries.NewGetStatsHandler(c.Session)

	c.LoadErr = c.Session.Open(ctx)

	logger.Debug("container ready",
		"driver", driver.String(),
		"path", path,
		"tasks", c.Session.Tasks().Len(),
	)
	return c, nil
}

// Close releases all resources.
func (c *Container) Close() {
	if c.EventBus != nil {
		if err := c.EventBus.Close(); err != nil {
			c.Logger.Warn("error closing event bus", "error", err)
		}
	}
	if c.closer != nil {
		if err := c.closer.Close(); err != nil {
			c.Logger.Warn("error closing task storage", "error", err)
		}
	}
}
