package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/tasktracker/adapter/cli"
	"github.com/felixgeelhaar/tasktracker/adapter/cli/task"
	"github.com/felixgeelhaar/tasktracker/internal/app"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/infrastructure/persistence"
	"github.com/felixgeelhaar/tasktracker/pkg/config"
	"github.com/felixgeelhaar/tasktracker/pkg/observability"
)

func main() {
	logger := observability.NewLogger(observability.DefaultLogConfig())

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logCfg := observability.DefaultLogConfig()
	if cfg.IsProduction() {
		logCfg = observability.ProductionLogConfig()
	}
	logCfg.Level = observability.LogLevel(cfg.LogLevel)
	logCfg.Format = observability.LogFormat(cfg.LogFormat)
	logCfg.AddSource = logCfg.AddSource || cfg.LogSource
	logger = observability.NewLogger(logCfg)
	cli.SetLogger(logger)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize container", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	if container.LoadErr != nil {
		var loadErr *persistence.LoadError
		if errors.As(container.LoadErr, &loadErr) {
			logger.Warn("stored tasks could not be read, starting with an empty list",
				"path", loadErr.Path,
				"error", loadErr.Err,
			)
		} else {
			logger.Warn("stored tasks could not be read", "error", container.LoadErr)
		}
	}

	cliApp := cli.NewApp(
		container.CreateTaskHandler,
		container.CompleteTaskHandler,
		container.DeleteTaskHandler,
		container.ListTasksHandler,
		container.GetStatsHandler,
	)
	cliApp.SetExporter(container.Session, container.Exporter)
	cli.SetApp(cliApp)

	cli.AddCommand(task.Cmd)
	cli.Execute(ctx)
}
