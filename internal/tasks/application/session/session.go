// Package session owns the in-memory task list for one program run and keeps
// it in step with the repository.
package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/felixgeelhaar/tasktracker/internal/shared/application"
	"github.com/felixgeelhaar/tasktracker/internal/shared/domain"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/domain/task"
	"github.com/felixgeelhaar/tasktracker/pkg/observability"
)

// Publisher receives domain events after a mutation has been saved.
type Publisher interface {
	Publish(ctx context.Context, events ...domain.DomainEvent) error
}

// Mutation derives a new task list from the current one, along with the
// events describing the change.
type Mutation func(current task.Collection) (task.Collection, []domain.DomainEvent, error)

// Option configures a Session.
type Option func(*Session)

// WithPublisher sets the event publisher.
func WithPublisher(p Publisher) Option {
	return func(s *Session) { s.publisher = p }
}

// WithMetrics sets the metrics collector.
func WithMetrics(m observability.Metrics) Option {
	return func(s *Session) { s.metrics = m }
}

// Session holds the authoritative task list in memory. Every successful
// mutation is followed by a save; a failed save leaves memory as it is.
type Session struct {
	repo      task.Repository
	publisher Publisher
	metrics   observability.Metrics
	logger    *slog.Logger

	mu    sync.RWMutex
	tasks task.Collection
}

// New creates a Session with an empty task list. Call Open to load stored tasks.
func New(repo task.Repository, logger *slog.Logger, opts ...Option) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Session{
		repo:    repo,
		metrics: observability.NoopMetrics{},
		logger:  logger,
		tasks:   task.Collection{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open loads the stored task list. On failure the session keeps an empty
// list and remains usable; the error is returned so callers can report it.
func (s *Session) Open(ctx context.Context) error {
	timer := observability.StartTimer(observability.MetricTasksLoad).
		WithLogger(s.logger).
		WithMetrics(s.metrics)

	loaded, err := s.repo.Load(ctx)
	timer.StopWithError(err)
	if err != nil {
		s.logger.WarnContext(ctx, "could not load tasks, starting with an empty list",
			observability.ErrorKey, err,
		)
		loaded = task.Collection{}
	}

	s.mu.Lock()
	s.tasks = loaded.Clone()
	s.mu.Unlock()

	s.metrics.Gauge(observability.MetricTasksCount, float64(len(loaded)))
	s.logger.DebugContext(ctx, "tasks loaded", "count", len(loaded))
	return err
}

// Tasks returns a copy of the current task list.
func (s *Session) Tasks() task.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tasks.Clone()
}

// Apply runs mutate against the current list, installs the result, and saves
// it. If mutate fails nothing changes. If the save fails the new list stays
// in memory, no events are published, and the save error is returned.
func (s *Session) Apply(ctx context.Context, mutate Mutation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	next, events, err := mutate(s.tasks.Clone())
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if next == nil {
		next = task.Collection{}
	}
	s.tasks = next
	snapshot := next.Clone()
	s.mu.Unlock()

	if err := s.save(ctx, snapshot); err != nil {
		return err
	}

	s.publish(ctx, events)
	return nil
}

// Save persists the current list.
func (s *Session) Save(ctx context.Context) error {
	return s.save(ctx, s.Tasks())
}

func (s *Session) save(ctx context.Context, tasks task.Collection) error {
	timer := observability.StartTimer(observability.MetricTasksSave).
		WithLogger(s.logger).
		WithMetrics(s.metrics)

	err := s.repo.Save(ctx, tasks)
	timer.StopWithError(err)
	if err != nil {
		s.logger.ErrorContext(ctx, "could not save tasks, changes kept in memory",
			observability.ErrorKey, err,
		)
		return err
	}

	s.metrics.Gauge(observability.MetricTasksCount, float64(len(tasks)))
	return nil
}

func (s *Session) publish(ctx context.Context, events []domain.DomainEvent) {
	if s.publisher == nil || len(events) == 0 {
		return
	}

	application.ApplyEventMetadata(events, application.NewEventMetadata(ctx))
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.logger.WarnContext(ctx, "failed to publish task events",
			observability.ErrorKey, err,
			"count", len(events),
		)
	}
}
