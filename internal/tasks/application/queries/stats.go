package queries

import (
	"context"

	"github.com/felixgeelhaar/tasktracker/internal/shared/application"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/domain/task"
	"github.com/felixgeelhaar/tasktracker/internal/tasks/domain/value_objects"
)

// Stats holds aggregate counts over a task list.
type Stats struct {
	Total     int
	Completed int
	Pending   int
	Overdue   int
}

// ComputeStats counts tasks. Overdue uses IsOverdue, so completed tasks are
// never counted as overdue.
func ComputeStats(tasks task.Collection, today value_objects.Date) Stats {
	s := Stats{Total: len(tasks)}
	for _, t := range tasks {
		if t.IsCompleted() {
			s.Completed++
		}
		if IsOverdue(t, today) {
			s.Overdue++
		}
	}
	s.Pending = s.Total - s.Completed
	return s
}

// PriorityBreakdown counts tasks per priority.
func PriorityBreakdown(tasks task.Collection) map[value_objects.Priority]int {
	counts := make(map[value_objects.Priority]int, 3)
	for _, p := range value_objects.Priorities() {
		counts[p] = 0
	}
	for _, t := range tasks {
		counts[t.Priority()]++
	}
	return counts
}

// GetStatsQuery contains the parameters for computing statistics.
type GetStatsQuery struct {
	Today value_objects.Date
}

func (GetStatsQuery) QueryName() string { return "tasks.stats" }

// StatsResult is the outcome of a GetStatsQuery.
type StatsResult struct {
	Stats
	ByPriority map[value_objects.Priority]int
}

// GetStatsHandler handles the GetStatsQuery.
type GetStatsHandler struct {
	source TaskSource
}

var _ application.QueryHandler[GetStatsQuery, *StatsResult] = (*GetStatsHandler)(nil)

// NewGetStatsHandler creates a new GetStatsHandler.
func NewGetStatsHandler(source TaskSource) *GetStatsHandler {
	return &GetStatsHandler{source: source}
}

// Handle executes the GetStatsQuery.
func (h *GetStatsHandler) Handle(ctx context.Context, query GetStatsQuery) (*StatsResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	today := query.Today
	if today.IsZero() {
		today = value_objects.Today()
	}

	tasks := h.source.Tasks()
	return &StatsResult{
		Stats:      ComputeStats(tasks, today),
		ByPriority: PriorityBreakdown(tasks),
	}, nil
}
