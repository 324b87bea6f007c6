package app

import (
	"context"

	"blackbox/models"
	"blackbox/ports"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"
)

// StatsService computes read-only snapshots over the full record set. Counts
// are gathered concurrently; no transaction spans them, so a snapshot taken
// under concurrent writers may mix states (accepted, see the concurrency
// contract). Breakdown maps enumerate the closed status/type domains so that
// absent categories still report zero.
type StatsService struct {
	store ports.Store
}

// NewStatsService creates a stats service
func NewStatsService(store ports.Store) *StatsService {
	return &StatsService{store: store}
}

// Summary returns the six entity totals, the run status and event type
// breakdowns, and duration aggregates over runs that reported one
func (s *StatsService) Summary(ctx context.Context) (*models.Summary, error) {
	summary := &models.Summary{
		RunsByStatus: make(map[models.RunStatus]int, len(models.RunStatuses())),
		EventsByType: make(map[models.EventType]int, len(models.EventTypes())),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		summary.TotalUsers, err = s.store.Users.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		summary.TotalProjects, err = s.store.Projects.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		summary.TotalSessions, err = s.store.Sessions.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		summary.TotalSnippets, err = s.store.Snippets.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		summary.TotalRuns, err = s.store.Runs.Count(gctx)
		return err
	})
	g.Go(func() (err error) {
		summary.TotalEvents, err = s.store.Events.Count(gctx)
		return err
	})

	for _, status := range models.RunStatuses() {
		summary.RunsByStatus[status] = 0
	}
	for _, eventType := range models.EventTypes() {
		summary.EventsByType[eventType] = 0
	}

	var durations []float64
	g.Go(func() (err error) {
		durations, err = s.store.Runs.Durations(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Per-category counts run sequentially; concurrent map writes are unsafe
	for _, status := range models.RunStatuses() {
		count, err := s.store.Runs.CountByStatus(ctx, status)
		if err != nil {
			return nil, err
		}
		summary.RunsByStatus[status] = count
	}
	for _, eventType := range models.EventTypes() {
		count, err := s.store.Events.CountByType(ctx, eventType)
		if err != nil {
			return nil, err
		}
		summary.EventsByType[eventType] = count
	}

	if len(durations) > 0 {
		summary.Durations = durationStats(durations)
	}

	return summary, nil
}

func durationStats(durations []float64) *models.RunDurationStats {
	// stats errors only on empty input, which the caller excludes
	mean, _ := stats.Mean(durations)
	median, _ := stats.Median(durations)
	max, _ := stats.Max(durations)
	return &models.RunDurationStats{
		Reported: len(durations),
		Mean:     mean,
		Median:   median,
		Max:      max,
	}
}
