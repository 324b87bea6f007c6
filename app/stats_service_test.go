package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "blackbox/internal/errors"
	"blackbox/internal/testkit"
	"blackbox/models"
)

func TestSummary_EmptyStoreReportsAllCategories(t *testing.T) {
	store := testkit.NewStore()
	svc := NewStatsService(store.Ports())

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Zero(t, summary.TotalUsers)
	assert.Zero(t, summary.TotalRuns)
	assert.Zero(t, summary.TotalEvents)

	// Every known category is present with a zero count, never absent.
	assert.Len(t, summary.RunsByStatus, len(models.RunStatuses()))
	for _, status := range models.RunStatuses() {
		count, ok := summary.RunsByStatus[status]
		assert.True(t, ok, "missing status %q", status)
		assert.Zero(t, count)
	}
	assert.Len(t, summary.EventsByType, len(models.EventTypes()))
	for _, eventType := range models.EventTypes() {
		count, ok := summary.EventsByType[eventType]
		assert.True(t, ok, "missing event type %q", eventType)
		assert.Zero(t, count)
	}

	assert.Nil(t, summary.Durations, "no durations reported on an empty store")
}

func TestSummary_BreakdownsMatchTotals(t *testing.T) {
	store := testkit.NewStore()
	ledger := NewLedgerService(store.Ports())
	runs := NewRunService(store.Ports().Runs, false)
	svc := NewStatsService(store.Ports())
	ctx := context.Background()

	user, err := ledger.CreateUser(ctx, "alice")
	require.NoError(t, err)
	project, err := ledger.CreateProject(ctx, "demo", nil, &user.ID)
	require.NoError(t, err)
	session, err := ledger.CreateSession(ctx, project.ID)
	require.NoError(t, err)

	// Three runs: one stays pending, one succeeds, one fails.
	_, err = ledger.CreateRun(ctx, session.ID, nil)
	require.NoError(t, err)
	second, err := ledger.CreateRun(ctx, session.ID, nil)
	require.NoError(t, err)
	third, err := ledger.CreateRun(ctx, session.ID, nil)
	require.NoError(t, err)

	duration := 1.5
	_, err = runs.UpdateRun(ctx, second.ID, models.RunPatch{
		Status:   statusPtr(models.RunStatusSuccess),
		Duration: &duration,
	})
	require.NoError(t, err)
	_, err = runs.UpdateRun(ctx, third.ID, models.RunPatch{Status: statusPtr(models.RunStatusFailed)})
	require.NoError(t, err)

	msg := "deploy"
	_, err = ledger.CreateEvent(ctx, project.ID, nil, models.EventTypeInfo, &msg, nil)
	require.NoError(t, err)
	_, err = ledger.CreateEvent(ctx, project.ID, nil, models.EventTypeError, &msg, nil)
	require.NoError(t, err)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalUsers)
	assert.Equal(t, 1, summary.TotalProjects)
	assert.Equal(t, 1, summary.TotalSessions)
	assert.Equal(t, 3, summary.TotalRuns)
	assert.Equal(t, 2, summary.TotalEvents)

	assert.Equal(t, 1, summary.RunsByStatus[models.RunStatusPending])
	assert.Equal(t, 1, summary.RunsByStatus[models.RunStatusSuccess])
	assert.Equal(t, 1, summary.RunsByStatus[models.RunStatusFailed])
	assert.Equal(t, 0, summary.RunsByStatus[models.RunStatusRunning])

	statusSum := 0
	for _, count := range summary.RunsByStatus {
		statusSum += count
	}
	assert.Equal(t, summary.TotalRuns, statusSum, "per-status counts must sum to the total")

	typeSum := 0
	for _, count := range summary.EventsByType {
		typeSum += count
	}
	assert.Equal(t, summary.TotalEvents, typeSum, "per-type counts must sum to the total")

	require.NotNil(t, summary.Durations)
	assert.Equal(t, 1, summary.Durations.Reported)
	assert.InDelta(t, 1.5, summary.Durations.Mean, 1e-9)
	assert.InDelta(t, 1.5, summary.Durations.Median, 1e-9)
	assert.InDelta(t, 1.5, summary.Durations.Max, 1e-9)
}

func TestSummary_DurationAggregates(t *testing.T) {
	store := testkit.NewStore()
	ledger := NewLedgerService(store.Ports())
	runs := NewRunService(store.Ports().Runs, false)
	svc := NewStatsService(store.Ports())
	ctx := context.Background()

	user, err := ledger.CreateUser(ctx, "alice")
	require.NoError(t, err)
	project, err := ledger.CreateProject(ctx, "demo", nil, &user.ID)
	require.NoError(t, err)
	session, err := ledger.CreateSession(ctx, project.ID)
	require.NoError(t, err)

	for _, d := range []float64{1, 2, 6} {
		run, err := ledger.CreateRun(ctx, session.ID, nil)
		require.NoError(t, err)
		duration := d
		_, err = runs.UpdateRun(ctx, run.ID, models.RunPatch{
			Status:   statusPtr(models.RunStatusSuccess),
			Duration: &duration,
		})
		require.NoError(t, err)
	}

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	require.NotNil(t, summary.Durations)
	assert.Equal(t, 3, summary.Durations.Reported)
	assert.InDelta(t, 3.0, summary.Durations.Mean, 1e-9)
	assert.InDelta(t, 2.0, summary.Durations.Median, 1e-9)
	assert.InDelta(t, 6.0, summary.Durations.Max, 1e-9)
}

func TestSummary_StoreFailureSurfaces(t *testing.T) {
	store := testkit.NewStore()
	svc := NewStatsService(store.Ports())

	store.Fail(testkit.KindRun, apperrors.StoreUnavailable(nil))

	_, err := svc.Summary(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeStoreUnavailable))
}
