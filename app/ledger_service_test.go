package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "blackbox/internal/errors"
	"blackbox/internal/testkit"
	"blackbox/models"
	"blackbox/ports"
)

func TestLedger_DuplicateUsernameConflicts(t *testing.T) {
	store := testkit.NewStore()
	ledger := NewLedgerService(store.Ports())
	ctx := context.Background()

	_, err := ledger.CreateUser(ctx, "alice")
	require.NoError(t, err)

	_, err = ledger.CreateUser(ctx, "alice")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeConflict))

	count, err := store.Ports().Users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLedger_ForeignKeysValidated(t *testing.T) {
	store := testkit.NewStore()
	ledger := NewLedgerService(store.Ports())
	ctx := context.Background()

	_, err := ledger.CreateSession(ctx, 42)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidationError))

	_, err = ledger.CreateRun(ctx, 42, nil)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidationError))

	msg := "m"
	_, err = ledger.CreateEvent(ctx, 42, nil, models.EventTypeInfo, &msg, nil)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidationError))
}

func TestLedger_GetMissingIsNotFound(t *testing.T) {
	store := testkit.NewStore()
	ledger := NewLedgerService(store.Ports())
	ctx := context.Background()

	_, err := ledger.GetUser(ctx, 1)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
	_, err = ledger.GetProject(ctx, 1)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
	_, err = ledger.GetRun(ctx, 1)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeNotFound))
}

func TestLedger_EndSessionSetsTimestamp(t *testing.T) {
	store := testkit.NewStore()
	ledger := NewLedgerService(store.Ports())
	ctx := context.Background()

	user, err := ledger.CreateUser(ctx, "alice")
	require.NoError(t, err)
	project, err := ledger.CreateProject(ctx, "demo", nil, &user.ID)
	require.NoError(t, err)
	session, err := ledger.CreateSession(ctx, project.ID)
	require.NoError(t, err)
	assert.Nil(t, session.EndedAt)

	ended, err := ledger.EndSession(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, ended.EndedAt)
	assert.False(t, ended.EndedAt.Before(ended.StartedAt))
}

func TestLedger_ListInsertionOrderAndPaging(t *testing.T) {
	store := testkit.NewStore()
	ledger := NewLedgerService(store.Ports())
	ctx := context.Background()

	names := []string{"alpha", "beta", "gamma", "delta"}
	for _, name := range names {
		_, err := ledger.CreateUser(ctx, name)
		require.NoError(t, err)
	}

	users, err := ledger.ListUsers(ctx, 0, 100)
	require.NoError(t, err)
	require.Len(t, users, 4)
	for i, user := range users {
		assert.Equal(t, names[i], user.Username)
	}

	page, err := ledger.ListUsers(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "beta", page[0].Username)
	assert.Equal(t, "gamma", page[1].Username)

	empty, err := ledger.ListUsers(ctx, 10, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// Full happy path: alice works on demo, runs a snippet, logs an event.
func TestLedger_FullScenario(t *testing.T) {
	store := testkit.NewStore()
	repos := store.Ports()
	ledger := NewLedgerService(repos)
	runs := NewRunService(repos.Runs, false)
	stats := NewStatsService(repos)
	ctx := context.Background()

	alice, err := ledger.CreateUser(ctx, "alice")
	require.NoError(t, err)

	project, err := ledger.CreateProject(ctx, "demo", nil, &alice.ID)
	require.NoError(t, err)

	session, err := ledger.CreateSession(ctx, project.ID)
	require.NoError(t, err)

	filename := "hello.py"
	snippet, err := ledger.CreateSnippet(ctx, project.ID, &filename, "python", "print('hello')")
	require.NoError(t, err)
	assert.Equal(t, "python", snippet.Language)

	run, err := ledger.CreateRun(ctx, session.ID, &snippet.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusPending, run.Status)

	_, err = runs.UpdateRun(ctx, run.ID, models.RunPatch{Status: statusPtr(models.RunStatusRunning)})
	require.NoError(t, err)

	stdout := "hello\n"
	duration := 0.42
	done, err := runs.UpdateRun(ctx, run.ID, models.RunPatch{
		Status:   statusPtr(models.RunStatusSuccess),
		Stdout:   &stdout,
		Duration: &duration,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RunStatusSuccess, done.Status)

	msg := "run finished"
	event, err := ledger.CreateEvent(ctx, project.ID, &run.ID, models.EventTypeRun, &msg, nil)
	require.NoError(t, err)

	_, err = ledger.EndSession(ctx, session.ID)
	require.NoError(t, err)

	// Everything is visible through the filters.
	sessionRuns, err := ledger.ListRuns(ctx, ports.RunFilter{SessionID: &session.ID}, 0, 100)
	require.NoError(t, err)
	require.Len(t, sessionRuns, 1)
	assert.Equal(t, run.ID, sessionRuns[0].ID)

	runEvents, err := ledger.ListEvents(ctx, ports.EventFilter{RunID: &run.ID}, 0, 100)
	require.NoError(t, err)
	require.Len(t, runEvents, 1)
	assert.Equal(t, event.ID, runEvents[0].ID)

	summary, err := stats.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalUsers)
	assert.Equal(t, 1, summary.TotalRuns)
	assert.Equal(t, 1, summary.RunsByStatus[models.RunStatusSuccess])
	assert.Equal(t, 1, summary.EventsByType[models.EventTypeRun])
	require.NotNil(t, summary.Durations)
	assert.InDelta(t, 0.42, summary.Durations.Max, 1e-9)
}
