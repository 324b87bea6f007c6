package app

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "blackbox/internal/errors"
	"blackbox/internal/testkit"
	"blackbox/models"
)

func newIngest(store *testkit.Store) *IngestService {
	repos := store.Ports()
	resolver := NewResolverService(repos.Users, repos.Projects)
	return NewIngestService(resolver, repos.Events)
}

func decodeMeta(t *testing.T, event *models.Event) map[string]string {
	t.Helper()
	require.NotNil(t, event.Metadata)
	meta := map[string]string{}
	require.NoError(t, json.Unmarshal([]byte(*event.Metadata), &meta))
	return meta
}

func TestRecordCommit_ResolvesActorAndProject(t *testing.T) {
	store := testkit.NewStore()
	repos := store.Ports()
	svc := newIngest(store)
	ctx := context.Background()

	outcome := svc.RecordCommit(ctx, CommitInput{
		Project:    "demo",
		Message:    "initial import",
		CommitHash: "abc123",
		GitUser:    "bob",
	})

	require.True(t, outcome.Logged())
	require.NotNil(t, outcome.Actor)
	assert.Equal(t, "bob", outcome.Actor.Username)
	require.NotNil(t, outcome.Project)
	assert.Equal(t, "demo", outcome.Project.Name)
	require.NotNil(t, outcome.Project.OwnerID)
	assert.Equal(t, outcome.Actor.ID, *outcome.Project.OwnerID)

	require.NotNil(t, outcome.Event)
	assert.Equal(t, models.EventTypeInfo, outcome.Event.EventType)
	require.NotNil(t, outcome.Event.Message)
	assert.Equal(t, "Commit: initial import", *outcome.Event.Message)

	meta := decodeMeta(t, outcome.Event)
	assert.Equal(t, "abc123", meta["commit_hash"])
	assert.Equal(t, "bob", meta["git_user"])
	assert.Equal(t, outcome.IngestID, meta["ingest_id"])

	// The event actually landed in the store.
	count, err := repos.Events.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecordCommit_ReusesExistingActorAndProject(t *testing.T) {
	store := testkit.NewStore()
	repos := store.Ports()
	svc := newIngest(store)
	ctx := context.Background()

	first := svc.RecordCommit(ctx, CommitInput{Project: "demo", Message: "one", GitUser: "bob"})
	second := svc.RecordCommit(ctx, CommitInput{Project: "demo", Message: "two", GitUser: "bob"})

	require.True(t, first.Logged())
	require.True(t, second.Logged())
	assert.Equal(t, first.Actor.ID, second.Actor.ID)
	assert.Equal(t, first.Project.ID, second.Project.ID)

	users, err := repos.Users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, users)
	projects, err := repos.Projects.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, projects)
}

func TestRecordCommit_MissingGitUserDefaultsToUnknown(t *testing.T) {
	store := testkit.NewStore()
	svc := newIngest(store)

	outcome := svc.RecordCommit(context.Background(), CommitInput{Project: "demo", Message: "anon"})

	require.True(t, outcome.Logged())
	require.NotNil(t, outcome.Actor)
	assert.Equal(t, "unknown", outcome.Actor.Username)
	meta := decodeMeta(t, outcome.Event)
	assert.Equal(t, "unknown", meta["git_user"])
}

func TestRecordCommit_ActorFailureStillLogsEvent(t *testing.T) {
	store := testkit.NewStore()
	svc := newIngest(store)

	store.Fail(testkit.KindUser, apperrors.StoreUnavailable(nil))

	outcome := svc.RecordCommit(context.Background(), CommitInput{Project: "demo", Message: "m", GitUser: "bob"})

	assert.Error(t, outcome.ActorErr)
	assert.Nil(t, outcome.Actor)
	require.NotNil(t, outcome.Project, "a failed actor lookup must not stop project resolution")
	assert.Nil(t, outcome.Project.OwnerID)
	assert.True(t, outcome.Logged())
}

func TestRecordCommit_ProjectFailureDropsEvent(t *testing.T) {
	store := testkit.NewStore()
	repos := store.Ports()
	svc := newIngest(store)
	ctx := context.Background()

	store.Fail(testkit.KindProject, apperrors.StoreUnavailable(nil))

	outcome := svc.RecordCommit(ctx, CommitInput{Project: "demo", Message: "m", GitUser: "bob"})

	assert.Error(t, outcome.ProjectErr)
	assert.False(t, outcome.Logged())

	count, err := repos.Events.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestRecordCommit_EventFailureAbsorbed(t *testing.T) {
	store := testkit.NewStore()
	svc := newIngest(store)

	store.Fail(testkit.KindEvent, apperrors.StoreUnavailable(nil))

	outcome := svc.RecordCommit(context.Background(), CommitInput{Project: "demo", Message: "m", GitUser: "bob"})

	require.NotNil(t, outcome.Project)
	assert.Error(t, outcome.EventErr)
	assert.False(t, outcome.Logged())
}

func TestRecordEvent_TypedEvent(t *testing.T) {
	store := testkit.NewStore()
	svc := newIngest(store)

	outcome := svc.RecordEvent(context.Background(), EventInput{
		Project: "demo",
		Type:    models.EventTypeWarning,
		Message: "disk nearly full",
		GitUser: "ops",
	})

	require.True(t, outcome.Logged())
	assert.Equal(t, models.EventTypeWarning, outcome.Event.EventType)
	require.NotNil(t, outcome.Event.Message)
	assert.Equal(t, "disk nearly full", *outcome.Event.Message)
}

func TestRecordEvent_UnknownTypeDropped(t *testing.T) {
	store := testkit.NewStore()
	svc := newIngest(store)

	outcome := svc.RecordEvent(context.Background(), EventInput{
		Project: "demo",
		Type:    models.EventType("bogus"),
		Message: "m",
		GitUser: "bob",
	})

	assert.False(t, outcome.Logged())
	assert.Error(t, outcome.EventErr)
}

func TestIngest_DistinctIngestIDs(t *testing.T) {
	store := testkit.NewStore()
	svc := newIngest(store)
	ctx := context.Background()

	first := svc.RecordCommit(ctx, CommitInput{Project: "demo", Message: "one", GitUser: "bob"})
	second := svc.RecordCommit(ctx, CommitInput{Project: "demo", Message: "two", GitUser: "bob"})

	assert.NotEmpty(t, first.IngestID)
	assert.NotEqual(t, first.IngestID, second.IngestID)
}
