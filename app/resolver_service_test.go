package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "blackbox/internal/errors"
	"blackbox/internal/testkit"
)

func TestResolveActor_CreatesThenReuses(t *testing.T) {
	store := testkit.NewStore()
	repos := store.Ports()
	svc := NewResolverService(repos.Users, repos.Projects)
	ctx := context.Background()

	first, err := svc.ResolveActor(ctx, "bob")
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := svc.ResolveActor(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "resolving the same username twice must not create a second user")
}

func TestResolveActor_Idempotent(t *testing.T) {
	store := testkit.NewStore()
	repos := store.Ports()
	svc := NewResolverService(repos.Users, repos.Projects)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := svc.ResolveActor(ctx, "carol")
		require.NoError(t, err)
	}

	count, err := repos.Users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestResolveProject_OwnerOnlyOnCreation(t *testing.T) {
	store := testkit.NewStore()
	repos := store.Ports()
	svc := NewResolverService(repos.Users, repos.Projects)
	ctx := context.Background()

	alice, err := svc.ResolveActor(ctx, "alice")
	require.NoError(t, err)
	project, err := svc.ResolveProject(ctx, "demo", alice)
	require.NoError(t, err)
	require.NotNil(t, project.OwnerID)
	assert.Equal(t, alice.ID, *project.OwnerID)
	require.NotNil(t, project.Description)
	assert.Equal(t, "Auto-created for alice", *project.Description)

	// A later actor does not take over an existing project.
	bob, err := svc.ResolveActor(ctx, "bob")
	require.NoError(t, err)
	again, err := svc.ResolveProject(ctx, "demo", bob)
	require.NoError(t, err)
	assert.Equal(t, project.ID, again.ID)
	require.NotNil(t, again.OwnerID)
	assert.Equal(t, alice.ID, *again.OwnerID)
}

func TestResolveProject_NoOwner(t *testing.T) {
	store := testkit.NewStore()
	repos := store.Ports()
	svc := NewResolverService(repos.Users, repos.Projects)

	project, err := svc.ResolveProject(context.Background(), "orphan", nil)
	require.NoError(t, err)
	assert.Nil(t, project.OwnerID)
	require.NotNil(t, project.Description)
	assert.Equal(t, "Auto-created for unknown", *project.Description)
}

func TestResolveActor_StoreFailureSurfaces(t *testing.T) {
	store := testkit.NewStore()
	repos := store.Ports()
	svc := NewResolverService(repos.Users, repos.Projects)

	store.Fail(testkit.KindUser, apperrors.StoreUnavailable(nil))

	_, err := svc.ResolveActor(context.Background(), "dave")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeStoreUnavailable))
}
