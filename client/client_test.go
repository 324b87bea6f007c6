package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blackbox/internal/config"
	apperrors "blackbox/internal/errors"
	"blackbox/models"
)

func newTestClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := New(&config.ClientConfig{APIBaseURL: server.URL, Timeout: 5 * time.Second})
	return client, server
}

func TestClient_CreateUser(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody map[string]string

	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.User{ID: 1, Username: "alice"})
	}))
	defer server.Close()

	user, err := client.CreateUser(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "/users", gotPath)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "alice", gotBody["username"])
}

func TestClient_ListRunsQuery(t *testing.T) {
	var gotQuery string

	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		json.NewEncoder(w).Encode([]*models.Run{})
	}))
	defer server.Close()

	sessionID := int64(3)
	_, err := client.ListRuns(context.Background(), &sessionID, "pending", Page{Skip: 10, Limit: 5})
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "session_id=3")
	assert.Contains(t, gotQuery, "status=pending")
	assert.Contains(t, gotQuery, "skip=10")
	assert.Contains(t, gotQuery, "limit=5")
}

func TestClient_ErrorCodePropagates(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]string{"error": "username already taken", "code": "CONFLICT"})
	}))
	defer server.Close()

	_, err := client.CreateUser(context.Background(), "alice")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeConflict))
	assert.Contains(t, err.Error(), "username already taken")
}

func TestClient_ConnectionFailureIsStoreUnavailable(t *testing.T) {
	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening anymore

	_, err := client.CreateUser(context.Background(), "alice")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeStoreUnavailable))
}

func TestClient_AutoCommitNoContent(t *testing.T) {
	var gotBody map[string]string

	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	err := client.AutoCommit(context.Background(), AutoCommit{
		Project:    "demo",
		Message:    "fix",
		CommitHash: "abc",
		GitUser:    "bob",
	})
	require.NoError(t, err)
	assert.Equal(t, "demo", gotBody["project"])
	assert.Equal(t, "abc", gotBody["commit_hash"])
}

func TestClient_UpdateRunSendsOnlySetFields(t *testing.T) {
	var raw map[string]interface{}

	client, server := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		json.NewEncoder(w).Encode(models.Run{ID: 1, Status: models.RunStatusRunning})
	}))
	defer server.Close()

	status := models.RunStatusRunning
	_, err := client.UpdateRun(context.Background(), 1, models.RunPatch{Status: &status})
	require.NoError(t, err)
	assert.Contains(t, raw, "status")
	assert.NotContains(t, raw, "stdout", "omitempty fields must stay out of the patch")
}
