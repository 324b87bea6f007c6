// Package client provides a typed HTTP client for the Blackbox API, used by
// the CLI and the git hooks.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"blackbox/internal/config"
	"blackbox/internal/errors"
	"blackbox/models"
)

// Client talks to a remote Blackbox API
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client from CLI configuration
func New(cfg *config.ClientConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// apiError mirrors the API error payload
type apiError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// do performs one request and decodes the JSON response into out (when
// non-nil). API errors come back carrying their original taxonomy code.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.WithCode(errors.CodeStoreUnavailable,
			fmt.Errorf("cannot reach API at %s: %w", c.baseURL, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Code != "" {
			return errors.New(apiErr.Code, apiErr.Error)
		}
		return errors.InternalError(fmt.Sprintf("%s %s: unexpected status %d", method, path, resp.StatusCode))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}
	return nil
}

// Page carries skip/limit pagination for list calls
type Page struct {
	Skip  int
	Limit int
}

func (p Page) values(q url.Values) url.Values {
	if p.Skip > 0 {
		q.Set("skip", strconv.Itoa(p.Skip))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	return q
}

// --- users ---

func (c *Client) CreateUser(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := c.do(ctx, http.MethodPost, "/users", nil, map[string]string{"username": username}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) GetUser(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", id), nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) ListUsers(ctx context.Context, page Page) ([]*models.User, error) {
	users := []*models.User{}
	err := c.do(ctx, http.MethodGet, "/users", page.values(url.Values{}), nil, &users)
	return users, err
}

// --- projects ---

type ProjectCreate struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	OwnerID     *int64  `json:"owner_id,omitempty"`
}

func (c *Client) CreateProject(ctx context.Context, in ProjectCreate) (*models.Project, error) {
	var project models.Project
	if err := c.do(ctx, http.MethodPost, "/projects", nil, in, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	var project models.Project
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/projects/%d", id), nil, nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (c *Client) ListProjects(ctx context.Context, ownerID *int64, page Page) ([]*models.Project, error) {
	q := page.values(url.Values{})
	if ownerID != nil {
		q.Set("owner_id", strconv.FormatInt(*ownerID, 10))
	}
	projects := []*models.Project{}
	err := c.do(ctx, http.MethodGet, "/projects", q, nil, &projects)
	return projects, err
}

// --- sessions ---

func (c *Client) CreateSession(ctx context.Context, projectID int64) (*models.Session, error) {
	var session models.Session
	err := c.do(ctx, http.MethodPost, "/sessions", nil, map[string]int64{"project_id": projectID}, &session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) GetSession(ctx context.Context, id int64) (*models.Session, error) {
	var session models.Session
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/sessions/%d", id), nil, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *Client) ListSessions(ctx context.Context, projectID *int64, page Page) ([]*models.Session, error) {
	q := page.values(url.Values{})
	if projectID != nil {
		q.Set("project_id", strconv.FormatInt(*projectID, 10))
	}
	sessions := []*models.Session{}
	err := c.do(ctx, http.MethodGet, "/sessions", q, nil, &sessions)
	return sessions, err
}

func (c *Client) EndSession(ctx context.Context, id int64) (*models.Session, error) {
	var session models.Session
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/sessions/%d/end", id), nil, nil, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// --- snippets ---

type SnippetCreate struct {
	ProjectID int64   `json:"project_id"`
	Filename  *string `json:"filename,omitempty"`
	Language  string  `json:"language,omitempty"`
	Code      string  `json:"code"`
}

func (c *Client) CreateSnippet(ctx context.Context, in SnippetCreate) (*models.CodeSnippet, error) {
	var snippet models.CodeSnippet
	if err := c.do(ctx, http.MethodPost, "/snippets", nil, in, &snippet); err != nil {
		return nil, err
	}
	return &snippet, nil
}

func (c *Client) GetSnippet(ctx context.Context, id int64) (*models.CodeSnippet, error) {
	var snippet models.CodeSnippet
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/snippets/%d", id), nil, nil, &snippet); err != nil {
		return nil, err
	}
	return &snippet, nil
}

func (c *Client) ListSnippets(ctx context.Context, projectID *int64, language string, page Page) ([]*models.CodeSnippet, error) {
	q := page.values(url.Values{})
	if projectID != nil {
		q.Set("project_id", strconv.FormatInt(*projectID, 10))
	}
	if language != "" {
		q.Set("language", language)
	}
	snippets := []*models.CodeSnippet{}
	err := c.do(ctx, http.MethodGet, "/snippets", q, nil, &snippets)
	return snippets, err
}

// --- runs ---

type RunCreate struct {
	SessionID int64  `json:"session_id"`
	SnippetID *int64 `json:"snippet_id,omitempty"`
}

func (c *Client) CreateRun(ctx context.Context, in RunCreate) (*models.Run, error) {
	var run models.Run
	if err := c.do(ctx, http.MethodPost, "/runs", nil, in, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

func (c *Client) GetRun(ctx context.Context, id int64) (*models.Run, error) {
	var run models.Run
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/runs/%d", id), nil, nil, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

func (c *Client) ListRuns(ctx context.Context, sessionID *int64, status string, page Page) ([]*models.Run, error) {
	q := page.values(url.Values{})
	if sessionID != nil {
		q.Set("session_id", strconv.FormatInt(*sessionID, 10))
	}
	if status != "" {
		q.Set("status", status)
	}
	runs := []*models.Run{}
	err := c.do(ctx, http.MethodGet, "/runs", q, nil, &runs)
	return runs, err
}

func (c *Client) UpdateRun(ctx context.Context, id int64, patch models.RunPatch) (*models.Run, error) {
	var run models.Run
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/runs/%d", id), nil, patch, &run); err != nil {
		return nil, err
	}
	return &run, nil
}

// --- events ---

type EventCreate struct {
	ProjectID int64            `json:"project_id"`
	RunID     *int64           `json:"run_id,omitempty"`
	EventType models.EventType `json:"event_type"`
	Message   *string          `json:"message,omitempty"`
	Metadata  *string          `json:"metadata,omitempty"`
}

func (c *Client) CreateEvent(ctx context.Context, in EventCreate) (*models.Event, error) {
	var event models.Event
	if err := c.do(ctx, http.MethodPost, "/events", nil, in, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	var event models.Event
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/events/%d", id), nil, nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) ListEvents(ctx context.Context, projectID, runID *int64, eventType string, page Page) ([]*models.Event, error) {
	q := page.values(url.Values{})
	if projectID != nil {
		q.Set("project_id", strconv.FormatInt(*projectID, 10))
	}
	if runID != nil {
		q.Set("run_id", strconv.FormatInt(*runID, 10))
	}
	if eventType != "" {
		q.Set("event_type", eventType)
	}
	events := []*models.Event{}
	err := c.do(ctx, http.MethodGet, "/events", q, nil, &events)
	return events, err
}

// --- stats ---

func (c *Client) Stats(ctx context.Context) (*models.Summary, error) {
	var summary models.Summary
	if err := c.do(ctx, http.MethodGet, "/stats/summary", nil, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// --- automation ---

type AutoCommit struct {
	Project    string `json:"project"`
	Message    string `json:"message"`
	CommitHash string `json:"commit_hash,omitempty"`
	GitUser    string `json:"git_user,omitempty"`
}

func (c *Client) AutoCommit(ctx context.Context, in AutoCommit) error {
	return c.do(ctx, http.MethodPost, "/auto/commit", nil, in, nil)
}

type AutoEvent struct {
	Project string `json:"project"`
	Type    string `json:"type"`
	Message string `json:"message"`
	GitUser string `json:"git_user,omitempty"`
}

func (c *Client) AutoEvent(ctx context.Context, in AutoEvent) error {
	return c.do(ctx, http.MethodPost, "/auto/event", nil, in, nil)
}

// Health checks API reachability
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health/full", nil, nil, nil)
}
