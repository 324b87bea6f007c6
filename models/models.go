package models

import (
	"strings"
	"time"

	"blackbox/internal/errors"
)

// DefaultLanguage is assumed for snippets created without an explicit language
const DefaultLanguage = "generic"

// User owns projects. Usernames are unique across all users and immutable
// once created.
type User struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Project groups sessions, snippets, runs and events. OwnerID may be nil for
// unowned projects; names are not required to be unique.
type Project struct {
	ID          int64   `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Description *string `json:"description,omitempty" db:"description"`
	OwnerID     *int64  `json:"owner_id,omitempty" db:"owner_id"`
}

// Session is a bounded span of activity grouping runs under one project.
// A session with EndedAt set is terminal.
type Session struct {
	ID        int64      `json:"id" db:"id"`
	ProjectID int64      `json:"project_id" db:"project_id"`
	StartedAt time.Time  `json:"started_at" db:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty" db:"ended_at"`
}

// CodeSnippet stores a piece of code that runs can reference
type CodeSnippet struct {
	ID        int64     `json:"id" db:"id"`
	ProjectID int64     `json:"project_id" db:"project_id"`
	Filename  *string   `json:"filename,omitempty" db:"filename"`
	Language  string    `json:"language" db:"language"`
	Code      string    `json:"code" db:"code"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// Run records one execution of a snippet or command. Duration is
// caller-supplied, never derived; the engine only stores what the external
// executor reports.
type Run struct {
	ID          int64      `json:"id" db:"id"`
	SessionID   int64      `json:"session_id" db:"session_id"`
	SnippetID   *int64     `json:"snippet_id,omitempty" db:"snippet_id"`
	Status      RunStatus  `json:"status" db:"status"`
	StartedAt   *time.Time `json:"started_at,omitempty" db:"started_at"`
	EndedAt     *time.Time `json:"ended_at,omitempty" db:"ended_at"`
	Duration    *float64   `json:"duration,omitempty" db:"duration"`
	Stdout      *string    `json:"stdout,omitempty" db:"stdout"`
	Stderr      *string    `json:"stderr,omitempty" db:"stderr"`
	ReturnValue *string    `json:"return_value,omitempty" db:"return_value"`
}

// Event is a timestamped, typed log entry tied to a project and optionally a
// run. Metadata is an opaque payload the engine never interprets.
type Event struct {
	ID        int64     `json:"id" db:"id"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
	ProjectID int64     `json:"project_id" db:"project_id"`
	RunID     *int64    `json:"run_id,omitempty" db:"run_id"`
	EventType EventType `json:"event_type" db:"event_type"`
	Message   *string   `json:"message,omitempty" db:"message"`
	Metadata  *string   `json:"metadata,omitempty" db:"metadata"`
}

// RunPatch carries a partial run update. Nil fields are left untouched, so an
// update is a merge-patch rather than a replace.
type RunPatch struct {
	Status      *RunStatus `json:"status,omitempty"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	EndedAt     *time.Time `json:"ended_at,omitempty"`
	Duration    *float64   `json:"duration,omitempty"`
	Stdout      *string    `json:"stdout,omitempty"`
	Stderr      *string    `json:"stderr,omitempty"`
	ReturnValue *string    `json:"return_value,omitempty"`
}

// Empty reports whether the patch carries no fields at all
func (p RunPatch) Empty() bool {
	return p.Status == nil && p.StartedAt == nil && p.EndedAt == nil &&
		p.Duration == nil && p.Stdout == nil && p.Stderr == nil && p.ReturnValue == nil
}

// Apply merges the patch into run, mutating only the supplied fields
func (p RunPatch) Apply(run *Run) {
	if p.Status != nil {
		run.Status = *p.Status
	}
	if p.StartedAt != nil {
		run.StartedAt = p.StartedAt
	}
	if p.EndedAt != nil {
		run.EndedAt = p.EndedAt
	}
	if p.Duration != nil {
		run.Duration = p.Duration
	}
	if p.Stdout != nil {
		run.Stdout = p.Stdout
	}
	if p.Stderr != nil {
		run.Stderr = p.Stderr
	}
	if p.ReturnValue != nil {
		run.ReturnValue = p.ReturnValue
	}
}

// NewUser constructs a user, validating the username
func NewUser(username string) (*User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, errors.ValidationError("username is required")
	}
	return &User{
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// NewProject constructs a project, validating the name
func NewProject(name string, description *string, ownerID *int64) (*Project, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.ValidationError("project name is required")
	}
	return &Project{
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
	}, nil
}

// NewSession constructs a session attached to a project
func NewSession(projectID int64) (*Session, error) {
	if projectID == 0 {
		return nil, errors.ValidationError("project_id is required")
	}
	return &Session{
		ProjectID: projectID,
		StartedAt: time.Now().UTC(),
	}, nil
}

// NewCodeSnippet constructs a snippet. Code is the only required content
// field; language falls back to DefaultLanguage.
func NewCodeSnippet(projectID int64, filename *string, language, code string) (*CodeSnippet, error) {
	if projectID == 0 {
		return nil, errors.ValidationError("project_id is required")
	}
	if code == "" {
		return nil, errors.ValidationError("code is required")
	}
	if language == "" {
		language = DefaultLanguage
	}
	return &CodeSnippet{
		ProjectID: projectID,
		Filename:  filename,
		Language:  language,
		Code:      code,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// NewRun constructs a run in the pending state
func NewRun(sessionID int64, snippetID *int64) (*Run, error) {
	if sessionID == 0 {
		return nil, errors.ValidationError("session_id is required")
	}
	return &Run{
		SessionID: sessionID,
		SnippetID: snippetID,
		Status:    RunStatusPending,
	}, nil
}

// NewEvent constructs an event. The timestamp is assigned here and never
// changes afterwards.
func NewEvent(projectID int64, runID *int64, eventType EventType, message, metadata *string) (*Event, error) {
	if projectID == 0 {
		return nil, errors.ValidationError("project_id is required")
	}
	if !eventType.Valid() {
		return nil, errors.ValidationError("unknown event type: " + string(eventType))
	}
	return &Event{
		Timestamp: time.Now().UTC(),
		ProjectID: projectID,
		RunID:     runID,
		EventType: eventType,
		Message:   message,
		Metadata:  metadata,
	}, nil
}
