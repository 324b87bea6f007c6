package app

import (
	"context"
	"time"

	"blackbox/models"
	"blackbox/ports"
)

// LedgerService exposes the construction and read operations of the activity
// ledger. Validation happens in the entity constructors; persistence is
// delegated to the store, whose errors pass through untouched.
type LedgerService struct {
	store ports.Store
}

// NewLedgerService creates a ledger service
func NewLedgerService(store ports.Store) *LedgerService {
	return &LedgerService{store: store}
}

// CreateUser creates a user. A duplicate username surfaces as a conflict.
func (s *LedgerService) CreateUser(ctx context.Context, username string) (*models.User, error) {
	user, err := models.NewUser(username)
	if err != nil {
		return nil, err
	}
	if err := s.store.Users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser retrieves a user by ID
func (s *LedgerService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.store.Users.GetByID(ctx, id)
}

// ListUsers returns users in insertion order
func (s *LedgerService) ListUsers(ctx context.Context, offset, limit int) ([]*models.User, error) {
	return s.store.Users.List(ctx, ports.UserFilter{}, offset, limit)
}

// CreateProject creates a project
func (s *LedgerService) CreateProject(ctx context.Context, name string, description *string, ownerID *int64) (*models.Project, error) {
	project, err := models.NewProject(name, description, ownerID)
	if err != nil {
		return nil, err
	}
	if err := s.store.Projects.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// GetProject retrieves a project by ID
func (s *LedgerService) GetProject(ctx context.Context, id int64) (*models.Project, error) {
	return s.store.Projects.GetByID(ctx, id)
}

// ListProjects returns projects in insertion order
func (s *LedgerService) ListProjects(ctx context.Context, filter ports.ProjectFilter, offset, limit int) ([]*models.Project, error) {
	return s.store.Projects.List(ctx, filter, offset, limit)
}

// CreateSession starts a session for a project
func (s *LedgerService) CreateSession(ctx context.Context, projectID int64) (*models.Session, error) {
	session, err := models.NewSession(projectID)
	if err != nil {
		return nil, err
	}
	if err := s.store.Sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession retrieves a session by ID
func (s *LedgerService) GetSession(ctx context.Context, id int64) (*models.Session, error) {
	return s.store.Sessions.GetByID(ctx, id)
}

// ListSessions returns sessions in insertion order
func (s *LedgerService) ListSessions(ctx context.Context, filter ports.SessionFilter, offset, limit int) ([]*models.Session, error) {
	return s.store.Sessions.List(ctx, filter, offset, limit)
}

// EndSession marks a session terminal, stamping ended_at with the current time
func (s *LedgerService) EndSession(ctx context.Context, id int64) (*models.Session, error) {
	return s.store.Sessions.End(ctx, id, time.Now().UTC())
}

// CreateSnippet stores a code snippet
func (s *LedgerService) CreateSnippet(ctx context.Context, projectID int64, filename *string, language, code string) (*models.CodeSnippet, error) {
	snippet, err := models.NewCodeSnippet(projectID, filename, language, code)
	if err != nil {
		return nil, err
	}
	if err := s.store.Snippets.Create(ctx, snippet); err != nil {
		return nil, err
	}
	return snippet, nil
}

// GetSnippet retrieves a snippet by ID
func (s *LedgerService) GetSnippet(ctx context.Context, id int64) (*models.CodeSnippet, error) {
	return s.store.Snippets.GetByID(ctx, id)
}

// ListSnippets returns snippets in insertion order
func (s *LedgerService) ListSnippets(ctx context.Context, filter ports.SnippetFilter, offset, limit int) ([]*models.CodeSnippet, error) {
	return s.store.Snippets.List(ctx, filter, offset, limit)
}

// CreateRun records a new run in the pending state
func (s *LedgerService) CreateRun(ctx context.Context, sessionID int64, snippetID *int64) (*models.Run, error) {
	run, err := models.NewRun(sessionID, snippetID)
	if err != nil {
		return nil, err
	}
	if err := s.store.Runs.Create(ctx, run); err != nil {
		return nil, err
	}
	return run, nil
}

// GetRun retrieves a run by ID
func (s *LedgerService) GetRun(ctx context.Context, id int64) (*models.Run, error) {
	return s.store.Runs.GetByID(ctx, id)
}

// ListRuns returns runs in insertion order
func (s *LedgerService) ListRuns(ctx context.Context, filter ports.RunFilter, offset, limit int) ([]*models.Run, error) {
	return s.store.Runs.List(ctx, filter, offset, limit)
}

// CreateEvent records an event
func (s *LedgerService) CreateEvent(ctx context.Context, projectID int64, runID *int64, eventType models.EventType, message, metadata *string) (*models.Event, error) {
	event, err := models.NewEvent(projectID, runID, eventType, message, metadata)
	if err != nil {
		return nil, err
	}
	if err := s.store.Events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// GetEvent retrieves an event by ID
func (s *LedgerService) GetEvent(ctx context.Context, id int64) (*models.Event, error) {
	return s.store.Events.GetByID(ctx, id)
}

// ListEvents returns events in insertion order
func (s *LedgerService) ListEvents(ctx context.Context, filter ports.EventFilter, offset, limit int) ([]*models.Event, error) {
	return s.store.Events.List(ctx, filter, offset, limit)
}
