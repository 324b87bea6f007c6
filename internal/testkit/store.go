// Package testkit provides an in-memory implementation of the persistence
// contract. It mirrors the PostgreSQL adapter's observable behavior (insertion
// order, monotonic ids, unique usernames) so services and handlers can be
// tested without a database.
package testkit

import (
	"context"
	"sync"
	"time"

	"blackbox/internal/errors"
	"blackbox/models"
	"blackbox/ports"
)

// Record kind keys for forced failures
const (
	KindUser    = "user"
	KindProject = "project"
	KindSession = "session"
	KindSnippet = "snippet"
	KindRun     = "run"
	KindEvent   = "event"
)

// Store is an in-memory ledger store
type Store struct {
	mu sync.Mutex

	users    []*models.User
	projects []*models.Project
	sessions []*models.Session
	snippets []*models.CodeSnippet
	runs     []*models.Run
	events   []*models.Event

	nextID int64

	forced map[string]error
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{forced: make(map[string]error)}
}

// Ports exposes the store through the persistence contract
func (s *Store) Ports() ports.Store {
	return ports.Store{
		Users:    &userRepo{s},
		Projects: &projectRepo{s},
		Sessions: &sessionRepo{s},
		Snippets: &snippetRepo{s},
		Runs:     &runRepo{s},
		Events:   &eventRepo{s},
	}
}

// Fail forces every operation on the given record kind to return err.
// Pass nil to clear.
func (s *Store) Fail(kind string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.forced, kind)
		return
	}
	s.forced[kind] = err
}

func (s *Store) forcedErr(kind string) error {
	return s.forced[kind]
}

func (s *Store) assignID() int64 {
	s.nextID++
	return s.nextID
}

func page[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// --- users ---

type userRepo struct{ s *Store }

func (r *userRepo) Create(_ context.Context, user *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.forcedErr(KindUser); err != nil {
		return err
	}
	for _, u := range r.s.users {
		if u.Username == user.Username {
			return errors.Conflict("user already exists")
		}
	}
	user.ID = r.s.assignID()
	clone := *user
	r.s.users = append(r.s.users, &clone)
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id int64) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.forcedErr(KindUser); err != nil {
		return nil, err
	}
	for _, u := range r.s.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, errors.NotFound("user")
}

func (r *userRepo) List(_ context.Context, filter ports.UserFilter, offset, limit int) ([]*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.forcedErr(KindUser); err != nil {
		return nil, err
	}
	matched := []*models.User{}
	for _, u := range r.s.users {
		if filter.Username != nil && u.Username != *filter.Username {
			continue
		}
		clone := *u
		matched = append(matched, &clone)
	}
	return page(matched, offset, limit), nil
}

func (r *userRepo) Count(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.forcedErr(KindUser); err != nil {
		return 0, err
	}
	return len(r.s.users), nil
}

// --- projects ---

type projectRepo struct{ s *Store }

func (r *projectRepo) Create(_ context.Context, project *models.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.forcedErr(KindProject); err != nil {
		return err
	}
	project.ID = r.s.assignID()
	clone := *project
	r.s.projects = append(r.s.projects, &clone)
	return nil
}

func (r *projectRepo) GetByID(_ context.Context, id int64) (*models.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.forcedErr(KindProject); err != nil {
		return nil, err
	}
	for _, p := range r.s.projects {
		if p.ID == id {
			clone := *p
			return &clone, nil
		}
	}
	return nil, errors.NotFound("project")
}

func (r *projectRepo) List(_ context.Context, filter ports.ProjectFilter, offset, limit int) ([]*models.Project, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.forcedErr(KindProject); err != nil {
		return nil, err
	}
	matched := []*models.Project{}
	for _, p := range r.s.projects {
		if filter.Name != nil && p.Name != *filter.Name {
			continue
		}
		if filter.OwnerID != nil && (p.OwnerID == nil || *p.OwnerID != *filter.OwnerID) {
			continue
		}
		clone := *p
		matched = append(matched, &clone)
	}
	return page(matched, offset, limit), nil
}

func (r *projectRepo) Count(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.forcedErr(KindProject); err != nil {
		return 0, err
	}
	return len(r.s.projects), nil
}

// --- sessions ---

type sessionRepo struct{ s *Store }

func (r *sessionRepo) Create(_ context.Context, session *models.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.forcedErr(KindSession); err != nil {
		return err
	}
	if !r.s.projectExists(session.ProjectID) {
		return errors.ValidationError("referenced project does not exist")
	}
	session.ID = r.s.assignID()
	clone := *session
	r.s.sessions = append(r.s.sessions, &clone)
	return nil
}

func (r *sessionRepo) GetByID(_ context.Context, id int64) (*models.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.forcedErr(KindSession); err != nil {
		return nil, err
	}
	for _, sess := range r.s.sessions {
		if sess.ID == id {
			clone := *sess
			return &clone, nil
		}
	}
	return nil, errors.NotFound("session")
}

func (r *sessionRepo) List(_ context.Context, filter ports.SessionFilter, offset, limit int) ([]*models.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.forcedErr(KindSession); err != nil {
		return nil, err
	}
	matched := []*models.Session{}
	for _, sess := range r.s.sessions {
		if filter.ProjectID != nil && sess.ProjectID != *filter.ProjectID {
			continue
		}
		clone := *sess
		matched = append(matched, &clone)
	}
	return page(matched, offset, limit), nil
}

func (r *sessionRepo) End(_ context.Context, id int64, endedAt time.Time) (*models.Session, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.forcedErr(KindSession); err != nil {
		return nil, err
	}
	for _, sess := range r.s.sessions {
		if sess.ID == id {
			sess.EndedAt = &endedAt
			clone := *sess
			return &clone, nil
		}
	}
	return nil, errors.NotFound("session")
}

func (r *sessionRepo) Count(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.forcedErr(KindSession); err != nil {
		return 0, err
	}
	return len(r.s.sessions), nil
}

// --- snippets ---

type snippetRepo struct{ s *Store }

func (r *snippetRepo) Create(_ context.Context, snippet *models.CodeSnippet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.forcedErr(KindSnippet); err != nil {
		return err
	}
	if !r.s.projectExists(snippet.ProjectID) {
		return errors.ValidationError("referenced project does not exist")
	}
	snippet.ID = r.s.assignID()
	clone := *snippet
	r.s.snippets = append(r.s.snippets, &clone)
	return nil
}

func (r *snippetRepo) GetByID(_ context.Context, id int64) (*models.CodeSnippet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.forcedErr(KindSnippet); err != nil {
		return nil, err
	}
	for _, sn := range r.s.snippets {
		if sn.ID == id {
			clone := *sn
			return &clone, nil
		}
	}
	return nil, errors.NotFound("snippet")
}

func (r *snippetRepo) List(_ context.Context, filter ports.SnippetFilter, offset, limit int) ([]*models.CodeSnippet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.forcedErr(KindSnippet); err != nil {
		return nil, err
	}
	matched := []*models.CodeSnippet{}
	for _, sn := range r.s.snippets {
		if filter.ProjectID != nil && sn.ProjectID != *filter.ProjectID {
			continue
		}
		if filter.Language != nil && sn.Language != *filter.Language {
			continue
		}
		clone := *sn
		matched = append(matched, &clone)
	}
	return page(matched, offset, limit), nil
}

func (r *snippetRepo) Count(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.forcedErr(KindSnippet); err != nil {
		return 0, err
	}
	return len(r.s.snippets), nil
}

// --- runs ---

type runRepo struct{ s *Store }

func (r *runRepo) Create(_ context.Context, run *models.Run) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.forcedErr(KindRun); err != nil {
		return err
	}
	if !r.s.sessionExists(run.SessionID) {
		return errors.ValidationError("referenced session does not exist")
	}
	run.ID = r.s.assignID()
	clone := *run
	r.s.runs = append(r.s.runs, &clone)
	return nil
}

func (r *runRepo) GetByID(_ context.Context, id int64) (*models.Run, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.forcedErr(KindRun); err != nil {
		return nil, err
	}
	for _, run := range r.s.runs {
		if run.ID == id {
			clone := *run
			return &clone, nil
		}
	}
	return nil, errors.NotFound("run")
}

func (r *runRepo) List(_ context.Context, filter ports.RunFilter, offset, limit int) ([]*models.Run, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.forcedErr(KindRun); err != nil {
		return nil, err
	}
	matched := []*models.Run{}
	for _, run := range r.s.runs {
		if filter.SessionID != nil && run.SessionID != *filter.SessionID {
			continue
		}
		if filter.Status != nil && run.Status != *filter.Status {
			continue
		}
		clone := *run
		matched = append(matched, &clone)
	}
	return page(matched, offset, limit), nil
}

func (r *runRepo) Update(_ context.Context, id int64, patch models.RunPatch) (*models.Run, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.forcedErr(KindRun); err != nil {
		return nil, err
	}
	for _, run := range r.s.runs {
		if run.ID == id {
			patch.Apply(run)
			clone := *run
			return &clone, nil
		}
	}
	return nil, errors.NotFound("run")
}

func (r *runRepo) Count(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.forcedErr(KindRun); err != nil {
		return 0, err
	}
	return len(r.s.runs), nil
}

func (r *runRepo) CountByStatus(_ context.Context, status models.RunStatus) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.forcedErr(KindRun); err != nil {
		return 0, err
	}
	count := 0
	for _, run := range r.s.runs {
		if run.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *runRepo) Durations(_ context.Context) ([]float64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.forcedErr(KindRun); err != nil {
		return nil, err
	}
	durations := []float64{}
	for _, run := range r.s.runs {
		if run.Duration != nil {
			durations = append(durations, *run.Duration)
		}
	}
	return durations, nil
}

// --- events ---

type eventRepo struct{ s *Store }

func (r *eventRepo) Create(_ context.Context, event *models.Event) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.forcedErr(KindEvent); err != nil {
		return err
	}
	if !r.s.projectExists(event.ProjectID) {
		return errors.ValidationError("referenced project does not exist")
	}
	event.ID = r.s.assignID()
	clone := *event
	r.s.events = append(r.s.events, &clone)
	return nil
}

func (r *eventRepo) GetByID(_ context.Context, id int64) (*models.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.forcedErr(KindEvent); err != nil {
		return nil, err
	}
	for _, e := range r.s.events {
		if e.ID == id {
			clone := *e
			return &clone, nil
		}
	}
	return nil, errors.NotFound("event")
}

func (r *eventRepo) List(_ context.Context, filter ports.EventFilter, offset, limit int) ([]*models.Event, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.forcedErr(KindEvent); err != nil {
		return nil, err
	}
	matched := []*models.Event{}
	for _, e := range r.s.events {
		if filter.ProjectID != nil && e.ProjectID != *filter.ProjectID {
			continue
		}
		if filter.RunID != nil && (e.RunID == nil || *e.RunID != *filter.RunID) {
			continue
		}
		if filter.EventType != nil && e.EventType != *filter.EventType {
			continue
		}
		clone := *e
		matched = append(matched, &clone)
	}
	return page(matched, offset, limit), nil
}

func (r *eventRepo) Count(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.forcedErr(KindEvent); err != nil {
		return 0, err
	}
	return len(r.s.events), nil
}

func (r *eventRepo) CountByType(_ context.Context, eventType models.EventType) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := r.s.forcedErr(KindEvent); err != nil {
		return 0, err
	}
	count := 0
	for _, e := range r.s.events {
		if e.EventType == eventType {
			count++
		}
	}
	return count, nil
}

// --- referential integrity helpers (callers must hold mu) ---

func (s *Store) projectExists(id int64) bool {
	for _, p := range s.projects {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) sessionExists(id int64) bool {
	for _, sess := range s.sessions {
		if sess.ID == id {
			return true
		}
	}
	return false
}
