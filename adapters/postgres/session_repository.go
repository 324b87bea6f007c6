package postgres

import (
	"context"
	"time"

	"blackbox/models"
	"blackbox/ports"

	"github.com/jmoiron/sqlx"
)

// SessionRepositoryImpl implements SessionRepository for PostgreSQL
type SessionRepositoryImpl struct {
	db *sqlx.DB
}

// NewSessionRepository creates a new PostgreSQL session repository
func NewSessionRepository(db *sqlx.DB) ports.SessionRepository {
	return &SessionRepositoryImpl{db: db}
}

// Create persists a new session and assigns its ID
func (r *SessionRepositoryImpl) Create(ctx context.Context, session *models.Session) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO sessions (project_id, started_at, ended_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`, session.ProjectID, session.StartedAt, session.EndedAt).Scan(&session.ID)
	return wrapErr(err, "session")
}

// GetByID retrieves a session by ID
func (r *SessionRepositoryImpl) GetByID(ctx context.Context, id int64) (*models.Session, error) {
	var session models.Session
	err := r.db.GetContext(ctx, &session, `
		SELECT id, project_id, started_at, ended_at
		FROM sessions
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, wrapErr(err, "session")
	}
	return &session, nil
}

// List returns sessions in insertion order
func (r *SessionRepositoryImpl) List(ctx context.Context, filter ports.SessionFilter, offset, limit int) ([]*models.Session, error) {
	q := newQuery(`SELECT id, project_id, started_at, ended_at FROM sessions`)
	if filter.ProjectID != nil {
		q.where("project_id", *filter.ProjectID)
	}
	q.page(offset, limit)

	sessions := []*models.Session{}
	if err := r.db.SelectContext(ctx, &sessions, q.sql(), q.args...); err != nil {
		return nil, wrapErr(err, "session")
	}
	return sessions, nil
}

// End marks the session terminal by setting ended_at
func (r *SessionRepositoryImpl) End(ctx context.Context, id int64, endedAt time.Time) (*models.Session, error) {
	var session models.Session
	err := r.db.GetContext(ctx, &session, `
		UPDATE sessions
		SET ended_at = $2
		WHERE id = $1
		RETURNING id, project_id, started_at, ended_at
	`, id, endedAt)
	if err != nil {
		return nil, wrapErr(err, "session")
	}
	return &session, nil
}

// Count returns the total number of sessions
func (r *SessionRepositoryImpl) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM sessions`)
	return count, wrapErr(err, "session")
}
