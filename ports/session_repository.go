package ports

import (
	"context"
	"time"

	"blackbox/models"
)

// SessionFilter narrows List results by exact field equality
type SessionFilter struct {
	ProjectID *int64
}

// SessionRepository defines the interface for session data operations
type SessionRepository interface {
	// Create persists a new session and assigns its ID
	Create(ctx context.Context, session *models.Session) error

	// GetByID retrieves a session by ID
	GetByID(ctx context.Context, id int64) (*models.Session, error)

	// List returns sessions in insertion order
	List(ctx context.Context, filter SessionFilter, offset, limit int) ([]*models.Session, error)

	// End marks the session terminal by setting ended_at and returns the
	// updated record
	End(ctx context.Context, id int64, endedAt time.Time) (*models.Session, error)

	// Count returns the total number of sessions
	Count(ctx context.Context) (int, error)
}
