package postgres

import (
	"context"

	"blackbox/models"
	"blackbox/ports"

	"github.com/jmoiron/sqlx"
)

// EventRepositoryImpl implements EventRepository for PostgreSQL
type EventRepositoryImpl struct {
	db *sqlx.DB
}

// NewEventRepository creates a new PostgreSQL event repository
func NewEventRepository(db *sqlx.DB) ports.EventRepository {
	return &EventRepositoryImpl{db: db}
}

// Create persists a new event and assigns its ID
func (r *EventRepositoryImpl) Create(ctx context.Context, event *models.Event) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO events (timestamp, project_id, run_id, event_type, message, metadata)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, event.Timestamp, event.ProjectID, event.RunID, event.EventType, event.Message, event.Metadata).Scan(&event.ID)
	return wrapErr(err, "event")
}

// GetByID retrieves an event by ID
func (r *EventRepositoryImpl) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	var event models.Event
	err := r.db.GetContext(ctx, &event, `
		SELECT id, timestamp, project_id, run_id, event_type, message, metadata
		FROM events
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, wrapErr(err, "event")
	}
	return &event, nil
}

// List returns events in insertion order
func (r *EventRepositoryImpl) List(ctx context.Context, filter ports.EventFilter, offset, limit int) ([]*models.Event, error) {
	q := newQuery(`SELECT id, timestamp, project_id, run_id, event_type, message, metadata FROM events`)
	if filter.ProjectID != nil {
		q.where("project_id", *filter.ProjectID)
	}
	if filter.RunID != nil {
		q.where("run_id", *filter.RunID)
	}
	if filter.EventType != nil {
		q.where("event_type", *filter.EventType)
	}
	q.page(offset, limit)

	events := []*models.Event{}
	if err := r.db.SelectContext(ctx, &events, q.sql(), q.args...); err != nil {
		return nil, wrapErr(err, "event")
	}
	return events, nil
}

// Count returns the total number of events
func (r *EventRepositoryImpl) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM events`)
	return count, wrapErr(err, "event")
}

// CountByType returns the number of events of the given type
func (r *EventRepositoryImpl) CountByType(ctx context.Context, eventType models.EventType) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM events WHERE event_type = $1`, eventType)
	return count, wrapErr(err, "event")
}
