package ports

import (
	"context"

	"blackbox/models"
)

// EventFilter narrows List results by exact field equality
type EventFilter struct {
	ProjectID *int64
	RunID     *int64
	EventType *models.EventType
}

// EventRepository defines the interface for event data operations
type EventRepository interface {
	// Create persists a new event and assigns its ID
	Create(ctx context.Context, event *models.Event) error

	// GetByID retrieves an event by ID
	GetByID(ctx context.Context, id int64) (*models.Event, error)

	// List returns events in insertion order
	List(ctx context.Context, filter EventFilter, offset, limit int) ([]*models.Event, error)

	// Count returns the total number of events
	Count(ctx context.Context) (int, error)

	// CountByType returns the number of events of the given type
	CountByType(ctx context.Context, eventType models.EventType) (int, error)
}
