package ports

import (
	"context"

	"blackbox/models"
)

// ProjectFilter narrows List results by exact field equality
type ProjectFilter struct {
	Name    *string
	OwnerID *int64
}

// ProjectRepository defines the interface for project data operations
type ProjectRepository interface {
	// Create persists a new project and assigns its ID
	Create(ctx context.Context, project *models.Project) error

	// GetByID retrieves a project by ID
	GetByID(ctx context.Context, id int64) (*models.Project, error)

	// List returns projects in insertion order
	List(ctx context.Context, filter ProjectFilter, offset, limit int) ([]*models.Project, error)

	// Count returns the total number of projects
	Count(ctx context.Context) (int, error)
}
