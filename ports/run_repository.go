package ports

import (
	"context"

	"blackbox/models"
)

// RunFilter narrows List results by exact field equality
type RunFilter struct {
	SessionID *int64
	Status    *models.RunStatus
}

// RunRepository defines the interface for run data operations
type RunRepository interface {
	// Create persists a new run and assigns its ID
	Create(ctx context.Context, run *models.Run) error

	// GetByID retrieves a run by ID
	GetByID(ctx context.Context, id int64) (*models.Run, error)

	// List returns runs in insertion order
	List(ctx context.Context, filter RunFilter, offset, limit int) ([]*models.Run, error)

	// Update merge-patches a run: only non-nil patch fields are written.
	// Returns the updated record, or not-found when the id is unknown.
	Update(ctx context.Context, id int64, patch models.RunPatch) (*models.Run, error)

	// Count returns the total number of runs
	Count(ctx context.Context) (int, error)

	// CountByStatus returns the number of runs currently in the given status
	CountByStatus(ctx context.Context, status models.RunStatus) (int, error)

	// Durations returns every caller-reported duration, in seconds
	Durations(ctx context.Context) ([]float64, error)
}
