package ports

import (
	"context"

	"blackbox/models"
)

// SnippetFilter narrows List results by exact field equality
type SnippetFilter struct {
	ProjectID *int64
	Language  *string
}

// SnippetRepository defines the interface for code snippet data operations
type SnippetRepository interface {
	// Create persists a new snippet and assigns its ID
	Create(ctx context.Context, snippet *models.CodeSnippet) error

	// GetByID retrieves a snippet by ID
	GetByID(ctx context.Context, id int64) (*models.CodeSnippet, error)

	// List returns snippets in insertion order
	List(ctx context.Context, filter SnippetFilter, offset, limit int) ([]*models.CodeSnippet, error)

	// Count returns the total number of snippets
	Count(ctx context.Context) (int, error)
}
