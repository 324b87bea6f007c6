package ports

import (
	"context"

	"blackbox/models"
)

// UserFilter narrows List results by exact field equality
type UserFilter struct {
	Username *string
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// Create persists a new user and assigns its ID.
	// A duplicate username surfaces as a conflict.
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// List returns users in insertion order
	List(ctx context.Context, filter UserFilter, offset, limit int) ([]*models.User, error)

	// Count returns the total number of users
	Count(ctx context.Context) (int, error)
}
