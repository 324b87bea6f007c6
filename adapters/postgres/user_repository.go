package postgres

import (
	"context"

	"blackbox/models"
	"blackbox/ports"

	"github.com/jmoiron/sqlx"
)

// UserRepositoryImpl implements UserRepository for PostgreSQL
type UserRepositoryImpl struct {
	db *sqlx.DB
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db *sqlx.DB) ports.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create persists a new user and assigns its ID
func (r *UserRepositoryImpl) Create(ctx context.Context, user *models.User) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO users (username, created_at)
		VALUES ($1, $2)
		RETURNING id
	`, user.Username, user.CreatedAt).Scan(&user.ID)
	return wrapErr(err, "user")
}

// GetByID retrieves a user by ID
func (r *UserRepositoryImpl) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `
		SELECT id, username, created_at
		FROM users
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, wrapErr(err, "user")
	}
	return &user, nil
}

// List returns users in insertion order
func (r *UserRepositoryImpl) List(ctx context.Context, filter ports.UserFilter, offset, limit int) ([]*models.User, error) {
	q := newQuery(`SELECT id, username, created_at FROM users`)
	if filter.Username != nil {
		q.where("username", *filter.Username)
	}
	q.page(offset, limit)

	users := []*models.User{}
	if err := r.db.SelectContext(ctx, &users, q.sql(), q.args...); err != nil {
		return nil, wrapErr(err, "user")
	}
	return users, nil
}

// Count returns the total number of users
func (r *UserRepositoryImpl) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM users`)
	return count, wrapErr(err, "user")
}
