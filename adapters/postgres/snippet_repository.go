package postgres

import (
	"context"

	"blackbox/models"
	"blackbox/ports"

	"github.com/jmoiron/sqlx"
)

// SnippetRepositoryImpl implements SnippetRepository for PostgreSQL
type SnippetRepositoryImpl struct {
	db *sqlx.DB
}

// NewSnippetRepository creates a new PostgreSQL snippet repository
func NewSnippetRepository(db *sqlx.DB) ports.SnippetRepository {
	return &SnippetRepositoryImpl{db: db}
}

// Create persists a new snippet and assigns its ID
func (r *SnippetRepositoryImpl) Create(ctx context.Context, snippet *models.CodeSnippet) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO snippets (project_id, filename, language, code, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, snippet.ProjectID, snippet.Filename, snippet.Language, snippet.Code, snippet.CreatedAt).Scan(&snippet.ID)
	return wrapErr(err, "snippet")
}

// GetByID retrieves a snippet by ID
func (r *SnippetRepositoryImpl) GetByID(ctx context.Context, id int64) (*models.CodeSnippet, error) {
	var snippet models.CodeSnippet
	err := r.db.GetContext(ctx, &snippet, `
		SELECT id, project_id, filename, language, code, created_at
		FROM snippets
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, wrapErr(err, "snippet")
	}
	return &snippet, nil
}

// List returns snippets in insertion order
func (r *SnippetRepositoryImpl) List(ctx context.Context, filter ports.SnippetFilter, offset, limit int) ([]*models.CodeSnippet, error) {
	q := newQuery(`SELECT id, project_id, filename, language, code, created_at FROM snippets`)
	if filter.ProjectID != nil {
		q.where("project_id", *filter.ProjectID)
	}
	if filter.Language != nil {
		q.where("language", *filter.Language)
	}
	q.page(offset, limit)

	snippets := []*models.CodeSnippet{}
	if err := r.db.SelectContext(ctx, &snippets, q.sql(), q.args...); err != nil {
		return nil, wrapErr(err, "snippet")
	}
	return snippets, nil
}

// Count returns the total number of snippets
func (r *SnippetRepositoryImpl) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM snippets`)
	return count, wrapErr(err, "snippet")
}
