package postgres

import (
	"context"

	"blackbox/models"
	"blackbox/ports"

	"github.com/jmoiron/sqlx"
)

// ProjectRepositoryImpl implements ProjectRepository for PostgreSQL
type ProjectRepositoryImpl struct {
	db *sqlx.DB
}

// NewProjectRepository creates a new PostgreSQL project repository
func NewProjectRepository(db *sqlx.DB) ports.ProjectRepository {
	return &ProjectRepositoryImpl{db: db}
}

// Create persists a new project and assigns its ID
func (r *ProjectRepositoryImpl) Create(ctx context.Context, project *models.Project) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO projects (name, description, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id
	`, project.Name, project.Description, project.OwnerID).Scan(&project.ID)
	return wrapErr(err, "project")
}

// GetByID retrieves a project by ID
func (r *ProjectRepositoryImpl) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	var project models.Project
	err := r.db.GetContext(ctx, &project, `
		SELECT id, name, description, owner_id
		FROM projects
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, wrapErr(err, "project")
	}
	return &project, nil
}

// List returns projects in insertion order
func (r *ProjectRepositoryImpl) List(ctx context.Context, filter ports.ProjectFilter, offset, limit int) ([]*models.Project, error) {
	q := newQuery(`SELECT id, name, description, owner_id FROM projects`)
	if filter.Name != nil {
		q.where("name", *filter.Name)
	}
	if filter.OwnerID != nil {
		q.where("owner_id", *filter.OwnerID)
	}
	q.page(offset, limit)

	projects := []*models.Project{}
	if err := r.db.SelectContext(ctx, &projects, q.sql(), q.args...); err != nil {
		return nil, wrapErr(err, "project")
	}
	return projects, nil
}

// Count returns the total number of projects
func (r *ProjectRepositoryImpl) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM projects`)
	return count, wrapErr(err, "project")
}
