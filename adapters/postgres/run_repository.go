package postgres

import (
	"context"
	"fmt"
	"strings"

	"blackbox/models"
	"blackbox/ports"

	"github.com/jmoiron/sqlx"
)

const runColumns = `id, session_id, snippet_id, status, started_at, ended_at, duration, stdout, stderr, return_value`

// RunRepositoryImpl implements RunRepository for PostgreSQL
type RunRepositoryImpl struct {
	db *sqlx.DB
}

// NewRunRepository creates a new PostgreSQL run repository
func NewRunRepository(db *sqlx.DB) ports.RunRepository {
	return &RunRepositoryImpl{db: db}
}

// Create persists a new run and assigns its ID
func (r *RunRepositoryImpl) Create(ctx context.Context, run *models.Run) error {
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO runs (session_id, snippet_id, status)
		VALUES ($1, $2, $3)
		RETURNING id
	`, run.SessionID, run.SnippetID, run.Status).Scan(&run.ID)
	return wrapErr(err, "run")
}

// GetByID retrieves a run by ID
func (r *RunRepositoryImpl) GetByID(ctx context.Context, id int64) (*models.Run, error) {
	var run models.Run
	err := r.db.GetContext(ctx, &run, `
		SELECT `+runColumns+`
		FROM runs
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, wrapErr(err, "run")
	}
	return &run, nil
}

// List returns runs in insertion order
func (r *RunRepositoryImpl) List(ctx context.Context, filter ports.RunFilter, offset, limit int) ([]*models.Run, error) {
	q := newQuery(`SELECT ` + runColumns + ` FROM runs`)
	if filter.SessionID != nil {
		q.where("session_id", *filter.SessionID)
	}
	if filter.Status != nil {
		q.where("status", *filter.Status)
	}
	q.page(offset, limit)

	runs := []*models.Run{}
	if err := r.db.SelectContext(ctx, &runs, q.sql(), q.args...); err != nil {
		return nil, wrapErr(err, "run")
	}
	return runs, nil
}

// Update merge-patches a run: only non-nil patch fields are written
func (r *RunRepositoryImpl) Update(ctx context.Context, id int64, patch models.RunPatch) (*models.Run, error) {
	// An empty patch is the merge-patch identity: read the row back untouched.
	if patch.Empty() {
		return r.GetByID(ctx, id)
	}

	sets := []string{}
	args := []interface{}{id}
	set := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Status != nil {
		set("status", *patch.Status)
	}
	if patch.StartedAt != nil {
		set("started_at", *patch.StartedAt)
	}
	if patch.EndedAt != nil {
		set("ended_at", *patch.EndedAt)
	}
	if patch.Duration != nil {
		set("duration", *patch.Duration)
	}
	if patch.Stdout != nil {
		set("stdout", *patch.Stdout)
	}
	if patch.Stderr != nil {
		set("stderr", *patch.Stderr)
	}
	if patch.ReturnValue != nil {
		set("return_value", *patch.ReturnValue)
	}

	var run models.Run
	query := `UPDATE runs SET ` + strings.Join(sets, ", ") + ` WHERE id = $1 RETURNING ` + runColumns
	if err := r.db.GetContext(ctx, &run, query, args...); err != nil {
		return nil, wrapErr(err, "run")
	}
	return &run, nil
}

// Count returns the total number of runs
func (r *RunRepositoryImpl) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM runs`)
	return count, wrapErr(err, "run")
}

// CountByStatus returns the number of runs currently in the given status
func (r *RunRepositoryImpl) CountByStatus(ctx context.Context, status models.RunStatus) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM runs WHERE status = $1`, status)
	return count, wrapErr(err, "run")
}

// Durations returns every caller-reported duration, in seconds
func (r *RunRepositoryImpl) Durations(ctx context.Context) ([]float64, error) {
	durations := []float64{}
	err := r.db.SelectContext(ctx, &durations, `
		SELECT duration FROM runs WHERE duration IS NOT NULL ORDER BY id
	`)
	if err != nil {
		return nil, wrapErr(err, "run")
	}
	return durations, nil
}
