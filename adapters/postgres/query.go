package postgres

import (
	"fmt"
	"strings"
)

// listQuery incrementally builds a filtered, paginated SELECT. Results are
// always ordered by id, which matches insertion order for BIGSERIAL keys.
type listQuery struct {
	base    string
	clauses []string
	args    []interface{}
	suffix  string
}

func newQuery(base string) *listQuery {
	return &listQuery{base: base}
}

func (q *listQuery) where(column string, value interface{}) {
	q.args = append(q.args, value)
	q.clauses = append(q.clauses, fmt.Sprintf("%s = $%d", column, len(q.args)))
}

func (q *listQuery) page(offset, limit int) {
	q.suffix = " ORDER BY id"
	if limit > 0 {
		q.args = append(q.args, limit)
		q.suffix += fmt.Sprintf(" LIMIT $%d", len(q.args))
	}
	if offset > 0 {
		q.args = append(q.args, offset)
		q.suffix += fmt.Sprintf(" OFFSET $%d", len(q.args))
	}
}

func (q *listQuery) sql() string {
	s := q.base
	if len(q.clauses) > 0 {
		s += " WHERE " + strings.Join(q.clauses, " AND ")
	}
	return s + q.suffix
}
