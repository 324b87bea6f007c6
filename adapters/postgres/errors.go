package postgres

import (
	"database/sql"
	"errors"

	apperrors "blackbox/internal/errors"

	"github.com/lib/pq"
)

// Postgres error codes the adapter cares about
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// wrapErr maps driver-level failures onto the ledger error taxonomy. Anything
// that is not a row-level outcome is treated as the store being unavailable.
func wrapErr(err error, resource string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperrors.NotFound(resource)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return apperrors.Conflict(resource + " already exists")
		case pqForeignKeyViolation:
			return apperrors.ValidationError("referenced record does not exist: " + pqErr.Detail)
		}
	}
	return apperrors.StoreUnavailable(err)
}
