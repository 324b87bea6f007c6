package postgres

import (
	"blackbox/ports"

	"github.com/jmoiron/sqlx"
)

// NewStore wires all six PostgreSQL repositories into a ledger store
func NewStore(db *sqlx.DB) ports.Store {
	return ports.Store{
		Users:    NewUserRepository(db),
		Projects: NewProjectRepository(db),
		Sessions: NewSessionRepository(db),
		Snippets: NewSnippetRepository(db),
		Runs:     NewRunRepository(db),
		Events:   NewEventRepository(db),
	}
}
