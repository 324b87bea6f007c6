package ports

// Store bundles the six repositories the ledger is built on. The engine holds
// no state of its own; every public operation runs synchronously against this
// contract.
type Store struct {
	Users    UserRepository
	Projects ProjectRepository
	Sessions SessionRepository
	Snippets SnippetRepository
	Runs     RunRepository
	Events   EventRepository
}
