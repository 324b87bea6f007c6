package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"blackbox/app"
)

// Pinger reports whether the persistence store is reachable
type Pinger interface {
	PingContext(ctx context.Context) error
}

// App is the HTTP surface of the activity ledger
type App struct {
	router *chi.Mux
	ledger *app.LedgerService
	runs   *app.RunService
	stats  *app.StatsService
	ingest *app.IngestService
	pinger Pinger
}

// Deps bundles everything the HTTP surface needs
type Deps struct {
	Ledger *app.LedgerService
	Runs   *app.RunService
	Stats  *app.StatsService
	Ingest *app.IngestService
	Pinger Pinger
}

// NewApp creates the HTTP application and wires its routes
func NewApp(deps Deps) *App {
	a := &App{
		router: chi.NewRouter(),
		ledger: deps.Ledger,
		runs:   deps.Runs,
		stats:  deps.Stats,
		ingest: deps.Ingest,
		pinger: deps.Pinger,
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a
}

// Router returns the configured HTTP handler
func (a *App) Router() http.Handler {
	return a.router
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	// Health
	a.router.Get("/", a.handleRoot)
	a.router.Get("/health", a.handleHealth)
	a.router.Get("/health/full", a.handleHealthFull)

	// Users
	a.router.Post("/users", a.handleCreateUser)
	a.router.Get("/users/{id}", a.handleGetUser)
	a.router.Get("/users", a.handleListUsers)

	// Projects
	a.router.Post("/projects", a.handleCreateProject)
	a.router.Get("/projects/{id}", a.handleGetProject)
	a.router.Get("/projects", a.handleListProjects)

	// Sessions
	a.router.Post("/sessions", a.handleCreateSession)
	a.router.Get("/sessions/{id}", a.handleGetSession)
	a.router.Get("/sessions", a.handleListSessions)
	a.router.Patch("/sessions/{id}/end", a.handleEndSession)

	// Snippets
	a.router.Post("/snippets", a.handleCreateSnippet)
	a.router.Get("/snippets/{id}", a.handleGetSnippet)
	a.router.Get("/snippets", a.handleListSnippets)

	// Runs
	a.router.Post("/runs", a.handleCreateRun)
	a.router.Get("/runs/{id}", a.handleGetRun)
	a.router.Get("/runs", a.handleListRuns)
	a.router.Patch("/runs/{id}", a.handleUpdateRun)

	// Events
	a.router.Post("/events", a.handleCreateEvent)
	a.router.Get("/events/{id}", a.handleGetEvent)
	a.router.Get("/events", a.handleListEvents)

	// Stats
	a.router.Get("/stats/summary", a.handleStatsSummary)

	// Automation entry points for git hooks
	a.router.Post("/auto/commit", a.handleAutoCommit)
	a.router.Post("/auto/event", a.handleAutoEvent)
}
