package main

import (
	"context"
	"log"
	"net/http"

	"blackbox/adapters/postgres"
	"blackbox/adapters/postgres/migrations"
	"blackbox/api"
	"blackbox/app"
	"blackbox/internal/config"
	"blackbox/internal/errors"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	// Load .env file if present; environment variables win
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := initDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := migrations.NewMigrator(db.DB).Up(context.Background()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database initialized")

	store := postgres.NewStore(db)
	resolver := app.NewResolverService(store.Users, store.Projects)

	httpApp := api.NewApp(api.Deps{
		Ledger: app.NewLedgerService(store),
		Runs:   app.NewRunService(store.Runs, cfg.Runs.StrictTransitions),
		Stats:  app.NewStatsService(store),
		Ingest: app.NewIngestService(resolver, store.Events),
		Pinger: db,
	})

	addr := ":" + cfg.Server.Port
	log.Printf("Starting Blackbox API on %s", addr)
	if err := http.ListenAndServe(addr, httpApp.Router()); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// initDatabase opens the PostgreSQL connection and verifies it
func initDatabase(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}
	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}
	return db, nil
}
