package api

import (
	"log"
	"net/http"
	"time"
)

func (a *App) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "Blackbox API",
	})
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"database":  "not_checked",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"message":   "use /health/full for a database check",
	})
}

func (a *App) handleHealthFull(w http.ResponseWriter, r *http.Request) {
	if err := a.pinger.PingContext(r.Context()); err != nil {
		log.Printf("[api] health check failed: %v", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":   "unhealthy",
			"database": "unreachable",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"database":  "connected",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
