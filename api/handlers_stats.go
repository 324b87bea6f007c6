package api

import (
	"net/http"
)

func (a *App) handleStatsSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := a.stats.Summary(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
