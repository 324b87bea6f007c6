package api

import (
	"net/http"

	"blackbox/models"
	"blackbox/ports"
)

type runCreateRequest struct {
	SessionID int64  `json:"session_id"`
	SnippetID *int64 `json:"snippet_id,omitempty"`
}

func (a *App) handleCreateRun(w http.ResponseWriter, r *http.Request) {
	var req runCreateRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	run, err := a.ledger.CreateRun(r.Context(), req.SessionID, req.SnippetID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, run)
}

func (a *App) handleGetRun(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid run id")
		return
	}

	run, err := a.ledger.GetRun(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, run)
}

func (a *App) handleListRuns(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	filter := ports.RunFilter{
		SessionID: queryInt64Ptr(r, "session_id"),
	}
	if raw := queryStrPtr(r, "status"); raw != nil {
		status := models.RunStatus(*raw)
		if !status.Valid() {
			badRequest(w, "unknown run status: "+*raw)
			return
		}
		filter.Status = &status
	}

	runs, err := a.ledger.ListRuns(r.Context(), filter, offset, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, runs)
}

func (a *App) handleUpdateRun(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid run id")
		return
	}

	var patch models.RunPatch
	if err := decodeBody(r, &patch); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	run, err := a.runs.UpdateRun(r.Context(), id, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, run)
}
