package api

import (
	"net/http"

	"blackbox/ports"
)

type sessionCreateRequest struct {
	ProjectID int64 `json:"project_id"`
}

func (a *App) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req sessionCreateRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	session, err := a.ledger.CreateSession(r.Context(), req.ProjectID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, session)
}

func (a *App) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid session id")
		return
	}

	session, err := a.ledger.GetSession(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (a *App) handleListSessions(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	filter := ports.SessionFilter{
		ProjectID: queryInt64Ptr(r, "project_id"),
	}

	sessions, err := a.ledger.ListSessions(r.Context(), filter, offset, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (a *App) handleEndSession(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid session id")
		return
	}

	session, err := a.ledger.EndSession(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, session)
}
