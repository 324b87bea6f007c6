package api

import (
	"net/http"

	"blackbox/app"
	"blackbox/models"
)

type autoCommitRequest struct {
	Project    string `json:"project"`
	Message    string `json:"message"`
	CommitHash string `json:"commit_hash,omitempty"`
	GitUser    string `json:"git_user,omitempty"`
}

type autoEventRequest struct {
	Project string `json:"project"`
	Type    string `json:"type"`
	Message string `json:"message"`
	GitUser string `json:"git_user,omitempty"`
}

// The automation endpoints are fire-and-forget: ingestion is best-effort and
// absorbs its own failures, so the response is 204 no matter what happened.
// Only an unreadable request body is reported back.

func (a *App) handleAutoCommit(w http.ResponseWriter, r *http.Request) {
	var req autoCommitRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	a.ingest.RecordCommit(r.Context(), app.CommitInput{
		Project:    req.Project,
		Message:    req.Message,
		CommitHash: req.CommitHash,
		GitUser:    req.GitUser,
	})
	w.WriteHeader(http.StatusNoContent)
}

func (a *App) handleAutoEvent(w http.ResponseWriter, r *http.Request) {
	var req autoEventRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	a.ingest.RecordEvent(r.Context(), app.EventInput{
		Project: req.Project,
		Type:    models.EventType(req.Type),
		Message: req.Message,
		GitUser: req.GitUser,
	})
	w.WriteHeader(http.StatusNoContent)
}
