package api

import (
	"net/http"

	"blackbox/ports"
)

type snippetCreateRequest struct {
	ProjectID int64   `json:"project_id"`
	Filename  *string `json:"filename,omitempty"`
	Language  string  `json:"language,omitempty"`
	Code      string  `json:"code"`
}

func (a *App) handleCreateSnippet(w http.ResponseWriter, r *http.Request) {
	var req snippetCreateRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	snippet, err := a.ledger.CreateSnippet(r.Context(), req.ProjectID, req.Filename, req.Language, req.Code)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, snippet)
}

func (a *App) handleGetSnippet(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid snippet id")
		return
	}

	snippet, err := a.ledger.GetSnippet(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snippet)
}

func (a *App) handleListSnippets(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	filter := ports.SnippetFilter{
		ProjectID: queryInt64Ptr(r, "project_id"),
		Language:  queryStrPtr(r, "language"),
	}

	snippets, err := a.ledger.ListSnippets(r.Context(), filter, offset, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snippets)
}
