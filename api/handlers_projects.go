package api

import (
	"net/http"

	"blackbox/ports"
)

type projectCreateRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	OwnerID     *int64  `json:"owner_id,omitempty"`
}

func (a *App) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var req projectCreateRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	project, err := a.ledger.CreateProject(r.Context(), req.Name, req.Description, req.OwnerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, project)
}

func (a *App) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid project id")
		return
	}

	project, err := a.ledger.GetProject(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (a *App) handleListProjects(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	filter := ports.ProjectFilter{
		Name:    queryStrPtr(r, "name"),
		OwnerID: queryInt64Ptr(r, "owner_id"),
	}

	projects, err := a.ledger.ListProjects(r.Context(), filter, offset, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}
