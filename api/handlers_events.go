package api

import (
	"net/http"

	"blackbox/models"
	"blackbox/ports"
)

type eventCreateRequest struct {
	ProjectID int64            `json:"project_id"`
	RunID     *int64           `json:"run_id,omitempty"`
	EventType models.EventType `json:"event_type"`
	Message   *string          `json:"message,omitempty"`
	Metadata  *string          `json:"metadata,omitempty"`
}

func (a *App) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventCreateRequest
	if err := decodeBody(r, &req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	event, err := a.ledger.CreateEvent(r.Context(), req.ProjectID, req.RunID, req.EventType, req.Message, req.Metadata)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

func (a *App) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		badRequest(w, "invalid event id")
		return
	}

	event, err := a.ledger.GetEvent(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, event)
}

func (a *App) handleListEvents(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	filter := ports.EventFilter{
		ProjectID: queryInt64Ptr(r, "project_id"),
		RunID:     queryInt64Ptr(r, "run_id"),
	}
	if raw := queryStrPtr(r, "event_type"); raw != nil {
		eventType := models.EventType(*raw)
		if !eventType.Valid() {
			badRequest(w, "unknown event type: "+*raw)
			return
		}
		filter.EventType = &eventType
	}

	events, err := a.ledger.ListEvents(r.Context(), filter, offset, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, events)
}
