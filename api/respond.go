package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"blackbox/internal/errors"
)

// defaultListLimit caps list responses when the caller does not supply one
const defaultListLimit = 100

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// writeJSON renders v with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[api] response encoding failed: %v", err)
	}
}

// writeError maps the ledger error taxonomy onto HTTP status codes
func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.CodeValidationError:
		status = http.StatusBadRequest
	case errors.CodeNotFound:
		status = http.StatusNotFound
	case errors.CodeConflict:
		status = http.StatusConflict
	case errors.CodeStoreUnavailable:
		status = http.StatusServiceUnavailable
	}
	if status == http.StatusInternalServerError || status == http.StatusServiceUnavailable {
		log.Printf("[api] %s: %v", code, err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error(), Code: code})
}

// badRequest reports a malformed request body or parameter
func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: message, Code: errors.CodeValidationError})
}

// decodeBody parses a JSON request body into v
func decodeBody(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// pathID extracts the {id} route parameter
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// pagination reads skip/limit query parameters with defaults
func pagination(r *http.Request) (offset, limit int) {
	offset = queryInt(r, "skip", 0)
	limit = queryInt(r, "limit", defaultListLimit)
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = defaultListLimit
	}
	return offset, limit
}

func queryInt(r *http.Request, key string, defaultValue int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}

// queryInt64Ptr reads an optional int64 equality filter
func queryInt64Ptr(r *http.Request, key string) *int64 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil
	}
	return &value
}

// queryStrPtr reads an optional string equality filter
func queryStrPtr(r *http.Request, key string) *string {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil
	}
	return &raw
}
