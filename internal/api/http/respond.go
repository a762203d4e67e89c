package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"motorent-backend/internal/domain"
	"motorent-backend/internal/logger"
)

// errorResponse is the JSON body for every non-2xx response.
type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// writeError maps domain errors onto HTTP statuses. Internal failures return
// a generic message; the detail stays in the logs.
func writeError(w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Details: vErr.Messages})
		return
	}
	var nfErr *domain.NotFoundError
	if errors.As(err, &nfErr) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: nfErr.Error()})
		return
	}
	var cErr *domain.ConflictError
	if errors.As(err, &cErr) {
		writeJSON(w, http.StatusConflict, errorResponse{Error: cErr.Error()})
		return
	}
	logger.Error("Request failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

// decodeJSON reads a request body into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return domain.NewValidationError("invalid request body: " + err.Error())
	}
	return nil
}

// listResponse wraps paginated collections.
type listResponse struct {
	Items      interface{} `json:"items"`
	TotalCount int32       `json:"total_count"`
	Page       int32       `json:"page"`
	PageSize   int32       `json:"page_size"`
}
