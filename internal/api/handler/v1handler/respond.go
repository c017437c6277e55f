package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"hostadmin/pkg/logger"
	"hostadmin/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type errorBody struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError maps semantic error kinds to HTTP statuses. Internal details
// never reach the client; they are logged instead.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, serrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, serrors.ErrConflict):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", zap.Error(err))
		respondJSON(w, status, errorBody{Error: "internal error"})

		return
	}

	msg := err.Error()
	var serr *serrors.Error
	if errors.As(err, &serr) && serr.Message() != "" {
		msg = serr.Message()
	}
	respondJSON(w, status, errorBody{Error: msg})
}

// decodeJSON decodes the request body into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}

// pathID parses the {id} route parameter as a UUID.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid id")
	}

	return id, nil
}
