package v1handler

import (
	"net/http"
	"strconv"
	"time"

	"hostadmin/pkg/serrors"
)

const maxWindowDays = 3650

// ExpiryReport computes the renewal report over a consistent snapshot.
// The lookahead window defaults to the configured value and can be overridden
// with ?window=N (days).
func (h *Handler) ExpiryReport(w http.ResponseWriter, r *http.Request) {
	windowDays := 0
	if raw := r.URL.Query().Get("window"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxWindowDays {
			respondError(w, r, serrors.With(serrors.ErrBadRequest, "window must be a positive day count"))

			return
		}
		windowDays = n
	}

	report, err := h.deps.Registry.ExpiryReport(r.Context(), time.Now(), windowDays)
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, report)
}
