package v1handler

import (
	"net/http"

	"hostadmin/pkg/domain"
	"hostadmin/pkg/storage"
)

type createHostingAccountRequest struct {
	Provider   string `json:"provider"`
	LoginID    string `json:"loginId"`
	LoginPass  string `json:"loginPass"`
	CustomerID string `json:"customerId"`
}

type updateHostingAccountRequest struct {
	Provider   *string `json:"provider"`
	LoginID    *string `json:"loginId"`
	LoginPass  *string `json:"loginPass"`
	CustomerID *string `json:"customerId"`
}

// CreateHostingAccount registers a new hosting account.
func (h *Handler) CreateHostingAccount(w http.ResponseWriter, r *http.Request) {
	var req createHostingAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)

		return
	}

	acc, err := h.deps.Registry.CreateHostingAccount(r.Context(), domain.HostingAccount{
		Provider:   req.Provider,
		LoginID:    req.LoginID,
		LoginPass:  req.LoginPass,
		CustomerID: req.CustomerID,
	})
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusCreated, acc)
}

// ListHostingAccounts returns every hosting account.
func (h *Handler) ListHostingAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.deps.Registry.HostingAccounts(r.Context())
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, accounts)
}

// GetHostingAccount returns one hosting account by ID.
func (h *Handler) GetHostingAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	acc, err := h.deps.Registry.HostingAccount(r.Context(), domain.HostingAccountID(id))
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, acc)
}

// UpdateHostingAccount applies a partial update to a hosting account.
func (h *Handler) UpdateHostingAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	var req updateHostingAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)

		return
	}

	acc, err := h.deps.Registry.UpdateHostingAccount(r.Context(), domain.HostingAccountID(id),
		storage.HostingAccountUpdates{
			Provider:   req.Provider,
			LoginID:    req.LoginID,
			LoginPass:  req.LoginPass,
			CustomerID: req.CustomerID,
		})
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, acc)
}

// DeleteHostingAccount removes a hosting account.
func (h *Handler) DeleteHostingAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	if err := h.deps.Registry.DeleteHostingAccount(r.Context(), domain.HostingAccountID(id)); err != nil {
		respondError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
