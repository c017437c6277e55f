package v1handler

import (
	"net/http"

	"hostadmin/pkg/domain"
	"hostadmin/pkg/storage"
)

type createEmailAccountRequest struct {
	Email        string      `json:"email"`
	PurchaseDate domain.Date `json:"emailPurchaseDate"`
	ExpiryDate   domain.Date `json:"emailExpiryDate"`
	Active       bool        `json:"active"`
}

func (req createEmailAccountRequest) toDomain() domain.EmailAccount {
	return domain.EmailAccount{
		Email:        req.Email,
		PurchaseDate: req.PurchaseDate,
		ExpiryDate:   req.ExpiryDate,
		Active:       req.Active,
	}
}

type updateEmailAccountRequest struct {
	Email        *string      `json:"email"`
	PurchaseDate *domain.Date `json:"emailPurchaseDate"`
	ExpiryDate   *domain.Date `json:"emailExpiryDate"`
	Active       *bool        `json:"active"`
}

// ListEmailAccounts returns the email accounts under a domain.
func (h *Handler) ListEmailAccounts(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	accounts, err := h.deps.Registry.EmailAccounts(r.Context(), domain.DomainID(id))
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, accounts)
}

// CreateEmailAccount adds a mailbox under the domain in the path. The
// domain's mailbox count is refreshed in the same transaction.
func (h *Handler) CreateEmailAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	var req createEmailAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)

		return
	}

	account := req.toDomain()
	account.DomainID = domain.DomainID(id)

	created, err := h.deps.Registry.CreateEmailAccount(r.Context(), account)
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// UpdateEmailAccount applies a partial update to a mailbox.
func (h *Handler) UpdateEmailAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	var req updateEmailAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)

		return
	}

	account, err := h.deps.Registry.UpdateEmailAccount(r.Context(), domain.EmailAccountID(id),
		storage.EmailAccountUpdates{
			Email:        req.Email,
			PurchaseDate: req.PurchaseDate,
			ExpiryDate:   req.ExpiryDate,
			Active:       req.Active,
		})
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, account)
}

// DeleteEmailAccount removes a mailbox.
func (h *Handler) DeleteEmailAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	if err := h.deps.Registry.DeleteEmailAccount(r.Context(), domain.EmailAccountID(id)); err != nil {
		respondError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
