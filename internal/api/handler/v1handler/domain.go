package v1handler

import (
	"net/http"

	"hostadmin/pkg/domain"
	"hostadmin/pkg/storage"
)

type createDomainRequest struct {
	HostingAccountID domain.HostingAccountID `json:"hostingAccountId"`

	Name         string      `json:"domainName"`
	CustomerID   string      `json:"customerId"`
	HostProvider string      `json:"hostProviderName"`
	PurchaseDate domain.Date `json:"domainPurchaseDate"`
	ExpiryDate   domain.Date `json:"domainExpiryDate"`
	Price        *float64    `json:"domainPrice"`

	EmailHost  string   `json:"domainEmailHost"`
	EmailPrice *float64 `json:"emailPrice"`

	Agents        []createAgentRequest        `json:"agents"`
	EmailAccounts []createEmailAccountRequest `json:"emailAccounts"`
}

type updateDomainRequest struct {
	Name         *string      `json:"domainName"`
	CustomerID   *string      `json:"customerId"`
	HostProvider *string      `json:"hostProviderName"`
	PurchaseDate *domain.Date `json:"domainPurchaseDate"`
	ExpiryDate   *domain.Date `json:"domainExpiryDate"`
	Price        *float64     `json:"domainPrice"`

	EmailHost  *string  `json:"domainEmailHost"`
	EmailPrice *float64 `json:"emailPrice"`
	// EmailAddresses, when present, is reconciled back into the agent rows.
	EmailAddresses *string `json:"emailAddresses"`
}

// CreateDomain registers a new domain, optionally with nested agents and
// email accounts in the same request.
func (h *Handler) CreateDomain(w http.ResponseWriter, r *http.Request) {
	var req createDomainRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)

		return
	}

	d := domain.Domain{
		HostingAccountID: req.HostingAccountID,
		Name:             req.Name,
		CustomerID:       req.CustomerID,
		HostProvider:     req.HostProvider,
		PurchaseDate:     req.PurchaseDate,
		ExpiryDate:       req.ExpiryDate,
		Price:            req.Price,
		EmailHost:        req.EmailHost,
		EmailPrice:       req.EmailPrice,
	}
	for _, a := range req.Agents {
		d.Agents = append(d.Agents, a.toDomain())
	}
	for _, acc := range req.EmailAccounts {
		d.EmailAccounts = append(d.EmailAccounts, acc.toDomain())
	}

	created, err := h.deps.Registry.CreateDomain(r.Context(), d)
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// ListDomains returns a consistent snapshot of all domains with nested rows.
func (h *Handler) ListDomains(w http.ResponseWriter, r *http.Request) {
	domains, err := h.deps.Registry.Domains(r.Context())
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, domains)
}

// GetDomain returns one domain with its agents and email accounts.
func (h *Handler) GetDomain(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	d, err := h.deps.Registry.Domain(r.Context(), domain.DomainID(id))
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, d)
}

// UpdateDomain applies a partial update. A submitted emailAddresses value is
// reconciled into the agent rows rather than stored verbatim.
func (h *Handler) UpdateDomain(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	var req updateDomainRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)

		return
	}

	d, err := h.deps.Registry.UpdateDomain(r.Context(), domain.DomainID(id), storage.DomainUpdates{
		Name:           req.Name,
		CustomerID:     req.CustomerID,
		HostProvider:   req.HostProvider,
		PurchaseDate:   req.PurchaseDate,
		ExpiryDate:     req.ExpiryDate,
		Price:          req.Price,
		EmailHost:      req.EmailHost,
		EmailPrice:     req.EmailPrice,
		EmailAddresses: req.EmailAddresses,
	})
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, d)
}

// DeleteDomain soft-deletes a domain and removes its nested rows.
func (h *Handler) DeleteDomain(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	if err := h.deps.Registry.DeleteDomain(r.Context(), domain.DomainID(id)); err != nil {
		respondError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
