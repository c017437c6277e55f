package v1handler

import (
	"net/http"

	"hostadmin/pkg/domain"
	"hostadmin/pkg/storage"
)

type createAgentRequest struct {
	Name     string `json:"agentName"`
	Email    string `json:"agentEmail"`
	Password string `json:"agentPassword"`
	AdminID  string `json:"adminId"`
}

func (req createAgentRequest) toDomain() domain.Agent {
	return domain.Agent{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		AdminID:  req.AdminID,
	}
}

type updateAgentRequest struct {
	Name     *string `json:"agentName"`
	Email    *string `json:"agentEmail"`
	Password *string `json:"agentPassword"`
	AdminID  *string `json:"adminId"`
}

// ListAgents returns the agents under a domain in creation order.
func (h *Handler) ListAgents(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	agents, err := h.deps.Registry.Agents(r.Context(), domain.DomainID(id))
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, agents)
}

// CreateAgent adds an agent under the domain in the path. The domain's
// email-address summary is refreshed in the same transaction.
func (h *Handler) CreateAgent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	var req createAgentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)

		return
	}

	agent := req.toDomain()
	agent.DomainID = domain.DomainID(id)

	created, err := h.deps.Registry.CreateAgent(r.Context(), agent)
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// UpdateAgent applies a partial update to an agent.
func (h *Handler) UpdateAgent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	var req updateAgentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)

		return
	}

	agent, err := h.deps.Registry.UpdateAgent(r.Context(), domain.AgentID(id), storage.AgentUpdates{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		AdminID:  req.AdminID,
	})
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, agent)
}

// DeleteAgent removes an agent.
func (h *Handler) DeleteAgent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	if err := h.deps.Registry.DeleteAgent(r.Context(), domain.AgentID(id)); err != nil {
		respondError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
