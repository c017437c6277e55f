package storage

import (
	"context"

	"hostadmin/pkg/domain"
)

// AgentUpdates describes a set of optional fields that can be applied to an
// existing agent. Only non-nil fields will be updated.
type AgentUpdates struct {
	Name     *string
	Email    *string
	Password *string
	AdminID  *string
}

// AgentStorage defines CRUD operations for agents (employee mailbox rows).
type AgentStorage interface {
	// StoreAgents inserts one or more agents and returns the stored rows.
	StoreAgents(ctx context.Context, agents ...domain.Agent) ([]domain.Agent, error)
	// AgentsByDomain returns the agents under a domain in creation order.
	// Creation order is load-bearing: the email-address cache is joined and
	// reconciled index-by-index against this ordering.
	AgentsByDomain(ctx context.Context, domainID domain.DomainID) ([]domain.Agent, error)
	// AgentByID fetches an agent by ID. Returns nil when not found.
	AgentByID(ctx context.Context, id domain.AgentID) (*domain.Agent, error)
	// UpdateAgent applies the provided field set and returns the updated row,
	// or nil when the agent does not exist.
	UpdateAgent(ctx context.Context, id domain.AgentID, updates AgentUpdates) (*domain.Agent, error)
	// DeleteAgent removes the agent and returns the deleted row, or nil if it
	// was not found.
	DeleteAgent(ctx context.Context, id domain.AgentID) (*domain.Agent, error)
	// DeleteAgentsByDomain removes every agent under the domain.
	DeleteAgentsByDomain(ctx context.Context, domainID domain.DomainID) error
}
