// Package registry implements the service layer over storage: CRUD
// orchestration for hosting accounts, domains, agents and email accounts,
// upkeep of the derived email-address summary on domains, and the entry
// point for expiry report generation.
package registry

import (
	"context"
	"time"

	"hostadmin/internal/expiry"
	"hostadmin/pkg/domain"
	"hostadmin/pkg/storage"
)

//go:generate mockgen -package mockregistry -source=interface.go -destination=mock/mockregistry.go *
type Registry interface {
	CreateHostingAccount(ctx context.Context, acc domain.HostingAccount) (*domain.HostingAccount, error)
	HostingAccounts(ctx context.Context) ([]domain.HostingAccount, error)
	HostingAccount(ctx context.Context, id domain.HostingAccountID) (*domain.HostingAccount, error)
	UpdateHostingAccount(ctx context.Context,
		id domain.HostingAccountID,
		updates storage.HostingAccountUpdates) (*domain.HostingAccount, error)
	DeleteHostingAccount(ctx context.Context, id domain.HostingAccountID) error

	// CreateDomain stores the domain together with any nested agents and
	// email accounts carried on it.
	CreateDomain(ctx context.Context, d domain.Domain) (*domain.Domain, error)
	// Domains returns a consistent snapshot of all live domains with nested rows.
	Domains(ctx context.Context) ([]domain.Domain, error)
	Domain(ctx context.Context, id domain.DomainID) (*domain.Domain, error)
	UpdateDomain(ctx context.Context,
		id domain.DomainID,
		updates storage.DomainUpdates) (*domain.Domain, error)
	DeleteDomain(ctx context.Context, id domain.DomainID) error

	CreateAgent(ctx context.Context, a domain.Agent) (*domain.Agent, error)
	// Agents lists the agents under a domain in creation order.
	Agents(ctx context.Context, domainID domain.DomainID) ([]domain.Agent, error)
	UpdateAgent(ctx context.Context, id domain.AgentID, updates storage.AgentUpdates) (*domain.Agent, error)
	DeleteAgent(ctx context.Context, id domain.AgentID) error

	CreateEmailAccount(ctx context.Context, a domain.EmailAccount) (*domain.EmailAccount, error)
	// EmailAccounts lists the email accounts under a domain in creation order.
	EmailAccounts(ctx context.Context, domainID domain.DomainID) ([]domain.EmailAccount, error)
	UpdateEmailAccount(ctx context.Context,
		id domain.EmailAccountID,
		updates storage.EmailAccountUpdates) (*domain.EmailAccount, error)
	DeleteEmailAccount(ctx context.Context, id domain.EmailAccountID) error

	// ExpiryReport fetches a snapshot and builds the renewal report for the
	// given day and lookahead window. windowDays <= 0 selects the configured
	// default.
	ExpiryReport(ctx context.Context, today time.Time, windowDays int) (*expiry.Report, error)
	// EnqueueSweep schedules a background expiry sweep. The result is false
	// when a sweep is already queued for the current period.
	EnqueueSweep(ctx context.Context) (bool, error)
}
