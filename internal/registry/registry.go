package registry

import (
	"context"
	"fmt"
	"time"

	"hostadmin/internal/config"
	"hostadmin/internal/expiry"
	"hostadmin/pkg/domain"
	"hostadmin/pkg/serrors"
	"hostadmin/pkg/storage"
)

// Options configure report defaults and sweep scheduling. These settings are
// typically derived from application configuration.
type Options struct {
	// WindowDays is the default expiry report lookahead window.
	WindowDays int
	// SweepInterval is the period within which duplicate sweep jobs are
	// collapsed into one.
	SweepInterval time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		WindowDays:    cfg.Expiry.WindowDays,
		SweepInterval: cfg.Expiry.SweepInterval,
	}
}

// registry is the concrete implementation of the Registry interface.
// It coordinates persistence with the storage layer and keeps the derived
// fields on domain rows consistent with the rows they summarize.
type registry struct {
	options Options
	storage storage.Storage
}

// New creates a new Registry backed by the provided storage.
func New(storage storage.Storage, options Options) Registry {
	return &registry{
		options: options,
		storage: storage,
	}
}

func (r registry) CreateHostingAccount(ctx context.Context,
	acc domain.HostingAccount) (*domain.HostingAccount, error) {
	if acc.Provider == "" || acc.LoginID == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "provider and login id are required")
	}

	stored, err := r.storage.StoreHostingAccount(ctx, acc)
	if err != nil {
		return nil, fmt.Errorf("could not create hosting account: %w", err)
	}

	return stored, nil
}

func (r registry) HostingAccounts(ctx context.Context) ([]domain.HostingAccount, error) {
	accounts, err := r.storage.HostingAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list hosting accounts: %w", err)
	}

	return accounts, nil
}

func (r registry) HostingAccount(ctx context.Context,
	id domain.HostingAccountID) (*domain.HostingAccount, error) {
	acc, err := r.storage.HostingAccountByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get hosting account: %w", err)
	}
	if acc == nil {
		return nil, serrors.With(serrors.ErrNotFound, "hosting account not found")
	}

	return acc, nil
}

func (r registry) UpdateHostingAccount(ctx context.Context,
	id domain.HostingAccountID,
	updates storage.HostingAccountUpdates) (*domain.HostingAccount, error) {
	acc, err := r.storage.UpdateHostingAccount(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update hosting account: %w", err)
	}
	if acc == nil {
		return nil, serrors.With(serrors.ErrNotFound, "hosting account not found")
	}

	return acc, nil
}

func (r registry) DeleteHostingAccount(ctx context.Context, id domain.HostingAccountID) error {
	found, err := r.storage.DeleteHostingAccount(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete hosting account: %w", err)
	}
	if !found {
		return serrors.With(serrors.ErrNotFound, "hosting account not found")
	}

	return nil
}

// CreateDomain stores the domain plus any nested agents and email accounts in
// one transaction. The email-address summary and mailbox count are derived
// from the nested rows before anything is written.
func (r registry) CreateDomain(ctx context.Context, d domain.Domain) (*domain.Domain, error) {
	if d.Name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "domain name is required")
	}
	if d.HostingAccountID == (domain.HostingAccountID{}) {
		return nil, serrors.With(serrors.ErrBadRequest, "hosting account id is required")
	}

	agents := d.Agents
	accounts := d.EmailAccounts
	d.Agents = nil
	d.EmailAccounts = nil
	d.EmailAddresses = joinAgentEmails(agents)
	d.EmailCount = len(accounts)

	var created *domain.Domain
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		stored, err := tx.StoreDomain(ctx, d)
		if err != nil {
			return err
		}
		created = stored

		for i := range agents {
			agents[i].DomainID = stored.ID
		}
		storedAgents, err := tx.StoreAgents(ctx, agents...)
		if err != nil {
			return err
		}
		created.Agents = storedAgents

		for i := range accounts {
			accounts[i].DomainID = stored.ID
		}
		storedAccounts, err := tx.StoreEmailAccounts(ctx, accounts...)
		if err != nil {
			return err
		}
		created.EmailAccounts = storedAccounts

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create domain: %w", err)
	}

	return created, nil
}

func (r registry) Domains(ctx context.Context) ([]domain.Domain, error) {
	var domains []domain.Domain
	// single consistent read: all three tables inside one tx
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		snapshot, err := tx.DomainSnapshot(ctx)
		if err != nil {
			return err
		}
		domains = snapshot

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not fetch domain snapshot: %w", err)
	}

	return domains, nil
}

func (r registry) Domain(ctx context.Context, id domain.DomainID) (*domain.Domain, error) {
	d, err := r.storage.DomainByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get domain: %w", err)
	}
	if d == nil {
		return nil, serrors.With(serrors.ErrNotFound, "domain not found")
	}

	return d, nil
}

// UpdateDomain applies the field set. A submitted EmailAddresses value is not
// written as-is: it is reconciled back into the agent rows and the stored
// string is re-derived from those rows, so the cache can never drift from
// what it summarizes.
func (r registry) UpdateDomain(ctx context.Context,
	id domain.DomainID,
	updates storage.DomainUpdates) (*domain.Domain, error) {
	var updated *domain.Domain
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if updates.EmailAddresses != nil {
			if err := reconcileEmailAddresses(ctx, tx, id, *updates.EmailAddresses); err != nil {
				return err
			}

			agents, err := tx.AgentsByDomain(ctx, id)
			if err != nil {
				return err
			}
			derived := joinAgentEmails(agents)
			updates.EmailAddresses = &derived
		}

		d, err := tx.UpdateDomain(ctx, id, updates)
		if err != nil {
			return err
		}
		if d == nil {
			return serrors.With(serrors.ErrNotFound, "domain not found")
		}
		updated = d

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not update domain: %w", err)
	}

	return updated, nil
}

func (r registry) DeleteDomain(ctx context.Context, id domain.DomainID) error {
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if err := tx.DeleteAgentsByDomain(ctx, id); err != nil {
			return err
		}
		if err := tx.DeleteEmailAccountsByDomain(ctx, id); err != nil {
			return err
		}

		d, err := tx.DeleteDomain(ctx, id)
		if err != nil {
			return err
		}
		if d == nil {
			return serrors.With(serrors.ErrNotFound, "domain not found")
		}

		return nil
	}); err != nil {
		return fmt.Errorf("could not delete domain: %w", err)
	}

	return nil
}

func (r registry) CreateAgent(ctx context.Context, a domain.Agent) (*domain.Agent, error) {
	if a.Email == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "agent email is required")
	}

	var created *domain.Agent
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		d, err := tx.DomainByID(ctx, a.DomainID)
		if err != nil {
			return err
		}
		if d == nil {
			return serrors.With(serrors.ErrNotFound, "domain not found")
		}

		stored, err := tx.StoreAgents(ctx, a)
		if err != nil {
			return err
		}
		created = &stored[0]

		return refreshEmailAddresses(ctx, tx, a.DomainID)
	}); err != nil {
		return nil, fmt.Errorf("could not create agent: %w", err)
	}

	return created, nil
}

func (r registry) Agents(ctx context.Context, domainID domain.DomainID) ([]domain.Agent, error) {
	agents, err := r.storage.AgentsByDomain(ctx, domainID)
	if err != nil {
		return nil, fmt.Errorf("could not list agents: %w", err)
	}

	return agents, nil
}

func (r registry) UpdateAgent(ctx context.Context,
	id domain.AgentID,
	updates storage.AgentUpdates) (*domain.Agent, error) {
	var updated *domain.Agent
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		a, err := tx.UpdateAgent(ctx, id, updates)
		if err != nil {
			return err
		}
		if a == nil {
			return serrors.With(serrors.ErrNotFound, "agent not found")
		}
		updated = a

		return refreshEmailAddresses(ctx, tx, a.DomainID)
	}); err != nil {
		return nil, fmt.Errorf("could not update agent: %w", err)
	}

	return updated, nil
}

func (r registry) DeleteAgent(ctx context.Context, id domain.AgentID) error {
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		a, err := tx.DeleteAgent(ctx, id)
		if err != nil {
			return err
		}
		if a == nil {
			return serrors.With(serrors.ErrNotFound, "agent not found")
		}

		return refreshEmailAddresses(ctx, tx, a.DomainID)
	}); err != nil {
		return fmt.Errorf("could not delete agent: %w", err)
	}

	return nil
}

func (r registry) CreateEmailAccount(ctx context.Context,
	a domain.EmailAccount) (*domain.EmailAccount, error) {
	if a.Email == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "email address is required")
	}

	var created *domain.EmailAccount
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		d, err := tx.DomainByID(ctx, a.DomainID)
		if err != nil {
			return err
		}
		if d == nil {
			return serrors.With(serrors.ErrNotFound, "domain not found")
		}

		stored, err := tx.StoreEmailAccounts(ctx, a)
		if err != nil {
			return err
		}
		created = &stored[0]

		return refreshEmailCount(ctx, tx, a.DomainID)
	}); err != nil {
		return nil, fmt.Errorf("could not create email account: %w", err)
	}

	return created, nil
}

func (r registry) EmailAccounts(ctx context.Context, domainID domain.DomainID) ([]domain.EmailAccount, error) {
	accounts, err := r.storage.EmailAccountsByDomain(ctx, domainID)
	if err != nil {
		return nil, fmt.Errorf("could not list email accounts: %w", err)
	}

	return accounts, nil
}

func (r registry) UpdateEmailAccount(ctx context.Context,
	id domain.EmailAccountID,
	updates storage.EmailAccountUpdates) (*domain.EmailAccount, error) {
	a, err := r.storage.UpdateEmailAccount(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("could not update email account: %w", err)
	}
	if a == nil {
		return nil, serrors.With(serrors.ErrNotFound, "email account not found")
	}

	return a, nil
}

func (r registry) DeleteEmailAccount(ctx context.Context, id domain.EmailAccountID) error {
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		a, err := tx.DeleteEmailAccount(ctx, id)
		if err != nil {
			return err
		}
		if a == nil {
			return serrors.With(serrors.ErrNotFound, "email account not found")
		}

		return refreshEmailCount(ctx, tx, a.DomainID)
	}); err != nil {
		return fmt.Errorf("could not delete email account: %w", err)
	}

	return nil
}

// ExpiryReport fetches a consistent snapshot and runs the report engine over
// it. The engine itself does no I/O; all asynchrony lives here.
func (r registry) ExpiryReport(ctx context.Context,
	today time.Time,
	windowDays int) (*expiry.Report, error) {
	if windowDays <= 0 {
		windowDays = r.options.WindowDays
	}

	domains, err := r.Domains(ctx)
	if err != nil {
		return nil, err
	}

	return expiry.BuildReport(ctx, domains, today, windowDays), nil
}

func (r registry) EnqueueSweep(ctx context.Context) (bool, error) {
	added, err := r.storage.AddJob(ctx, SweepJobArgs{
		WindowDays:   r.options.WindowDays,
		uniquePeriod: r.options.SweepInterval,
	}, nil)
	if err != nil {
		return false, fmt.Errorf("could not enqueue expiry sweep: %w", err)
	}

	return added, nil
}

// refreshEmailCount rebuilds the domain's mailbox count from its email
// account rows.
func refreshEmailCount(ctx context.Context, tx storage.AllStorage, domainID domain.DomainID) error {
	accounts, err := tx.EmailAccountsByDomain(ctx, domainID)
	if err != nil {
		return err
	}

	count := len(accounts)
	_, err = tx.UpdateDomain(ctx, domainID, storage.DomainUpdates{EmailCount: &count})

	return err
}
