package storage

import (
	"context"

	"hostadmin/pkg/domain"
)

// DomainUpdates describes a set of optional fields that can be applied to an
// existing domain. Only non-nil fields will be updated. Date pointers allow
// setting a date as well as clearing it (an unset Date clears the column).
type DomainUpdates struct {
	Name         *string
	CustomerID   *string
	HostProvider *string

	PurchaseDate *domain.Date
	ExpiryDate   *domain.Date
	Price        *float64

	EmailHost  *string
	EmailPrice *float64
	EmailCount *int
	// EmailAddresses replaces the derived mailbox summary. Callers must only
	// pass a value re-derived from the agent rows.
	EmailAddresses *string
}

// DomainStorage defines CRUD and snapshot operations for domains.
// Domains are soft-deleted; every read excludes soft-deleted rows.
type DomainStorage interface {
	// StoreDomain inserts a domain and returns the stored row.
	StoreDomain(ctx context.Context, d domain.Domain) (*domain.Domain, error)
	// DomainSnapshot returns every live domain with its nested agents and
	// email accounts, all read inside one transaction so the report engine
	// sees a single consistent state.
	DomainSnapshot(ctx context.Context) ([]domain.Domain, error)
	// DomainByID fetches a domain with nested rows. Returns nil when not found.
	DomainByID(ctx context.Context, id domain.DomainID) (*domain.Domain, error)
	// UpdateDomain applies the provided field set and returns the updated row
	// without nested collections, or nil when the domain does not exist.
	UpdateDomain(ctx context.Context, id domain.DomainID, updates DomainUpdates) (*domain.Domain, error)
	// DeleteDomain performs a soft delete and returns the deleted domain, or
	// nil if it was not found. Agents and email accounts under the domain are
	// removed by the caller inside the same transaction.
	DeleteDomain(ctx context.Context, id domain.DomainID) (*domain.Domain, error)
}
