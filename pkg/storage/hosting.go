package storage

import (
	"context"

	"hostadmin/pkg/domain"
)

// HostingAccountUpdates describes a set of optional fields that can be applied
// to an existing hosting account. Only non-nil fields will be updated.
type HostingAccountUpdates struct {
	Provider   *string
	LoginID    *string
	LoginPass  *string
	CustomerID *string
}

// HostingAccountStorage defines CRUD operations for hosting accounts.
type HostingAccountStorage interface {
	// StoreHostingAccount inserts an account and returns the stored row as it
	// exists in the database (including generated fields).
	StoreHostingAccount(ctx context.Context, acc domain.HostingAccount) (*domain.HostingAccount, error)
	// HostingAccounts returns all accounts ordered by creation time.
	HostingAccounts(ctx context.Context) ([]domain.HostingAccount, error)
	// HostingAccountByID fetches an account by ID. Returns nil when not found.
	HostingAccountByID(ctx context.Context, id domain.HostingAccountID) (*domain.HostingAccount, error)
	// UpdateHostingAccount applies the provided field set and returns the
	// updated row, or nil when the account does not exist. updated_at is set
	// automatically.
	UpdateHostingAccount(ctx context.Context,
		id domain.HostingAccountID,
		updates HostingAccountUpdates) (*domain.HostingAccount, error)
	// DeleteHostingAccount removes the account. Returns false when it was not found.
	DeleteHostingAccount(ctx context.Context, id domain.HostingAccountID) (bool, error)
}
