package storage

import (
	"context"

	"hostadmin/pkg/domain"
)

// EmailAccountUpdates describes a set of optional fields that can be applied
// to an existing email account. Only non-nil fields will be updated.
type EmailAccountUpdates struct {
	Email        *string
	PurchaseDate *domain.Date
	ExpiryDate   *domain.Date
	Active       *bool
}

// EmailAccountStorage defines CRUD operations for email accounts.
type EmailAccountStorage interface {
	// StoreEmailAccounts inserts one or more accounts and returns the stored rows.
	StoreEmailAccounts(ctx context.Context, accounts ...domain.EmailAccount) ([]domain.EmailAccount, error)
	// EmailAccountsByDomain returns the accounts under a domain in creation order.
	EmailAccountsByDomain(ctx context.Context, domainID domain.DomainID) ([]domain.EmailAccount, error)
	// EmailAccountByID fetches an account by ID. Returns nil when not found.
	EmailAccountByID(ctx context.Context, id domain.EmailAccountID) (*domain.EmailAccount, error)
	// UpdateEmailAccount applies the provided field set and returns the updated
	// row, or nil when the account does not exist.
	UpdateEmailAccount(ctx context.Context,
		id domain.EmailAccountID,
		updates EmailAccountUpdates) (*domain.EmailAccount, error)
	// DeleteEmailAccount removes the account and returns the deleted row, or
	// nil if it was not found.
	DeleteEmailAccount(ctx context.Context, id domain.EmailAccountID) (*domain.EmailAccount, error)
	// DeleteEmailAccountsByDomain removes every account under the domain.
	DeleteEmailAccountsByDomain(ctx context.Context, domainID domain.DomainID) error
}
