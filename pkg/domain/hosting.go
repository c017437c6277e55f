package domain

import (
	"time"

	"github.com/google/uuid"
)

// HostingAccountID uniquely identifies a hosting account.
// It wraps uuid.UUID to provide type safety at the domain layer.
type HostingAccountID uuid.UUID

// HostingAccount is a credential set at a registrar or hosting provider.
// One account owns zero or more domains.
type HostingAccount struct {
	// ID is the unique identifier of the hosting account.
	ID HostingAccountID `json:"id"`

	// Provider is the registrar/provider name, e.g. "GoDaddy".
	Provider string `json:"provider"`
	// LoginID is the account username at the provider.
	LoginID string `json:"loginId"`
	// LoginPass is the account password at the provider.
	LoginPass string `json:"-"`
	// CustomerID is the provider-side customer reference.
	CustomerID string `json:"customerId"`

	// CreatedAt is the time when the account record was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the account record was last modified.
	UpdatedAt time.Time `json:"updatedAt"`
}
