package domain

import (
	"time"

	"github.com/google/uuid"
)

// DomainID uniquely identifies a registered domain.
type DomainID uuid.UUID

// AgentID uniquely identifies an agent (an employee assigned a mailbox).
type AgentID uuid.UUID

// EmailAccountID uniquely identifies an email account under a domain.
type EmailAccountID uuid.UUID

// Domain is a registered name record with purchase/expiry/price metadata and
// an associated email-hosting configuration. It owns zero or more agents and
// email accounts.
type Domain struct {
	// ID is the unique identifier of the domain.
	ID DomainID `json:"id"`
	// HostingAccountID references the hosting account the domain lives under.
	HostingAccountID HostingAccountID `json:"hostingAccountId"`

	// Name is the registered domain name, e.g. "example.com".
	Name string `json:"domainName"`
	// CustomerID is the provider-side customer reference, denormalized from
	// the hosting account for display.
	CustomerID string `json:"customerId"`
	// HostProvider is the registrar name the domain was bought from.
	HostProvider string `json:"hostProviderName"`

	// PurchaseDate is the day the domain was registered.
	PurchaseDate Date `json:"domainPurchaseDate"`
	// ExpiryDate is the day the registration lapses. May be unset.
	ExpiryDate Date `json:"domainExpiryDate"`
	// Price is the yearly renewal price. Nil means no price recorded,
	// which is distinct from a free domain.
	Price *float64 `json:"domainPrice"`

	// EmailHost is the email-hosting provider name, e.g. "Zoho".
	EmailHost string `json:"domainEmailHost"`
	// EmailPrice is the email-hosting price shared by every email account
	// under this domain. Nil means no price recorded.
	EmailPrice *float64 `json:"emailPrice"`
	// EmailCount mirrors len(EmailAccounts); kept for list views.
	EmailCount int `json:"emailCount"`
	// EmailAddresses is a comma-joined summary of the agent mailboxes under
	// this domain. It is a derived cache regenerated from the agent rows on
	// every agent write, never an independent source of truth.
	EmailAddresses string `json:"emailAddresses"`

	// Agents are the employees assigned mailboxes under this domain.
	Agents []Agent `json:"agents,omitempty"`
	// EmailAccounts are the mailbox records under this domain.
	EmailAccounts []EmailAccount `json:"emailAccounts,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the domain was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}

// Agent is an employee assigned an email mailbox under a domain.
type Agent struct {
	ID       AgentID  `json:"id"`
	DomainID DomainID `json:"domainId"`

	// Name is the employee's display name.
	Name string `json:"agentName"`
	// Email is the mailbox address assigned to the agent.
	Email string `json:"agentEmail"`
	// Password is the mailbox password.
	Password string `json:"-"`
	// AdminID is the admin console identifier for the mailbox.
	AdminID string `json:"adminId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EmailAccount is a mailbox record under a domain. It carries its own
// purchase and expiry dates but no price: billing uses the owning domain's
// shared EmailPrice.
type EmailAccount struct {
	ID       EmailAccountID `json:"id"`
	DomainID DomainID       `json:"domainId"`

	// Email is the mailbox address, unique across the system.
	Email string `json:"email"`
	// PurchaseDate is the day the mailbox was provisioned.
	PurchaseDate Date `json:"emailPurchaseDate"`
	// ExpiryDate is the day the mailbox subscription lapses. May be unset.
	ExpiryDate Date `json:"emailExpiryDate"`
	// Active reports whether the mailbox is currently in use.
	Active bool `json:"active"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
