package postgres

import (
	"database/sql"
	"time"

	"hostadmin/pkg/domain"

	"github.com/google/uuid"
)

type PgHostingAccount struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Provider   string `db:"provider"`
	LoginID    string `db:"login_id"`
	LoginPass  string `db:"login_pass"`
	CustomerID string `db:"customer_id"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgHostingAccount) ToDomain() *domain.HostingAccount {
	return &domain.HostingAccount{
		ID:         domain.HostingAccountID(p.ID),
		Provider:   p.Provider,
		LoginID:    p.LoginID,
		LoginPass:  p.LoginPass,
		CustomerID: p.CustomerID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt.Time,
	}
}

func (p *PgHostingAccount) FromDomain(acc domain.HostingAccount) {
	*p = PgHostingAccount{
		ID:         uuid.UUID(acc.ID),
		Provider:   acc.Provider,
		LoginID:    acc.LoginID,
		LoginPass:  acc.LoginPass,
		CustomerID: acc.CustomerID,
		CreatedAt:  acc.CreatedAt,
		UpdatedAt:  nullTime(acc.UpdatedAt),
	}
}

type PgDomain struct {
	ID               uuid.UUID `db:"id" goqu:"skipinsert"`
	HostingAccountID uuid.UUID `db:"hosting_account_id"`

	Name         string `db:"name"`
	CustomerID   string `db:"customer_id"`
	HostProvider string `db:"host_provider"`

	PurchaseDate sql.NullTime    `db:"purchase_date"`
	ExpiryDate   sql.NullTime    `db:"expiry_date"`
	Price        sql.NullFloat64 `db:"price"`

	EmailHost      string          `db:"email_host"`
	EmailPrice     sql.NullFloat64 `db:"email_price"`
	EmailCount     int             `db:"email_count"`
	EmailAddresses string          `db:"email_addresses"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgDomain) ToDomain() *domain.Domain {
	return &domain.Domain{
		ID:               domain.DomainID(p.ID),
		HostingAccountID: domain.HostingAccountID(p.HostingAccountID),
		Name:             p.Name,
		CustomerID:       p.CustomerID,
		HostProvider:     p.HostProvider,
		PurchaseDate:     nullTimeToDate(p.PurchaseDate),
		ExpiryDate:       nullTimeToDate(p.ExpiryDate),
		Price:            nullFloat(p.Price),
		EmailHost:        p.EmailHost,
		EmailPrice:       nullFloat(p.EmailPrice),
		EmailCount:       p.EmailCount,
		EmailAddresses:   p.EmailAddresses,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt.Time,
		DeletedAt:        p.DeletedAt.Time,
	}
}

func (p *PgDomain) FromDomain(d domain.Domain) {
	*p = PgDomain{
		ID:               uuid.UUID(d.ID),
		HostingAccountID: uuid.UUID(d.HostingAccountID),
		Name:             d.Name,
		CustomerID:       d.CustomerID,
		HostProvider:     d.HostProvider,
		PurchaseDate:     dateToNullTime(d.PurchaseDate),
		ExpiryDate:       dateToNullTime(d.ExpiryDate),
		Price:            floatToNull(d.Price),
		EmailHost:        d.EmailHost,
		EmailPrice:       floatToNull(d.EmailPrice),
		EmailCount:       d.EmailCount,
		EmailAddresses:   d.EmailAddresses,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        nullTime(d.UpdatedAt),
		DeletedAt:        nullTime(d.DeletedAt),
	}
}

type PgAgent struct {
	ID       uuid.UUID `db:"id" goqu:"skipinsert"`
	DomainID uuid.UUID `db:"domain_id"`

	Name     string `db:"name"`
	Email    string `db:"email"`
	Password string `db:"password"`
	AdminID  string `db:"admin_id"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgAgent) ToDomain() *domain.Agent {
	return &domain.Agent{
		ID:        domain.AgentID(p.ID),
		DomainID:  domain.DomainID(p.DomainID),
		Name:      p.Name,
		Email:     p.Email,
		Password:  p.Password,
		AdminID:   p.AdminID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
	}
}

func (p *PgAgent) FromDomain(a domain.Agent) {
	*p = PgAgent{
		ID:        uuid.UUID(a.ID),
		DomainID:  uuid.UUID(a.DomainID),
		Name:      a.Name,
		Email:     a.Email,
		Password:  a.Password,
		AdminID:   a.AdminID,
		CreatedAt: a.CreatedAt,
		UpdatedAt: nullTime(a.UpdatedAt),
	}
}

type PgEmailAccount struct {
	ID       uuid.UUID `db:"id" goqu:"skipinsert"`
	DomainID uuid.UUID `db:"domain_id"`

	Email        string       `db:"email"`
	PurchaseDate sql.NullTime `db:"purchase_date"`
	ExpiryDate   sql.NullTime `db:"expiry_date"`
	Active       bool         `db:"active"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgEmailAccount) ToDomain() *domain.EmailAccount {
	return &domain.EmailAccount{
		ID:           domain.EmailAccountID(p.ID),
		DomainID:     domain.DomainID(p.DomainID),
		Email:        p.Email,
		PurchaseDate: nullTimeToDate(p.PurchaseDate),
		ExpiryDate:   nullTimeToDate(p.ExpiryDate),
		Active:       p.Active,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt.Time,
	}
}

func (p *PgEmailAccount) FromDomain(a domain.EmailAccount) {
	*p = PgEmailAccount{
		ID:           uuid.UUID(a.ID),
		DomainID:     uuid.UUID(a.DomainID),
		Email:        a.Email,
		PurchaseDate: dateToNullTime(a.PurchaseDate),
		ExpiryDate:   dateToNullTime(a.ExpiryDate),
		Active:       a.Active,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    nullTime(a.UpdatedAt),
	}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

func nullTimeToDate(t sql.NullTime) domain.Date {
	if !t.Valid {
		return domain.Date{}
	}

	return domain.NewDate(t.Time)
}

func dateToNullTime(d domain.Date) sql.NullTime {
	// malformed dates are persisted as NULL; the raw text never reaches the db
	return sql.NullTime{Time: d.Time(), Valid: d.Valid()}
}

func nullFloat(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64

	return &v
}

func floatToNull(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}

	return sql.NullFloat64{Float64: *f, Valid: true}
}
