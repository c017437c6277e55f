package postgres

import (
	"context"
	"fmt"

	"hostadmin/pkg/domain"
	"hostadmin/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const domainsTable = "domains"

func (p *PgSQL) StoreDomain(ctx context.Context, d domain.Domain) (*domain.Domain, error) {
	var row PgDomain
	row.FromDomain(d)

	var result PgDomain
	found, err := p.Builder.Insert(domainsTable).
		Rows(row).
		Returning(&PgDomain{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store domain into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("insert returned no row")
	}

	return result.ToDomain(), nil
}

// DomainSnapshot reads all live domains plus their agents and email accounts.
// The three reads share whatever executor p is bound to, so calling it through
// WithTx yields the single consistent snapshot the report engine expects.
func (p *PgSQL) DomainSnapshot(ctx context.Context) ([]domain.Domain, error) {
	var rows []PgDomain
	if err := p.Builder.From(domainsTable).
		Where(goqu.I("deleted_at").IsNull()).
		Order(goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch domains from pg: %w", err)
	}

	domains := make([]domain.Domain, 0, len(rows))
	index := make(map[domain.DomainID]int, len(rows))
	for i := range rows {
		d := rows[i].ToDomain()
		index[d.ID] = len(domains)
		domains = append(domains, *d)
	}
	if len(domains) == 0 {
		return domains, nil
	}

	var agents []PgAgent
	if err := p.Builder.From(agentsTable).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &agents); err != nil {
		return nil, fmt.Errorf("could not fetch agents from pg: %w", err)
	}
	for i := range agents {
		a := agents[i].ToDomain()
		if idx, ok := index[a.DomainID]; ok {
			domains[idx].Agents = append(domains[idx].Agents, *a)
		}
	}

	var accounts []PgEmailAccount
	if err := p.Builder.From(emailAccountsTable).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &accounts); err != nil {
		return nil, fmt.Errorf("could not fetch email accounts from pg: %w", err)
	}
	for i := range accounts {
		a := accounts[i].ToDomain()
		if idx, ok := index[a.DomainID]; ok {
			domains[idx].EmailAccounts = append(domains[idx].EmailAccounts, *a)
		}
	}

	return domains, nil
}

func (p *PgSQL) DomainByID(ctx context.Context, id domain.DomainID) (*domain.Domain, error) {
	var row PgDomain
	found, err := p.Builder.From(domainsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch domain by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	d := row.ToDomain()

	agents, err := p.AgentsByDomain(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	d.Agents = agents

	accounts, err := p.EmailAccountsByDomain(ctx, d.ID)
	if err != nil {
		return nil, err
	}
	d.EmailAccounts = accounts

	return d, nil
}

func (p *PgSQL) UpdateDomain(ctx context.Context,
	id domain.DomainID,
	updates storage.DomainUpdates) (*domain.Domain, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.CustomerID != nil {
		rec["customer_id"] = *updates.CustomerID
	}
	if updates.HostProvider != nil {
		rec["host_provider"] = *updates.HostProvider
	}
	if updates.PurchaseDate != nil {
		rec["purchase_date"] = dateToNullTime(*updates.PurchaseDate)
	}
	if updates.ExpiryDate != nil {
		rec["expiry_date"] = dateToNullTime(*updates.ExpiryDate)
	}
	if updates.Price != nil {
		rec["price"] = *updates.Price
	}
	if updates.EmailHost != nil {
		rec["email_host"] = *updates.EmailHost
	}
	if updates.EmailPrice != nil {
		rec["email_price"] = *updates.EmailPrice
	}
	if updates.EmailCount != nil {
		rec["email_count"] = *updates.EmailCount
	}
	if updates.EmailAddresses != nil {
		rec["email_addresses"] = *updates.EmailAddresses
	}

	var row PgDomain
	found, err := p.Builder.Update(domainsTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Returning(&PgDomain{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update domain in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteDomain performs a soft delete by setting deleted_at for the given
// domain, returning the deleted record.
func (p *PgSQL) DeleteDomain(ctx context.Context, id domain.DomainID) (*domain.Domain, error) {
	var row PgDomain
	found, err := p.Builder.Update(domainsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgDomain{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete domain in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
