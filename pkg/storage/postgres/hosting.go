package postgres

import (
	"context"
	"fmt"

	"hostadmin/pkg/domain"
	"hostadmin/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const hostingAccountsTable = "hosting_accounts"

func (p *PgSQL) StoreHostingAccount(ctx context.Context,
	acc domain.HostingAccount) (*domain.HostingAccount, error) {
	var row PgHostingAccount
	row.FromDomain(acc)

	var result PgHostingAccount
	found, err := p.Builder.Insert(hostingAccountsTable).
		Rows(row).
		Returning(&PgHostingAccount{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store hosting account into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("insert returned no row")
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) HostingAccounts(ctx context.Context) ([]domain.HostingAccount, error) {
	var rows []PgHostingAccount
	if err := p.Builder.From(hostingAccountsTable).
		Order(goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch hosting accounts from pg: %w", err)
	}

	out := make([]domain.HostingAccount, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) HostingAccountByID(ctx context.Context,
	id domain.HostingAccountID) (*domain.HostingAccount, error) {
	var row PgHostingAccount
	found, err := p.Builder.From(hostingAccountsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch hosting account by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateHostingAccount(ctx context.Context,
	id domain.HostingAccountID,
	updates storage.HostingAccountUpdates) (*domain.HostingAccount, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Provider != nil {
		rec["provider"] = *updates.Provider
	}
	if updates.LoginID != nil {
		rec["login_id"] = *updates.LoginID
	}
	if updates.LoginPass != nil {
		rec["login_pass"] = *updates.LoginPass
	}
	if updates.CustomerID != nil {
		rec["customer_id"] = *updates.CustomerID
	}

	var row PgHostingAccount
	found, err := p.Builder.Update(hostingAccountsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgHostingAccount{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update hosting account in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteHostingAccount(ctx context.Context, id domain.HostingAccountID) (bool, error) {
	res, err := p.Builder.Delete(hostingAccountsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return false, fmt.Errorf("could not delete hosting account in pg: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("could not get affected rows: %w", err)
	}

	return affected > 0, nil
}
