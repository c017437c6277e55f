package postgres

import (
	"context"
	"fmt"

	"hostadmin/pkg/domain"
	"hostadmin/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const emailAccountsTable = "email_accounts"

func (p *PgSQL) StoreEmailAccounts(ctx context.Context,
	accounts ...domain.EmailAccount) ([]domain.EmailAccount, error) {
	if len(accounts) == 0 {
		return nil, nil
	}

	rows := make([]PgEmailAccount, len(accounts))
	for i := range accounts {
		rows[i].FromDomain(accounts[i])
	}

	var result []PgEmailAccount
	if err := p.Builder.Insert(emailAccountsTable).
		Rows(rows).
		Returning(&PgEmailAccount{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store email accounts into pg: %w", err)
	}

	out := make([]domain.EmailAccount, 0, len(result))
	for i := range result {
		out = append(out, *result[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) EmailAccountsByDomain(ctx context.Context,
	domainID domain.DomainID) ([]domain.EmailAccount, error) {
	var rows []PgEmailAccount
	if err := p.Builder.From(emailAccountsTable).
		Where(goqu.I("domain_id").Eq(uuid.UUID(domainID))).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch email accounts from pg: %w", err)
	}

	out := make([]domain.EmailAccount, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) EmailAccountByID(ctx context.Context,
	id domain.EmailAccountID) (*domain.EmailAccount, error) {
	var row PgEmailAccount
	found, err := p.Builder.From(emailAccountsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch email account by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateEmailAccount(ctx context.Context,
	id domain.EmailAccountID,
	updates storage.EmailAccountUpdates) (*domain.EmailAccount, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Email != nil {
		rec["email"] = *updates.Email
	}
	if updates.PurchaseDate != nil {
		rec["purchase_date"] = dateToNullTime(*updates.PurchaseDate)
	}
	if updates.ExpiryDate != nil {
		rec["expiry_date"] = dateToNullTime(*updates.ExpiryDate)
	}
	if updates.Active != nil {
		rec["active"] = *updates.Active
	}

	var row PgEmailAccount
	found, err := p.Builder.Update(emailAccountsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgEmailAccount{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update email account in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteEmailAccount(ctx context.Context,
	id domain.EmailAccountID) (*domain.EmailAccount, error) {
	var row PgEmailAccount
	found, err := p.Builder.Delete(emailAccountsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgEmailAccount{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete email account in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteEmailAccountsByDomain(ctx context.Context, domainID domain.DomainID) error {
	_, err := p.Builder.Delete(emailAccountsTable).
		Where(goqu.I("domain_id").Eq(uuid.UUID(domainID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not delete email accounts by domain in pg: %w", err)
	}

	return nil
}
