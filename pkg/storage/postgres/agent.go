package postgres

import (
	"context"
	"fmt"

	"hostadmin/pkg/domain"
	"hostadmin/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const agentsTable = "agents"

func (p *PgSQL) StoreAgents(ctx context.Context, agents ...domain.Agent) ([]domain.Agent, error) {
	if len(agents) == 0 {
		return nil, nil
	}

	rows := make([]PgAgent, len(agents))
	for i := range agents {
		rows[i].FromDomain(agents[i])
	}

	var result []PgAgent
	if err := p.Builder.Insert(agentsTable).
		Rows(rows).
		Returning(&PgAgent{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store agents into pg: %w", err)
	}

	out := make([]domain.Agent, 0, len(result))
	for i := range result {
		out = append(out, *result[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) AgentsByDomain(ctx context.Context, domainID domain.DomainID) ([]domain.Agent, error) {
	var rows []PgAgent
	if err := p.Builder.From(agentsTable).
		Where(goqu.I("domain_id").Eq(uuid.UUID(domainID))).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch agents from pg: %w", err)
	}

	out := make([]domain.Agent, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

func (p *PgSQL) AgentByID(ctx context.Context, id domain.AgentID) (*domain.Agent, error) {
	var row PgAgent
	found, err := p.Builder.From(agentsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch agent by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateAgent(ctx context.Context,
	id domain.AgentID,
	updates storage.AgentUpdates) (*domain.Agent, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.Email != nil {
		rec["email"] = *updates.Email
	}
	if updates.Password != nil {
		rec["password"] = *updates.Password
	}
	if updates.AdminID != nil {
		rec["admin_id"] = *updates.AdminID
	}

	var row PgAgent
	found, err := p.Builder.Update(agentsTable).
		Set(rec).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgAgent{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update agent in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteAgent(ctx context.Context, id domain.AgentID) (*domain.Agent, error) {
	var row PgAgent
	found, err := p.Builder.Delete(agentsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Returning(&PgAgent{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete agent in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) DeleteAgentsByDomain(ctx context.Context, domainID domain.DomainID) error {
	_, err := p.Builder.Delete(agentsTable).
		Where(goqu.I("domain_id").Eq(uuid.UUID(domainID))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not delete agents by domain in pg: %w", err)
	}

	return nil
}
