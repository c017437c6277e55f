package registry

import (
	"context"
	"strings"

	"hostadmin/pkg/domain"
	"hostadmin/pkg/storage"
)

// emailAddressSeparator joins agent mailbox addresses into the summary string
// stored on the domain row.
const emailAddressSeparator = ","

// joinAgentEmails derives the email-address summary from agent rows. This is
// the single regeneration rule for the cache: the string is always rebuilt
// from the rows, in row order, never edited in place.
func joinAgentEmails(agents []domain.Agent) string {
	addrs := make([]string, 0, len(agents))
	for _, a := range agents {
		if a.Email != "" {
			addrs = append(addrs, a.Email)
		}
	}

	return strings.Join(addrs, emailAddressSeparator)
}

// splitEmailAddresses parses an externally submitted summary string.
func splitEmailAddresses(s string) []string {
	parts := strings.Split(s, emailAddressSeparator)
	addrs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			addrs = append(addrs, p)
		}
	}

	return addrs
}

// refreshEmailAddresses rebuilds the domain's email-address summary from its
// agent rows. Called after every write that touches the agent set.
func refreshEmailAddresses(ctx context.Context, tx storage.AllStorage, domainID domain.DomainID) error {
	agents, err := tx.AgentsByDomain(ctx, domainID)
	if err != nil {
		return err
	}

	joined := joinAgentEmails(agents)
	_, err = tx.UpdateDomain(ctx, domainID, storage.DomainUpdates{EmailAddresses: &joined})

	return err
}

// reconcileEmailAddresses folds an externally submitted summary string back
// into the agent rows: addresses are matched to rows index-by-index, extra
// addresses become new agents, leftover agents are removed. The caller must
// re-derive the stored string from the resulting rows afterwards; the
// submitted text itself is never persisted, which is what keeps the two
// representations from drifting.
func reconcileEmailAddresses(ctx context.Context,
	tx storage.AllStorage,
	domainID domain.DomainID,
	submitted string) error {
	agents, err := tx.AgentsByDomain(ctx, domainID)
	if err != nil {
		return err
	}
	addrs := splitEmailAddresses(submitted)

	common := len(agents)
	if len(addrs) < common {
		common = len(addrs)
	}

	for i := 0; i < common; i++ {
		if agents[i].Email == addrs[i] {
			continue
		}
		addr := addrs[i]
		if _, err := tx.UpdateAgent(ctx, agents[i].ID, storage.AgentUpdates{Email: &addr}); err != nil {
			return err
		}
	}

	if len(addrs) > common {
		extra := make([]domain.Agent, 0, len(addrs)-common)
		for _, addr := range addrs[common:] {
			extra = append(extra, domain.Agent{DomainID: domainID, Email: addr})
		}
		if _, err := tx.StoreAgents(ctx, extra...); err != nil {
			return err
		}
	}

	for _, a := range agents[common:] {
		if _, err := tx.DeleteAgent(ctx, a.ID); err != nil {
			return err
		}
	}

	return nil
}
