package registry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hostadmin/internal/registry"
	mockstorage "hostadmin/pkg/storage/mock"

	"go.uber.org/mock/gomock"

	"hostadmin/pkg/domain"
	"hostadmin/pkg/serrors"
	"hostadmin/pkg/storage"
)

func newTestRegistry(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, registry.Registry) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	r := registry.New(st, registry.Options{WindowDays: 30, SweepInterval: time.Hour})

	return ctrl, st, r
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			// provide a tx mock that implements AllStorage
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestRegistry_CreateDomain_DerivesEmailFields(t *testing.T) {
	ctrl, st, r := newTestRegistry(t)

	in := domain.Domain{
		Name:             "example.com",
		HostingAccountID: domain.HostingAccountID(testUUID(1)),
		Agents: []domain.Agent{
			{Email: "alice@example.com"},
			{Email: "bob@example.com"},
		},
		EmailAccounts: []domain.EmailAccount{
			{Email: "info@example.com"},
		},
	}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreDomain(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d domain.Domain) (*domain.Domain, error) {
				if d.EmailAddresses != "alice@example.com,bob@example.com" {
					t.Fatalf("unexpected email summary: %q", d.EmailAddresses)
				}
				if d.EmailCount != 1 {
					t.Fatalf("expected email count 1, got %d", d.EmailCount)
				}
				if len(d.Agents) != 0 || len(d.EmailAccounts) != 0 {
					t.Fatalf("nested rows must be stored separately")
				}
				d.ID = domain.DomainID(testUUID(2))

				return &d, nil
			},
		)
		tx.EXPECT().StoreAgents(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, agents ...domain.Agent) ([]domain.Agent, error) {
				for _, a := range agents {
					if a.DomainID != domain.DomainID(testUUID(2)) {
						t.Fatalf("agent not bound to created domain")
					}
				}

				return agents, nil
			},
		)
		tx.EXPECT().StoreEmailAccounts(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, accounts ...domain.EmailAccount) ([]domain.EmailAccount, error) {
				return accounts, nil
			},
		)
	})

	created, err := r.CreateDomain(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created.Agents) != 2 || len(created.EmailAccounts) != 1 {
		t.Fatalf("expected nested rows on result, got %+v", created)
	}
}

func TestRegistry_CreateDomain_Validation(t *testing.T) {
	_, st, r := newTestRegistry(t)

	_, err := r.CreateDomain(context.Background(), domain.Domain{})
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}

	_, err = r.CreateDomain(context.Background(), domain.Domain{Name: "example.com"})
	if !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest for missing account, got %v", err)
	}

	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).Times(0)
}

func TestRegistry_UpdateDomain_ReconcilesSubmittedAddresses(t *testing.T) {
	ctrl, st, r := newTestRegistry(t)

	id := domain.DomainID(testUUID(3))
	existing := []domain.Agent{
		{ID: domain.AgentID(testUUID(10)), DomainID: id, Email: "alice@example.com"},
		{ID: domain.AgentID(testUUID(11)), DomainID: id, Email: "bob@example.com"},
	}
	submitted := "alice@example.com,carol@example.com,dave@example.com"

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		// first read drives the reconciliation
		tx.EXPECT().AgentsByDomain(gomock.Any(), id).Return(existing, nil)
		// bob is rewritten to carol in place
		tx.EXPECT().UpdateAgent(gomock.Any(), existing[1].ID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.AgentID, updates storage.AgentUpdates) (*domain.Agent, error) {
				if updates.Email == nil || *updates.Email != "carol@example.com" {
					t.Fatalf("expected carol update, got %+v", updates)
				}

				return &domain.Agent{}, nil
			},
		)
		// dave is appended as a new agent
		tx.EXPECT().StoreAgents(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, agents ...domain.Agent) ([]domain.Agent, error) {
				if len(agents) != 1 || agents[0].Email != "dave@example.com" {
					t.Fatalf("unexpected new agents: %+v", agents)
				}

				return agents, nil
			},
		)
		// second read re-derives the stored string from the rows
		tx.EXPECT().AgentsByDomain(gomock.Any(), id).Return([]domain.Agent{
			{Email: "alice@example.com"},
			{Email: "carol@example.com"},
			{Email: "dave@example.com"},
		}, nil)
		tx.EXPECT().UpdateDomain(gomock.Any(), id, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.DomainID, updates storage.DomainUpdates) (*domain.Domain, error) {
				want := "alice@example.com,carol@example.com,dave@example.com"
				if updates.EmailAddresses == nil || *updates.EmailAddresses != want {
					t.Fatalf("expected re-derived summary %q, got %+v", want, updates.EmailAddresses)
				}

				return &domain.Domain{ID: id}, nil
			},
		)
	})

	updated, err := r.UpdateDomain(context.Background(), id, storage.DomainUpdates{EmailAddresses: &submitted})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != id {
		t.Fatalf("unexpected domain: %+v", updated)
	}
}

func TestRegistry_UpdateDomain_NotFound(t *testing.T) {
	ctrl, st, r := newTestRegistry(t)

	id := domain.DomainID(testUUID(4))
	name := "renamed.com"

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateDomain(gomock.Any(), id, gomock.Any()).Return(nil, nil)
	})

	_, err := r.UpdateDomain(context.Background(), id, storage.DomainUpdates{Name: &name})
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRegistry_DeleteDomain_Cascades(t *testing.T) {
	ctrl, st, r := newTestRegistry(t)

	id := domain.DomainID(testUUID(5))

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DeleteAgentsByDomain(gomock.Any(), id).Return(nil)
		tx.EXPECT().DeleteEmailAccountsByDomain(gomock.Any(), id).Return(nil)
		tx.EXPECT().DeleteDomain(gomock.Any(), id).Return(&domain.Domain{ID: id}, nil)
	})

	if err := r.DeleteDomain(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// not found
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DeleteAgentsByDomain(gomock.Any(), id).Return(nil)
		tx.EXPECT().DeleteEmailAccountsByDomain(gomock.Any(), id).Return(nil)
		tx.EXPECT().DeleteDomain(gomock.Any(), id).Return(nil, nil)
	})

	err := r.DeleteDomain(context.Background(), id)
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRegistry_CreateAgent_RefreshesSummary(t *testing.T) {
	ctrl, st, r := newTestRegistry(t)

	domainID := domain.DomainID(testUUID(6))
	agent := domain.Agent{DomainID: domainID, Email: "new@example.com"}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DomainByID(gomock.Any(), domainID).Return(&domain.Domain{ID: domainID}, nil)
		tx.EXPECT().StoreAgents(gomock.Any(), agent).Return([]domain.Agent{agent}, nil)
		tx.EXPECT().AgentsByDomain(gomock.Any(), domainID).Return([]domain.Agent{agent}, nil)
		tx.EXPECT().UpdateDomain(gomock.Any(), domainID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.DomainID, updates storage.DomainUpdates) (*domain.Domain, error) {
				if updates.EmailAddresses == nil || *updates.EmailAddresses != "new@example.com" {
					t.Fatalf("expected refreshed summary, got %+v", updates.EmailAddresses)
				}

				return &domain.Domain{}, nil
			},
		)
	})

	created, err := r.CreateAgent(context.Background(), agent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Email != agent.Email {
		t.Fatalf("unexpected agent: %+v", created)
	}
}

func TestRegistry_CreateAgent_DomainNotFound(t *testing.T) {
	ctrl, st, r := newTestRegistry(t)

	domainID := domain.DomainID(testUUID(7))

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DomainByID(gomock.Any(), domainID).Return(nil, nil)
	})

	_, err := r.CreateAgent(context.Background(), domain.Agent{DomainID: domainID, Email: "x@example.com"})
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRegistry_DeleteEmailAccount_RefreshesCount(t *testing.T) {
	ctrl, st, r := newTestRegistry(t)

	domainID := domain.DomainID(testUUID(8))
	id := domain.EmailAccountID(testUUID(9))

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DeleteEmailAccount(gomock.Any(), id).
			Return(&domain.EmailAccount{ID: id, DomainID: domainID}, nil)
		tx.EXPECT().EmailAccountsByDomain(gomock.Any(), domainID).
			Return([]domain.EmailAccount{{}, {}}, nil)
		tx.EXPECT().UpdateDomain(gomock.Any(), domainID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.DomainID, updates storage.DomainUpdates) (*domain.Domain, error) {
				if updates.EmailCount == nil || *updates.EmailCount != 2 {
					t.Fatalf("expected refreshed count 2, got %+v", updates.EmailCount)
				}

				return &domain.Domain{}, nil
			},
		)
	})

	if err := r.DeleteEmailAccount(context.Background(), id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRegistry_ExpiryReport(t *testing.T) {
	ctrl, st, r := newTestRegistry(t)

	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	price := 1200.0
	expiring := domain.Domain{
		Name:       "soon.com",
		ExpiryDate: domain.NewDate(today.AddDate(0, 0, 5)),
		Price:      &price,
	}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DomainSnapshot(gomock.Any()).Return([]domain.Domain{expiring}, nil)
	})

	report, err := r.ExpiryReport(context.Background(), today, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.WindowDays != 30 {
		t.Fatalf("expected configured default window, got %d", report.WindowDays)
	}
	if len(report.ExpiringDomains) != 1 || report.ExpiringDomains[0].DaysRemaining != 5 {
		t.Fatalf("unexpected report: %+v", report.ExpiringDomains)
	}
	if report.TotalRenewalCost != price {
		t.Fatalf("expected total %v, got %v", price, report.TotalRenewalCost)
	}
}

func TestRegistry_ExpiryReport_SnapshotError(t *testing.T) {
	ctrl, st, r := newTestRegistry(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DomainSnapshot(gomock.Any()).Return(nil, errors.New("boom"))
	})

	if _, err := r.ExpiryReport(context.Background(), time.Now(), 30); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestRegistry_EnqueueSweep(t *testing.T) {
	_, st, r := newTestRegistry(t)

	st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	added, err := r.EnqueueSweep(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !added {
		t.Fatalf("expected job to be added")
	}

	// duplicate collapses
	st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
	added, err = r.EnqueueSweep(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added {
		t.Fatalf("expected duplicate to be skipped")
	}
}

func TestRegistry_HostingAccount_NotFound(t *testing.T) {
	_, st, r := newTestRegistry(t)

	id := domain.HostingAccountID(testUUID(12))
	st.EXPECT().HostingAccountByID(gomock.Any(), id).Return(nil, nil)

	_, err := r.HostingAccount(context.Background(), id)
	if !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// testUUID builds a deterministic UUID for test fixtures.
func testUUID(b byte) [16]byte {
	var id [16]byte
	id[15] = b

	return id
}
