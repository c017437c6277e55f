package postgres_test

import (
	"context"
	"testing"
	"time"

	"hostadmin/pkg/domain"
	"hostadmin/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreDomain(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	accID := createHostingAccount(t, pgSQL)
	price := 1200.0

	d, err := pgSQL.StoreDomain(ctx, domain.Domain{
		HostingAccountID: accID,
		Name:             "example.com",
		CustomerID:       "cust-1",
		HostProvider:     "GoDaddy",
		PurchaseDate:     domain.ParseDate("2024-01-15"),
		ExpiryDate:       domain.ParseDate("2026-01-15"),
		Price:            &price,
		EmailHost:        "Zoho",
		EmailAddresses:   "alice@example.com",
	})
	require.NoError(t, err)
	require.NotEqual(t, domain.DomainID(uuid.Nil), d.ID)
	require.Equal(t, "example.com", d.Name)
	require.Equal(t, accID, d.HostingAccountID)
	require.True(t, d.ExpiryDate.Valid())
	require.Equal(t, "2026-01-15", d.ExpiryDate.String())
	require.NotNil(t, d.Price)
	require.InDelta(t, 1200.0, *d.Price, 0.001)
	require.Equal(t, "alice@example.com", d.EmailAddresses)
	require.False(t, d.CreatedAt.IsZero())
}

func TestPgSQL_StoreDomain_NullDates(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	accID := createHostingAccount(t, pgSQL)

	d, err := pgSQL.StoreDomain(ctx, domain.Domain{
		HostingAccountID: accID,
		Name:             "nodates.com",
	})
	require.NoError(t, err)
	require.False(t, d.PurchaseDate.Valid())
	require.False(t, d.ExpiryDate.Valid())
	require.Nil(t, d.Price)

	got, err := pgSQL.DomainByID(ctx, d.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.False(t, got.ExpiryDate.Valid())
}

func TestPgSQL_DomainByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	d := createDomain(t, pgSQL, "byid.com")

	// nested rows should be loaded
	_, err := pgSQL.StoreAgents(ctx, domain.Agent{DomainID: d.ID, Email: "a@byid.com"})
	require.NoError(t, err)
	_, err = pgSQL.StoreEmailAccounts(ctx, domain.EmailAccount{DomainID: d.ID, Email: "box@byid.com"})
	require.NoError(t, err)

	got, err := pgSQL.DomainByID(ctx, d.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, d.ID, got.ID)
	require.Len(t, got.Agents, 1)
	require.Len(t, got.EmailAccounts, 1)

	// unknown id returns nil without error
	missing, err := pgSQL.DomainByID(ctx, domain.DomainID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_UpdateDomain(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	d := createDomain(t, pgSQL, "before.com")

	name := "after.com"
	expiry := domain.ParseDate("2027-03-01")
	count := 3
	summary := "a@after.com, b@after.com"

	got, err := pgSQL.UpdateDomain(ctx, d.ID, storage.DomainUpdates{
		Name:           &name,
		ExpiryDate:     &expiry,
		EmailCount:     &count,
		EmailAddresses: &summary,
	})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "after.com", got.Name)
	require.Equal(t, "2027-03-01", got.ExpiryDate.String())
	require.Equal(t, 3, got.EmailCount)
	require.Equal(t, summary, got.EmailAddresses)
	require.False(t, got.UpdatedAt.IsZero())

	// untouched fields stay as stored
	require.Equal(t, d.HostingAccountID, got.HostingAccountID)

	// clearing a date back to NULL
	unset := domain.Date{}
	got, err = pgSQL.UpdateDomain(ctx, d.ID, storage.DomainUpdates{ExpiryDate: &unset})
	require.NoError(t, err)
	require.False(t, got.ExpiryDate.Valid())

	// unknown id returns nil
	missing, err := pgSQL.UpdateDomain(ctx, domain.DomainID(uuid.New()), storage.DomainUpdates{Name: &name})
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_DeleteDomain_SoftDelete(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	d := createDomain(t, pgSQL, "deleteme.com")

	deleted, err := pgSQL.DeleteDomain(ctx, d.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.Equal(t, d.ID, deleted.ID)

	// fetching should not return the soft-deleted row
	got, err := pgSQL.DomainByID(ctx, d.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	// updating a deleted row is a no-op
	name := "revived.com"
	updated, err := pgSQL.UpdateDomain(ctx, d.ID, storage.DomainUpdates{Name: &name})
	require.NoError(t, err)
	require.Nil(t, updated)

	// deleting again returns nil
	again, err := pgSQL.DeleteDomain(ctx, d.ID)
	require.NoError(t, err)
	require.Nil(t, again)
}

func TestPgSQL_DomainSnapshot(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	accID := createHostingAccount(t, pgSQL)

	d1, err := pgSQL.StoreDomain(ctx, domain.Domain{HostingAccountID: accID, Name: "one.com"})
	require.NoError(t, err)
	d2, err := pgSQL.StoreDomain(ctx, domain.Domain{HostingAccountID: accID, Name: "two.com"})
	require.NoError(t, err)
	d3, err := pgSQL.StoreDomain(ctx, domain.Domain{HostingAccountID: accID, Name: "gone.com"})
	require.NoError(t, err)

	_, err = pgSQL.StoreAgents(ctx,
		domain.Agent{DomainID: d1.ID, Email: "a@one.com"},
		domain.Agent{DomainID: d1.ID, Email: "b@one.com"},
		domain.Agent{DomainID: d2.ID, Email: "a@two.com"},
	)
	require.NoError(t, err)
	_, err = pgSQL.StoreEmailAccounts(ctx,
		domain.EmailAccount{DomainID: d2.ID, Email: "box@two.com", Active: true},
	)
	require.NoError(t, err)

	// soft-deleted domains must not show up
	_, err = pgSQL.DeleteDomain(ctx, d3.ID)
	require.NoError(t, err)

	snapshot, err := pgSQL.DomainSnapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot, 2)

	// creation order
	require.Equal(t, "one.com", snapshot[0].Name)
	require.Equal(t, "two.com", snapshot[1].Name)

	require.Len(t, snapshot[0].Agents, 2)
	require.Equal(t, "a@one.com", snapshot[0].Agents[0].Email)
	require.Equal(t, "b@one.com", snapshot[0].Agents[1].Email)
	require.Empty(t, snapshot[0].EmailAccounts)

	require.Len(t, snapshot[1].Agents, 1)
	require.Len(t, snapshot[1].EmailAccounts, 1)
	require.Equal(t, "box@two.com", snapshot[1].EmailAccounts[0].Email)
	require.True(t, snapshot[1].EmailAccounts[0].Active)
}

func TestPgSQL_DomainSnapshot_Empty(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	snapshot, err := pgSQL.DomainSnapshot(context.Background())
	require.NoError(t, err)
	require.Empty(t, snapshot)
	require.NotNil(t, snapshot)
}

func TestPgSQL_DomainDates_RoundTrip(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	accID := createHostingAccount(t, pgSQL)

	// a date built from a wall-clock time must come back as the calendar day
	d, err := pgSQL.StoreDomain(ctx, domain.Domain{
		HostingAccountID: accID,
		Name:             "roundtrip.com",
		ExpiryDate:       domain.NewDate(time.Date(2026, 5, 20, 23, 45, 0, 0, time.UTC)),
	})
	require.NoError(t, err)

	got, err := pgSQL.DomainByID(ctx, d.ID)
	require.NoError(t, err)
	require.Equal(t, "2026-05-20", got.ExpiryDate.String())
	require.Equal(t, time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC), got.ExpiryDate.Time())
}
