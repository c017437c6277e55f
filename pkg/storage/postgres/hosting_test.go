package postgres_test

import (
	"context"
	"testing"

	"hostadmin/pkg/domain"
	"hostadmin/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreHostingAccount(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	acc, err := pgSQL.StoreHostingAccount(ctx, domain.HostingAccount{
		Provider:   "Namecheap",
		LoginID:    "acme-corp",
		LoginPass:  "hunter2",
		CustomerID: "cust-9",
	})
	require.NoError(t, err)
	require.NotEqual(t, domain.HostingAccountID(uuid.Nil), acc.ID)
	require.Equal(t, "Namecheap", acc.Provider)
	require.Equal(t, "acme-corp", acc.LoginID)
	require.Equal(t, "cust-9", acc.CustomerID)
	require.False(t, acc.CreatedAt.IsZero())
}

func TestPgSQL_HostingAccounts(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	_, err := pgSQL.StoreHostingAccount(ctx, domain.HostingAccount{Provider: "GoDaddy", LoginID: "a", LoginPass: "p"})
	require.NoError(t, err)
	_, err = pgSQL.StoreHostingAccount(ctx, domain.HostingAccount{Provider: "Hetzner", LoginID: "b", LoginPass: "p"})
	require.NoError(t, err)

	accounts, err := pgSQL.HostingAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	// creation order
	require.Equal(t, "GoDaddy", accounts[0].Provider)
	require.Equal(t, "Hetzner", accounts[1].Provider)
}

func TestPgSQL_HostingAccountByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored, err := pgSQL.StoreHostingAccount(ctx, domain.HostingAccount{Provider: "OVH", LoginID: "x", LoginPass: "p"})
	require.NoError(t, err)

	got, err := pgSQL.HostingAccountByID(ctx, stored.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, stored.ID, got.ID)

	missing, err := pgSQL.HostingAccountByID(ctx, domain.HostingAccountID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_UpdateHostingAccount(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored, err := pgSQL.StoreHostingAccount(ctx, domain.HostingAccount{Provider: "OVH", LoginID: "x", LoginPass: "p"})
	require.NoError(t, err)

	login := "y"
	got, err := pgSQL.UpdateHostingAccount(ctx, stored.ID, storage.HostingAccountUpdates{LoginID: &login})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "y", got.LoginID)
	require.Equal(t, "OVH", got.Provider)
	require.False(t, got.UpdatedAt.IsZero())

	missing, err := pgSQL.UpdateHostingAccount(ctx, domain.HostingAccountID(uuid.New()),
		storage.HostingAccountUpdates{LoginID: &login})
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_DeleteHostingAccount(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored, err := pgSQL.StoreHostingAccount(ctx, domain.HostingAccount{Provider: "OVH", LoginID: "x", LoginPass: "p"})
	require.NoError(t, err)

	ok, err := pgSQL.DeleteHostingAccount(ctx, stored.ID)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := pgSQL.HostingAccountByID(ctx, stored.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	ok, err = pgSQL.DeleteHostingAccount(ctx, stored.ID)
	require.NoError(t, err)
	require.False(t, ok)
}
