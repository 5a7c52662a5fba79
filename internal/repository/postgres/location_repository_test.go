package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/andresuchdata/supplychain-ai/backend-go/internal/config"
	"github.com/andresuchdata/supplychain-ai/backend-go/internal/inventory"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) *DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		t.Skipf("Postgres not available: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return Wrap(db)
}

func TestPublishThenLoadNetwork(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	repo := NewLocationRepository(db)
	require.NoError(t, repo.EnsureSchema(ctx))

	require.NoError(t, repo.PublishNetwork(ctx, inventory.DefaultNetwork()))
	locations, err := repo.LoadNetwork(ctx)
	require.NoError(t, err)
	assert.Equal(t, inventory.DefaultNetwork(), locations)

	// publishing again replaces rather than appends
	require.NoError(t, repo.PublishNetwork(ctx, inventory.DefaultNetwork()[:2]))
	locations, err = repo.LoadNetwork(ctx)
	require.NoError(t, err)
	assert.Len(t, locations, 2)
}

func TestDSN(t *testing.T) {
	dsn := DSN(&config.DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "n", SSLMode: "disable"})
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", dsn)
}

func TestOpenUnreachable(t *testing.T) {
	_, err := Open(&config.DatabaseConfig{Host: "127.0.0.1", Port: "1", User: "u", DBName: "n", SSLMode: "disable"})
	assert.Error(t, err)
}
