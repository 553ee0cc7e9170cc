package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open(DriverSQLite, filepath.Join(t.TempDir(), "migrate.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name).Scan(&n)
	require.NoError(t, err)
	return n == 1
}

func TestMigrate_SQLite(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	require.NoError(t, Migrate(ctx, db, DriverSQLite))
	assert.True(t, tableExists(t, db, "user_progression"))
	assert.True(t, tableExists(t, db, "shop_items"))

	// second run is a no-op
	require.NoError(t, Migrate(ctx, db, DriverSQLite))

	statuses, err := Status(ctx, db, DriverSQLite)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.Equal(t, int64(1), statuses[0].Version)
	assert.Equal(t, "applied", statuses[0].State)
	assert.Equal(t, "applied", statuses[1].State)
}

func TestMigrateDown_SQLite(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	require.NoError(t, Migrate(ctx, db, DriverSQLite))

	require.NoError(t, MigrateDown(ctx, db, DriverSQLite))
	assert.False(t, tableExists(t, db, "shop_items"))
	assert.True(t, tableExists(t, db, "user_progression"))

	statuses, err := Status(ctx, db, DriverSQLite)
	require.NoError(t, err)
	assert.Equal(t, "pending", statuses[1].State)
}

func TestMigrate_UnknownDriver(t *testing.T) {
	db := openSQLite(t)

	err := Migrate(context.Background(), db, "mysql")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mysql")

	_, err = Status(context.Background(), db, "mysql")
	assert.Error(t, err)
}

func TestPostgresURL(t *testing.T) {
	assert.Equal(t, "postgres://u:p@db:5432/rocks?sslmode=disable", PostgresURL("u", "p", "db", "5432", "rocks"))
}
