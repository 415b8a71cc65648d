package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateDirMigrations(t *testing.T) {
	require.NoError(t, ValidateDir("migrations"))
}

func TestMigrationsCoverCoreTables(t *testing.T) {
	entries, err := os.ReadDir("migrations")
	require.NoError(t, err)

	var combined strings.Builder
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		b, err := os.ReadFile(filepath.Join("migrations", e.Name()))
		require.NoError(t, err)
		combined.Write(b)
	}

	sql := combined.String()
	for _, table := range []string{
		"users",
		"user_connections",
		"group_orders",
		"group_order_participants",
		"group_order_budget_contributions",
		"orders",
		"order_line_items",
	} {
		require.Contains(t, sql, "CREATE TABLE "+table, "missing create for %s", table)
		require.Contains(t, sql, "DROP TABLE IF EXISTS "+table, "missing drop for %s", table)
	}
}

func TestCreateSQLMigration(t *testing.T) {
	dir := t.TempDir()
	path, err := CreateSQLMigration(dir, "Add Delivery Notes!")
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(path, "_add_delivery_notes.sql"))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), "-- +goose Up")
	require.Contains(t, string(b), "-- +goose Down")
}
