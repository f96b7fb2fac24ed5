package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_FreshDatabase(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	var count int
	err = database.QueryRow(`SELECT COUNT(*) FROM submissions`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	version, err := currentVersion(database)
	require.NoError(t, err)
	assert.Equal(t, len(migrations), version)
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))

	var rows int
	err = database.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&rows)
	require.NoError(t, err)
	assert.Equal(t, len(migrations), rows)
}
