package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenForTesting(t *testing.T) {
	db, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, db.Close()) })

	assert.NoError(t, db.Ping())
}

func TestMigrationsApply(t *testing.T) {
	db, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, db.Close()) })

	var tableName string

	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='restaurant'").Scan(&tableName)
	assert.NoError(t, err)
	assert.Equal(t, "restaurant", tableName)

	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='menu_item'").Scan(&tableName)
	assert.NoError(t, err)
	assert.Equal(t, "menu_item", tableName)

	var version int
	var dirty bool
	err = db.QueryRow("SELECT version, dirty FROM schema_migrations").Scan(&version, &dirty)
	require.NoError(t, err)
	assert.Equal(t, 1, version)
	assert.False(t, dirty)
}

func TestOpenForTestingIsolated(t *testing.T) {
	first, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = first.Close() })

	second, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	_, err = first.Exec("INSERT INTO restaurant (name) VALUES ('Only Here')")
	require.NoError(t, err)

	var count int
	require.NoError(t, second.QueryRow("SELECT COUNT(*) FROM restaurant").Scan(&count))
	assert.Zero(t, count)
}

func TestForeignKeysEnforced(t *testing.T) {
	db, err := OpenForTesting()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec("INSERT INTO menu_item (name, restaurant_id) VALUES ('Orphan', 42)")
	assert.Error(t, err)
}

func TestOpenFileReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restaurantmenu.db")

	db, err := Open(path)
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO restaurant (name) VALUES ('Persisted')")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening must not re-run the applied migration.
	db, err = Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var name string
	require.NoError(t, db.QueryRow("SELECT name FROM restaurant WHERE id = 1").Scan(&name))
	assert.Equal(t, "Persisted", name)
}
