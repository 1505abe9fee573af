package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Run migrations a second time; should succeed without error.
	err := Migrate(db)
	require.NoError(t, err)

	// Third time for good measure.
	err = Migrate(db)
	require.NoError(t, err)
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{"records", "snapshots", "advice_cache"}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_records_domain_created",
		"idx_snapshots_taken",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	err := db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk)
	require.NoError(t, err)
	assert.Equal(t, 1, fk, "foreign keys should be enabled")
}

func TestMigrate_RecordsDomainCheckConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO records (id, domain, created_at, fields)
		VALUES ('r1', 'astrology', '2025-01-01T00:00:00Z', '{}')`)
	assert.Error(t, err, "unknown domain should be rejected by CHECK constraint")

	_, err = db.Exec(`INSERT INTO records (id, domain, created_at, fields)
		VALUES ('r1', 'hydration', '2025-01-01T00:00:00Z', '{}')`)
	assert.NoError(t, err)
}

func TestMigrate_AdviceCacheSourceCheckConstraint(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO advice_cache (domain, record_id, source, narrative, created_at)
		VALUES ('msk', 'r1', 'oracle', 'text', '2025-01-01T00:00:00Z')`)
	assert.Error(t, err, "unknown source should be rejected by CHECK constraint")

	_, err = db.Exec(`INSERT INTO advice_cache (domain, record_id, source, narrative, created_at)
		VALUES ('msk', 'r1', 'fallback', 'text', '2025-01-01T00:00:00Z')`)
	assert.NoError(t, err)
}

func TestMigrate_AdviceCachePrimaryKey_UniquePair(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO advice_cache (domain, record_id, source, narrative, created_at)
		VALUES ('eye', 'r1', 'generated', 'rest your eyes', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO advice_cache (domain, record_id, source, narrative, created_at)
		VALUES ('eye', 'r1', 'generated', 'duplicate', '2025-01-01T00:00:00Z')`)
	assert.Error(t, err, "duplicate domain/record pair should violate composite primary key")
}

func TestMigrate_RecordsFieldsDefault(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO records (id, domain, created_at)
		VALUES ('r1', 'workspace', '2025-01-01T00:00:00Z')`)
	require.NoError(t, err)

	var fields string
	err = db.QueryRow(`SELECT fields FROM records WHERE id = 'r1'`).Scan(&fields)
	require.NoError(t, err)
	assert.Equal(t, "{}", fields)
}
