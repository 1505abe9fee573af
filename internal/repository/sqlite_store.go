package repository

import "database/sql"

// NewSQLiteStore creates a Store backed by an open SQLite database.
// Closing the store closes the database.
func NewSQLiteStore(database *sql.DB) *Store {
	return &Store{
		Records:   NewSQLiteRecordRepo(database),
		Snapshots: NewSQLiteSnapshotRepo(database),
		Advice:    NewSQLiteAdviceCache(database),
		closeFn:   database.Close,
	}
}
