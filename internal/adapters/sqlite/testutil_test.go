// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the single point where the database schema is loaded for tests.
// Test setup uses db.GetSchemaSQL() so that tests run against the same
// table layout as existing store files.
package sqlite_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/example/breachtracker/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	testDB, err := sqlx.Open(db.DriverName, db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	// an in-memory database lives on a single connection
	testDB.SetMaxOpenConns(1)

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedBreach inserts a breach row directly and returns its ID.
func seedBreach(t *testing.T, testDB *sqlx.DB, location, breachType, impact string) int64 {
	t.Helper()

	result, err := testDB.Exec(
		"INSERT INTO breaches (location, breach_type, impact) VALUES (?, ?, ?)",
		location, breachType, impact,
	)
	if err != nil {
		t.Fatalf("failed to seed breach: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to read seeded ID: %v", err)
	}
	return id
}
