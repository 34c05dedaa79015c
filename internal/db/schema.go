package db

import (
	"context"
	"database/sql"
	"fmt"
)

// SchemaSQL is the complete schema of a breach store file.
//
// # Compatibility
//
// Files written by earlier releases of the tracker use exactly this table.
// Column names and types must not change: existing data files are opened
// as-is and there is no migration step.
//
// Tests load the schema through GetSchemaSQL() rather than declaring their
// own CREATE TABLE statements.
const SchemaSQL = `
-- Breaches (one row per recorded incident)
CREATE TABLE IF NOT EXISTS breaches (
	id INTEGER PRIMARY KEY,
	location TEXT,
	breach_type TEXT,
	impact TEXT
);
`

// InitSchema applies SchemaSQL to the given connection.
// Safe to run against an existing file; rows are never touched.
func InitSchema(ctx context.Context, conn *sql.DB) error {
	if _, err := conn.ExecContext(ctx, SchemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
