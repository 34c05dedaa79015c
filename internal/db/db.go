package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// DriverName is the database/sql driver registered by go-sqlite3.
const DriverName = "sqlite3"

// MemoryPath opens a private in-memory database. Nothing is written to disk.
const MemoryPath = ":memory:"

// DefaultPath is the store file used when no path is configured.
const DefaultPath = "data_breaches.db"

// Open opens (creating if absent) the SQLite file at path and applies the schema.
// The returned handle is limited to a single connection: the store is a
// single-writer file and an in-memory database only exists per connection.
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	if path == "" {
		path = DefaultPath
	}

	if path != MemoryPath {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	conn, err := sqlx.Open(DriverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	// sql.Open is lazy; ping forces the file to be opened (and created)
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := InitSchema(ctx, conn.DB); err != nil {
		conn.Close()
		return nil, err
	}

	return conn, nil
}

// LockPath returns the advisory lock file guarding the store at path.
// An in-memory store has no lock file.
func LockPath(path string) string {
	if path == MemoryPath {
		return ""
	}
	if path == "" {
		path = DefaultPath
	}
	return path + ".lock"
}
