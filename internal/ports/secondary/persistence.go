// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"errors"
)

// Lifecycle and lookup errors returned by breach repositories.
// Adapters wrap underlying causes, so callers test with errors.Is.
var (
	// ErrStorageUnavailable means the backing file could not be opened for
	// read/write. Fatal for the caller of Open.
	ErrStorageUnavailable = errors.New("breach storage unavailable")

	// ErrNotInitialized means the repository was used before it was opened.
	ErrNotInitialized = errors.New("breach store not initialized")

	// ErrAlreadyClosed means the repository was used after Close.
	ErrAlreadyClosed = errors.New("breach store already closed")

	// ErrBreachNotFound means no record carries the requested ID.
	ErrBreachNotFound = errors.New("breach not found")
)

// BreachRepository defines the secondary port for breach persistence.
// Implementations persist whatever they are given; field rules live in the
// core guards.
type BreachRepository interface {
	// Create persists a new breach and returns its assigned ID.
	// The change is durable before Create returns.
	Create(ctx context.Context, breach *BreachRecord) (int64, error)

	// GetByID retrieves a breach by its ID.
	GetByID(ctx context.Context, id int64) (*BreachRecord, error)

	// List retrieves all breaches in ascending ID order.
	List(ctx context.Context) ([]*BreachRecord, error)

	// Close releases the backing handle. Safe to call more than once.
	Close() error
}

// BreachRecord represents a breach as stored in persistence.
type BreachRecord struct {
	ID         int64
	Location   string
	BreachType string
	Impact     string
}
