// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/gofrs/flock"
	"github.com/jmoiron/sqlx"

	"github.com/example/breachtracker/internal/db"
	"github.com/example/breachtracker/internal/ports/secondary"
)

type storeState int

const (
	stateUninitialized storeState = iota
	stateOpen
	stateClosed
)

// breachRow mirrors one row of the breaches table.
// Columns are nullable in files written by older releases.
type breachRow struct {
	ID         int64          `db:"id"`
	Location   sql.NullString `db:"location"`
	BreachType sql.NullString `db:"breach_type"`
	Impact     sql.NullString `db:"impact"`
}

// BreachRepository implements secondary.BreachRepository with SQLite.
//
// The zero value is an uninitialized store: every operation fails with
// secondary.ErrNotInitialized until Open succeeds. After Close, operations
// fail with secondary.ErrAlreadyClosed.
type BreachRepository struct {
	mu    sync.Mutex
	state storeState
	db    *sqlx.DB
	lock  *flock.Flock
}

// NewBreachRepository creates a repository over an already open handle.
// The caller is responsible for the schema; Close closes the handle.
func NewBreachRepository(db *sqlx.DB) *BreachRepository {
	return &BreachRepository{state: stateOpen, db: db}
}

// OpenBreachRepository opens the store file at path and returns an open repository.
func OpenBreachRepository(ctx context.Context, path string) (*BreachRepository, error) {
	r := &BreachRepository{}
	if err := r.Open(ctx, path); err != nil {
		return nil, err
	}
	return r, nil
}

// Open opens (creating if absent) the store file at path, applies the schema
// and takes the store's advisory lock. Opening an already open repository is a no-op.
func (r *BreachRepository) Open(ctx context.Context, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.state {
	case stateOpen:
		return nil
	case stateClosed:
		return secondary.ErrAlreadyClosed
	}

	conn, err := db.Open(ctx, path)
	if err != nil {
		return fmt.Errorf("%w: %w", secondary.ErrStorageUnavailable, err)
	}

	var lock *flock.Flock
	if lockPath := db.LockPath(path); lockPath != "" {
		lock = flock.New(lockPath)
		locked, err := lock.TryLock()
		if err != nil {
			conn.Close()
			return fmt.Errorf("%w: failed to lock %s: %w", secondary.ErrStorageUnavailable, lockPath, err)
		}
		if !locked {
			conn.Close()
			return fmt.Errorf("%w: %s is in use by another process", secondary.ErrStorageUnavailable, path)
		}
	}

	r.db = conn
	r.lock = lock
	r.state = stateOpen
	return nil
}

// Close releases the connection and the lock. Safe to call more than once.
func (r *BreachRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != stateOpen {
		r.state = stateClosed
		return nil
	}
	r.state = stateClosed

	var errs []error
	if err := r.db.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close database: %w", err))
	}
	if r.lock != nil {
		if err := r.lock.Unlock(); err != nil {
			errs = append(errs, fmt.Errorf("failed to release lock: %w", err))
		}
	}
	r.db = nil
	r.lock = nil

	return errors.Join(errs...)
}

// Create persists a new breach and returns the assigned ID.
// SQLite autocommit makes the row durable before Create returns.
func (r *BreachRepository) Create(ctx context.Context, breach *secondary.BreachRecord) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkOpen(); err != nil {
		return 0, err
	}

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO breaches (location, breach_type, impact) VALUES (?, ?, ?)",
		breach.Location, breach.BreachType, breach.Impact,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create breach: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read breach ID: %w", err)
	}

	return id, nil
}

// GetByID retrieves a breach by its ID.
func (r *BreachRepository) GetByID(ctx context.Context, id int64) (*secondary.BreachRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkOpen(); err != nil {
		return nil, err
	}

	var row breachRow
	err := r.db.GetContext(ctx, &row,
		"SELECT id, location, breach_type, impact FROM breaches WHERE id = ?",
		id,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", secondary.ErrBreachNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get breach: %w", err)
	}

	return row.toRecord(), nil
}

// List retrieves all breaches in ascending ID order.
func (r *BreachRepository) List(ctx context.Context) ([]*secondary.BreachRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkOpen(); err != nil {
		return nil, err
	}

	var rows []breachRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT id, location, breach_type, impact FROM breaches ORDER BY id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list breaches: %w", err)
	}

	breaches := make([]*secondary.BreachRecord, 0, len(rows))
	for i := range rows {
		breaches = append(breaches, rows[i].toRecord())
	}
	return breaches, nil
}

// checkOpen must be called with r.mu held.
func (r *BreachRepository) checkOpen() error {
	switch r.state {
	case stateUninitialized:
		return secondary.ErrNotInitialized
	case stateClosed:
		return secondary.ErrAlreadyClosed
	}
	return nil
}

func (row breachRow) toRecord() *secondary.BreachRecord {
	return &secondary.BreachRecord{
		ID:         row.ID,
		Location:   row.Location.String,
		BreachType: row.BreachType.String,
		Impact:     row.Impact.String,
	}
}

// Ensure BreachRepository implements the interface.
var _ secondary.BreachRepository = (*BreachRepository)(nil)
