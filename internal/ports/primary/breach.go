package primary

import "context"

// BreachService defines the primary port for breach operations.
type BreachService interface {
	// RecordBreach records a new breach. Requests with an empty field are
	// ignored: the response reports Recorded=false and no error is returned.
	RecordBreach(ctx context.Context, req RecordBreachRequest) (*RecordBreachResponse, error)

	// GetBreach retrieves a breach by ID.
	GetBreach(ctx context.Context, breachID int64) (*Breach, error)

	// ListBreaches retrieves all breaches in recording order.
	ListBreaches(ctx context.Context) ([]*Breach, error)

	// SearchBreaches retrieves breaches where the query is a case-insensitive
	// substring of any field. An empty query matches everything.
	SearchBreaches(ctx context.Context, query string) ([]*Breach, error)
}

// RecordBreachRequest contains parameters for recording a breach.
type RecordBreachRequest struct {
	Location   string
	BreachType string
	Impact     string
}

// RecordBreachResponse contains the result of recording a breach.
type RecordBreachResponse struct {
	Recorded bool
	BreachID int64
	Breach   *Breach
	Reason   string // Why nothing was recorded; empty when Recorded
}

// Breach represents a breach entity at the port boundary.
type Breach struct {
	ID         int64
	Location   string
	BreachType string
	Impact     string
}
