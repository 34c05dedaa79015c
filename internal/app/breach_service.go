package app

import (
	"context"
	"fmt"
	"log/slog"

	corebreach "github.com/example/breachtracker/internal/core/breach"
	"github.com/example/breachtracker/internal/ctxutil"
	"github.com/example/breachtracker/internal/ports/primary"
	"github.com/example/breachtracker/internal/ports/secondary"
)

// BreachServiceImpl implements the BreachService interface.
type BreachServiceImpl struct {
	breachRepo secondary.BreachRepository
	logger     *slog.Logger
}

// NewBreachService creates a new BreachService with injected dependencies.
// A nil logger falls back to slog.Default().
func NewBreachService(breachRepo secondary.BreachRepository, logger *slog.Logger) *BreachServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &BreachServiceImpl{
		breachRepo: breachRepo,
		logger:     logger,
	}
}

// RecordBreach records a new breach.
// A request with an empty field writes nothing and is not an error.
func (s *BreachServiceImpl) RecordBreach(ctx context.Context, req primary.RecordBreachRequest) (*primary.RecordBreachResponse, error) {
	guard := corebreach.CanRecordBreach(corebreach.RecordBreachContext{
		Location:   req.Location,
		BreachType: req.BreachType,
		Impact:     req.Impact,
	})
	if !guard.Allowed {
		s.logger.DebugContext(ctx, "breach not recorded",
			"reason", guard.Reason,
			"operator", ctxutil.OperatorFromContext(ctx),
		)
		return &primary.RecordBreachResponse{Recorded: false, Reason: guard.Reason}, nil
	}

	record := &secondary.BreachRecord{
		Location:   req.Location,
		BreachType: req.BreachType,
		Impact:     req.Impact,
	}

	id, err := s.breachRepo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to record breach: %w", err)
	}
	record.ID = id

	s.logger.InfoContext(ctx, "breach recorded",
		"breach_id", id,
		"operator", ctxutil.OperatorFromContext(ctx),
	)

	return &primary.RecordBreachResponse{
		Recorded: true,
		BreachID: id,
		Breach:   s.recordToBreach(record),
	}, nil
}

// GetBreach retrieves a breach by ID.
func (s *BreachServiceImpl) GetBreach(ctx context.Context, breachID int64) (*primary.Breach, error) {
	record, err := s.breachRepo.GetByID(ctx, breachID)
	if err != nil {
		return nil, err
	}
	return s.recordToBreach(record), nil
}

// ListBreaches retrieves all breaches in recording order.
func (s *BreachServiceImpl) ListBreaches(ctx context.Context) ([]*primary.Breach, error) {
	records, err := s.breachRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list breaches: %w", err)
	}

	breaches := make([]*primary.Breach, len(records))
	for i, r := range records {
		breaches[i] = s.recordToBreach(r)
	}
	return breaches, nil
}

// SearchBreaches filters the full breach list by a case-insensitive substring
// match on any field. Matches keep the ListBreaches order.
func (s *BreachServiceImpl) SearchBreaches(ctx context.Context, query string) ([]*primary.Breach, error) {
	records, err := s.breachRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search breaches: %w", err)
	}

	matcher := corebreach.NewMatcher(query)
	breaches := make([]*primary.Breach, 0, len(records))
	for _, r := range records {
		if matcher.Matches(r.Location, r.BreachType, r.Impact) {
			breaches = append(breaches, s.recordToBreach(r))
		}
	}

	s.logger.DebugContext(ctx, "breach search",
		"query", query,
		"matches", len(breaches),
		"total", len(records),
	)
	return breaches, nil
}

// Helper methods

func (s *BreachServiceImpl) recordToBreach(r *secondary.BreachRecord) *primary.Breach {
	return &primary.Breach{
		ID:         r.ID,
		Location:   r.Location,
		BreachType: r.BreachType,
		Impact:     r.Impact,
	}
}

// Ensure BreachServiceImpl implements the interface.
var _ primary.BreachService = (*BreachServiceImpl)(nil)
