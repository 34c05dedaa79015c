// Package breach contains the pure business logic for breach operations.
// Guards are pure functions that evaluate preconditions without side effects.
package breach

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// RecordBreachContext provides context for breach recording guards.
type RecordBreachContext struct {
	Location   string
	BreachType string
	Impact     string
}

// CanRecordBreach evaluates whether a breach can be recorded.
// Rules:
// - Location, breach type and impact must all be non-empty
//
// Values are not trimmed: a field of only spaces is non-empty.
func CanRecordBreach(ctx RecordBreachContext) GuardResult {
	if ctx.Location == "" {
		return GuardResult{Allowed: false, Reason: "location is required"}
	}
	if ctx.BreachType == "" {
		return GuardResult{Allowed: false, Reason: "breach type is required"}
	}
	if ctx.Impact == "" {
		return GuardResult{Allowed: false, Reason: "impact is required"}
	}
	return GuardResult{Allowed: true}
}
