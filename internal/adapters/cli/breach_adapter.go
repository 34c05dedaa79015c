// Package cli contains adapters that translate CLI operations to service calls.
package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/breachtracker/internal/ports/primary"
)

// BreachAdapter is a thin adapter that translates CLI operations to BreachService calls.
// It depends only on the BreachService interface, enabling easy testing with mocks.
type BreachAdapter struct {
	service primary.BreachService
	out     io.Writer
}

// NewBreachAdapter creates a new BreachAdapter with the given service.
func NewBreachAdapter(service primary.BreachService, out io.Writer) *BreachAdapter {
	return &BreachAdapter{
		service: service,
		out:     out,
	}
}

// Record records a breach and reports the outcome.
// An ignored submission (empty field) is reported but is not an error.
func (a *BreachAdapter) Record(ctx context.Context, location, breachType, impact string) (*primary.RecordBreachResponse, error) {
	resp, err := a.service.RecordBreach(ctx, primary.RecordBreachRequest{
		Location:   location,
		BreachType: breachType,
		Impact:     impact,
	})
	if err != nil {
		return nil, err
	}

	if !resp.Recorded {
		fmt.Fprintf(a.out, "%s Nothing recorded: %s\n", color.New(color.FgYellow).Sprint("!"), resp.Reason)
		return resp, nil
	}

	fmt.Fprintf(a.out, "%s Recorded breach %d\n", color.New(color.FgGreen).Sprint("✓"), resp.BreachID)
	fmt.Fprintf(a.out, "  %s / %s / %s\n", resp.Breach.Location, resp.Breach.BreachType, resp.Breach.Impact)
	return resp, nil
}

// List lists every recorded breach.
func (a *BreachAdapter) List(ctx context.Context) ([]*primary.Breach, error) {
	breaches, err := a.service.ListBreaches(ctx)
	if err != nil {
		return nil, err
	}

	if len(breaches) == 0 {
		fmt.Fprintln(a.out, "No breaches recorded.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Record your first breach:")
		fmt.Fprintln(a.out, `  breach add "New York" Phishing Low`)
		return breaches, nil
	}

	a.writeTable(breaches)
	return breaches, nil
}

// Search lists breaches matching query in any field.
func (a *BreachAdapter) Search(ctx context.Context, query string) ([]*primary.Breach, error) {
	breaches, err := a.service.SearchBreaches(ctx, query)
	if err != nil {
		return nil, err
	}

	if len(breaches) == 0 {
		fmt.Fprintf(a.out, "No breaches match %q.\n", query)
		return breaches, nil
	}

	a.writeTable(breaches)
	return breaches, nil
}

// Show displays details for a single breach.
func (a *BreachAdapter) Show(ctx context.Context, breachID int64) (*primary.Breach, error) {
	breach, err := a.service.GetBreach(ctx, breachID)
	if err != nil {
		return nil, fmt.Errorf("failed to get breach: %w", err)
	}

	fmt.Fprintf(a.out, "\nBreach: %d\n", breach.ID)
	fmt.Fprintf(a.out, "Location:    %s\n", breach.Location)
	fmt.Fprintf(a.out, "Breach Type: %s\n", breach.BreachType)
	fmt.Fprintf(a.out, "Impact:      %s\n", breach.Impact)
	fmt.Fprintln(a.out)

	return breach, nil
}

func (a *BreachAdapter) writeTable(breaches []*primary.Breach) {
	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tLOCATION\tBREACH TYPE\tIMPACT")
	fmt.Fprintln(w, "--\t--------\t-----------\t------")

	for _, b := range breaches {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			b.ID,
			b.Location,
			b.BreachType,
			b.Impact,
		)
	}

	w.Flush()
}
