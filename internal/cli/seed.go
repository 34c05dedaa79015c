package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/breachtracker/internal/db"
	"github.com/example/breachtracker/internal/ports/primary"
)

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert sample breaches (development)",
		Long:  `Record a fixed set of sample breaches. Running it twice records them twice.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			var recorded int
			for _, f := range db.Fixtures() {
				resp, err := app.Breaches.RecordBreach(cmd.Context(), primary.RecordBreachRequest{
					Location:   f.Location,
					BreachType: f.BreachType,
					Impact:     f.Impact,
				})
				if err != nil {
					return fmt.Errorf("failed to seed breach: %w", err)
				}
				if resp.Recorded {
					recorded++
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Seeded %d breaches into %s\n",
				color.New(color.FgGreen).Sprint("✓"), recorded, app.Config.DBPath)
			return nil
		},
	}
}
