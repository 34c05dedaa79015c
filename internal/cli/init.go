package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the breach store",
		Long:  `Create the breach store file and its table if they do not exist yet. Existing records are left untouched.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "✓ Breach store ready at %s\n", app.Config.DBPath)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Next steps:")
			fmt.Fprintln(out, `  breach add "New York" Phishing Low`)
			fmt.Fprintln(out, "  breach list")
			return nil
		},
	}
}
