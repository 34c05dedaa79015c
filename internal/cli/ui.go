package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/breachtracker/internal/tui"
)

// UICmd returns the ui command
func UICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Launch the interactive breach tracker",
		Long: `Launch the terminal interface: a login screen, then the entry form,
search box and breach table.

Keys: tab/shift+tab move focus, enter submits, ctrl+t toggles the theme,
ctrl+c quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			return tui.Run(cmd.Context(), app.Breaches, tui.Options{
				Dark:   app.Config.IsDark(),
				Logger: app.Logger,
			})
		},
	}
}
