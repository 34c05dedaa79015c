package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/breachtracker/internal/config"
)

// ThemeCmd returns the theme command
func ThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "theme [light|dark]",
		Short:     "Show or set the default TUI theme",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{config.ThemeLight, config.ThemeDark},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := configDir(cmd)
			if err != nil {
				return err
			}
			cfg, err := config.LoadConfig(dir)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintln(out, cfg.Theme)
				return nil
			}

			cfg.Theme = args[0]
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := config.SaveConfig(dir, cfg); err != nil {
				return err
			}
			fmt.Fprintf(out, "✓ Theme set to %s\n", cfg.Theme)
			return nil
		},
	}
}
