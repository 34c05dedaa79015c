package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/breachtracker/internal/cli"
	"github.com/example/breachtracker/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "breach",
		Short:   "Breach Tracker - record and search data breach incidents",
		Version: version.String(),
		Long: `Breach Tracker keeps a local SQLite log of data breach incidents.
Each breach has a location, a breach type and an impact.`,
		SilenceUsage: true,
	}
	cli.AddPersistentFlags(rootCmd)

	// Record and browse
	rootCmd.AddCommand(cli.AddCmd())
	rootCmd.AddCommand(cli.ListCmd())
	rootCmd.AddCommand(cli.SearchCmd())
	rootCmd.AddCommand(cli.ShowCmd())
	rootCmd.AddCommand(cli.UICmd())

	// Setup
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.ThemeCmd())

	// Developer tools
	rootCmd.AddCommand(cli.SeedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
