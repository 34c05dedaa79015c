// Package cli implements the breach command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/breachtracker/internal/config"
	"github.com/example/breachtracker/internal/wire"
)

const (
	flagDB        = "db"
	flagConfigDir = "config-dir"
)

// AddPersistentFlags registers the flags shared by every subcommand.
func AddPersistentFlags(root *cobra.Command) {
	root.PersistentFlags().String(flagDB, "", "breach store file (overrides config)")
	root.PersistentFlags().String(flagConfigDir, "", "directory containing .breach/config.yaml (default: current directory)")
}

// configDir returns the directory holding .breach/, defaulting to the cwd.
func configDir(cmd *cobra.Command) (string, error) {
	dir, _ := cmd.Flags().GetString(flagConfigDir)
	if dir != "" {
		return dir, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return cwd, nil
}

// loadConfig reads the config and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	dir, err := configDir(cmd)
	if err != nil {
		return nil, err
	}
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if dbPath, _ := cmd.Flags().GetString(flagDB); dbPath != "" {
		cfg.DBPath = dbPath
	}
	return cfg, nil
}

// openApp wires the application for one command invocation.
// Callers must Close the returned App.
func openApp(cmd *cobra.Command) (*wire.App, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return wire.Open(cmd.Context(), cfg)
}
