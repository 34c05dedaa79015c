package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/example/breachtracker/internal/db"
)

// Theme constants
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

const (
	configDirName  = ".breach"
	configFileName = "config.yaml"
	logFileName    = "breach.log"
)

// Config represents the breach tracker configuration
type Config struct {
	DBPath   string `yaml:"db_path"`             // Store file; relative paths resolve against cwd
	Theme    string `yaml:"theme"`               // "light" or "dark"
	LogFile  string `yaml:"log_file,omitempty"`  // Relative paths resolve against the config dir's parent
	LogLevel string `yaml:"log_level,omitempty"` // debug, info, warn, error
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		DBPath:   db.DefaultPath,
		Theme:    ThemeLight,
		LogFile:  filepath.Join(configDirName, logFileName),
		LogLevel: "info",
	}
}

// Path returns the config file location under dir.
func Path(dir string) string {
	return filepath.Join(dir, configDirName, configFileName)
}

// LoadConfig reads .breach/config.yaml from the specified directory.
// A missing file yields Default(); missing keys take their default values.
func LoadConfig(dir string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path(dir))
	if errors.Is(err, fs.ErrNotExist) {
		cfg.resolve(dir)
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.resolve(dir)
	return cfg, nil
}

// SaveConfig writes config.yaml to directory
func SaveConfig(dir string, cfg *Config) error {
	configDir := filepath.Join(dir, configDirName)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s dir: %w", configDirName, err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	switch c.Theme {
	case ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("invalid theme %q (want %q or %q)", c.Theme, ThemeLight, ThemeDark)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}

// SlogLevel returns the configured log level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// IsDark reports whether the dark theme is selected.
func (c *Config) IsDark() bool {
	return c.Theme == ThemeDark
}

func (c *Config) resolve(dir string) {
	if c.DBPath == "" {
		c.DBPath = db.DefaultPath
	}
	if c.LogFile != "" && !filepath.IsAbs(c.LogFile) {
		c.LogFile = filepath.Join(dir, c.LogFile)
	}
}
