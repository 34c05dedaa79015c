package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.DBPath != "data_breaches.db" {
		t.Errorf("expected default db path, got %s", cfg.DBPath)
	}
	if cfg.Theme != ThemeLight {
		t.Errorf("expected light theme, got %s", cfg.Theme)
	}
	expectedLog := filepath.Join(dir, ".breach", "breach.log")
	if cfg.LogFile != expectedLog {
		t.Errorf("expected log file %s, got %s", expectedLog, cfg.LogFile)
	}
}

func TestLoadConfig_ReadsYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".breach"), 0755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	content := "db_path: /var/lib/breach/store.db\ntheme: dark\nlog_level: debug\n"
	if err := os.WriteFile(Path(dir), []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.DBPath != "/var/lib/breach/store.db" {
		t.Errorf("expected db path from file, got %s", cfg.DBPath)
	}
	if !cfg.IsDark() {
		t.Errorf("expected dark theme, got %s", cfg.Theme)
	}
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.SlogLevel())
	}
	// keys absent from the file keep their defaults
	if cfg.LogFile != filepath.Join(dir, ".breach", "breach.log") {
		t.Errorf("expected default log file, got %s", cfg.LogFile)
	}
}

func TestLoadConfig_InvalidTheme(t *testing.T) {
	dir := t.TempDir()
	os.MkdirAll(filepath.Join(dir, ".breach"), 0755)
	os.WriteFile(Path(dir), []byte("theme: neon\n"), 0644)

	if _, err := LoadConfig(dir); err == nil {
		t.Error("expected error for invalid theme")
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	os.MkdirAll(filepath.Join(dir, ".breach"), 0755)
	os.WriteFile(Path(dir), []byte("theme: [unterminated\n"), 0644)

	if _, err := LoadConfig(dir); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := Default()
	cfg.Theme = ThemeDark
	cfg.DBPath = "incidents.db"

	if err := SaveConfig(dir, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Theme != ThemeDark {
		t.Errorf("expected dark theme, got %s", loaded.Theme)
	}
	if loaded.DBPath != "incidents.db" {
		t.Errorf("expected incidents.db, got %s", loaded.DBPath)
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"chatty", slog.LevelInfo},
	}

	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.level}
		if got := cfg.SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
