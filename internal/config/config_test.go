package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Theme != "mocha" {
		t.Errorf("default theme = %q, want mocha", cfg.Theme)
	}
	if cfg.HistoryFile != "" {
		t.Errorf("default history file should be empty, got %q", cfg.HistoryFile)
	}
	if cfg.MaxRows != 0 {
		t.Errorf("default max_rows = %d, want 0", cfg.MaxRows)
	}
	if cfg.NoInject {
		t.Error("injection should be enabled by default")
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	content := `theme: latte
history_file: /home/someone/.zsh_history
max_rows: 15
no_inject: true
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Theme != "latte" {
		t.Errorf("theme = %q, want latte", cfg.Theme)
	}
	if cfg.HistoryFile != "/home/someone/.zsh_history" {
		t.Errorf("history_file = %q, want /home/someone/.zsh_history", cfg.HistoryFile)
	}
	if cfg.MaxRows != 15 {
		t.Errorf("max_rows = %d, want 15", cfg.MaxRows)
	}
	if !cfg.NoInject {
		t.Error("no_inject should be true")
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("max_rows: 5\n"), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.MaxRows != 5 {
		t.Errorf("max_rows = %d, want 5", cfg.MaxRows)
	}
	if cfg.Theme != "mocha" {
		t.Errorf("unset theme = %q, want default mocha", cfg.Theme)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("Load() should not error for missing file, got: %v", err)
	}

	// Should return defaults
	if cfg.Theme != "mocha" {
		t.Errorf("missing file should yield defaults, got theme %q", cfg.Theme)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("theme: [broken\n"), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	if _, err := Load(configPath); err == nil {
		t.Fatal("Load() should error on malformed YAML")
	}
}
