package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Storage.Backend != BackendJSON {
		t.Errorf("expected default backend %q, got %q", BackendJSON, cfg.Storage.Backend)
	}
	if cfg.Storage.Path != "" {
		t.Errorf("expected empty default storage path, got %q", cfg.Storage.Path)
	}
	if !cfg.TUI.Watch {
		t.Error("expected tui.watch to default to true")
	}
	if !cfg.Output.Color {
		t.Error("expected output.color to default to true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected default config to validate: %v", err)
	}
}

func TestLoadFromPath(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
storage:
  backend: sqlite
  path: /tmp/tasks.db
tui:
  watch: false
output:
  color: false
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if cfg.Storage.Backend != BackendSQLite {
		t.Errorf("expected backend sqlite, got %q", cfg.Storage.Backend)
	}
	if cfg.Storage.Path != "/tmp/tasks.db" {
		t.Errorf("expected path /tmp/tasks.db, got %q", cfg.Storage.Path)
	}
	if cfg.TUI.Watch {
		t.Error("expected tui.watch to be false")
	}
	if cfg.Output.Color {
		t.Error("expected output.color to be false")
	}
}

func TestLoadFromPathPartial(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("output:\n  color: false\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	// Unset keys keep their defaults.
	if cfg.Storage.Backend != BackendJSON {
		t.Errorf("expected default backend, got %q", cfg.Storage.Backend)
	}
	if cfg.Output.Color {
		t.Error("expected output.color override to apply")
	}
}

func TestLoadFromPathInvalidBackend(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("storage:\n  backend: cloud\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := LoadFromPath(configPath); err == nil {
		t.Error("expected unknown backend to fail validation")
	}
}

func TestLoadFromPathExpandsEnv(t *testing.T) {
	os.Setenv("TICKLIST_TEST_DIR", "/data/ticklist")
	defer os.Unsetenv("TICKLIST_TEST_DIR")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	if err := os.WriteFile(configPath, []byte("storage:\n  path: ${TICKLIST_TEST_DIR}/tasks.json\n"), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.Storage.Path != "/data/ticklist/tasks.json" {
		t.Errorf("expected env expansion, got %q", cfg.Storage.Path)
	}
}
