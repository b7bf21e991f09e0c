package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeTempConfig(t, "log:\n  level: debug\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("got log level %q, want debug", cfg.Log.Level)
	}
	if cfg.Parse.Workers != 1 {
		t.Errorf("got workers %d, want default 1", cfg.Parse.Workers)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeTempConfig(t, "log:\n  level: debug\n  bogus_field: true\n")
	if _, err := Load(path); err == nil {
		t.Error("expected an error for an unknown field")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestLoadWorkersOverride(t *testing.T) {
	path := writeTempConfig(t, "parse:\n  workers: 8\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Parse.Workers != 8 {
		t.Errorf("got workers %d, want 8", cfg.Parse.Workers)
	}
}
