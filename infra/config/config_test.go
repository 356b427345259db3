package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ReadsFileAndAppliesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := "github_username = \"octocat\"\ndata_path = \"/tmp/data.json\"\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config failed: %v", err)
	}
	t.Setenv("FOLIO_CONFIG", path)
	t.Setenv("FOLIO_USERNAME", "someone-else")
	t.Setenv("FOLIO_DATA", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.GitHubUsername != "someone-else" {
		t.Fatalf("env must override file: %q", cfg.GitHubUsername)
	}
	if cfg.DataPath != "/tmp/data.json" {
		t.Fatalf("unexpected data path: %q", cfg.DataPath)
	}
	if cfg.UIStatePath != filepath.Join(dir, "ui_state.json") {
		t.Fatalf("ui state must live next to the config: %q", cfg.UIStatePath)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("FOLIO_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))
	t.Setenv("FOLIO_USERNAME", "octocat")
	t.Setenv("FOLIO_DATA", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("missing config must not error: %v", err)
	}
	if cfg.GitHubUsername != "octocat" {
		t.Fatalf("unexpected username: %q", cfg.GitHubUsername)
	}
	if cfg.DataPath == "" || cfg.PostsPath == "" {
		t.Fatalf("expected default paths: %#v", cfg)
	}
}

func TestLoad_CorruptFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("github_username = [broken"), 0o600); err != nil {
		t.Fatalf("write config failed: %v", err)
	}
	t.Setenv("FOLIO_CONFIG", path)
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid toml")
	}
}

func TestInit_RefusesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := Init(path, Config{GitHubUsername: "octocat"}); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if err := Init(path, Config{}); err == nil {
		t.Fatalf("expected error for existing config")
	}
}

func TestUIState_LoadAndSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui_state.json")

	st, err := LoadUIState(path)
	if err != nil {
		t.Fatalf("missing state should not error: %v", err)
	}
	if st != (UIState{}) {
		t.Fatalf("expected empty state for missing file")
	}

	want := UIState{ActiveView: "timeline"}
	if err := SaveUIState(path, want); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	got, err := LoadUIState(path)
	if err != nil {
		t.Fatalf("load after save failed: %v", err)
	}
	if got != want {
		t.Fatalf("unexpected loaded state got=%#v want=%#v", got, want)
	}

	if err := os.WriteFile(path, []byte("not-json"), 0o600); err != nil {
		t.Fatalf("write corrupt state failed: %v", err)
	}
	if _, err := LoadUIState(path); err == nil {
		t.Fatalf("expected parse error for invalid json")
	}
}
