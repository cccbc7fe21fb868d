package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Editor.TabSize != Default().Editor.TabSize {
		t.Fatalf("TabSize = %d, want default %d", cfg.Editor.TabSize, Default().Editor.TabSize)
	}
}

func TestLoadOverlaysFileOnDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := "[editor]\ntabSize = 2\n\n[ai]\nprovider = \"anthropic\"\nmodel = \"claude\"\n"
	if err := writeFile(t, path, contents); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Editor.TabSize != 2 {
		t.Fatalf("TabSize = %d, want 2", cfg.Editor.TabSize)
	}
	if cfg.AI.Provider != "anthropic" || cfg.AI.Model != "claude" {
		t.Fatalf("AI = %+v, want provider=anthropic model=claude", cfg.AI)
	}
	// Fields the file didn't set still come from Default().
	if cfg.UI.Theme != Default().UI.Theme {
		t.Fatalf("Theme = %q, want default %q", cfg.UI.Theme, Default().UI.Theme)
	}
}

func TestLoadOverlaysLoggingSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	contents := "[logging]\nlevel = \"debug\"\nformat = \"json\"\n"
	if err := writeFile(t, path, contents); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("Logging = %+v, want level=debug format=json", cfg.Logging)
	}
	// Fields the file didn't set still come from Default().
	if cfg.Editor.TabSize != Default().Editor.TabSize {
		t.Fatalf("TabSize = %d, want default %d", cfg.Editor.TabSize, Default().Editor.TabSize)
	}
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := writeFile(t, path, "editor = not valid toml ["); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() expected error for malformed TOML")
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Editor.TabSize = 8
	cfg.AI.Provider = "openai"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Editor.TabSize != 8 || loaded.AI.Provider != "openai" {
		t.Fatalf("loaded = %+v, want TabSize=8 Provider=openai", loaded)
	}
}

func writeFile(t *testing.T, path, contents string) error {
	t.Helper()
	return os.WriteFile(path, []byte(contents), 0o644)
}
