package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, resolved, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if cfg.NoTruncate {
		t.Fatal("no_truncate should default to false")
	}
	if cfg.Extensions.PlantUML {
		t.Fatal("plantuml should default to false")
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "no_truncate = true\n\n[extensions]\nplantuml = true\n\n[logging]\nlevel = \"DEBUG\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.NoTruncate {
		t.Fatal("expected no_truncate=true")
	}
	if !cfg.Extensions.PlantUML {
		t.Fatal("expected plantuml=true")
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level should normalize to lowercase, got %q", cfg.Logging.Level)
	}
}

func TestLoadParseFailureFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("no_truncate = {{{"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error to be reported")
	}
	if cfg == nil {
		t.Fatal("config must remain usable on parse failure")
	}
	if cfg.NoTruncate || cfg.Extensions.PlantUML {
		t.Fatalf("parse failure must yield defaults, got %+v", cfg)
	}
}
