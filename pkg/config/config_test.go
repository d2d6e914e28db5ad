package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}
	return path
}

func TestLoadValid(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "lumin.yml", `case_sensitive: true
respect_gitignore: false
max_depth: 5
before_context: 2
after_context: 3
omit_context: 120
color: never
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.CaseSensitive == nil || !*cfg.CaseSensitive {
		t.Error("expected case_sensitive true")
	}
	if cfg.RespectGitignore == nil || *cfg.RespectGitignore {
		t.Error("expected respect_gitignore false")
	}
	if cfg.MaxDepth == nil || *cfg.MaxDepth != 5 {
		t.Errorf("expected max_depth 5, got %v", cfg.MaxDepth)
	}
	if cfg.BeforeContext == nil || *cfg.BeforeContext != 2 {
		t.Errorf("expected before_context 2, got %v", cfg.BeforeContext)
	}
	if cfg.AfterContext == nil || *cfg.AfterContext != 3 {
		t.Errorf("expected after_context 3, got %v", cfg.AfterContext)
	}
	if cfg.OmitContext == nil || *cfg.OmitContext != 120 {
		t.Errorf("expected omit_context 120, got %v", cfg.OmitContext)
	}
	if cfg.Color == nil || *cfg.Color != "never" {
		t.Errorf("expected color never, got %v", cfg.Color)
	}
}

func TestLoadPartialLeavesAbsentKeysNil(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "lumin.yml", "max_depth: 3\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.MaxDepth == nil || *cfg.MaxDepth != 3 {
		t.Errorf("expected max_depth 3, got %v", cfg.MaxDepth)
	}
	if cfg.CaseSensitive != nil {
		t.Error("expected case_sensitive to stay nil")
	}
	if cfg.Color != nil {
		t.Error("expected color to stay nil")
	}
}

func TestLoadIgnoresUnknownKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "lumin.yml", "future_option: 42\nmax_depth: 2\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MaxDepth == nil || *cfg.MaxDepth != 2 {
		t.Errorf("expected max_depth 2, got %v", cfg.MaxDepth)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "lumin.yml", "max_depth: [oops\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	} else if !strings.Contains(err.Error(), "failed to parse config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Fatal("expected read error for a missing explicit config path")
	}
}

func TestDiscoverMissingIsEmptyConfig(t *testing.T) {
	cfg, err := Discover(t.TempDir())
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if cfg == nil {
		t.Fatal("expected a non-nil config")
	}
	if cfg.MaxDepth != nil || cfg.CaseSensitive != nil {
		t.Error("expected an empty config for a missing file")
	}
}

func TestDiscoverFindsDefaultFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, DefaultFileName, "omit_context: 64\n")

	cfg, err := Discover(dir)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if cfg.OmitContext == nil || *cfg.OmitContext != 64 {
		t.Errorf("expected omit_context 64, got %v", cfg.OmitContext)
	}
}

func TestDiscoverMalformedIsError(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, DefaultFileName, ": not yaml {{\n")

	if _, err := Discover(dir); err == nil {
		t.Fatal("expected parse error for a malformed default config")
	}
}
