package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, root, payload string) string {
	t.Helper()
	path := ConfigPath(root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// TestLoadDefaultsWithoutFile verifies a missing config file yields defaults.
func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(Options{StartDir: t.TempDir()})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Env != "local" || cfg.UI != "auto" || cfg.Log.Level != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Questions != "" {
		t.Fatalf("expected built-in questions, got %q", cfg.Questions)
	}
}

// TestLoadFindsConfigInParent verifies upward search and relative path resolution.
func TestLoadFindsConfigInParent(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "ui: Plain\nno_color: true\nquestions: quiz.yml\nlog:\n  level: DEBUG\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	cfg, err := Load(Options{StartDir: nested})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI != "plain" || !cfg.NoColor || cfg.Log.Level != "debug" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Questions != filepath.Join(root, "quiz.yml") {
		t.Fatalf("expected questions resolved against root, got %q", cfg.Questions)
	}
}

// TestLoadEnvOverrides verifies QUIZ_* variables take precedence over the file.
func TestLoadEnvOverrides(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "ui: plain\n")
	t.Setenv("QUIZ_UI", "live")
	t.Setenv("QUIZ_LOG_FILE", "/tmp/quiz.log")

	cfg, err := Load(Options{Path: path})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI != "live" {
		t.Fatalf("expected env override, got %q", cfg.UI)
	}
	if cfg.Log.File != "/tmp/quiz.log" {
		t.Fatalf("expected log file override, got %q", cfg.Log.File)
	}
}

// TestLoadEnvFile verifies .env values are applied.
func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, EnvFileName)
	if err := os.WriteFile(envPath, []byte("QUIZ_ENV=production\n"), 0o644); err != nil {
		t.Fatalf("write env: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("QUIZ_ENV") })

	cfg, err := Load(Options{StartDir: dir, EnvFile: envPath})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Env != "production" {
		t.Fatalf("expected production env, got %q", cfg.Env)
	}
}

// TestLoadMissingEnvFileIgnored verifies an absent .env is not an error.
func TestLoadMissingEnvFileIgnored(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(Options{StartDir: dir, EnvFile: filepath.Join(dir, "missing.env")}); err != nil {
		t.Fatalf("load: %v", err)
	}
}

// TestLoadValidationErrors verifies invalid values are reported together.
func TestLoadValidationErrors(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "env: staging\nui: fancy\nlog:\n  level: loud\n")

	_, err := Load(Options{Path: path})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(validationErr.Issues) != 3 {
		t.Fatalf("expected 3 issues, got %+v", validationErr.Issues)
	}
	if !strings.Contains(err.Error(), "ui: invalid ui mode") {
		t.Fatalf("expected ui issue, got %q", err.Error())
	}
}

// TestLoadExplicitMissingPath verifies an explicit path must exist.
func TestLoadExplicitMissingPath(t *testing.T) {
	if _, err := Load(Options{Path: filepath.Join(t.TempDir(), "nope.yml")}); err == nil {
		t.Fatalf("expected error")
	}
}

// TestFindConfigPathNotFound verifies the sentinel error.
func TestFindConfigPathNotFound(t *testing.T) {
	_, err := FindConfigPath(t.TempDir())
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("expected ErrConfigNotFound, got %v", err)
	}
}
