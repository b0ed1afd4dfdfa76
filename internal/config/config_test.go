package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Typing.Time != nil || cfg.Log.Debug != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[typing]
time = 60
theme = "light"
extension = "go"

[log]
debug = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Typing.Time == nil || *cfg.Typing.Time != 60 {
		t.Fatalf("expected time 60, got %v", cfg.Typing.Time)
	}
	if cfg.Typing.Theme == nil || *cfg.Typing.Theme != "light" {
		t.Fatalf("expected light theme, got %v", cfg.Typing.Theme)
	}
	if cfg.Typing.Extension == nil || *cfg.Typing.Extension != "go" {
		t.Fatalf("expected go extension, got %v", cfg.Typing.Extension)
	}
	if cfg.Typing.Lines != nil || cfg.Typing.Dir != nil {
		t.Fatalf("unset keys must stay nil")
	}
	if cfg.Log.Debug == nil || !*cfg.Log.Debug {
		t.Fatalf("expected debug true")
	}
}

func TestLoadConfigRejectsUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[typing]\nwords = 3\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error for unknown key")
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[typing\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestDefaultPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	t.Setenv("SRCTYPE_LOG_FILE", "")
	if got := DefaultConfigPath(); got != filepath.Join("/tmp/cfg", "srctype", "config.toml") {
		t.Fatalf("unexpected config path %s", got)
	}
	if got := DefaultLogPath(); got != filepath.Join("/tmp/data", "srctype", "srctype.log") {
		t.Fatalf("unexpected log path %s", got)
	}
	t.Setenv("SRCTYPE_LOG_FILE", "/tmp/other.log")
	if got := DefaultLogPath(); got != "/tmp/other.log" {
		t.Fatalf("expected override, got %s", got)
	}
}
