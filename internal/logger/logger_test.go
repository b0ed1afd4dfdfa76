package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "srctype.log")
	if err := Init(path, false); err != nil {
		t.Fatalf("init: %v", err)
	}
	Info("run finished", "wpm", 42)
	Debug("hidden at info level")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "run finished") || !strings.Contains(out, "42") {
		t.Fatalf("expected info line in log, got %q", out)
	}
	if strings.Contains(out, "hidden at info level") {
		t.Fatalf("debug line written at info level: %q", out)
	}
}

func TestDebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "srctype.log")
	if err := Init(path, true); err != nil {
		t.Fatalf("init: %v", err)
	}
	Debug("tick", "remaining", "3s")
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "tick") {
		t.Fatalf("expected debug line, got %q", data)
	}
}

func TestHelpersWithoutInit(t *testing.T) {
	Close()
	Debug("noop")
	Info("noop")
	Warn("noop")
	Error("noop")
}

func TestInitEmptyPath(t *testing.T) {
	if err := Init("", false); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
