package logging

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitAndLoggingToFile(t *testing.T) {
	tempDir := t.TempDir()
	logPath := filepath.Join(tempDir, "nested", "augusto.log")

	if err := Init(logPath, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() {
		_ = Close()
	})

	LogEvent("hello %s", "world")
	slog.Info("structured", "word", "cat")
	slog.Debug("hidden at info level")
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "hello world") {
		t.Fatalf("expected LogEvent content, got: %s", content)
	}
	if !strings.Contains(content, "word=cat") {
		t.Fatalf("expected structured attribute, got: %s", content)
	}
	if strings.Contains(content, "hidden at info level") {
		t.Fatalf("debug record should be filtered, got: %s", content)
	}
	if strings.Contains(content, "\x1b[") {
		t.Fatalf("file output must not be colored, got: %q", content)
	}
}

func TestInitDebugLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "debug.log")

	origTerminal := isTerminal
	isTerminal = func(uintptr) bool { return true }
	t.Cleanup(func() { isTerminal = origTerminal })

	if err := Init(logPath, true); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() { _ = Close() })

	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		t.Fatalf("debug level should be enabled")
	}
	slog.Debug("visible in debug mode")
	_ = Close()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "visible in debug mode") {
		t.Fatalf("expected debug record, got: %s", data)
	}
	if strings.Contains(string(data), "\x1b[") {
		t.Fatalf("color must be disabled when a file is attached, got: %q", data)
	}
}

func TestInitDiscard(t *testing.T) {
	if err := Init("", false); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	t.Cleanup(func() { _ = Close() })

	if slog.Default().Enabled(context.Background(), slog.LevelError) {
		t.Fatalf("expected logger to discard records")
	}
	LogEvent("discard")
}

func TestCloseWithoutFile(t *testing.T) {
	if err := Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
}
