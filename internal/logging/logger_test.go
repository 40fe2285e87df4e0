package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.With(String(FieldComponent, "session")).Info("file moved", String("source", "a.pdf"))

	line := buf.String()
	if !strings.Contains(line, "INFO session: file moved") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "source=a.pdf") {
		t.Fatalf("missing attr in line: %q", line)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Writer: &buf})
	if err != nil {
		t.Fatal(err)
	}

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record leaked past warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Fatalf("warn record missing: %q", out)
	}
}

func TestNewSessionCreatesLogFile(t *testing.T) {
	dir := t.TempDir()
	logDir := filepath.Join(dir, "logs")

	logger, logPath, closeFn, err := NewSession(logDir, "info", "console")
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("session started")
	if err := closeFn(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "session started") {
		t.Fatalf("log file missing record: %q", data)
	}
	if base := filepath.Base(logPath); !strings.HasPrefix(base, "organizer_") || !strings.HasSuffix(base, ".log") {
		t.Fatalf("unexpected log file name: %s", base)
	}
}
