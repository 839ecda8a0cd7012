package logging

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTraceWritesJSONWhenEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "trace.log")
	Configure(path)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		Configure("")
	})

	Trace("ignored", nil)
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file while tracing is disabled, got %v", err)
	}

	SetTraceEnabled(true)
	Trace("menu.open", map[string]interface{}{"entry": "File"})
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file, got %v", err)
	}
	var entry struct {
		Event   string            `json:"event"`
		Payload map[string]string `json:"payload"`
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("expected one JSON line, got %q: %v", data, err)
	}
	if entry.Event != "menu.open" || entry.Payload["entry"] != "File" {
		t.Fatalf("unexpected entry %#v", entry)
	}
}

func TestErrorAppendsToLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "error.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })

	Error(nil)
	Error(errors.New("boom"))
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file, got %v", err)
	}
	if !strings.Contains(string(data), "menubar: ") || !strings.Contains(string(data), "boom") {
		t.Fatalf("expected prefixed error text in log, got %q", data)
	}
}

func TestConfigureTracksPathAndDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "menubar.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })
	if got := Path(); got != path {
		t.Fatalf("expected path %q, got %q", path, got)
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Fatalf("expected log directory to exist, got %v", err)
	}

	Configure("  ")
	if got := Path(); got != DefaultPath() && got != "menubar.log" {
		t.Fatalf("expected default path, got %q", got)
	}
	if filepath.Base(DefaultPath()) != "menubar.log" {
		t.Fatalf("expected menubar.log default, got %q", DefaultPath())
	}
}

func TestTraceLinesAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.log")
	Configure(path)
	SetTraceEnabled(true)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		Configure("")
	})
	if !TraceEnabled() {
		t.Fatalf("expected tracing enabled")
	}

	Trace("menu.focus", nil)
	Trace("menu.close", nil)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file, got %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 trace lines, got %d: %q", len(lines), data)
	}
	if strings.Contains(lines[0], "payload") {
		t.Fatalf("expected empty payload to be omitted, got %q", lines[0])
	}
}
