package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.App.MenuFile != "" || cfg.App.Width != 0 || cfg.App.ShowFooter {
		t.Fatalf("unexpected defaults %#v", cfg.App)
	}
	if cfg.Logging.Trace {
		t.Fatalf("expected tracing disabled by default")
	}
}

func TestLoadArgsEnvironmentFallback(t *testing.T) {
	env := []string{
		"MENUBAR_MENU=menus.yaml",
		"MENUBAR_FOCUS=file:save",
		"MENUBAR_WIDTH=72",
		"MENUBAR_FOOTER=true",
		"MENUBAR_TRACE=1",
		"MENUBAR_LOG_FILE=/tmp/menubar.log",
		"broken",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.App.MenuFile != "menus.yaml" || cfg.App.Focus != "file:save" {
		t.Fatalf("expected env menu and focus, got %#v", cfg.App)
	}
	if cfg.App.Width != 72 || !cfg.App.ShowFooter {
		t.Fatalf("expected env width and footer, got %#v", cfg.App)
	}
	if !cfg.Logging.Trace || cfg.Logging.FilePath != "/tmp/menubar.log" {
		t.Fatalf("expected env logging, got %#v", cfg.Logging)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{"MENUBAR_WIDTH=72", "MENUBAR_FOOTER=true"}
	args := []string{"--width", "40", "--footer=false", "-m", "other.json", "--focus", "save"}
	cfg, err := LoadArgs(args, env)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.App.Width != 40 || cfg.App.ShowFooter {
		t.Fatalf("expected flags to win, got %#v", cfg.App)
	}
	if cfg.App.MenuFile != "other.json" || cfg.App.Focus != "save" {
		t.Fatalf("expected flag menu and focus, got %#v", cfg.App)
	}
	if cfg.Flags["width"] != "40" || cfg.Flags["footer"] != "false" {
		t.Fatalf("unexpected flag map %#v", cfg.Flags)
	}
	if len(cfg.Args) != len(args) {
		t.Fatalf("expected args to be recorded, got %#v", cfg.Args)
	}
}

func TestLoadArgsInvalidEnvironmentValuesFallBack(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"MENUBAR_WIDTH=wide", "MENUBAR_TRACE=maybe"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.App.Width != 0 || cfg.Logging.Trace {
		t.Fatalf("expected fallbacks, got %#v", cfg)
	}
}

func TestLoadArgsRejectsNegativeWidth(t *testing.T) {
	_, err := LoadArgs([]string{"--width", "-1"}, nil)
	if err == nil || !strings.Contains(err.Error(), "width must be >= 0") {
		t.Fatalf("expected width error, got %v", err)
	}
}

func TestLoadArgsRejectsUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"--socket", "x"}, nil); err == nil {
		t.Fatalf("expected unknown flag error")
	}
}

func TestValidateMenuFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "menus.yaml")
	if err := os.WriteFile(file, []byte("menus: []\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cases := []struct {
		path    string
		wantErr bool
	}{
		{"", false},
		{file, false},
		{dir, true},
		{filepath.Join(dir, "missing.yaml"), true},
	}
	for _, tc := range cases {
		cfg := Config{}
		cfg.App.MenuFile = tc.path
		err := Validate(cfg)
		if (err != nil) != tc.wantErr {
			t.Fatalf("path %q: expected error=%v, got %v", tc.path, tc.wantErr, err)
		}
	}
}
