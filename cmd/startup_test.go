package cmd

import (
	"testing"

	"github.com/atomicstack/menubar/internal/app"
	"github.com/atomicstack/menubar/internal/config"
	"github.com/atomicstack/menubar/internal/logging"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	for i, name := range []string{"stdin", "stdout", "stderr"} {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestProbeTTYRejectsInvalidDescriptor(t *testing.T) {
	probe := probeTTY("bogus", -1)
	if probe.IsTerminal || probe.Width != 0 {
		t.Fatalf("expected non-terminal probe, got %#v", probe)
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			MenuFile:   "menus.yaml",
			Width:      80,
			ShowFooter: true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"menu":   "menus.yaml",
			"width":  "80",
			"footer": "true",
		},
		Args: []string{"--menu", "menus.yaml"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["menu"] != "menus.yaml" {
		t.Fatalf("expected menu flag %q, got %v", "menus.yaml", flagsValue["menu"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if payload["catalogue"] != "menus.yaml" {
		t.Fatalf("expected catalogue menus.yaml, got %v", payload["catalogue"])
	}
	if payload["logPath"] != logging.Path() {
		t.Fatalf("expected log path %q, got %v", logging.Path(), payload["logPath"])
	}
	if payload["version"] != Version {
		t.Fatalf("expected version %q, got %v", Version, payload["version"])
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestStartupTracePayloadDemoCatalogue(t *testing.T) {
	payload := startupTracePayload(config.Config{})
	if payload["catalogue"] != "demo" {
		t.Fatalf("expected demo catalogue, got %v", payload["catalogue"])
	}
}
