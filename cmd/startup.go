package cmd

import (
	"os"

	"github.com/atomicstack/menubar/internal/config"
	"github.com/atomicstack/menubar/internal/logging"
	"github.com/atomicstack/menubar/internal/logging/events"
	"golang.org/x/term"
)

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload records how the process was launched: argv, resolved
// flags, the catalogue source and what each standard descriptor reports.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath

	catalogue := "demo"
	if cfg.App.MenuFile != "" {
		catalogue = cfg.App.MenuFile
	}
	payload := map[string]interface{}{
		"version":   Version,
		"argv":      cfg.Args,
		"flags":     flags,
		"catalogue": catalogue,
		"logPath":   logging.Path(),
		"config":    cfg,
		"tty":       collectTTYDetails(),
	}
	addResult(payload, "executable", os.Executable)
	addResult(payload, "cwd", os.Getwd)
	return payload
}

func addResult(payload map[string]interface{}, key string, fn func() (string, error)) {
	if v, err := fn(); err == nil {
		payload[key] = v
	} else {
		payload[key+"Error"] = err.Error()
	}
}

type ttyDetails struct {
	Detected *ttySize   `json:"detected,omitempty"`
	Probes   []ttyProbe `json:"probes"`
}

type ttySize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails probes stdin, stdout and stderr; the first terminal with
// a readable size is reported as detected.
func collectTTYDetails() ttyDetails {
	files := []*os.File{os.Stdin, os.Stdout, os.Stderr}
	names := []string{"stdin", "stdout", "stderr"}
	details := ttyDetails{Probes: make([]ttyProbe, 0, len(files))}
	for i, f := range files {
		probe := probeTTY(names[i], int(f.Fd()))
		if details.Detected == nil && probe.IsTerminal && probe.Error == "" {
			details.Detected = &ttySize{Source: probe.Name, Width: probe.Width, Height: probe.Height}
		}
		details.Probes = append(details.Probes, probe)
	}
	return details
}

func probeTTY(name string, fd int) ttyProbe {
	probe := ttyProbe{Name: name}
	if fd < 0 || !term.IsTerminal(fd) {
		return probe
	}
	probe.IsTerminal = true
	width, height, err := term.GetSize(fd)
	if err != nil {
		probe.Error = err.Error()
		return probe
	}
	probe.Width, probe.Height = width, height
	return probe
}
