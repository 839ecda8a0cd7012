package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/menubar/internal/app"
	"github.com/spf13/pflag"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envMenuFile   = "MENUBAR_MENU"
	envFocus      = "MENUBAR_FOCUS"
	envWidth      = "MENUBAR_WIDTH"
	envShowFooter = "MENUBAR_FOOTER"
	envTrace      = "MENUBAR_TRACE"
	envLogFile    = "MENUBAR_LOG_FILE"
)

// Flags holds the registered flag values; environment variables supply the
// defaults.
type Flags struct {
	menu    *string
	focus   *string
	width   *int
	footer  *bool
	trace   *bool
	logFile *string
}

// RegisterFlags adds the runtime flags to fs.
func RegisterFlags(fs *pflag.FlagSet, environ []string) *Flags {
	env := parseEnv(environ)
	return &Flags{
		menu:    fs.StringP("menu", "m", envOrDefault(env, envMenuFile, ""), "path to a YAML or JSON menu catalogue (demo catalogue when empty)"),
		focus:   fs.StringP("focus", "f", envOrDefault(env, envFocus, ""), "item id or search query to reveal on start"),
		width:   fs.Int("width", envOrInt(env, envWidth, 0), "desired render width in cells (0 uses terminal width)"),
		footer:  fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer key help (disabled by default)"),
		trace:   fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging"),
		logFile: fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file"),
	}
}

// Config assembles the parsed values. args are recorded for tracing.
func (f *Flags) Config(args []string) (Config, error) {
	if *f.width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *f.width)
	}
	return Config{
		App: app.Config{
			MenuFile:   *f.menu,
			Focus:      *f.focus,
			Width:      *f.width,
			ShowFooter: *f.footer,
		},
		Logging: Logging{
			FilePath: *f.logFile,
			Trace:    *f.trace,
		},
		Flags: map[string]string{
			"menu":    *f.menu,
			"focus":   *f.focus,
			"width":   strconv.Itoa(*f.width),
			"footer":  strconv.FormatBool(*f.footer),
			"trace":   strconv.FormatBool(*f.trace),
			"logFile": *f.logFile,
		},
		Args: append([]string(nil), args...),
	}, nil
}

// LoadArgs parses args against a standalone flag set with environ supplying
// the defaults.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("menubar", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	flags := RegisterFlags(fs, environ)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return flags.Config(args)
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate ensures the configured catalogue can be read.
func Validate(cfg Config) error {
	if cfg.App.MenuFile == "" {
		return nil
	}
	info, err := os.Stat(cfg.App.MenuFile)
	if err != nil {
		return fmt.Errorf("menu file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("menu file %s is a directory", cfg.App.MenuFile)
	}
	return nil
}
