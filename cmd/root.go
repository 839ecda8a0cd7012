// Package cmd wires the menubar command line: the interactive terminal menu
// and the inspection subcommands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/menubar/internal/app"
	"github.com/atomicstack/menubar/internal/config"
	"github.com/atomicstack/menubar/internal/logging"
	"github.com/spf13/cobra"
)

// configError marks failures that exit with the configuration status code.
type configError struct {
	err error
}

func (e configError) Error() string { return e.err.Error() }

func (e configError) Unwrap() error { return e.err }

// invocation carries the configuration resolved before any subcommand runs.
type invocation struct {
	argv  []string
	flags *config.Flags
	cfg   config.Config
}

func (r *invocation) prepare(*cobra.Command, []string) error {
	cfg, err := r.flags.Config(r.argv)
	if err != nil {
		return configError{err}
	}
	if err := config.Validate(cfg); err != nil {
		return configError{err}
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	traceStartup(cfg)
	r.cfg = cfg
	return nil
}

// NewRootCommand builds the command tree for argv and environ.
func NewRootCommand(argv, environ []string) *cobra.Command {
	r := &invocation{argv: append([]string(nil), argv...)}
	root := &cobra.Command{
		Use:               "menubar",
		Short:             "Keyboard and mouse driven menu bar for the terminal",
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: r.prepare,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), r.cfg.App)
		},
	}
	r.flags = config.RegisterFlags(root.PersistentFlags(), environ)
	root.AddCommand(
		newA11yCommand(r),
		newFindCommand(r),
		newVersionCommand(),
	)
	root.SetArgs(argv)
	return root
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context) int {
	root := NewRootCommand(os.Args[1:], os.Environ())
	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	var cfgErr configError
	if errors.As(err, &cfgErr) {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		return 2
	}
	logging.Error(err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}
