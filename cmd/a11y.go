package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/atomicstack/menubar/internal/a11y"
	"github.com/atomicstack/menubar/internal/app"
	"github.com/atomicstack/menubar/internal/menubar"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newA11yCommand(r *invocation) *cobra.Command {
	var (
		keys   string
		format string
		prefix string
	)
	cmd := &cobra.Command{
		Use:   "a11y",
		Short: "Print the accessibility tree after replaying an event script",
		Long: `Replays a script of events against the configured catalogue and prints
the resulting accessibility tree.

Script tokens are separated by spaces or commas: right, left, down, up, home,
end, enter, space, esc, tab, shift+tab, single characters (type-ahead),
click:<id>, hover:<id>, outside, blur and wait (type-ahead timeout).`,
		Example: `  menubar a11y --keys "down down right"
  menubar a11y --keys "click:view space" --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			script, err := menubar.ParseScript(keys)
			if err != nil {
				return fmt.Errorf("parse --keys: %w", err)
			}
			bar, err := app.LoadBar(r.cfg.App.MenuFile)
			if err != nil {
				return err
			}
			stderr := cmd.ErrOrStderr()
			mb := menubar.New(bar,
				menubar.WithIDPrefix(prefix),
				menubar.WithOnSelect(func(id string) { fmt.Fprintf(stderr, "selected %s\n", id) }),
			)
			if q := r.cfg.App.Focus; q != "" {
				if _, ok := mb.RevealQuery(q); !ok {
					return fmt.Errorf("no menu item matches %q", q)
				}
			}
			for _, ev := range script {
				mb.Dispatch(ev)
			}
			return writeTree(cmd.OutOrStdout(), mb.Tree(), format)
		},
	}
	cmd.Flags().StringVarP(&keys, "keys", "k", "", "event script to replay before printing")
	cmd.Flags().StringVar(&format, "format", "outline", "output format: outline, json or yaml")
	cmd.Flags().StringVar(&prefix, "prefix", "mb", "id prefix for accessibility ids")
	return cmd
}

func writeTree(w io.Writer, tree *a11y.Node, format string) error {
	switch format {
	case "outline":
		_, err := io.WriteString(w, tree.Outline())
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tree)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(tree); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown format %q (want outline, json or yaml)", format)
}
