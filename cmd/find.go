package cmd

import (
	"fmt"
	"strings"

	"github.com/atomicstack/menubar/internal/app"
	"github.com/atomicstack/menubar/internal/format/table"
	"github.com/atomicstack/menubar/internal/menu"
	"github.com/spf13/cobra"
)

func newFindCommand(r *invocation) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "find <query>",
		Short: "Fuzzy search item labels and print their ids and paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bar, err := app.LoadBar(r.cfg.App.MenuFile)
			if err != nil {
				return err
			}
			query := strings.Join(args, " ")
			matches := menu.Search(bar, query)
			if len(matches) == 0 {
				return fmt.Errorf("no items match %q", query)
			}
			if limit > 0 && len(matches) > limit {
				matches = matches[:limit]
			}
			rows := make([][]string, len(matches))
			for i, match := range matches {
				rows[i] = []string{match.ID, match.Path(" › ")}
			}
			out := cmd.OutOrStdout()
			for _, line := range table.Format(rows, nil) {
				fmt.Fprintln(out, strings.TrimRight(line, " "))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of matches (0 prints all)")
	return cmd
}
