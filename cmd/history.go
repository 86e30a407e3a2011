package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/voltiz/internal/progress"
	"github.com/abhisek/voltiz/internal/ui/theme"
)

func newHistoryCmd(c *cli) *cobra.Command {
	var limit int
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent activity, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withEngine(cmd, func(ctx context.Context, e *progress.Engine) error {
				events, err := e.History(ctx, c.cfg.User, limit)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(events) == 0 {
					fmt.Fprintln(out, theme.Subtitle.Render("No activity yet."))
					return nil
				}
				for _, ev := range events {
					fmt.Fprintf(out, "%s  %-11s %-20s %s\n",
						ev.Timestamp.Local().Format("2006-01-02 15:04"), ev.Kind, ev.Subject, formatDetail(ev.Detail))
				}
				return nil
			})
		},
	}
	historyCmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of events to show (0 for all)")
	return historyCmd
}

func formatDetail(detail map[string]string) string {
	keys := make([]string, 0, len(detail))
	for k := range detail {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+detail[k])
	}
	return theme.Subtitle.Render(strings.Join(parts, " "))
}
