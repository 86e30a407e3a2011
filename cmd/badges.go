package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/voltiz/internal/progress"
	"github.com/abhisek/voltiz/internal/ui/theme"
)

func newBadgesCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "badges",
		Short: "List every badge and whether you have unlocked it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withEngine(cmd, func(ctx context.Context, e *progress.Engine) error {
				all, err := e.Badges.All(ctx, c.cfg.User)
				if err != nil {
					return err
				}
				standing, err := e.Badges.Standing(ctx, c.cfg.User)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				for _, s := range all {
					b := s.Badge
					line := fmt.Sprintf("%2d %s %-18s %-9s %3d pts  %s",
						b.ID, b.Icon, b.Name, b.Rarity.DisplayName(), b.Points, b.Description)
					if s.Unlocked {
						fmt.Fprintln(out, theme.RarityColor(string(b.Rarity)).Render(line))
					} else {
						fmt.Fprintln(out, theme.Locked.Render(line))
					}
				}
				fmt.Fprintln(out)
				fmt.Fprintf(out, "%d/%d unlocked (%.0f%%), %d points, rank: %s\n",
					standing.Unlocked, len(all), standing.CompletionPercent, standing.Points, standing.Rank)
				return nil
			})
		},
	}
}
