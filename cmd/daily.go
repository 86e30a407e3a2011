package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/voltiz/internal/progress"
	"github.com/abhisek/voltiz/internal/streak"
	"github.com/abhisek/voltiz/internal/ui/theme"
)

func newDailyCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "daily",
		Short: "Complete today's daily challenge and extend your streak",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withEngine(cmd, func(ctx context.Context, e *progress.Engine) error {
				res, err := e.CompleteDailyChallenge(ctx, c.cfg.User)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if !res.Counted {
					fmt.Fprintln(out, theme.Subtitle.Render("Today's challenge is already done."))
				} else {
					fmt.Fprintln(out, theme.Correct.Render(fmt.Sprintf("🔥 Streak: %d day(s) (+%d bonus points)",
						res.State.Current, streak.DailyBonus)))
				}
				for _, t := range res.NewTiers {
					fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("%s %s reward unlocked!", t.Icon, t.Name)))
				}
				printBadges(out, res.NewBadges)
				return nil
			})
		},
	}
}
