package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/voltiz/internal/progress"
	"github.com/abhisek/voltiz/internal/streak"
	"github.com/abhisek/voltiz/internal/ui/components"
	"github.com/abhisek/voltiz/internal/ui/theme"
)

func newStatsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show points, rank, streak and per-quiz progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withEngine(cmd, func(ctx context.Context, e *progress.Engine) error {
				s, err := e.Summary(ctx, c.cfg.User)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()

				fmt.Fprintln(out, theme.Title.Render("⚡ "+c.cfg.User))
				fmt.Fprintf(out, "Rank: %s\n", s.Rank)
				fmt.Fprintf(out, "Points: %d (badges %d, daily bonus %d)\n", s.TotalPoints, s.Points, s.Streak.BonusPoints)
				fmt.Fprintf(out, "Badges: %d unlocked (%.0f%%)\n", s.Unlocked, s.CompletionPercent)
				fmt.Fprintf(out, "Certificates: %d\n", s.Certificates)

				streakLine := fmt.Sprintf("Streak: %d day(s), longest %d", s.Streak.Current, s.Streak.Longest)
				if !s.StreakActive && s.Streak.Current > 0 {
					streakLine += theme.Subtitle.Render("  (do today's challenge to keep it)")
				}
				fmt.Fprintln(out, streakLine)
				if next, ok := streak.NextTier(s.Streak); ok {
					fmt.Fprintln(out, theme.Subtitle.Render(fmt.Sprintf("Next reward: %s %s at %d days", next.Icon, next.Name, next.Days)))
				}

				fmt.Fprintln(out)
				for _, cp := range s.Categories {
					pct := 0.0
					if cp.Total > 0 {
						pct = float64(cp.Solved) * 100 / float64(cp.Total)
					}
					fmt.Fprintln(out, components.NewProgressBar(fmt.Sprintf("%-12s", cp.Category), pct, true, 50).View())
					if cp.Completed {
						fmt.Fprintln(out, theme.Correct.Render(fmt.Sprintf("  completed, score %.0f%%", cp.ScorePercent)))
					}
				}
				return nil
			})
		},
	}
}
