package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/voltiz/internal/progress"
	"github.com/abhisek/voltiz/internal/ui/theme"
)

func newQuizCmd(c *cli) *cobra.Command {
	quizCmd := &cobra.Command{
		Use:   "quiz",
		Short: "Browse the question bank",
	}

	var category string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List questions with your progress on each",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withEngine(cmd, func(ctx context.Context, e *progress.Engine) error {
				bank := e.Bank()
				if category != "" && !bank.HasCategory(category) {
					return errUnknownCategory(category)
				}
				records, err := e.Attempts.Records(ctx, c.cfg.User)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				for _, cat := range bank.Categories() {
					if category != "" && cat.ID != category {
						continue
					}
					fmt.Fprintln(out, theme.Title.Render(cat.Title)+" "+theme.Subtitle.Render("("+cat.ID+")"))
					for _, q := range bank.ByCategory(cat.ID) {
						phase := records[q.ID].Phase(e.Attempts.MaxAttempts())
						fmt.Fprintf(out, "  %-20s %-7s %s\n", q.ID, q.Difficulty, phase.DisplayName())
					}
				}
				return nil
			})
		},
	}
	listCmd.Flags().StringVar(&category, "category", "", "Only list this category")

	quizCmd.AddCommand(listCmd)
	return quizCmd
}
