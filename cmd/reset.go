package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/voltiz/internal/progress"
)

func newResetCmd(c *cli) *cobra.Command {
	var category string
	resetCmd := &cobra.Command{
		Use:   "reset [question-id]",
		Short: "Reset attempts for a question, or a whole quiz with --category",
		Long: "Reset clears attempts and hints. Badges, streaks, completions and\n" +
			"certificates are kept.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (len(args) == 1) == (category != "") {
				return errors.New("give either a question ID or --category")
			}
			return c.withEngine(cmd, func(ctx context.Context, e *progress.Engine) error {
				if category != "" {
					if err := e.RestartQuiz(ctx, c.cfg.User, category); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Quiz %q restarted.\n", category)
					return nil
				}
				if err := e.Reset(ctx, c.cfg.User, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Question %q reset.\n", args[0])
				return nil
			})
		},
	}
	resetCmd.Flags().StringVar(&category, "category", "", "Restart every question in this category")
	return resetCmd
}
