package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/voltiz/internal/attempt"
	"github.com/abhisek/voltiz/internal/progress"
	"github.com/abhisek/voltiz/internal/ui/theme"
)

func newAnswerCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "answer <question-id> <value>",
		Short:   "Submit an answer, e.g. voltiz answer res-color-code 10k",
		Example: "  voltiz answer cap-series 50nF\n  voltiz answer res-ohms-law 3 kohm",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.Join(args[1:], " ")
			return c.withEngine(cmd, func(ctx context.Context, e *progress.Engine) error {
				res, err := e.Submit(ctx, c.cfg.User, args[0], input)
				if err != nil {
					return err
				}
				printSubmit(cmd, res)
				return nil
			})
		},
	}
}

func printSubmit(cmd *cobra.Command, res *progress.SubmitResult) {
	out := cmd.OutOrStdout()

	if !res.Counted {
		switch res.Phase {
		case attempt.PhaseCorrect:
			fmt.Fprintln(out, theme.Subtitle.Render("Already solved. Reset it to try again."))
		default:
			fmt.Fprintln(out, theme.Subtitle.Render("No attempts left. The answer was "+res.Question.AnswerText+"."))
		}
		return
	}

	switch {
	case res.Correct:
		fmt.Fprintln(out, theme.Correct.Render("✓ Correct!"))
		if res.Question.Explanation != "" {
			fmt.Fprintln(out, theme.Subtitle.Render(res.Question.Explanation))
		}
	case res.Phase == attempt.PhaseExhausted:
		printError(out, "✗ Out of attempts. The answer was "+res.Question.AnswerText+".")
	default:
		printError(out, fmt.Sprintf("✗ Not quite (attempt %d)", res.Record.Attempts))
	}

	if res.Hint != "" {
		fmt.Fprintln(out, theme.Hint.Render("Hint: "+res.Hint))
	}
	printBadges(out, res.NewBadges)
	if res.Completed != nil {
		fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("Quiz %q complete! First-try score: %.0f%%",
			res.Completed.Category, res.Completed.ScorePercent)))
	}
}

func newHintCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "hint <question-id>",
		Short: "Reveal the next hint for a question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withEngine(cmd, func(ctx context.Context, e *progress.Engine) error {
				_, h, ok, err := e.Hint(ctx, c.cfg.User, args[0])
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if !ok {
					fmt.Fprintln(out, theme.Subtitle.Render("This question has no hints."))
					return nil
				}
				fmt.Fprintln(out, theme.Hint.Render(fmt.Sprintf("Hint %d/%d: %s", h.Index, h.Total, h.Text)))
				if !h.New {
					fmt.Fprintln(out, theme.Subtitle.Render("Every hint is already revealed."))
				}
				return nil
			})
		},
	}
}
