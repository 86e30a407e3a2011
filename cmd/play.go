package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abhisek/voltiz/internal/progress"
	"github.com/abhisek/voltiz/internal/quiz"
	"github.com/abhisek/voltiz/internal/screens/play"
)

func newPlayCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "play <category>",
		Short: "Work through the unanswered questions of a quiz interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withEngine(cmd, func(ctx context.Context, e *progress.Engine) error {
				questions, title, err := pendingQuestions(ctx, e, c.cfg.User, args[0])
				if err != nil {
					return err
				}
				return play.Run(ctx, e, c.cfg.User, title, questions)
			})
		},
	}
}

// pendingQuestions returns the questions of category that can still be
// answered, in bank order.
func pendingQuestions(ctx context.Context, e *progress.Engine, userID, category string) ([]quiz.Question, string, error) {
	var title string
	for _, cat := range e.Bank().Categories() {
		if cat.ID == category {
			title = cat.Title
		}
	}
	if title == "" {
		return nil, "", errUnknownCategory(category)
	}

	records, err := e.Attempts.Records(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	var pending []quiz.Question
	for _, q := range e.Bank().ByCategory(category) {
		if !records[q.ID].Phase(e.Attempts.MaxAttempts()).Terminal() {
			pending = append(pending, q)
		}
	}
	return pending, title, nil
}
