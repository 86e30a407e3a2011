package play

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/voltiz/internal/quiz"
)

// Run starts the Bubble Tea program and blocks until the learner quits.
func Run(ctx context.Context, grader Grader, userID, title string, questions []quiz.Question) error {
	p := tea.NewProgram(New(ctx, grader, userID, title, questions))
	_, err := p.Run()
	return err
}
