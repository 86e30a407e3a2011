package progress

import (
	"context"

	"github.com/abhisek/voltiz/internal/badges"
	"github.com/abhisek/voltiz/internal/streak"
)

// Summary is the derived view of a user's progress. Nothing in it is
// stored; every field is recomputed on read.
type Summary struct {
	badges.Standing

	Streak       streak.State
	StreakActive bool
	Rewards      []streak.Reward

	// TotalPoints is badge points plus daily-challenge bonus points.
	TotalPoints int

	Categories   []CategoryProgress
	Certificates int
}

// CategoryProgress is a user's state in one quiz category.
type CategoryProgress struct {
	Category string
	Title    string
	Total    int
	Solved   int
	FirstTry int

	Completed    bool
	ScorePercent float64
}

// Summary computes the progress summary of userID.
func (e *Engine) Summary(ctx context.Context, userID string) (*Summary, error) {
	standing, err := e.Badges.Standing(ctx, userID)
	if err != nil {
		return nil, err
	}
	st, err := e.Streaks.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	cats, err := e.Categories(ctx, userID)
	if err != nil {
		return nil, err
	}
	certs, err := e.Certificates.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Standing:     standing,
		Streak:       st,
		StreakActive: st.ActiveOn(e.now()),
		Rewards:      streak.Rewards(st),
		TotalPoints:  standing.Points + st.BonusPoints,
		Categories:   cats,
		Certificates: len(certs),
	}, nil
}

// Categories returns per-category progress in bank order.
func (e *Engine) Categories(ctx context.Context, userID string) ([]CategoryProgress, error) {
	records, err := e.Attempts.Records(ctx, userID)
	if err != nil {
		return nil, err
	}
	completions, err := e.repo.Completions(ctx, userID)
	if err != nil {
		return nil, err
	}

	var out []CategoryProgress
	for _, c := range e.bank.Categories() {
		cp := CategoryProgress{Category: c.ID, Title: c.Title}
		for _, id := range e.bank.QuestionIDs(c.ID) {
			cp.Total++
			rec := records[id]
			if rec.Solved {
				cp.Solved++
			}
			if rec.FirstTry() {
				cp.FirstTry++
			}
		}
		if done, ok := completions.Categories[c.ID]; ok {
			cp.Completed = true
			cp.ScorePercent = done.ScorePercent
		}
		out = append(out, cp)
	}
	return out, nil
}
