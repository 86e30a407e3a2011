package progress

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/abhisek/voltiz/internal/attempt"
	"github.com/abhisek/voltiz/internal/badges"
	"github.com/abhisek/voltiz/internal/certificate"
	"github.com/abhisek/voltiz/internal/quiz"
	"github.com/abhisek/voltiz/internal/store"
	"github.com/abhisek/voltiz/internal/streak"
)

// ErrCategoryIncomplete is returned when a certificate is requested for a
// quiz that has not been finished.
var ErrCategoryIncomplete = errors.New("category not completed")

// QuickStudyThreshold is the number of first-try solves for the Quick
// Study badge.
const QuickStudyThreshold = 5

// Options configures an Engine.
type Options struct {
	// MaxAttempts caps wrong answers per question. 0 is unlimited.
	MaxAttempts int

	// Rand draws certificate codes. Nil seeds one at random.
	Rand *rand.Rand

	// Now is the clock. Nil means time.Now.
	Now func() time.Time
}

// Engine runs answers through the attempt state machine and updates the
// ledger when a milestone is reached.
type Engine struct {
	bank *quiz.Bank
	repo *store.Repo

	Attempts     *attempt.Service
	Badges       *badges.Service
	Streaks      *streak.Service
	Certificates *certificate.Service

	now func() time.Time
	mu  sync.Mutex
}

// New wires an engine over bank and repo.
func New(bank *quiz.Bank, repo *store.Repo, opts Options) *Engine {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	rnd := opts.Rand
	if rnd == nil {
		rnd = certificate.NewRand(0)
	}
	return &Engine{
		bank:         bank,
		repo:         repo,
		Attempts:     attempt.NewService(repo, opts.MaxAttempts, attempt.WithClock(now)),
		Badges:       badges.NewService(repo),
		Streaks:      streak.NewService(repo),
		Certificates: certificate.NewService(repo, bank, rnd),
		now:          now,
	}
}

// Bank returns the question bank the engine grades against.
func (e *Engine) Bank() *quiz.Bank { return e.bank }

// Completion is a finished quiz category.
type Completion struct {
	Category     string
	ScorePercent float64
	CompletedAt  time.Time
}

// SubmitResult is the outcome of answering one question.
type SubmitResult struct {
	*attempt.Outcome
	Question *quiz.Question

	// NewBadges lists badges unlocked by this answer.
	NewBadges []badges.Badge

	// Completed is set when this answer finished the question's category.
	Completed *Completion
}

// Submit grades input against question qid for userID.
func (e *Engine) Submit(ctx context.Context, userID, qid, input string) (*SubmitResult, error) {
	q, err := e.bank.Question(qid)
	if err != nil {
		return nil, err
	}

	out, err := e.Attempts.Submit(ctx, userID, q, input)
	if err != nil {
		return nil, err
	}
	res := &SubmitResult{Outcome: out, Question: q}
	if !out.Counted || !out.Phase.Terminal() {
		return res, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if out.Correct {
		if err := e.award(ctx, userID, badges.FirstSpark, res); err != nil {
			return nil, err
		}
		if out.Record.FirstTry() {
			if err := e.award(ctx, userID, badges.HintFreeHero, res); err != nil {
				return nil, err
			}
		}
	}

	records, err := e.Attempts.Records(ctx, userID)
	if err != nil {
		return nil, err
	}

	if out.Correct && e.firstTrySolves(records) >= QuickStudyThreshold {
		if err := e.award(ctx, userID, badges.QuickStudy, res); err != nil {
			return nil, err
		}
	}

	if err := e.checkCompletion(ctx, userID, q.Category, records, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (e *Engine) firstTrySolves(records map[string]attempt.Record) int {
	n := 0
	for _, q := range e.bank.Questions() {
		if records[q.ID].FirstTry() {
			n++
		}
	}
	return n
}

// checkCompletion stores a completion once every question of category is
// solved or out of attempts. A repeat run only replaces a lower score.
func (e *Engine) checkCompletion(ctx context.Context, userID, category string, records map[string]attempt.Record, res *SubmitResult) error {
	ids := e.bank.QuestionIDs(category)
	firstTry := 0
	for _, id := range ids {
		rec := records[id]
		if !rec.Phase(e.Attempts.MaxAttempts()).Terminal() {
			return nil
		}
		if rec.FirstTry() {
			firstTry++
		}
	}
	score := float64(firstTry) / float64(len(ids)) * 100

	completions, err := e.repo.Completions(ctx, userID)
	if err != nil {
		return fmt.Errorf("load completions: %w", err)
	}
	now := e.now().UTC()
	if prev, ok := completions.Categories[category]; !ok || score > prev.ScorePercent {
		completions.Categories[category] = store.CompletionData{ScorePercent: score, CompletedAt: now}
		if err := e.repo.SaveCompletions(ctx, userID, completions); err != nil {
			return fmt.Errorf("save completions: %w", err)
		}
	}
	res.Completed = &Completion{Category: category, ScorePercent: score, CompletedAt: now}

	log.Info().Str("user", userID).Str("category", category).Float64("score", score).Msg("quiz completed")
	e.repo.Record(ctx, store.Event{
		UserID:    userID,
		Kind:      store.EventCompletion,
		Subject:   category,
		Detail:    map[string]string{"score": strconv.FormatFloat(score, 'f', 1, 64)},
		Timestamp: now,
	})

	if id, ok := badges.ForCategory(category); ok {
		if err := e.award(ctx, userID, id, res); err != nil {
			return err
		}
	}
	if score == 100 {
		if err := e.award(ctx, userID, badges.PerfectCircuit, res); err != nil {
			return err
		}
	}
	for _, c := range e.bank.Categories() {
		if _, ok := completions.Categories[c.ID]; !ok {
			return nil
		}
	}
	return e.award(ctx, userID, badges.MasterMaker, res)
}

func (e *Engine) award(ctx context.Context, userID string, id int, res *SubmitResult) error {
	b, err := e.awardBadge(ctx, userID, id)
	if err != nil {
		return err
	}
	if b != nil {
		res.NewBadges = append(res.NewBadges, *b)
	}
	return nil
}

func (e *Engine) awardBadge(ctx context.Context, userID string, id int) (*badges.Badge, error) {
	ok, err := e.Badges.Award(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("award badge %d: %w", id, err)
	}
	if !ok {
		return nil, nil
	}
	b, _ := badges.Lookup(id)
	return &b, nil
}

// Hint reveals the next hint of qid.
func (e *Engine) Hint(ctx context.Context, userID, qid string) (*quiz.Question, attempt.Hint, bool, error) {
	q, err := e.bank.Question(qid)
	if err != nil {
		return nil, attempt.Hint{}, false, err
	}
	h, ok, err := e.Attempts.RequestHint(ctx, userID, q)
	return q, h, ok, err
}

// Reset clears the attempt record of one question.
func (e *Engine) Reset(ctx context.Context, userID, qid string) error {
	if _, err := e.bank.Question(qid); err != nil {
		return err
	}
	return e.Attempts.Reset(ctx, userID, qid)
}

// RestartQuiz clears the attempt records of every question in category.
// Completions, badges and certificates are kept.
func (e *Engine) RestartQuiz(ctx context.Context, userID, category string) error {
	if !e.bank.HasCategory(category) {
		return fmt.Errorf("%w: %q", certificate.ErrUnknownCategory, category)
	}
	return e.Attempts.ResetAll(ctx, userID, e.bank.QuestionIDs(category))
}

// DailyResult is the outcome of a daily challenge.
type DailyResult struct {
	*streak.Result
	NewBadges []badges.Badge
}

// CompleteDailyChallenge records today's challenge and awards the streak
// badges for any reward tier reached.
func (e *Engine) CompleteDailyChallenge(ctx context.Context, userID string) (*DailyResult, error) {
	r, err := e.Streaks.RecordDay(ctx, userID, e.now())
	if err != nil {
		return nil, err
	}
	res := &DailyResult{Result: r}
	for _, tier := range r.NewTiers {
		id, ok := badges.ForStreakTier(tier.Days)
		if !ok {
			continue
		}
		b, err := e.awardBadge(ctx, userID, id)
		if err != nil {
			return nil, err
		}
		if b != nil {
			res.NewBadges = append(res.NewBadges, *b)
		}
	}
	return res, nil
}

// IssueCertificate issues a certificate for a completed category using
// the stored completion score.
func (e *Engine) IssueCertificate(ctx context.Context, userID, category string) (*certificate.Certificate, []badges.Badge, error) {
	if !e.bank.HasCategory(category) {
		return nil, nil, fmt.Errorf("%w: %q", certificate.ErrUnknownCategory, category)
	}

	completions, err := e.repo.Completions(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("load completions: %w", err)
	}
	done, ok := completions.Categories[category]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrCategoryIncomplete, category)
	}

	earned, err := e.Badges.UnlockedCount(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	cert, err := e.Certificates.Issue(ctx, userID, category, done.ScorePercent, earned, e.now())
	if err != nil {
		return nil, nil, err
	}

	var unlocked []badges.Badge
	b, err := e.awardBadge(ctx, userID, badges.Certified)
	if err != nil {
		return nil, nil, err
	}
	if b != nil {
		unlocked = append(unlocked, *b)
	}
	return cert, unlocked, nil
}

// History returns userID's recent activity, newest first.
func (e *Engine) History(ctx context.Context, userID string, limit int) ([]store.Event, error) {
	return e.repo.RecentEvents(ctx, userID, limit)
}
