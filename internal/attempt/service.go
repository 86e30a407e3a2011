package attempt

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/abhisek/voltiz/internal/quiz"
	"github.com/abhisek/voltiz/internal/store"
)

// Outcome is the result of one submission.
type Outcome struct {
	Correct bool

	// Counted is false when the question was already solved or exhausted
	// and the submission changed nothing.
	Counted bool

	Record Record
	Phase  Phase

	// Hint is set when this submission revealed the first hint.
	Hint string
}

// Hint is a revealed hint.
type Hint struct {
	Text  string
	Index int // 1-based
	Total int

	// New is false when every hint was already revealed.
	New bool
}

// Service drives the per-question attempt and hint counters.
type Service struct {
	repo        *store.Repo
	maxAttempts int
	now         func() time.Time

	mu sync.Mutex
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates an attempt service. maxAttempts <= 0 disables the
// exhausted phase.
func NewService(repo *store.Repo, maxAttempts int, opts ...Option) *Service {
	s := &Service{
		repo:        repo,
		maxAttempts: maxAttempts,
		now:         time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// MaxAttempts returns the configured attempt cap, 0 for unlimited.
func (s *Service) MaxAttempts() int { return s.maxAttempts }

// Get returns the attempt record of (userID, questionID).
func (s *Service) Get(ctx context.Context, userID, questionID string) (Record, error) {
	d, err := s.repo.Attempt(ctx, userID, questionID)
	if err != nil {
		return Record{}, err
	}
	return recordFromData(d), nil
}

// Records returns every attempt record of a user keyed by question ID.
func (s *Service) Records(ctx context.Context, userID string) (map[string]Record, error) {
	all, err := s.repo.Attempts(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make(map[string]Record, len(all))
	for qid, d := range all {
		out[qid] = recordFromData(d)
	}
	return out, nil
}

// Submit counts one answer to q and evaluates it. The attempt is counted
// before the answer is checked, so a wrong answer always costs one attempt.
func (s *Service) Submit(ctx context.Context, userID string, q *quiz.Question, input string) (*Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.Get(ctx, userID, q.ID)
	if err != nil {
		return nil, fmt.Errorf("load attempt: %w", err)
	}
	rec.clampHints(len(q.Hints))

	if phase := rec.Phase(s.maxAttempts); phase.Terminal() {
		return &Outcome{Correct: rec.Solved, Record: rec, Phase: phase}, nil
	}

	now := s.now().UTC()
	rec.Attempts++
	out := &Outcome{Counted: true}

	if q.Check(input) {
		out.Correct = true
		rec.Solved = true
		rec.SolvedAt = &now
	} else if rec.Attempts == AutoHintAfter && rec.HintsRevealed == 0 && len(q.Hints) > 0 {
		rec.HintsRevealed = 1
		rec.AutoHinted = true
		out.Hint = q.Hints[0]
	}
	rec.UpdatedAt = now

	if err := s.repo.SaveAttempt(ctx, userID, q.ID, rec.data()); err != nil {
		return nil, fmt.Errorf("save attempt: %w", err)
	}

	out.Record = rec
	out.Phase = rec.Phase(s.maxAttempts)

	log.Debug().
		Str("user", userID).
		Str("question", q.ID).
		Int("attempt", rec.Attempts).
		Bool("correct", out.Correct).
		Msg("answer submitted")

	s.repo.Record(ctx, store.Event{
		UserID:  userID,
		Kind:    store.EventAnswer,
		Subject: q.ID,
		Detail: map[string]string{
			"input":   input,
			"correct": strconv.FormatBool(out.Correct),
			"attempt": strconv.Itoa(rec.Attempts),
		},
		Timestamp: now,
	})
	if out.Hint != "" {
		s.repo.Record(ctx, store.Event{
			UserID:    userID,
			Kind:      store.EventHint,
			Subject:   q.ID,
			Detail:    map[string]string{"index": "1", "auto": "true"},
			Timestamp: now,
		})
	}
	return out, nil
}

// RequestHint reveals the next hint of q. Once every hint is shown it
// keeps returning the last one. ok is false when q has no hints.
func (s *Service) RequestHint(ctx context.Context, userID string, q *quiz.Question) (hint Hint, ok bool, err error) {
	if len(q.Hints) == 0 {
		return Hint{}, false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.Get(ctx, userID, q.ID)
	if err != nil {
		return Hint{}, false, fmt.Errorf("load attempt: %w", err)
	}
	rec.clampHints(len(q.Hints))

	hint.Total = len(q.Hints)
	if rec.HintsRevealed < len(q.Hints) {
		now := s.now().UTC()
		rec.HintsRevealed++
		rec.UpdatedAt = now
		if err := s.repo.SaveAttempt(ctx, userID, q.ID, rec.data()); err != nil {
			return Hint{}, false, fmt.Errorf("save attempt: %w", err)
		}
		hint.New = true
		s.repo.Record(ctx, store.Event{
			UserID:    userID,
			Kind:      store.EventHint,
			Subject:   q.ID,
			Detail:    map[string]string{"index": strconv.Itoa(rec.HintsRevealed)},
			Timestamp: now,
		})
	}
	hint.Index = rec.HintsRevealed
	hint.Text = q.Hints[rec.HintsRevealed-1]
	return hint, true, nil
}

// Reset zeroes the counters of one (user, question) pair. Nothing else
// is touched.
func (s *Service) Reset(ctx context.Context, userID, questionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reset(ctx, userID, questionID)
}

// ResetAll resets every listed question, restarting a quiz.
func (s *Service) ResetAll(ctx context.Context, userID string, questionIDs []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, qid := range questionIDs {
		if err := s.reset(ctx, userID, qid); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) reset(ctx context.Context, userID, questionID string) error {
	if err := s.repo.DeleteAttempt(ctx, userID, questionID); err != nil {
		return fmt.Errorf("reset %s: %w", questionID, err)
	}
	s.repo.Record(ctx, store.Event{
		UserID:    userID,
		Kind:      store.EventReset,
		Subject:   questionID,
		Timestamp: s.now().UTC(),
	})
	return nil
}
