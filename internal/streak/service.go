package streak

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/abhisek/voltiz/internal/store"
)

// Result is the outcome of completing a daily challenge.
type Result struct {
	State State

	// Counted is false when the challenge was already done that day.
	Counted bool

	// NewTiers lists reward tiers reached by this completion.
	NewTiers []Tier
}

// Service persists streak state.
type Service struct {
	repo *store.Repo
	mu   sync.Mutex
}

// NewService creates a streak service.
func NewService(repo *store.Repo) *Service {
	return &Service{repo: repo}
}

// Get returns the stored streak of userID.
func (s *Service) Get(ctx context.Context, userID string) (State, error) {
	d, err := s.repo.Streak(ctx, userID)
	if err != nil {
		return State{}, fmt.Errorf("load streak: %w", err)
	}
	return State{
		Current:     d.Current,
		Longest:     d.Longest,
		BonusPoints: d.BonusPoints,
		LastDay:     d.LastActiveDay,
	}, nil
}

// RecordDay completes the daily challenge for the day of now.
func (s *Service) RecordDay(ctx context.Context, userID string, now time.Time) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	before := st.Longest
	if !st.RecordDay(now) {
		return &Result{State: st}, nil
	}

	err = s.repo.SaveStreak(ctx, userID, store.StreakData{
		Current:       st.Current,
		Longest:       st.Longest,
		BonusPoints:   st.BonusPoints,
		LastActiveDay: st.LastDay,
	})
	if err != nil {
		return nil, fmt.Errorf("save streak: %w", err)
	}

	log.Info().Str("user", userID).Int("current", st.Current).Int("longest", st.Longest).Msg("daily challenge completed")
	s.repo.Record(ctx, store.Event{
		UserID:  userID,
		Kind:    store.EventStreak,
		Subject: st.LastDay,
		Detail: map[string]string{
			"current": strconv.Itoa(st.Current),
			"longest": strconv.Itoa(st.Longest),
		},
		Timestamp: now.UTC(),
	})

	return &Result{State: st, Counted: true, NewTiers: crossed(before, st.Longest)}, nil
}
