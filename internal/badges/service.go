package badges

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/abhisek/voltiz/internal/store"
)

// Status is a catalog entry joined with the user's ledger.
type Status struct {
	Badge
	Unlocked   bool
	UnlockedAt *time.Time
}

// Standing summarizes a user's ledger.
type Standing struct {
	Unlocked          int
	Points            int
	CompletionPercent float64
	Rank              string
}

// Service manages the per-user badge ledger. Points are never stored;
// they are summed from the unlocked set on every read.
type Service struct {
	repo *store.Repo
	now  func() time.Time

	mu sync.Mutex
}

// NewService creates a badge service.
func NewService(repo *store.Repo) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Award unlocks badge id for userID. It returns false without touching
// the ledger when id is not in the catalog or is already unlocked.
func (s *Service) Award(ctx context.Context, userID string, id int) (bool, error) {
	b, ok := Lookup(id)
	if !ok {
		log.Debug().Str("user", userID).Int("badge", id).Msg("ignoring unknown badge")
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ledger, err := s.repo.Ledger(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("load ledger: %w", err)
	}
	for _, u := range ledger.Unlocked {
		if u.BadgeID == id {
			return false, nil
		}
	}

	now := s.now().UTC()
	ledger.Unlocked = append(ledger.Unlocked, store.BadgeUnlockData{BadgeID: id, UnlockedAt: now})
	if err := s.repo.SaveLedger(ctx, userID, ledger); err != nil {
		return false, fmt.Errorf("save ledger: %w", err)
	}

	log.Info().Str("user", userID).Int("badge", id).Str("name", b.Name).Msg("badge unlocked")
	s.repo.Record(ctx, store.Event{
		UserID:  userID,
		Kind:    store.EventBadge,
		Subject: strconv.Itoa(id),
		Detail: map[string]string{
			"name":   b.Name,
			"points": strconv.Itoa(b.Points),
		},
		Timestamp: now,
	})
	return true, nil
}

// unlocked returns the valid unlock times keyed by badge ID. Unknown IDs
// and repeated entries in a hand-edited ledger are dropped.
func (s *Service) unlocked(ctx context.Context, userID string) (map[int]time.Time, error) {
	ledger, err := s.repo.Ledger(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	out := make(map[int]time.Time, len(ledger.Unlocked))
	for _, u := range ledger.Unlocked {
		if _, ok := byID[u.BadgeID]; !ok {
			continue
		}
		if _, dup := out[u.BadgeID]; dup {
			continue
		}
		out[u.BadgeID] = u.UnlockedAt
	}
	return out, nil
}

// IsUnlocked reports whether userID holds badge id.
func (s *Service) IsUnlocked(ctx context.Context, userID string, id int) (bool, error) {
	u, err := s.unlocked(ctx, userID)
	if err != nil {
		return false, err
	}
	_, ok := u[id]
	return ok, nil
}

// All returns the whole catalog, ordered by ID, with unlock state.
func (s *Service) All(ctx context.Context, userID string) ([]Status, error) {
	u, err := s.unlocked(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]Status, 0, len(catalog))
	for _, b := range catalog {
		st := Status{Badge: b}
		if at, ok := u[b.ID]; ok {
			at := at
			st.Unlocked = true
			st.UnlockedAt = &at
		}
		out = append(out, st)
	}
	return out, nil
}

// TotalPoints returns the sum of points over the unlocked badges.
func (s *Service) TotalPoints(ctx context.Context, userID string) (int, error) {
	u, err := s.unlocked(ctx, userID)
	if err != nil {
		return 0, err
	}
	return sumPoints(u), nil
}

// UnlockedCount returns how many catalog badges userID holds.
func (s *Service) UnlockedCount(ctx context.Context, userID string) (int, error) {
	u, err := s.unlocked(ctx, userID)
	if err != nil {
		return 0, err
	}
	return len(u), nil
}

// Standing returns points, rank and completion for userID.
func (s *Service) Standing(ctx context.Context, userID string) (Standing, error) {
	u, err := s.unlocked(ctx, userID)
	if err != nil {
		return Standing{}, err
	}
	return Standing{
		Unlocked:          len(u),
		Points:            sumPoints(u),
		CompletionPercent: CompletionPercent(len(u)),
		Rank:              RankFor(len(u)),
	}, nil
}

func sumPoints(unlocked map[int]time.Time) int {
	total := 0
	for id := range unlocked {
		total += byID[id].Points
	}
	return total
}
