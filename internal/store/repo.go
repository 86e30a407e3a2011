package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Repo gives typed access to every persisted entity. All reads and writes
// of learner progress go through it; nothing else builds keys.
type Repo struct {
	kv     KV
	events EventLog
}

// NewRepo creates a Repo over a backend.
func NewRepo(b Backend) *Repo {
	return &Repo{kv: b, events: b}
}

// NewRepoKV creates a Repo without an activity log.
func NewRepoKV(kv KV) *Repo {
	return &Repo{kv: kv}
}

// load decodes the document at key into dst. A missing key leaves dst
// untouched. A document that fails to decode is logged and treated as
// missing: losing that entity's progress beats refusing to run.
func load[T any](ctx context.Context, kv KV, key string, dst *T) error {
	raw, found, err := kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("discarding unreadable stored state")
		return nil
	}
	*dst = v
	return nil
}

func save(ctx context.Context, kv KV, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}
	return kv.Put(ctx, key, b)
}

// Attempt returns the attempt record for (userID, questionID), zero if none.
func (r *Repo) Attempt(ctx context.Context, userID, questionID string) (AttemptData, error) {
	var d AttemptData
	err := load(ctx, r.kv, AttemptKey(userID, questionID), &d)
	return d, err
}

// SaveAttempt stores the attempt record for (userID, questionID).
func (r *Repo) SaveAttempt(ctx context.Context, userID, questionID string, d AttemptData) error {
	return save(ctx, r.kv, AttemptKey(userID, questionID), d)
}

// DeleteAttempt removes the attempt record for (userID, questionID).
func (r *Repo) DeleteAttempt(ctx context.Context, userID, questionID string) error {
	return r.kv.Delete(ctx, AttemptKey(userID, questionID))
}

// Attempts returns every stored attempt record of a user keyed by question ID.
func (r *Repo) Attempts(ctx context.Context, userID string) (map[string]AttemptData, error) {
	keys, err := r.kv.Keys(ctx, attemptUserPrefix(userID))
	if err != nil {
		return nil, err
	}
	out := make(map[string]AttemptData, len(keys))
	for _, k := range keys {
		qid, ok := questionFromAttemptKey(userID, k)
		if !ok {
			continue
		}
		var d AttemptData
		if err := load(ctx, r.kv, k, &d); err != nil {
			return nil, err
		}
		out[qid] = d
	}
	return out, nil
}

// Ledger returns the user's badge ledger.
func (r *Repo) Ledger(ctx context.Context, userID string) (LedgerData, error) {
	var d LedgerData
	err := load(ctx, r.kv, LedgerKey(userID), &d)
	return d, err
}

// SaveLedger stores the whole ledger in a single write.
func (r *Repo) SaveLedger(ctx context.Context, userID string, d LedgerData) error {
	return save(ctx, r.kv, LedgerKey(userID), d)
}

// Streak returns the user's streak state.
func (r *Repo) Streak(ctx context.Context, userID string) (StreakData, error) {
	var d StreakData
	err := load(ctx, r.kv, StreakKey(userID), &d)
	return d, err
}

// SaveStreak stores the user's streak state.
func (r *Repo) SaveStreak(ctx context.Context, userID string, d StreakData) error {
	return save(ctx, r.kv, StreakKey(userID), d)
}

// Certificates returns the user's certificates in issue order.
func (r *Repo) Certificates(ctx context.Context, userID string) (CertificatesData, error) {
	var d CertificatesData
	err := load(ctx, r.kv, CertificatesKey(userID), &d)
	return d, err
}

// SaveCertificates stores the user's certificate list.
func (r *Repo) SaveCertificates(ctx context.Context, userID string, d CertificatesData) error {
	return save(ctx, r.kv, CertificatesKey(userID), d)
}

// Completions returns the user's completed categories. The map is never nil.
func (r *Repo) Completions(ctx context.Context, userID string) (CompletionsData, error) {
	var d CompletionsData
	err := load(ctx, r.kv, CompletionsKey(userID), &d)
	if d.Categories == nil {
		d.Categories = make(map[string]CompletionData)
	}
	return d, err
}

// SaveCompletions stores the user's completed categories.
func (r *Repo) SaveCompletions(ctx context.Context, userID string, d CompletionsData) error {
	return save(ctx, r.kv, CompletionsKey(userID), d)
}

// Record appends ev to the activity log. Failures are logged, never
// returned: the activity log must not break the operation it describes.
func (r *Repo) Record(ctx context.Context, ev Event) {
	if r.events == nil {
		return
	}
	if err := r.events.AppendEvent(ctx, ev); err != nil {
		log.Warn().Err(err).Str("kind", ev.Kind).Str("user", ev.UserID).Msg("failed to record activity event")
	}
}

// RecentEvents returns the user's newest events first.
func (r *Repo) RecentEvents(ctx context.Context, userID string, limit int) ([]Event, error) {
	if r.events == nil {
		return nil, nil
	}
	return r.events.RecentEvents(ctx, userID, limit)
}
