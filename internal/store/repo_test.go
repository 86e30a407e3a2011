package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepo_AttemptRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewRepo(NewMemory())

	d, err := repo.Attempt(ctx, "ada", "q1")
	require.NoError(t, err)
	assert.Zero(t, d.Attempts)

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.SaveAttempt(ctx, "ada", "q1", AttemptData{Attempts: 2, HintsRevealed: 1, UpdatedAt: now}))
	require.NoError(t, repo.SaveAttempt(ctx, "ada", "q/2", AttemptData{Attempts: 1, Solved: true, UpdatedAt: now}))
	require.NoError(t, repo.SaveAttempt(ctx, "ada/x", "q1", AttemptData{Attempts: 9, UpdatedAt: now}))

	d, err = repo.Attempt(ctx, "ada", "q1")
	require.NoError(t, err)
	assert.Equal(t, 2, d.Attempts)
	assert.Equal(t, 1, d.HintsRevealed)

	all, err := repo.Attempts(ctx, "ada")
	require.NoError(t, err)
	assert.Len(t, all, 2, "user IDs containing '/' must not leak into other namespaces")
	assert.True(t, all["q/2"].Solved)

	require.NoError(t, repo.DeleteAttempt(ctx, "ada", "q1"))
	d, err = repo.Attempt(ctx, "ada", "q1")
	require.NoError(t, err)
	assert.Zero(t, d.Attempts)
}

func TestRepo_CorruptedStateResetsToDefault(t *testing.T) {
	ctx := context.Background()
	mem := NewMemory()
	repo := NewRepo(mem)

	require.NoError(t, mem.Put(ctx, LedgerKey("ada"), []byte("{not json")))
	require.NoError(t, mem.Put(ctx, StreakKey("ada"), []byte(`{"current":"three"}`)))
	require.NoError(t, mem.Put(ctx, AttemptKey("ada", "q1"), []byte(`[]`)))

	ledger, err := repo.Ledger(ctx, "ada")
	require.NoError(t, err)
	assert.Empty(t, ledger.Unlocked)

	streak, err := repo.Streak(ctx, "ada")
	require.NoError(t, err)
	assert.Zero(t, streak.Current)

	attempt, err := repo.Attempt(ctx, "ada", "q1")
	require.NoError(t, err)
	assert.Zero(t, attempt.Attempts)

	// Writing again replaces the corrupt document.
	require.NoError(t, repo.SaveLedger(ctx, "ada", LedgerData{Unlocked: []BadgeUnlockData{{BadgeID: 1}}}))
	ledger, err = repo.Ledger(ctx, "ada")
	require.NoError(t, err)
	assert.Len(t, ledger.Unlocked, 1)
}

func TestRepo_CompletionsNeverNil(t *testing.T) {
	repo := NewRepo(NewMemory())
	c, err := repo.Completions(context.Background(), "ada")
	require.NoError(t, err)
	assert.NotNil(t, c.Categories)
}

func TestRepo_RecordWithoutEventLog(t *testing.T) {
	ctx := context.Background()
	repo := NewRepoKV(NewMemory())

	repo.Record(ctx, Event{UserID: "ada", Kind: EventAnswer})
	events, err := repo.RecentEvents(ctx, "ada", 10)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestRepo_RecordAppends(t *testing.T) {
	ctx := context.Background()
	repo := NewRepo(NewMemory())

	repo.Record(ctx, Event{UserID: "ada", Kind: EventAnswer, Subject: "q1"})
	events, err := repo.RecentEvents(ctx, "ada", 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int64(1), events[0].Sequence)
}

func TestKeys_Escaping(t *testing.T) {
	assert.Equal(t, "attempt/ada/q1", AttemptKey("ada", "q1"))
	assert.Equal(t, "attempt/a%2Fb/q1", AttemptKey("a/b", "q1"))
	assert.Equal(t, "ledger/ada", LedgerKey("ada"))

	qid, ok := questionFromAttemptKey("ada", AttemptKey("ada", "x/y"))
	assert.True(t, ok)
	assert.Equal(t, "x/y", qid)

	_, ok = questionFromAttemptKey("bob", AttemptKey("ada", "q1"))
	assert.False(t, ok)
}
