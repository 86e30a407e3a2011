package streak

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/voltiz/internal/store"
)

func TestService_RecordDay(t *testing.T) {
	repo := store.NewRepo(store.NewMemory())
	svc := NewService(repo)
	ctx := context.Background()

	var tiers []int
	for d := 1; d <= 7; d++ {
		res, err := svc.RecordDay(ctx, "ada", day(d))
		require.NoError(t, err)
		assert.True(t, res.Counted)
		for _, tier := range res.NewTiers {
			tiers = append(tiers, tier.Days)
		}
	}
	assert.Equal(t, []int{3, 7}, tiers)

	res, err := svc.RecordDay(ctx, "ada", day(7))
	require.NoError(t, err)
	assert.False(t, res.Counted)
	assert.Empty(t, res.NewTiers)

	st, err := svc.Get(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, 7, st.Current)
	assert.Equal(t, 7, st.Longest)
	assert.Equal(t, 70, st.BonusPoints)
	assert.Equal(t, "2026-01-07", st.LastDay)
}

func TestService_BrokenStreakKeepsRewards(t *testing.T) {
	repo := store.NewRepo(store.NewMemory())
	svc := NewService(repo)
	ctx := context.Background()

	for _, d := range []int{1, 2, 3, 10} {
		_, err := svc.RecordDay(ctx, "ada", day(d))
		require.NoError(t, err)
	}

	st, err := svc.Get(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, 1, st.Current)
	assert.True(t, Rewards(st)[0].Unlocked)
}

func TestService_RecordsEvent(t *testing.T) {
	repo := store.NewRepo(store.NewMemory())
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.RecordDay(ctx, "ada", day(1))
	require.NoError(t, err)
	_, err = svc.RecordDay(ctx, "ada", day(1))
	require.NoError(t, err)

	events, err := repo.RecentEvents(ctx, "ada", 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, store.EventStreak, events[0].Kind)
	assert.Equal(t, "2026-01-01", events[0].Subject)
}
