package progress

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/voltiz/internal/attempt"
	"github.com/abhisek/voltiz/internal/badges"
	"github.com/abhisek/voltiz/internal/certificate"
	"github.com/abhisek/voltiz/internal/quiz"
	"github.com/abhisek/voltiz/internal/store"
)

const testBankJSON = `{
  "version": "v1.0.0",
  "categories": [
    {"id": "resistors", "title": "Resistors"},
    {"id": "capacitors", "title": "Capacitors"}
  ],
  "questions": [
    {"id": "r1", "category": "resistors", "difficulty": "easy", "prompt": "p", "answer": "10k", "tolerance": 10, "hints": ["h1", "h2"], "explanation": "e"},
    {"id": "r2", "category": "resistors", "difficulty": "easy", "prompt": "p", "answer": "3k", "hints": ["h1"], "explanation": "e"},
    {"id": "r3", "category": "resistors", "difficulty": "easy", "prompt": "p", "accept": ["ground", "gnd"], "hints": ["h1"], "explanation": "e"},
    {"id": "c1", "category": "capacitors", "difficulty": "easy", "prompt": "p", "answer": "100nF", "hints": ["h1"], "explanation": "e"},
    {"id": "c2", "category": "capacitors", "difficulty": "easy", "prompt": "p", "answer": "1uF", "hints": ["h1"], "explanation": "e"}
  ]
}`

var answers = map[string]string{
	"r1": "10k",
	"r2": "3000",
	"r3": "GND",
	"c1": "0.1uF",
	"c2": "1 uf",
}

type testClock struct{ t time.Time }

func (c *testClock) now() time.Time { return c.t }

func newTestEngine(t *testing.T, maxAttempts int) (*Engine, *testClock) {
	t.Helper()
	bank, err := quiz.Load([]byte(testBankJSON))
	require.NoError(t, err)

	clock := &testClock{t: time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)}
	e := New(bank, store.NewRepo(store.NewMemory()), Options{
		MaxAttempts: maxAttempts,
		Rand:        certificate.NewRand(99),
		Now:         clock.now,
	})
	return e, clock
}

func badgeIDs(bs []badges.Badge) []int {
	var ids []int
	for _, b := range bs {
		ids = append(ids, b.ID)
	}
	return ids
}

func TestSubmit_FirstCorrectAnswer(t *testing.T) {
	e, _ := newTestEngine(t, 0)
	ctx := context.Background()

	res, err := e.Submit(ctx, "ada", "r1", "10.5k")
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Equal(t, []int{badges.FirstSpark, badges.HintFreeHero}, badgeIDs(res.NewBadges))
	assert.Nil(t, res.Completed)

	res, err = e.Submit(ctx, "ada", "r2", "3k")
	require.NoError(t, err)
	assert.Empty(t, res.NewBadges, "badges unlock once")
}

func TestSubmit_WrongAnswerAwardsNothing(t *testing.T) {
	e, _ := newTestEngine(t, 0)
	ctx := context.Background()

	res, err := e.Submit(ctx, "ada", "r1", "12k")
	require.NoError(t, err)
	assert.False(t, res.Correct)
	assert.Empty(t, res.NewBadges)

	points, err := e.Badges.TotalPoints(ctx, "ada")
	require.NoError(t, err)
	assert.Zero(t, points)
}

func TestSubmit_UnknownQuestion(t *testing.T) {
	e, _ := newTestEngine(t, 0)
	_, err := e.Submit(context.Background(), "ada", "nope", "1")
	assert.ErrorIs(t, err, quiz.ErrUnknownQuestion)
}

func TestSubmit_CompletesCategoryWithPerfectScore(t *testing.T) {
	e, _ := newTestEngine(t, 0)
	ctx := context.Background()

	var last *SubmitResult
	for _, id := range []string{"r1", "r2", "r3"} {
		res, err := e.Submit(ctx, "ada", id, answers[id])
		require.NoError(t, err)
		require.True(t, res.Correct, id)
		last = res
	}

	require.NotNil(t, last.Completed)
	assert.Equal(t, "resistors", last.Completed.Category)
	assert.Equal(t, 100.0, last.Completed.ScorePercent)
	assert.Contains(t, badgeIDs(last.NewBadges), badges.OhmsApprentice)
	assert.Contains(t, badgeIDs(last.NewBadges), badges.PerfectCircuit)
	assert.NotContains(t, badgeIDs(last.NewBadges), badges.MasterMaker)
}

func TestSubmit_CompletionScoreCountsFirstTries(t *testing.T) {
	e, _ := newTestEngine(t, 0)
	ctx := context.Background()

	_, err := e.Submit(ctx, "ada", "c1", "1nF")
	require.NoError(t, err)
	_, err = e.Submit(ctx, "ada", "c1", answers["c1"])
	require.NoError(t, err)
	res, err := e.Submit(ctx, "ada", "c2", answers["c2"])
	require.NoError(t, err)

	require.NotNil(t, res.Completed)
	assert.Equal(t, 50.0, res.Completed.ScorePercent)
	assert.Contains(t, badgeIDs(res.NewBadges), badges.CapacitorKeeper)
	assert.NotContains(t, badgeIDs(res.NewBadges), badges.PerfectCircuit)
}

func TestSubmit_QuickStudyAndMasterMaker(t *testing.T) {
	e, _ := newTestEngine(t, 0)
	ctx := context.Background()

	var unlocked []int
	for _, id := range []string{"r1", "r2", "r3", "c1", "c2"} {
		res, err := e.Submit(ctx, "ada", id, answers[id])
		require.NoError(t, err)
		unlocked = append(unlocked, badgeIDs(res.NewBadges)...)
	}

	assert.Contains(t, unlocked, badges.QuickStudy)
	assert.Contains(t, unlocked, badges.MasterMaker)
	assert.Contains(t, unlocked, badges.CapacitorKeeper)
}

func TestSubmit_ExhaustedQuestionsStillComplete(t *testing.T) {
	e, _ := newTestEngine(t, 1)
	ctx := context.Background()

	var last *SubmitResult
	for _, id := range []string{"c1", "c2"} {
		res, err := e.Submit(ctx, "ada", id, "wrong")
		require.NoError(t, err)
		assert.Equal(t, attempt.PhaseExhausted, res.Phase)
		last = res
	}
	require.NotNil(t, last.Completed)
	assert.Zero(t, last.Completed.ScorePercent)
	assert.Equal(t, []int{badges.CapacitorKeeper}, badgeIDs(last.NewBadges))
}

func TestRestartQuiz_KeepsCompletionAndBestScore(t *testing.T) {
	e, _ := newTestEngine(t, 0)
	ctx := context.Background()

	for _, id := range []string{"c1", "c2"} {
		_, err := e.Submit(ctx, "ada", id, answers[id])
		require.NoError(t, err)
	}
	require.NoError(t, e.RestartQuiz(ctx, "ada", "capacitors"))

	cats, err := e.Categories(ctx, "ada")
	require.NoError(t, err)
	require.Len(t, cats, 2)
	assert.Equal(t, 0, cats[1].Solved)
	assert.True(t, cats[1].Completed)
	assert.Equal(t, 100.0, cats[1].ScorePercent)

	_, err = e.Submit(ctx, "ada", "c1", "5pF")
	require.NoError(t, err)
	_, err = e.Submit(ctx, "ada", "c1", answers["c1"])
	require.NoError(t, err)
	res, err := e.Submit(ctx, "ada", "c2", answers["c2"])
	require.NoError(t, err)
	require.NotNil(t, res.Completed)
	assert.Equal(t, 50.0, res.Completed.ScorePercent)

	cats, err = e.Categories(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, 100.0, cats[1].ScorePercent, "a lower rerun keeps the best score")

	err = e.RestartQuiz(ctx, "ada", "optics")
	assert.ErrorIs(t, err, certificate.ErrUnknownCategory)
}

func TestHintAndReset(t *testing.T) {
	e, _ := newTestEngine(t, 0)
	ctx := context.Background()

	_, h, ok, err := e.Hint(ctx, "ada", "r1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "h1", h.Text)

	res, err := e.Submit(ctx, "ada", "r1", answers["r1"])
	require.NoError(t, err)
	assert.NotContains(t, badgeIDs(res.NewBadges), badges.HintFreeHero)

	require.NoError(t, e.Reset(ctx, "ada", "r1"))
	rec, err := e.Attempts.Get(ctx, "ada", "r1")
	require.NoError(t, err)
	assert.Zero(t, rec.Attempts)

	points, err := e.Badges.TotalPoints(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, 10, points, "reset leaves the ledger alone")

	assert.ErrorIs(t, e.Reset(ctx, "ada", "nope"), quiz.ErrUnknownQuestion)
	_, _, _, err = e.Hint(ctx, "ada", "nope")
	assert.ErrorIs(t, err, quiz.ErrUnknownQuestion)
}

func TestCompleteDailyChallenge(t *testing.T) {
	e, clock := newTestEngine(t, 0)
	ctx := context.Background()

	var unlocked []int
	for i := 0; i < 7; i++ {
		res, err := e.CompleteDailyChallenge(ctx, "ada")
		require.NoError(t, err)
		assert.True(t, res.Counted)
		unlocked = append(unlocked, badgeIDs(res.NewBadges)...)

		again, err := e.CompleteDailyChallenge(ctx, "ada")
		require.NoError(t, err)
		assert.False(t, again.Counted)

		clock.t = clock.t.AddDate(0, 0, 1)
	}
	assert.Equal(t, []int{badges.StreakStarter, badges.WeekWarrior}, unlocked)

	// Break the streak; the rewards stay.
	clock.t = clock.t.AddDate(0, 0, 5)
	_, err := e.CompleteDailyChallenge(ctx, "ada")
	require.NoError(t, err)

	sum, err := e.Summary(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Streak.Current)
	assert.Equal(t, 7, sum.Streak.Longest)
	assert.True(t, sum.Rewards[0].Unlocked)
	assert.True(t, sum.Rewards[1].Unlocked)
	assert.False(t, sum.Rewards[2].Unlocked)
}

func TestIssueCertificate(t *testing.T) {
	e, _ := newTestEngine(t, 0)
	ctx := context.Background()

	_, _, err := e.IssueCertificate(ctx, "ada", "capacitors")
	assert.ErrorIs(t, err, ErrCategoryIncomplete)

	_, _, err = e.IssueCertificate(ctx, "ada", "optics")
	assert.ErrorIs(t, err, certificate.ErrUnknownCategory)

	_, err = e.Submit(ctx, "ada", "c1", "1pF")
	require.NoError(t, err)
	for _, id := range []string{"c1", "c2"} {
		_, err := e.Submit(ctx, "ada", id, answers[id])
		require.NoError(t, err)
	}

	cert, unlocked, err := e.IssueCertificate(ctx, "ada", "capacitors")
	require.NoError(t, err)
	assert.Equal(t, 50.0, cert.ScorePercent)
	assert.Equal(t, 3, cert.BadgesEarned) // first spark, hint-free hero, capacitor keeper
	assert.Len(t, cert.Code, certificate.CodeLength)
	assert.Equal(t, []int{badges.Certified}, badgeIDs(unlocked))

	_, unlocked, err = e.IssueCertificate(ctx, "ada", "capacitors")
	require.NoError(t, err)
	assert.Empty(t, unlocked)

	list, err := e.Certificates.List(ctx, "ada")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestSummary(t *testing.T) {
	e, _ := newTestEngine(t, 0)
	ctx := context.Background()

	sum, err := e.Summary(ctx, "ada")
	require.NoError(t, err)
	assert.Equal(t, badges.RankBeginner, sum.Rank)
	assert.Zero(t, sum.TotalPoints)
	assert.False(t, sum.StreakActive)

	for _, id := range []string{"r1", "r2", "r3"} {
		_, err := e.Submit(ctx, "ada", id, answers[id])
		require.NoError(t, err)
	}
	_, err = e.CompleteDailyChallenge(ctx, "ada")
	require.NoError(t, err)

	sum, err = e.Summary(ctx, "ada")
	require.NoError(t, err)
	// first spark 10, hint-free hero 15, ohm's apprentice 20, perfect circuit 30
	assert.Equal(t, 75, sum.Points)
	assert.Equal(t, 4, sum.Unlocked)
	assert.Equal(t, badges.RankIntermediate, sum.Rank)
	assert.Equal(t, 85, sum.TotalPoints)
	assert.True(t, sum.StreakActive)

	require.Len(t, sum.Categories, 2)
	assert.Equal(t, CategoryProgress{
		Category: "resistors", Title: "Resistors", Total: 3, Solved: 3, FirstTry: 3,
		Completed: true, ScorePercent: 100,
	}, sum.Categories[0])
	assert.False(t, sum.Categories[1].Completed)
}

func TestHistory(t *testing.T) {
	e, _ := newTestEngine(t, 0)
	ctx := context.Background()

	_, err := e.Submit(ctx, "ada", "r2", "3k")
	require.NoError(t, err)

	events, err := e.History(ctx, "ada", 10)
	require.NoError(t, err)
	require.NotEmpty(t, events)
	kinds := make([]string, 0, len(events))
	for _, ev := range events {
		kinds = append(kinds, ev.Kind)
	}
	assert.Equal(t, []string{store.EventBadge, store.EventBadge, store.EventAnswer}, kinds)
}
