package badges

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_OrderedUniqueIDs(t *testing.T) {
	c := Catalog()
	require.NotEmpty(t, c)
	for i := 1; i < len(c); i++ {
		assert.Less(t, c[i-1].ID, c[i].ID, "catalog must be ordered by ID")
	}
	for _, b := range c {
		assert.NotEmpty(t, b.Name)
		assert.NotEmpty(t, b.Icon)
		assert.Positive(t, b.Points)
		assert.Contains(t, AllRarities(), b.Rarity)
	}
}

func TestCatalog_IsACopy(t *testing.T) {
	c := Catalog()
	c[0].Points = 1000
	b, _ := Lookup(c[0].ID)
	assert.NotEqual(t, 1000, b.Points)
}

func TestLookup(t *testing.T) {
	b, ok := Lookup(FortnightFlow)
	require.True(t, ok)
	assert.Equal(t, 25, b.Points)

	_, ok = Lookup(999)
	assert.False(t, ok)
}

func TestForCategory(t *testing.T) {
	for _, cat := range []string{"resistors", "capacitors", "voltage", "circuits"} {
		id, ok := ForCategory(cat)
		assert.True(t, ok, cat)
		_, known := Lookup(id)
		assert.True(t, known, cat)
	}
	_, ok := ForCategory("optics")
	assert.False(t, ok)
}

func TestForStreakTier(t *testing.T) {
	tests := []struct {
		days int
		want int
		ok   bool
	}{
		{3, StreakStarter, true},
		{7, WeekWarrior, true},
		{14, FortnightFlow, true},
		{30, MonthlyMaestro, true},
		{5, 0, false},
	}
	for _, tt := range tests {
		got, ok := ForStreakTier(tt.days)
		assert.Equal(t, tt.ok, ok, "days=%d", tt.days)
		assert.Equal(t, tt.want, got, "days=%d", tt.days)
	}
}
