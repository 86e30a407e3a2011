package streak

// Tier is a streak length that unlocks a named reward.
type Tier struct {
	Days int
	Name string
	Icon string
}

// Tiers are ordered by Days.
var Tiers = []Tier{
	{Days: 3, Name: "Spark", Icon: "✨"},
	{Days: 7, Name: "Current", Icon: "🔌"},
	{Days: 14, Name: "Surge", Icon: "🌊"},
	{Days: 30, Name: "Lightning", Icon: "⚡"},
}

// Reward is a tier with its unlock state.
type Reward struct {
	Tier
	Unlocked bool
}

// Rewards returns every tier with unlock state. Tiers are gated on the
// longest streak, so a reward stays unlocked after the streak breaks.
func Rewards(s State) []Reward {
	out := make([]Reward, 0, len(Tiers))
	for _, t := range Tiers {
		out = append(out, Reward{Tier: t, Unlocked: s.Longest >= t.Days})
	}
	return out
}

// NextTier returns the first tier above the longest streak.
func NextTier(s State) (Tier, bool) {
	for _, t := range Tiers {
		if t.Days > s.Longest {
			return t, true
		}
	}
	return Tier{}, false
}

// crossed returns the tiers reached by moving longest from before to after.
func crossed(before, after int) []Tier {
	var out []Tier
	for _, t := range Tiers {
		if before < t.Days && t.Days <= after {
			out = append(out, t)
		}
	}
	return out
}
