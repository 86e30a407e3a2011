package badges

// Rank labels, from fewest to most unlocked badges.
const (
	RankBeginner     = "Beginner Explorer"
	RankNovice       = "Novice Maker"
	RankIntermediate = "Intermediate Maker"
	RankAdvanced     = "Advanced Explorer"
)

// RankFor returns the rank label for a number of unlocked badges.
func RankFor(unlocked int) string {
	switch {
	case unlocked >= 7:
		return RankAdvanced
	case unlocked >= 4:
		return RankIntermediate
	case unlocked >= 1:
		return RankNovice
	default:
		return RankBeginner
	}
}

// CompletionPercent is the share of the catalog that is unlocked, 0-100.
func CompletionPercent(unlocked int) float64 {
	if len(catalog) == 0 {
		return 0
	}
	return float64(unlocked) / float64(len(catalog)) * 100
}
