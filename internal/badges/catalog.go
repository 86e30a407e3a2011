package badges

// Badge is an immutable catalog entry.
type Badge struct {
	ID          int
	Name        string
	Description string
	Icon        string
	Points      int
	Rarity      Rarity
}

// Catalog IDs referenced by the progress engine.
const (
	FirstSpark      = 1
	OhmsApprentice  = 2
	CapacitorKeeper = 3
	HintFreeHero    = 4
	QuickStudy      = 5
	VoltageVirtuoso = 6
	PerfectCircuit  = 7
	StreakStarter   = 8
	WeekWarrior     = 9
	FortnightFlow   = 10
	MonthlyMaestro  = 11
	MasterMaker     = 12
	Certified       = 13
	CircuitSage     = 14
)

// catalog is ordered by ID.
var catalog = []Badge{
	{FirstSpark, "First Spark", "Answer your first question correctly", "⚡", 10, RarityCommon},
	{OhmsApprentice, "Ohm's Apprentice", "Complete the resistors quiz", "Ω", 20, RarityCommon},
	{CapacitorKeeper, "Capacitor Keeper", "Complete the capacitors quiz", "🔋", 20, RarityCommon},
	{HintFreeHero, "Hint-Free Hero", "Solve a question on the first try without hints", "💡", 15, RarityUncommon},
	{QuickStudy, "Quick Study", "Solve five questions on the first try", "📘", 15, RarityUncommon},
	{VoltageVirtuoso, "Voltage Virtuoso", "Complete the voltage quiz", "🔌", 20, RarityUncommon},
	{PerfectCircuit, "Perfect Circuit", "Finish a quiz with every answer right first time", "💯", 30, RarityRare},
	{StreakStarter, "Streak Starter", "Keep a 3-day daily challenge streak", "🔥", 15, RarityCommon},
	{WeekWarrior, "Week Warrior", "Keep a 7-day daily challenge streak", "📅", 25, RarityRare},
	{FortnightFlow, "Fortnight Flow", "Keep a 14-day daily challenge streak", "🌊", 25, RarityEpic},
	{MonthlyMaestro, "Monthly Maestro", "Keep a 30-day daily challenge streak", "🏆", 50, RarityLegendary},
	{MasterMaker, "Master Maker", "Complete every quiz category", "🛠", 50, RarityLegendary},
	{Certified, "Certified", "Earn your first certificate", "📜", 20, RarityRare},
	{CircuitSage, "Circuit Sage", "Complete the circuits quiz", "🔁", 20, RarityUncommon},
}

var byID = func() map[int]Badge {
	m := make(map[int]Badge, len(catalog))
	for _, b := range catalog {
		m[b.ID] = b
	}
	return m
}()

// Catalog returns every badge ordered by ID.
func Catalog() []Badge {
	out := make([]Badge, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the catalog entry for id.
func Lookup(id int) (Badge, bool) {
	b, ok := byID[id]
	return b, ok
}

var categoryBadges = map[string]int{
	"resistors":  OhmsApprentice,
	"capacitors": CapacitorKeeper,
	"voltage":    VoltageVirtuoso,
	"circuits":   CircuitSage,
}

// ForCategory returns the badge for completing a quiz category.
func ForCategory(category string) (int, bool) {
	id, ok := categoryBadges[category]
	return id, ok
}

// ForStreakTier returns the badge awarded at a streak reward threshold.
func ForStreakTier(days int) (int, bool) {
	switch days {
	case 3:
		return StreakStarter, true
	case 7:
		return WeekWarrior, true
	case 14:
		return FortnightFlow, true
	case 30:
		return MonthlyMaestro, true
	}
	return 0, false
}
