package badges

import "testing"

func TestAllRarities(t *testing.T) {
	rarities := AllRarities()
	if len(rarities) != 5 {
		t.Errorf("expected 5 rarities, got %d", len(rarities))
	}
	if rarities[0] != RarityCommon || rarities[4] != RarityLegendary {
		t.Errorf("unexpected order: %v", rarities)
	}
}

func TestRarity_DisplayName(t *testing.T) {
	tests := []struct {
		rarity Rarity
		want   string
	}{
		{RarityCommon, "Common"},
		{RarityUncommon, "Uncommon"},
		{RarityRare, "Rare"},
		{RarityEpic, "Epic"},
		{RarityLegendary, "Legendary"},
		{"unknown", "unknown"},
	}

	for _, tt := range tests {
		got := tt.rarity.DisplayName()
		if got != tt.want {
			t.Errorf("Rarity(%q).DisplayName() = %q, want %q", tt.rarity, got, tt.want)
		}
	}
}
