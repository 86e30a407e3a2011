package badges

import "testing"

func TestRankFor(t *testing.T) {
	tests := []struct {
		unlocked int
		want     string
	}{
		{0, RankBeginner},
		{1, RankNovice},
		{3, RankNovice},
		{4, RankIntermediate},
		{6, RankIntermediate},
		{7, RankAdvanced},
		{14, RankAdvanced},
	}
	for _, tt := range tests {
		if got := RankFor(tt.unlocked); got != tt.want {
			t.Errorf("RankFor(%d) = %q, want %q", tt.unlocked, got, tt.want)
		}
	}
}

func TestCompletionPercent(t *testing.T) {
	if got := CompletionPercent(0); got != 0 {
		t.Errorf("CompletionPercent(0) = %v", got)
	}
	if got := CompletionPercent(len(catalog)); got != 100 {
		t.Errorf("CompletionPercent(all) = %v, want 100", got)
	}
	if got := CompletionPercent(7); got != 50 {
		t.Errorf("CompletionPercent(7) = %v, want 50", got)
	}
}
