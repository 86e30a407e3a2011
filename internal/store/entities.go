package store

import "time"

// Persisted entity shapes. Fields may be added freely; renames need a
// migration because stored documents are not versioned.

// AttemptData is the stored state of one (user, question) pair.
type AttemptData struct {
	Attempts      int        `json:"attempts"`
	HintsRevealed int        `json:"hints_revealed"`
	Solved        bool       `json:"solved"`
	AutoHinted    bool       `json:"auto_hinted,omitempty"`
	SolvedAt      *time.Time `json:"solved_at,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// BadgeUnlockData records when a badge was unlocked.
type BadgeUnlockData struct {
	BadgeID    int       `json:"badge_id"`
	UnlockedAt time.Time `json:"unlocked_at"`
}

// LedgerData is a user's unlock ledger. Points are not stored; they are
// always derived from Unlocked.
type LedgerData struct {
	Unlocked []BadgeUnlockData `json:"unlocked"`
}

// StreakData is a user's daily-challenge streak.
type StreakData struct {
	Current       int    `json:"current"`
	Longest       int    `json:"longest"`
	BonusPoints   int    `json:"bonus_points"`
	LastActiveDay string `json:"last_active_day,omitempty"` // YYYY-MM-DD
}

// CertificateData is one issued certificate.
type CertificateData struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Category     string    `json:"category"`
	Date         time.Time `json:"date"`
	ScorePercent float64   `json:"score_percent"`
	BadgesEarned int       `json:"badges_earned"`
	Code         string    `json:"code"`
}

// CertificatesData is a user's certificates in issue order.
type CertificatesData struct {
	Certificates []CertificateData `json:"certificates"`
}

// CompletionData marks a finished quiz category.
type CompletionData struct {
	ScorePercent float64   `json:"score_percent"`
	CompletedAt  time.Time `json:"completed_at"`
}

// CompletionsData maps category ID to its completion.
type CompletionsData struct {
	Categories map[string]CompletionData `json:"categories"`
}
