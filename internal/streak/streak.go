package streak

import "time"

// DailyBonus is credited for each day the daily challenge is completed.
const DailyBonus = 10

const dayLayout = "2006-01-02"

// State is a user's daily-challenge streak.
type State struct {
	Current     int
	Longest     int
	BonusPoints int
	LastDay     string // YYYY-MM-DD, empty before the first challenge
}

// Day returns the calendar day of t in t's location.
func Day(t time.Time) string {
	return t.Format(dayLayout)
}

// RecordDay marks the day of now as active. The same day counts once; the
// day after LastDay extends the streak and any other gap restarts it at 1.
// Longest is a running maximum and never decreases. It reports whether
// the state changed.
func (s *State) RecordDay(now time.Time) bool {
	today := Day(now)
	if s.LastDay == "" {
		s.start(today)
		return true
	}

	last, err := time.Parse(dayLayout, s.LastDay)
	if err != nil {
		s.start(today)
		return true
	}
	// A clock that moved backwards must not rewind the streak.
	if today <= s.LastDay {
		return false
	}

	if last.AddDate(0, 0, 1).Format(dayLayout) == today {
		s.Current++
	} else {
		s.Current = 1
	}
	s.LastDay = today
	s.BonusPoints += DailyBonus
	if s.Current > s.Longest {
		s.Longest = s.Current
	}
	return true
}

func (s *State) start(today string) {
	s.Current = 1
	s.LastDay = today
	s.BonusPoints += DailyBonus
	if s.Longest < 1 {
		s.Longest = 1
	}
}

// ActiveOn reports whether the streak is still alive on the day of now,
// i.e. the challenge was done today or yesterday.
func (s State) ActiveOn(now time.Time) bool {
	if s.LastDay == "" {
		return false
	}
	today := Day(now)
	if s.LastDay == today {
		return true
	}
	yesterday := time.Date(now.Year(), now.Month(), now.Day()-1, 0, 0, 0, 0, time.UTC)
	return s.LastDay == yesterday.Format(dayLayout)
}
