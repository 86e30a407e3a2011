package attempt

import (
	"time"

	"github.com/abhisek/voltiz/internal/store"
)

// Phase is where a (user, question) pair sits in the attempt lifecycle.
type Phase string

const (
	PhaseUnanswered Phase = "unanswered"
	PhaseAttempting Phase = "attempting"
	PhaseCorrect    Phase = "correct"
	PhaseExhausted  Phase = "exhausted"
)

// DisplayName returns a human-readable label for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseUnanswered:
		return "Not answered"
	case PhaseAttempting:
		return "In progress"
	case PhaseCorrect:
		return "Solved"
	case PhaseExhausted:
		return "Out of attempts"
	default:
		return string(p)
	}
}

// Terminal reports whether further submissions are ignored.
func (p Phase) Terminal() bool {
	return p == PhaseCorrect || p == PhaseExhausted
}

// AutoHintAfter is the wrong-attempt count that reveals the first hint
// without being asked.
const AutoHintAfter = 3

// Record is the attempt state of one (user, question) pair.
type Record struct {
	Attempts      int
	HintsRevealed int
	Solved        bool
	AutoHinted    bool
	SolvedAt      *time.Time
	UpdatedAt     time.Time
}

// Phase derives the lifecycle phase. maxAttempts <= 0 means unlimited.
func (r Record) Phase(maxAttempts int) Phase {
	switch {
	case r.Solved:
		return PhaseCorrect
	case maxAttempts > 0 && r.Attempts >= maxAttempts:
		return PhaseExhausted
	case r.Attempts > 0:
		return PhaseAttempting
	default:
		return PhaseUnanswered
	}
}

// FirstTry reports a solve on the first attempt with no hint shown.
func (r Record) FirstTry() bool {
	return r.Solved && r.Attempts == 1 && r.HintsRevealed == 0
}

// clampHints bounds HintsRevealed to [0, total]. Stored counts go stale
// when a question's hint list is edited.
func (r *Record) clampHints(total int) {
	r.HintsRevealed = max(0, min(r.HintsRevealed, total))
}

func recordFromData(d store.AttemptData) Record {
	return Record{
		Attempts:      d.Attempts,
		HintsRevealed: d.HintsRevealed,
		Solved:        d.Solved,
		AutoHinted:    d.AutoHinted,
		SolvedAt:      d.SolvedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (r Record) data() store.AttemptData {
	return store.AttemptData{
		Attempts:      r.Attempts,
		HintsRevealed: r.HintsRevealed,
		Solved:        r.Solved,
		AutoHinted:    r.AutoHinted,
		SolvedAt:      r.SolvedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
