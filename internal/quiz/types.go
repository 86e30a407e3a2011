package quiz

import (
	"errors"

	"github.com/abhisek/voltiz/internal/answer"
)

// ErrUnknownQuestion is returned when a question ID is not in the bank.
var ErrUnknownQuestion = errors.New("unknown question")

// Difficulty tags a question for display and filtering.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// DisplayName returns a human-readable label for the difficulty.
func (d Difficulty) DisplayName() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return string(d)
	}
}

// Question is a single quiz item.
type Question struct {
	// ID is unique across the whole bank, e.g. "res-ohms-law".
	ID string

	Category   string
	Difficulty Difficulty

	// Prompt is the question text shown to the learner.
	Prompt string

	// Answer is the canonical correct answer.
	Answer answer.Expected

	// AnswerText is the answer as authored, e.g. "10k", for display.
	AnswerText string

	// TolerancePercent is the allowed relative deviation for numeric
	// answers. Zero means exact match.
	TolerancePercent float64

	// Hints are revealed strictly in order.
	Hints []string

	// Explanation is shown after the learner answers.
	Explanation string
}

// Check reports whether input answers q correctly.
func (q *Question) Check(input string) bool {
	return answer.Equivalent(input, q.Answer, q.TolerancePercent)
}

// Category groups the questions that make up one quiz.
type Category struct {
	ID    string
	Title string
}
