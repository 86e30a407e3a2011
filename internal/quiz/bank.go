package quiz

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/mod/semver"

	"github.com/abhisek/voltiz/internal/answer"
	"github.com/abhisek/voltiz/internal/units"
)

// SupportedMajor is the bank format major version this build understands.
const SupportedMajor = "v1"

//go:embed bank.json
var defaultBankJSON []byte

// Bank is an immutable, validated set of questions grouped by category.
type Bank struct {
	version    string
	categories []Category
	questions  []Question
	byID       map[string]int
	byCategory map[string][]int
}

type bankDoc struct {
	Version    string        `json:"version"`
	Categories []categoryDoc `json:"categories"`
	Questions  []questionDoc `json:"questions"`
}

type categoryDoc struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type questionDoc struct {
	ID          string   `json:"id"`
	Category    string   `json:"category"`
	Difficulty  string   `json:"difficulty"`
	Prompt      string   `json:"prompt"`
	Answer      string   `json:"answer"`
	Accept      []string `json:"accept"`
	Tolerance   float64  `json:"tolerance"`
	Hints       []string `json:"hints"`
	Explanation string   `json:"explanation"`
}

var (
	defaultOnce sync.Once
	defaultBank *Bank
	defaultErr  error
)

// Default returns the compiled-in question bank.
func Default() (*Bank, error) {
	defaultOnce.Do(func() {
		defaultBank, defaultErr = Load(defaultBankJSON)
	})
	return defaultBank, defaultErr
}

// Load parses and validates a question bank document.
func Load(raw []byte) (*Bank, error) {
	if err := validateDocument(raw); err != nil {
		return nil, err
	}

	var doc bankDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}

	if !semver.IsValid(doc.Version) {
		return nil, fmt.Errorf("invalid bank version %q", doc.Version)
	}
	if major := semver.Major(doc.Version); major != SupportedMajor {
		return nil, fmt.Errorf("unsupported bank version %s (want %s.x.x)", doc.Version, SupportedMajor)
	}

	b := &Bank{
		version:    doc.Version,
		byID:       make(map[string]int, len(doc.Questions)),
		byCategory: make(map[string][]int, len(doc.Categories)),
	}

	var errs []string
	for _, c := range doc.Categories {
		if _, dup := b.byCategory[c.ID]; dup {
			errs = append(errs, fmt.Sprintf("duplicate category ID: %q", c.ID))
			continue
		}
		b.byCategory[c.ID] = nil
		b.categories = append(b.categories, Category{ID: c.ID, Title: c.Title})
	}

	for _, qd := range doc.Questions {
		if _, dup := b.byID[qd.ID]; dup {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", qd.ID))
			continue
		}
		if _, ok := b.byCategory[qd.Category]; !ok {
			errs = append(errs, fmt.Sprintf("question %q references unknown category %q", qd.ID, qd.Category))
			continue
		}

		q := Question{
			ID:               qd.ID,
			Category:         qd.Category,
			Difficulty:       Difficulty(qd.Difficulty),
			Prompt:           qd.Prompt,
			TolerancePercent: qd.Tolerance,
			Hints:            qd.Hints,
			Explanation:      qd.Explanation,
		}
		if qd.Answer != "" {
			v, err := units.Parse(qd.Answer)
			if err != nil {
				errs = append(errs, fmt.Sprintf("question %q: answer %q does not parse: %v", qd.ID, qd.Answer, err))
				continue
			}
			q.Answer = answer.Numeric(v)
			q.AnswerText = qd.Answer
		} else {
			q.Answer = answer.Literal(qd.Accept...)
			q.AnswerText = qd.Accept[0]
		}

		b.byID[q.ID] = len(b.questions)
		b.byCategory[q.Category] = append(b.byCategory[q.Category], len(b.questions))
		b.questions = append(b.questions, q)
	}

	for _, c := range b.categories {
		if len(b.byCategory[c.ID]) == 0 {
			errs = append(errs, fmt.Sprintf("category %q has no questions", c.ID))
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("question bank validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return b, nil
}

// Version returns the bank's semantic version.
func (b *Bank) Version() string { return b.version }

// Question returns the question with the given ID.
func (b *Bank) Question(id string) (*Question, error) {
	i, ok := b.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuestion, id)
	}
	q := b.questions[i]
	return &q, nil
}

// Questions returns every question in bank order.
func (b *Bank) Questions() []Question {
	return append([]Question(nil), b.questions...)
}

// ByCategory returns the questions of one category in bank order.
func (b *Bank) ByCategory(category string) []Question {
	idx := b.byCategory[category]
	out := make([]Question, 0, len(idx))
	for _, i := range idx {
		out = append(out, b.questions[i])
	}
	return out
}

// QuestionIDs returns the IDs of a category's questions.
func (b *Bank) QuestionIDs(category string) []string {
	idx := b.byCategory[category]
	out := make([]string, 0, len(idx))
	for _, i := range idx {
		out = append(out, b.questions[i].ID)
	}
	return out
}

// Categories returns all categories in display order.
func (b *Bank) Categories() []Category {
	return append([]Category(nil), b.categories...)
}

// HasCategory reports whether id names a category in the bank.
func (b *Bank) HasCategory(id string) bool {
	_, ok := b.byCategory[id]
	return ok
}
