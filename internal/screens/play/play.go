package play

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/voltiz/internal/attempt"
	"github.com/abhisek/voltiz/internal/badges"
	"github.com/abhisek/voltiz/internal/progress"
	"github.com/abhisek/voltiz/internal/quiz"
	"github.com/abhisek/voltiz/internal/ui/components"
)

// Grader is the part of the progress engine the runner needs.
type Grader interface {
	Submit(ctx context.Context, userID, qid, input string) (*progress.SubmitResult, error)
	Hint(ctx context.Context, userID, qid string) (*quiz.Question, attempt.Hint, bool, error)
}

type state int

const (
	stateAsking state = iota
	stateReviewing
	stateDone
)

// Model is the Bubble Tea model that walks a learner through one quiz.
type Model struct {
	ctx       context.Context
	grader    Grader
	userID    string
	title     string
	questions []quiz.Question

	index    int
	state    state
	input    components.AnswerInput
	feedback string
	correct  bool
	hints    []string
	pending  bool

	solved    int
	newBadges []badges.Badge
	completed *progress.Completion
	err       error

	width  int
	height int
}

// New creates a runner over questions, which are asked in order.
func New(ctx context.Context, grader Grader, userID, title string, questions []quiz.Question) Model {
	m := Model{
		ctx:       ctx,
		grader:    grader,
		userID:    userID,
		title:     title,
		questions: questions,
		input:     components.NewAnswerInput("e.g. 4.7k, 100nF, 3.3V", 32),
	}
	if len(questions) == 0 {
		m.state = stateDone
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) current() *quiz.Question {
	if m.index >= len(m.questions) {
		return nil
	}
	return &m.questions[m.index]
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case submittedMsg:
		m.pending = false
		return m.handleSubmitted(msg), nil

	case hintMsg:
		m.pending = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		if !msg.ok {
			m.feedback = "This question has no hints."
			return m, nil
		}
		if msg.hint.New {
			m.hints = append(m.hints, msg.hint.Text)
		} else {
			m.feedback = "That was the last hint."
		}
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateDone:
		if msg.String() == "enter" || msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil

	case stateReviewing:
		if msg.String() == "enter" {
			m.next()
		}
		return m, nil
	}

	if m.pending {
		return m, nil
	}
	switch msg.String() {
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		if value == "" {
			return m, nil
		}
		m.pending = true
		return m, m.submit(value)
	case "tab":
		m.pending = true
		return m, m.hint()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit(value string) tea.Cmd {
	q := m.current()
	return func() tea.Msg {
		res, err := m.grader.Submit(m.ctx, m.userID, q.ID, value)
		return submittedMsg{result: res, err: err}
	}
}

func (m Model) hint() tea.Cmd {
	q := m.current()
	return func() tea.Msg {
		_, h, ok, err := m.grader.Hint(m.ctx, m.userID, q.ID)
		return hintMsg{hint: h, ok: ok, err: err}
	}
}

func (m Model) handleSubmitted(msg submittedMsg) Model {
	if msg.err != nil {
		m.err = msg.err
		return m
	}
	res := msg.result
	m.input.Submit(res.Correct)
	m.newBadges = append(m.newBadges, res.NewBadges...)
	if res.Completed != nil {
		m.completed = res.Completed
	}
	if res.Hint != "" {
		m.hints = append(m.hints, res.Hint)
	}

	switch {
	case res.Correct:
		m.correct = true
		m.feedback = "Correct!"
		if res.Counted {
			m.solved++
		} else {
			m.feedback = "Already solved."
		}
		m.state = stateReviewing
	case res.Phase == attempt.PhaseExhausted:
		m.correct = false
		m.feedback = fmt.Sprintf("Out of attempts. The answer was %s.", res.Question.AnswerText)
		m.state = stateReviewing
	default:
		m.correct = false
		m.feedback = fmt.Sprintf("Not quite. Attempt %d.", res.Record.Attempts)
		m.input.Reset()
	}
	return m
}

func (m *Model) next() {
	m.index++
	m.hints = nil
	m.feedback = ""
	m.correct = false
	m.input.Reset()
	if m.index >= len(m.questions) {
		m.state = stateDone
		return
	}
	m.state = stateAsking
}
