package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/voltiz/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput for free-text answers such as
// "4.7k" or "100 nF".
type AnswerInput struct {
	Model     textinput.Model
	submitted bool
	valid     bool
}

// NewAnswerInput creates a focused answer input.
func NewAnswerInput(placeholder string, maxWidth int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return AnswerInput{Model: ti}
}

// Update handles messages. Typing after a submission clears the mark.
func (t AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	if _, ok := msg.(tea.KeyPressMsg); ok {
		t.submitted = false
	}
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input with a mark after a submission.
func (t AnswerInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.valid {
			view += " " + theme.Correct.Render("✓")
		} else {
			view += " " + theme.Incorrect.Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (t AnswerInput) Value() string {
	return t.Model.Value()
}

// Reset clears the text and the mark.
func (t *AnswerInput) Reset() {
	t.Model.SetValue("")
	t.submitted = false
}

// Submit marks the input as submitted with a result.
func (t *AnswerInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}
