package play

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/voltiz/internal/ui/layout"
	"github.com/abhisek/voltiz/internal/ui/theme"
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.SetContent(m.render())
	return v
}

func (m Model) render() string {
	width := m.width
	if width == 0 {
		width = layout.DefaultWidth
	}
	if m.height > 0 && layout.IsTooSmall(width, m.height) {
		return layout.RenderMinSizeMessage(width, m.height)
	}

	status := fmt.Sprintf("%d/%d", min(m.index+1, len(m.questions)), len(m.questions))
	header := layout.RenderHeader(m.title, status, width)

	var body string
	var hints []layout.KeyHint
	switch m.state {
	case stateDone:
		body = m.viewDone()
		hints = []layout.KeyHint{{Key: "Enter", Description: "Exit"}}
	case stateReviewing:
		body = m.viewQuestion()
		hints = []layout.KeyHint{{Key: "Enter", Description: "Next"}, {Key: "Esc", Description: "Quit"}}
	default:
		body = m.viewQuestion()
		hints = []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Tab", Description: "Hint"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	if m.err != nil {
		body += "\n\n" + theme.Incorrect.Render("Error: "+m.err.Error())
	}

	return layout.RenderFrame(header, body, layout.RenderFooter(hints, width), width)
}

func (m Model) viewQuestion() string {
	q := m.current()
	if q == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(q.Difficulty.DisplayName()))
	b.WriteString("\n")
	b.WriteString(theme.Body.Render(q.Prompt))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())

	for i, h := range m.hints {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Hint %d: %s", i+1, h)))
	}

	if m.feedback != "" {
		b.WriteString("\n\n")
		if m.correct {
			b.WriteString(theme.Correct.Render(m.feedback))
		} else {
			b.WriteString(theme.Incorrect.Render(m.feedback))
		}
	}
	if m.state == stateReviewing && q.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render(q.Explanation))
	}
	return b.String()
}

func (m Model) viewDone() string {
	var b strings.Builder
	if len(m.questions) == 0 {
		b.WriteString(theme.Title.Render("Nothing left to answer here."))
		b.WriteString("\n")
		b.WriteString(theme.Subtitle.Render("Run `voltiz reset --category` to start over."))
		return b.String()
	}

	b.WriteString(theme.Title.Render("Quiz finished!"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(fmt.Sprintf("Solved %d of %d", m.solved, len(m.questions))))
	if m.completed != nil {
		b.WriteString("\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("First-try score: %.0f%%", m.completed.ScorePercent)))
	}
	if len(m.newBadges) > 0 {
		b.WriteString("\n\n")
		b.WriteString(theme.Title.Render("New badges"))
		for _, bd := range m.newBadges {
			b.WriteString("\n")
			b.WriteString(theme.RarityColor(string(bd.Rarity)).Render(
				fmt.Sprintf("%s %s  +%d", bd.Icon, bd.Name, bd.Points)))
		}
	}
	return b.String()
}
