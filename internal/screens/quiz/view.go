package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/skillpath/internal/quiz"
	"github.com/abhisek/skillpath/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (s *QuizScreen) View(width, height int) string {
	switch s.session.Phase() {
	case qz.PhaseLoading:
		return s.renderWaiting(width, "Preparing your quiz...")
	case qz.PhaseSubmitting:
		return s.renderWaiting(width, "Scoring your answers...")
	case qz.PhaseEmpty:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  No questions are available for this topic yet.\n\n  Press Esc to go back.")
	case qz.PhaseFailed:
		errMsg := ""
		if err := s.session.Err(); err != nil {
			errMsg = err.Error()
		}
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  %s\n\n  Press R to retry.", errMsg))
	}
	return s.renderQuestionView(width, height)
}

// renderQuestionView renders the current question with its answer input.
func (s *QuizScreen) renderQuestionView(width, height int) string {
	q, ok := s.session.Current()
	if !ok {
		return ""
	}

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Topic: %s", s.session.Topic().Name))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d/%d", s.session.Index()+1, s.session.Count()))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(questionStyle.Render(q.Text))
	b.WriteString("\n\n")

	answerLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + s.input.View())
	b.WriteString(answerLine)
	b.WriteString("\n")

	b.WriteString(s.renderAnsweredDots(width))

	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.notice))
	}

	return b.String()
}

// renderAnsweredDots shows one marker per question, filled once an
// answer has been typed for it.
func (s *QuizScreen) renderAnsweredDots(width int) string {
	var b strings.Builder
	for i, q := range s.session.Questions() {
		mark := "○"
		if i == s.session.Index() {
			if s.input.Value() != "" {
				mark = "●"
			}
		} else if s.session.AnswerFor(q.Key) != "" {
			mark = "●"
		}
		if i == s.session.Index() {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Render(mark))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(mark))
		}
		b.WriteString(" ")
	}
	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.TrimRight(b.String(), " "))
}

func (s *QuizScreen) renderWaiting(width int, label string) string {
	frame := spinnerFrames[s.spin%len(spinnerFrames)]
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\n\n\n  %s %s", frame, label))
}
