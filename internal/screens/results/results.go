package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/skillpath/internal/quiz"
	"github.com/abhisek/skillpath/internal/screen"
	"github.com/abhisek/skillpath/internal/ui/layout"
	"github.com/abhisek/skillpath/internal/ui/theme"
)

// ResultsScreen shows the scored outcome of a finished quiz: the
// overall score plus per-question feedback. By the time it is on
// screen the outcome has already been merged into the roadmap, so
// backing out lands on the topic list with the score visible.
type ResultsScreen struct {
	result *qz.Result
	topic  string
	scroll int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a results screen for a completed quiz.
func New(result *qz.Result, topic string) *ResultsScreen {
	return &ResultsScreen{
		result: result,
		topic:  topic,
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back to topics"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down", "j":
		if s.scroll < len(s.result.Feedback)-1 {
			s.scroll++
		}
	}

	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(s.topic))
	b.WriteString("\n\n")

	scoreLine := theme.ScoreStyle(s.result.Score).Render(fmt.Sprintf("Score: %d / 100", s.result.Score))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, scoreLine))
	b.WriteString("\n\n")

	cardWidth := min(width-8, 70)
	used := lipgloss.Height(b.String())

	for i := s.scroll; i < len(s.result.Feedback); i++ {
		card := s.renderCard(s.result.Feedback[i], cardWidth)
		cardHeight := lipgloss.Height(card) + 1
		if used+cardHeight > height && i > s.scroll {
			break
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
		b.WriteString("\n")
		used += cardHeight
	}

	return b.String()
}

func (s *ResultsScreen) renderCard(f qz.Feedback, width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(f.QuestionText))
	b.WriteString("\n")

	answer := f.AnswerText
	if answer == "" {
		answer = "(no answer)"
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Your answer: " + answer))
	b.WriteString("\n")

	b.WriteString(theme.ScoreStyle(f.MatchScore).Render(fmt.Sprintf("Match: %d%%", f.MatchScore)))

	if f.Comment != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Italic(true).Render(f.Comment))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(width).
		Padding(0, 1).
		Render(b.String())
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
