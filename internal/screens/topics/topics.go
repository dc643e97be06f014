package topics

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillpath/internal/api"
	"github.com/abhisek/skillpath/internal/identity"
	"github.com/abhisek/skillpath/internal/progression"
	rm "github.com/abhisek/skillpath/internal/roadmap"
	"github.com/abhisek/skillpath/internal/router"
	"github.com/abhisek/skillpath/internal/screen"
	quizscreen "github.com/abhisek/skillpath/internal/screens/quiz"
	"github.com/abhisek/skillpath/internal/ui/components"
	"github.com/abhisek/skillpath/internal/ui/layout"
	"github.com/abhisek/skillpath/internal/ui/theme"
)

// TopicsScreen lists the topics of the selected skill. Completed
// topics show their latest score; any topic can be retaken.
type TopicsScreen struct {
	machine *progression.Machine
	client  *api.Client
	ident   identity.Provider
	menu    components.Menu
}

var _ screen.Screen = (*TopicsScreen)(nil)
var _ screen.KeyHintProvider = (*TopicsScreen)(nil)
var _ screen.EscHandler = (*TopicsScreen)(nil)

// New creates the topics screen for the machine's selected skill.
func New(machine *progression.Machine, client *api.Client, ident identity.Provider) *TopicsScreen {
	s := &TopicsScreen{
		machine: machine,
		client:  client,
		ident:   ident,
	}
	s.rebuildMenu()
	return s
}

func (s *TopicsScreen) Init() tea.Cmd {
	return nil
}

func (s *TopicsScreen) Title() string {
	if sk, ok := s.machine.SelectedSkill(); ok {
		return sk.Name
	}
	return "Topics"
}

func (s *TopicsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Take quiz"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// HandleEsc walks the machine back to the skill list before the
// router pops this screen.
func (s *TopicsScreen) HandleEsc() tea.Cmd {
	s.machine.Back()
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *TopicsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(kmsg)
		return s, cmd
	}
	return s, nil
}

func (s *TopicsScreen) rebuildMenu() {
	sk, ok := s.machine.SelectedSkill()
	if !ok {
		s.menu = components.NewMenu(nil)
		return
	}

	items := make([]components.MenuItem, 0, len(sk.Topics))
	for i := range sk.Topics {
		i := i
		items = append(items, components.MenuItem{
			Label: sk.Topics[i].Name,
			Badge: topicBadge(sk.Topics[i]),
			Action: func() tea.Cmd {
				session, err := s.machine.StartQuiz(i)
				if err != nil {
					return nil
				}
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: quizscreen.New(s.machine, session, s.client, s.ident),
					}
				}
			},
		})
	}

	selected := s.menu.Selected
	s.menu = components.NewMenu(items)
	if selected < len(items) {
		s.menu.Selected = selected
	}
}

func topicBadge(t rm.Topic) string {
	if !t.Completed {
		return ""
	}
	if t.Score != nil {
		return fmt.Sprintf("✓ %d", *t.Score)
	}
	return "✓"
}

func (s *TopicsScreen) View(width, height int) string {
	sk, ok := s.machine.SelectedSkill()
	if !ok {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No skill selected.")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(sk.Name))
	b.WriteString("\n\n")

	p := rm.SkillProgress(sk)
	bar := components.NewProgressBar("  Skill", p.Percentage/100, true, min(width-8, 60))
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	// Scores appear as soon as a quiz outcome merges, so badges are
	// refreshed each frame.
	menu := s.menu
	for i := range menu.Items {
		if i < len(sk.Topics) {
			menu.Items[i].Badge = topicBadge(sk.Topics[i])
		}
	}
	b.WriteString(menu.View())

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
