package roadmap

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillpath/internal/api"
	"github.com/abhisek/skillpath/internal/identity"
	"github.com/abhisek/skillpath/internal/progression"
	rm "github.com/abhisek/skillpath/internal/roadmap"
	"github.com/abhisek/skillpath/internal/router"
	"github.com/abhisek/skillpath/internal/screen"
	"github.com/abhisek/skillpath/internal/screens/topics"
	"github.com/abhisek/skillpath/internal/ui/components"
	"github.com/abhisek/skillpath/internal/ui/layout"
	"github.com/abhisek/skillpath/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// RoadmapScreen is the entry screen: the list of skills with overall
// progress. It owns the progression machine for the whole run.
type RoadmapScreen struct {
	machine *progression.Machine
	client  *api.Client
	ident   identity.Provider
	menu    components.Menu
	spin    int
}

var _ screen.Screen = (*RoadmapScreen)(nil)
var _ screen.KeyHintProvider = (*RoadmapScreen)(nil)

// New creates the roadmap screen with injected dependencies.
func New(machine *progression.Machine, client *api.Client, ident identity.Provider) *RoadmapScreen {
	return &RoadmapScreen{
		machine: machine,
		client:  client,
		ident:   ident,
	}
}

func (s *RoadmapScreen) Init() tea.Cmd {
	return tea.Batch(s.load(), spinTick())
}

func (s *RoadmapScreen) Title() string {
	return "Roadmap"
}

func (s *RoadmapScreen) KeyHints() []layout.KeyHint {
	if s.machine.Err() != nil {
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open skill"},
		{Key: "R", Description: "Refresh"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// load begins a fetch on the machine and describes it as a command.
// The generation token is captured before the closure runs so a
// superseding load invalidates this response.
func (s *RoadmapScreen) load() tea.Cmd {
	gen := s.machine.BeginLoad()
	client := s.client
	ident := s.ident
	return func() tea.Msg {
		ctx := context.Background()
		userID, err := ident.UserID(ctx)
		if err != nil {
			return roadmapLoadedMsg{Gen: gen, Err: err}
		}
		tree, err := client.FetchRoadmap(ctx, userID)
		return roadmapLoadedMsg{Gen: gen, Tree: tree, Err: err}
	}
}

func (s *RoadmapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case roadmapLoadedMsg:
		if s.machine.ApplyRoadmap(msg.Gen, msg.Tree, msg.Err) {
			s.rebuildMenu()
		}
		return s, nil

	case spinnerTickMsg:
		if !s.machine.Loading() {
			return s, nil
		}
		s.spin++
		return s, spinTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *RoadmapScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "r", "R":
		if s.machine.Loading() {
			return s, nil
		}
		return s, tea.Batch(s.load(), spinTick())
	}

	if s.machine.Loading() || s.machine.Err() != nil || s.machine.Tree() == nil {
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// rebuildMenu rebuilds the skill menu from the current tree, keeping
// the cursor where it was when possible.
func (s *RoadmapScreen) rebuildMenu() {
	tree := s.machine.Tree()
	if tree == nil {
		s.menu = components.NewMenu(nil)
		return
	}

	items := make([]components.MenuItem, 0, len(tree.Skills))
	for i, sk := range tree.Skills {
		i := i
		items = append(items, components.MenuItem{
			Label: sk.Name,
			Badge: skillBadge(sk),
			Action: func() tea.Cmd {
				if !s.machine.SelectSkill(i) {
					return nil
				}
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: topics.New(s.machine, s.client, s.ident),
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

func skillBadge(sk rm.Skill) string {
	p := rm.SkillProgress(sk)
	return fmt.Sprintf("%d/%d topics", p.Completed, p.Total)
}

func (s *RoadmapScreen) View(width, height int) string {
	if err := s.machine.Err(); err != nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  %s\n\n  Press R to retry.", err))
	}

	if s.machine.Loading() || s.machine.Tree() == nil {
		frame := spinnerFrames[s.spin%len(spinnerFrames)]
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("\n\n\n  %s Loading your roadmap...", frame))
	}

	tree := s.machine.Tree()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(tree.DreamRole))
	b.WriteString("\n\n")

	p := s.machine.Progress()
	bar := components.NewProgressBar("  Overall", p.Percentage/100, true, min(width-8, 60))
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	// Menu badges track merges, so re-render items fresh each frame.
	menu := s.menu
	for i := range menu.Items {
		menu.Items[i].Badge = skillBadge(tree.Skills[i])
	}
	b.WriteString(menu.View())

	return b.String()
}

// spinTick returns a command that animates the loading spinner.
func spinTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
