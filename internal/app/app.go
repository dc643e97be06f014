package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/skillpath/internal/api"
	"github.com/abhisek/skillpath/internal/identity"
	"github.com/abhisek/skillpath/internal/progression"
	"github.com/abhisek/skillpath/internal/router"
	"github.com/abhisek/skillpath/internal/screen"
	roadmapscreen "github.com/abhisek/skillpath/internal/screens/roadmap"
	"github.com/abhisek/skillpath/internal/ui/layout"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Client   *api.Client
	Identity identity.Provider
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	machine *progression.Machine
	userID  string
	width   int
	height  int
}

// newAppModel creates a new AppModel with the roadmap screen. userID is
// the already-resolved identity, kept only for the header; screens hold
// the provider itself.
func newAppModel(opts Options, userID string) AppModel {
	machine := progression.NewMachine()
	initial := roadmapscreen.New(machine, opts.Client, opts.Identity)
	return AppModel{
		router:  router.New(initial),
		machine: machine,
		userID:  userID,
	}
}

func (m AppModel) Init() tea.Cmd {
	active := m.router.Active()
	if active == nil {
		return nil
	}
	return active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// A screen that declares an Esc handler runs its own
			// teardown (cancelling an in-flight quiz) before the
			// router pops it.
			if h, ok := m.router.Active().(screen.EscHandler); ok {
				return m, h.HandleEsc()
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.userID, int(m.machine.Progress().Percentage), m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run resolves the stored identity and starts the Bubble Tea program.
// A missing identity fails here, before the terminal enters the alt
// screen, so the login hint stays readable.
func Run(opts Options) error {
	userID, err := opts.Identity.UserID(context.Background())
	if err != nil {
		return err
	}

	p := tea.NewProgram(newAppModel(opts, userID))
	_, err = p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
