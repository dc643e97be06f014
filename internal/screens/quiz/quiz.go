package quiz

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skillpath/internal/api"
	"github.com/abhisek/skillpath/internal/identity"
	"github.com/abhisek/skillpath/internal/progression"
	qz "github.com/abhisek/skillpath/internal/quiz"
	"github.com/abhisek/skillpath/internal/router"
	"github.com/abhisek/skillpath/internal/screen"
	"github.com/abhisek/skillpath/internal/screens/results"
	"github.com/abhisek/skillpath/internal/ui/components"
	"github.com/abhisek/skillpath/internal/ui/layout"
)

// QuizScreen drives one quiz session: fetching questions, collecting
// free-text answers, and submitting them for scoring. All state lives
// in the session; this screen only renders it and describes the
// remote calls as commands.
type QuizScreen struct {
	machine *progression.Machine
	session *qz.Session
	client  *api.Client
	ident   identity.Provider
	input   components.TextInput
	notice  string
	spin    int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.EscHandler = (*QuizScreen)(nil)

// New creates a quiz screen for an already-started session.
func New(machine *progression.Machine, session *qz.Session, client *api.Client, ident identity.Provider) *QuizScreen {
	return &QuizScreen{
		machine: machine,
		session: session,
		client:  client,
		ident:   ident,
		input:   components.NewTextInput("Type your answer...", 0),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return tea.Batch(s.fetchQuestions(), s.input.Init(), spinTick())
}

func (s *QuizScreen) Title() string {
	return s.session.Topic().Name
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.session.Phase() {
	case qz.PhaseFailed:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	case qz.PhaseEmpty:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	case qz.PhaseReady:
		hints := []layout.KeyHint{}
		if !s.session.AtFirst() {
			hints = append(hints, layout.KeyHint{Key: "Shift+Tab", Description: "Previous"})
		}
		if s.session.AtLast() {
			hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Submit"})
		} else {
			hints = append(hints, layout.KeyHint{Key: "Enter/Tab", Description: "Next"})
		}
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Cancel quiz"})
		return hints
	}
	return []layout.KeyHint{
		{Key: "Esc", Description: "Cancel quiz"},
	}
}

// HandleEsc abandons the session before the router pops the screen.
// Any response still in flight arrives with a stale token and is
// dropped.
func (s *QuizScreen) HandleEsc() tea.Cmd {
	s.machine.CancelQuiz()
	return func() tea.Msg { return router.PopScreenMsg{} }
}

// fetchQuestions describes the question fetch for the session's
// current attempt token.
func (s *QuizScreen) fetchQuestions() tea.Cmd {
	attempt := s.session.Attempt()
	topic := s.session.Topic()
	client := s.client
	return func() tea.Msg {
		qs, err := client.FetchQuestions(context.Background(), topic.Name, topic.Description)
		return questionsLoadedMsg{Attempt: attempt, Questions: qs, Err: err}
	}
}

// submitAnswers describes the scoring call for a built submission.
func (s *QuizScreen) submitAnswers(sub *qz.Submission, attempt int) tea.Cmd {
	client := s.client
	return func() tea.Msg {
		res, err := client.SubmitAnswers(context.Background(), sub)
		return verdictMsg{Attempt: attempt, Result: res, Err: err}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		if s.session.ApplyQuestions(msg.Attempt, msg.Questions, msg.Err) {
			if s.session.Phase() == qz.PhaseReady {
				s.input.SetValue(s.session.Answer())
			}
		}
		return s, nil

	case verdictMsg:
		return s.handleVerdict(msg)

	case spinnerTickMsg:
		switch s.session.Phase() {
		case qz.PhaseLoading, qz.PhaseSubmitting:
			s.spin++
			return s, spinTick()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) handleVerdict(msg verdictMsg) (screen.Screen, tea.Cmd) {
	if !s.session.ApplySubmission(msg.Attempt, msg.Result, msg.Err) {
		return s, nil
	}

	if s.session.Phase() == qz.PhaseCompleted {
		topic := s.session.Topic().Name
		res, ok := s.machine.FinishQuiz()
		if !ok {
			return s, nil
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: results.New(res, topic)}
		}
	}

	// Submission failed: back in Ready with every answer kept.
	if err := s.session.Err(); err != nil {
		s.notice = err.Error()
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.session.Phase() {
	case qz.PhaseFailed:
		switch msg.String() {
		case "r", "R", "enter":
			if _, ok := s.session.Retry(); ok {
				return s, tea.Batch(s.fetchQuestions(), spinTick())
			}
		}
		return s, nil

	case qz.PhaseReady:
		return s.handleAnswerKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) handleAnswerKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab":
		s.session.SetAnswer(s.input.Value())
		s.session.Next()
		s.input.SetValue(s.session.Answer())
		return s, nil

	case "shift+tab":
		s.session.SetAnswer(s.input.Value())
		s.session.Previous()
		s.input.SetValue(s.session.Answer())
		return s, nil

	case "enter":
		s.session.SetAnswer(s.input.Value())
		if !s.session.AtLast() {
			s.session.Next()
			s.input.SetValue(s.session.Answer())
			return s, nil
		}
		return s.submit()
	}

	s.notice = ""
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit starts the scoring call. Unanswered questions go out as empty
// strings; they are not a validation error.
func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	// An unresolvable identity submits as "", which the session rejects
	// with its own login hint; the quiz and its answers stay intact.
	userID, idErr := s.ident.UserID(context.Background())
	if idErr != nil {
		userID = ""
	}

	sub, attempt, err := s.session.BeginSubmit(userID)
	if err != nil {
		if errors.Is(err, qz.ErrMissingIdentity) {
			s.notice = err.Error()
		}
		return s, nil
	}
	return s, tea.Batch(s.submitAnswers(sub, attempt), spinTick())
}

// spinTick returns a command that animates the loading spinner.
func spinTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}
