package quiz

import (
	"testing"

	"github.com/abhisek/skillpath/internal/identity"
	"github.com/abhisek/skillpath/internal/progression"
	qz "github.com/abhisek/skillpath/internal/quiz"
	rm "github.com/abhisek/skillpath/internal/roadmap"
	"github.com/abhisek/skillpath/internal/router"
	"github.com/abhisek/skillpath/internal/screens/results"
)

func startedScreen(t *testing.T, ident identity.Provider) (*QuizScreen, *progression.Machine) {
	t.Helper()

	m := progression.NewMachine()
	gen := m.BeginLoad()
	tree := &rm.Roadmap{
		ID:        "rm-1",
		DreamRole: "Backend Engineer",
		Skills: []rm.Skill{
			{ID: "sk-1", Name: "Go", Topics: []rm.Topic{
				{ID: "tp-1", Name: "Concurrency", Description: "goroutines and channels"},
			}},
		},
	}
	if !m.ApplyRoadmap(gen, tree, nil) {
		t.Fatal("ApplyRoadmap dropped a live generation")
	}
	if !m.SelectSkill(0) {
		t.Fatal("SelectSkill failed")
	}
	session, err := m.StartQuiz(0)
	if err != nil {
		t.Fatalf("StartQuiz: %v", err)
	}
	return New(m, session, nil, ident), m
}

func TestQuestionsLoadedEntersReady(t *testing.T) {
	s, _ := startedScreen(t, identity.Static("user-1"))

	qs := []qz.Question{{Key: "question-1", Ord: 1, Text: "What is a goroutine?"}}
	s.Update(questionsLoadedMsg{Attempt: s.session.Attempt(), Questions: qs})

	if got := s.session.Phase(); got != qz.PhaseReady {
		t.Fatalf("phase = %v, want ready", got)
	}
}

func TestStaleQuestionsDropped(t *testing.T) {
	s, _ := startedScreen(t, identity.Static("user-1"))

	qs := []qz.Question{{Key: "question-1", Ord: 1, Text: "late arrival"}}
	s.Update(questionsLoadedMsg{Attempt: s.session.Attempt() - 1, Questions: qs})

	if got := s.session.Phase(); got != qz.PhaseLoading {
		t.Fatalf("phase = %v, want loading after stale response", got)
	}
}

func TestVerdictFinishesQuizAndReplacesScreen(t *testing.T) {
	s, m := startedScreen(t, identity.Static("user-1"))

	qs := []qz.Question{{Key: "question-1", Ord: 1, Text: "What is a goroutine?"}}
	s.Update(questionsLoadedMsg{Attempt: s.session.Attempt(), Questions: qs})
	s.session.SetAnswer("a lightweight thread")

	_, attempt, err := s.session.BeginSubmit("user-1")
	if err != nil {
		t.Fatalf("BeginSubmit: %v", err)
	}

	_, cmd := s.Update(verdictMsg{Attempt: attempt, Result: &qz.Result{Score: 72}})
	if cmd == nil {
		t.Fatal("expected a navigation command after scoring")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("cmd produced %T, want ReplaceScreenMsg", cmd())
	}
	if _, ok := msg.Screen.(*results.ResultsScreen); !ok {
		t.Fatalf("replacement screen is %T, want results", msg.Screen)
	}

	if m.View() != progression.ViewTopics {
		t.Errorf("machine view = %v, want topics", m.View())
	}
	topic := m.Tree().Skills[0].Topics[0]
	if !topic.Completed || topic.Score == nil || *topic.Score != 72 {
		t.Errorf("outcome not merged: completed=%v score=%v", topic.Completed, topic.Score)
	}
}

func TestSubmitWithoutStoredIdentity(t *testing.T) {
	s, _ := startedScreen(t, identity.Static(""))

	qs := []qz.Question{{Key: "question-1", Ord: 1, Text: "What is a goroutine?"}}
	s.Update(questionsLoadedMsg{Attempt: s.session.Attempt(), Questions: qs})
	s.session.SetAnswer("a lightweight thread")

	_, cmd := s.submit()
	if cmd != nil {
		t.Fatal("no scoring call should start without a stored identity")
	}
	if s.notice == "" {
		t.Error("expected a login hint in the notice line")
	}
	if got := s.session.Phase(); got != qz.PhaseReady {
		t.Errorf("phase = %v, want ready (answers kept for retry after login)", got)
	}
	if got := s.session.AnswerFor("question-1"); got != "a lightweight thread" {
		t.Errorf("answer = %q, want it preserved", got)
	}
}

func TestEscCancelsSessionAndPops(t *testing.T) {
	s, m := startedScreen(t, identity.Static("user-1"))

	cmd := s.HandleEsc()
	if m.View() != progression.ViewTopics {
		t.Fatalf("machine view = %v, want topics after cancel", m.View())
	}
	if m.Session() != nil {
		t.Error("session still attached after cancel")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("cmd produced %T, want PopScreenMsg", cmd())
	}
}
