package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/skillpath/internal/screen"
)

// fakeScreen records lifecycle calls so tests can assert when the
// router ran Init and which messages reached the active screen.
type fakeScreen struct {
	name     string
	inits    int
	received []tea.Msg
}

func (f *fakeScreen) Init() tea.Cmd {
	f.inits++
	return nil
}

func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	f.received = append(f.received, msg)
	return f, nil
}

func (f *fakeScreen) View(int, int) string { return f.name }
func (f *fakeScreen) Title() string        { return f.name }

func assertActive(t *testing.T, r *Router, name string) {
	t.Helper()
	if got := r.Active().Title(); got != name {
		t.Errorf("active = %q, want %q", got, name)
	}
}

func TestPushGrowsStackAndInits(t *testing.T) {
	r := New(&fakeScreen{name: "roadmap"})
	topics := &fakeScreen{name: "topics"}

	r.Push(topics)

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	assertActive(t, r, "topics")
	if topics.inits != 1 {
		t.Errorf("pushed screen Init ran %d times, want 1", topics.inits)
	}
}

func TestPopReturnsToPreviousScreen(t *testing.T) {
	r := New(&fakeScreen{name: "roadmap"})
	r.Push(&fakeScreen{name: "topics"})

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
	assertActive(t, r, "roadmap")
}

func TestPopKeepsRootScreen(t *testing.T) {
	r := New(&fakeScreen{name: "roadmap"})

	r.Pop()
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1 (root never popped)", r.Depth())
	}
	assertActive(t, r, "roadmap")
}

func TestReplaceSwapsTopInPlace(t *testing.T) {
	r := New(&fakeScreen{name: "roadmap"})
	r.Push(&fakeScreen{name: "quiz"})

	results := &fakeScreen{name: "results"}
	r.Replace(results)

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2 (replace must not grow the stack)", r.Depth())
	}
	assertActive(t, r, "results")
	if results.inits != 1 {
		t.Errorf("replacement Init ran %d times, want 1", results.inits)
	}
}

func TestPopAfterReplaceSkipsReplacedScreen(t *testing.T) {
	// quiz -> results handover: backing out of the results must land
	// on the screen the quiz was pushed from, never on the quiz.
	r := New(&fakeScreen{name: "topics"})
	r.Push(&fakeScreen{name: "quiz"})
	r.Replace(&fakeScreen{name: "results"})

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
	assertActive(t, r, "topics")
}

func TestReplaceOnEmptyRouterPushes(t *testing.T) {
	r := &Router{}
	s := &fakeScreen{name: "roadmap"}

	r.Replace(s)

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
	if s.inits != 1 {
		t.Errorf("Init ran %d times, want 1", s.inits)
	}
}

func TestUpdateHandlesNavigationMessages(t *testing.T) {
	root := &fakeScreen{name: "roadmap"}
	r := New(root)

	topics := &fakeScreen{name: "topics"}
	r.Update(PushScreenMsg{Screen: topics})
	assertActive(t, r, "topics")

	detail := &fakeScreen{name: "quiz"}
	r.Update(ReplaceScreenMsg{Screen: detail})
	assertActive(t, r, "quiz")
	if detail.inits != 1 {
		t.Errorf("Init via ReplaceScreenMsg ran %d times, want 1", detail.inits)
	}

	r.Update(PopScreenMsg{})
	assertActive(t, r, "roadmap")

	// Navigation messages are consumed by the router, everything else
	// goes to the active screen.
	if len(root.received) != 0 {
		t.Errorf("root saw %d messages, want 0", len(root.received))
	}
	r.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if len(root.received) != 1 {
		t.Errorf("root saw %d messages after forward, want 1", len(root.received))
	}
}
