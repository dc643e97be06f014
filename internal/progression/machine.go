package progression

import (
	"github.com/abhisek/skillpath/internal/quiz"
	"github.com/abhisek/skillpath/internal/roadmap"
)

// View identifies which of the three nested views is active.
type View int

const (
	ViewMain   View = iota // skill list + overall progress
	ViewTopics             // topic list of the selected skill
	ViewQuiz               // one quiz session
)

func (v View) String() string {
	switch v {
	case ViewMain:
		return "main"
	case ViewTopics:
		return "topics"
	case ViewQuiz:
		return "quiz"
	}
	return "unknown"
}

// Machine owns the roadmap tree and drives the Main → Topics → Quiz
// cycle. Like quiz.Session it is pure: roadmap fetches are described by
// generation tokens and fed back through ApplyRoadmap, which drops any
// response from a superseded load instead of applying it.
type Machine struct {
	view     View
	tree     *roadmap.Roadmap
	skillIdx int
	session  *quiz.Session
	gen      int
	loading  bool
	loadErr  error
}

// NewMachine creates a machine in Main with no tree loaded yet. The
// caller issues the initial fetch via BeginLoad.
func NewMachine() *Machine {
	return &Machine{view: ViewMain}
}

// View returns the active view.
func (m *Machine) View() View { return m.view }

// Tree returns the held roadmap tree, nil before the first load.
func (m *Machine) Tree() *roadmap.Roadmap { return m.tree }

// Loading reports whether a roadmap fetch is outstanding.
func (m *Machine) Loading() bool { return m.loading }

// Err returns the load error currently on display, nil if none.
func (m *Machine) Err() error { return m.loadErr }

// Progress recomputes the overall completion summary from the current
// tree. Never cached: a merge must be reflected immediately.
func (m *Machine) Progress() roadmap.Progress {
	return roadmap.ComputeProgress(m.tree)
}

// BeginLoad starts a roadmap fetch (initial load or pull-style refresh)
// and returns its generation token. A fetch already in flight is
// superseded: its response will arrive with an old token and be
// dropped.
func (m *Machine) BeginLoad() int {
	m.gen++
	m.loading = true
	m.loadErr = nil
	return m.gen
}

// Retry re-issues the fetch after a failed load. Loads are never
// retried automatically; this is the user-initiated path.
func (m *Machine) Retry() (int, bool) {
	if m.loadErr == nil {
		return 0, false
	}
	return m.BeginLoad(), true
}

// ApplyRoadmap feeds a fetch result into the machine. On success the
// tree is replaced wholesale, so unmerged local state from an abandoned
// quiz does not survive a refresh. Returns false when the result was
// dropped as stale.
func (m *Machine) ApplyRoadmap(gen int, r *roadmap.Roadmap, err error) bool {
	if gen != m.gen {
		return false
	}
	m.loading = false
	if err != nil {
		m.loadErr = &roadmap.ErrFetch{Err: err}
		return true
	}
	if r == nil {
		m.loadErr = &roadmap.ErrFetch{}
		return true
	}
	roadmap.AssignIDs(r)
	m.tree = r
	m.loadErr = nil
	return true
}

// SelectedSkill returns the skill whose topics are on display.
func (m *Machine) SelectedSkill() (roadmap.Skill, bool) {
	if m.tree == nil || m.skillIdx < 0 || m.skillIdx >= len(m.tree.Skills) {
		return roadmap.Skill{}, false
	}
	return m.tree.Skills[m.skillIdx], true
}

// SelectSkill transitions Main → Topics. Pure view transition, no
// network activity.
func (m *Machine) SelectSkill(i int) bool {
	if m.view != ViewMain || m.tree == nil || i < 0 || i >= len(m.tree.Skills) {
		return false
	}
	m.skillIdx = i
	m.view = ViewTopics
	return true
}

// StartQuiz transitions Topics → Quiz, creating a session scoped to the
// topic at topicIdx with the live routing identifiers threaded in.
func (m *Machine) StartQuiz(topicIdx int) (*quiz.Session, error) {
	if m.view != ViewTopics {
		return nil, quiz.ErrMissingTopic
	}
	ref, ok := m.tree.Ref(m.skillIdx, topicIdx)
	if !ok {
		return nil, quiz.ErrMissingTopic
	}
	s, err := quiz.New(ref)
	if err != nil {
		return nil, err
	}
	m.session = s
	m.view = ViewQuiz
	return s, nil
}

// Session returns the active quiz session, nil outside ViewQuiz.
func (m *Machine) Session() *quiz.Session { return m.session }

// FinishQuiz merges the completed session's outcome into the tree and
// returns to Topics. The scored result is handed back for display.
func (m *Machine) FinishQuiz() (*quiz.Result, bool) {
	if m.view != ViewQuiz || m.session == nil {
		return nil, false
	}
	topicID, score, ok := m.session.Outcome()
	if !ok {
		return nil, false
	}
	res := m.session.Result()
	roadmap.MergeOutcome(m.tree, topicID, score)
	m.session = nil
	m.view = ViewTopics
	return res, true
}

// CancelQuiz abandons the session and returns to Topics without any
// tree mutation. In-flight responses for the abandoned session are
// dropped, not applied.
func (m *Machine) CancelQuiz() bool {
	if m.view != ViewQuiz {
		return false
	}
	if m.session != nil {
		m.session.Cancel()
		m.session = nil
	}
	m.view = ViewTopics
	return true
}

// Back transitions Topics → Main. No tree mutation. Leaving Main itself
// is owned by the hosting navigation, not this machine.
func (m *Machine) Back() bool {
	if m.view != ViewTopics {
		return false
	}
	m.view = ViewMain
	return true
}
