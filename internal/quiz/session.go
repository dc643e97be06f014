package quiz

import (
	"fmt"

	"github.com/abhisek/skillpath/internal/roadmap"
)

// Phase is the current phase of a quiz session.
type Phase int

const (
	PhaseLoading    Phase = iota // fetching the question set
	PhaseReady                   // answering questions, navigation is local
	PhaseSubmitting              // answers sent for scoring
	PhaseCompleted               // scored result received
	PhaseEmpty                   // zero questions returned; back is the only exit
	PhaseFailed                  // question fetch failed; retry re-enters Loading
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseSubmitting:
		return "submitting"
	case PhaseCompleted:
		return "completed"
	case PhaseEmpty:
		return "empty"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// Session is one quiz attempt for a single topic. It is a pure state
// machine: remote calls are described by the attempt tokens it hands
// out, performed elsewhere, and fed back through the Apply methods.
//
// The attempt token guards against late responses. Every transition
// that could have a call in flight bumps the token, and Apply methods
// drop results carrying a stale token instead of applying them.
type Session struct {
	topic     roadmap.TopicRef
	phase     Phase
	questions []Question
	current   int
	answers   map[string]string
	attempt   int
	result    *Result
	lastErr   error
}

// New creates a session for the given topic, entering Loading with
// attempt token 1. Fails with ErrMissingTopic when the topic has no
// name; such a session cannot start at all.
func New(topic roadmap.TopicRef) (*Session, error) {
	if topic.Name == "" {
		return nil, ErrMissingTopic
	}
	return &Session{
		topic:   topic,
		phase:   PhaseLoading,
		answers: make(map[string]string),
		attempt: 1,
	}, nil
}

// Topic returns the routing reference this session was started for.
func (s *Session) Topic() roadmap.TopicRef { return s.topic }

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Attempt returns the token identifying the outstanding remote call.
func (s *Session) Attempt() int { return s.attempt }

// Err returns the most recent error for display, nil if none.
func (s *Session) Err() error { return s.lastErr }

// Questions returns the loaded question set.
func (s *Session) Questions() []Question { return s.questions }

// Count returns the number of loaded questions.
func (s *Session) Count() int { return len(s.questions) }

// Index returns the zero-based index of the current question.
func (s *Session) Index() int { return s.current }

// Current returns the question at the cursor, false when none loaded.
func (s *Session) Current() (Question, bool) {
	if s.current < 0 || s.current >= len(s.questions) {
		return Question{}, false
	}
	return s.questions[s.current], true
}

// AtFirst reports whether the cursor is on the first question.
func (s *Session) AtFirst() bool { return s.current == 0 }

// AtLast reports whether the cursor is on the last question.
func (s *Session) AtLast() bool {
	return len(s.questions) > 0 && s.current == len(s.questions)-1
}

// Next advances the cursor. No-op at the last question or outside Ready.
func (s *Session) Next() {
	if s.phase == PhaseReady && s.current < len(s.questions)-1 {
		s.current++
	}
}

// Previous moves the cursor back. No-op at index 0 or outside Ready.
func (s *Session) Previous() {
	if s.phase == PhaseReady && s.current > 0 {
		s.current--
	}
}

// SetAnswer stores the free-text answer for the current question.
func (s *Session) SetAnswer(text string) {
	q, ok := s.Current()
	if !ok || s.phase != PhaseReady {
		return
	}
	s.answers[q.Key] = text
}

// Answer returns the stored answer for the current question, "" when
// unset.
func (s *Session) Answer() string {
	q, ok := s.Current()
	if !ok {
		return ""
	}
	return s.answers[q.Key]
}

// AnswerFor returns the stored answer for a question key, "" when unset.
func (s *Session) AnswerFor(key string) string { return s.answers[key] }

// ApplyQuestions feeds the result of a question fetch into the session.
// Returns false when the result was dropped because it belongs to a
// superseded attempt or the session already moved on.
func (s *Session) ApplyQuestions(attempt int, qs []Question, err error) bool {
	if attempt != s.attempt || s.phase != PhaseLoading {
		return false
	}
	if err != nil {
		s.phase = PhaseFailed
		s.lastErr = &ErrQuestionFetch{Err: err}
		return true
	}
	if len(qs) == 0 {
		s.phase = PhaseEmpty
		return true
	}
	s.phase = PhaseReady
	s.questions = qs
	s.current = 0
	s.answers = make(map[string]string)
	s.lastErr = nil
	return true
}

// Retry re-enters Loading after a failed question fetch, invalidating
// any response still in flight. Returns the new attempt token.
func (s *Session) Retry() (int, bool) {
	if s.phase != PhaseFailed {
		return 0, false
	}
	s.attempt++
	s.phase = PhaseLoading
	s.lastErr = nil
	return s.attempt, true
}

// BeginSubmit transitions Ready → Submitting and builds the submission
// payload. It is only valid from the last question. An empty userID
// raises ErrMissingIdentity without leaving Ready and without any
// remote call being described.
func (s *Session) BeginSubmit(userID string) (*Submission, int, error) {
	if s.phase != PhaseReady {
		return nil, 0, fmt.Errorf("submit from %s session", s.phase)
	}
	if !s.AtLast() {
		return nil, 0, fmt.Errorf("submit is only available from the last question")
	}
	if userID == "" {
		s.lastErr = ErrMissingIdentity
		return nil, 0, ErrMissingIdentity
	}
	s.phase = PhaseSubmitting
	s.lastErr = nil
	s.attempt++
	return s.buildSubmission(userID), s.attempt, nil
}

// ApplySubmission feeds the scoring result back into the session.
// Failure returns the session to Ready with every answer preserved.
// Returns false when the result was dropped as stale.
func (s *Session) ApplySubmission(attempt int, res *Result, err error) bool {
	if attempt != s.attempt || s.phase != PhaseSubmitting {
		return false
	}
	if err != nil {
		s.phase = PhaseReady
		s.lastErr = &ErrSubmission{Err: err}
		return true
	}
	s.phase = PhaseCompleted
	s.result = res
	s.lastErr = nil
	return true
}

// Result returns the scored result once the session has completed.
func (s *Session) Result() *Result { return s.result }

// Outcome returns the (topicID, score) pair to merge into the roadmap
// tree. Only valid for a completed session.
func (s *Session) Outcome() (topicID string, score int, ok bool) {
	if s.phase != PhaseCompleted || s.result == nil {
		return "", 0, false
	}
	return s.topic.TopicID, s.result.Score, true
}

// Cancel invalidates any in-flight remote call so a late response is
// dropped rather than applied. The network request itself is not
// interrupted; the session is simply no longer listening.
func (s *Session) Cancel() {
	s.attempt++
}
