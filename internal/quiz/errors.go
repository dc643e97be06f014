package quiz

import (
	"errors"
	"fmt"
)

// ErrMissingTopic indicates a session was started for a topic without a
// name. The session cannot begin; the caller should not retry without a
// valid topic.
var ErrMissingTopic = errors.New("topic information is missing")

// ErrMissingIdentity indicates no local user identity was available at
// submission time. No remote call is made; the session stays in Ready
// so the user can log in and retry.
var ErrMissingIdentity = errors.New("user identity not found")

// ErrQuestionFetch wraps a failure to load the question set. Recoverable
// via explicit retry, which re-enters Loading.
type ErrQuestionFetch struct {
	Err error
}

func (e *ErrQuestionFetch) Error() string {
	return fmt.Sprintf("load quiz questions: %v", e.Err)
}

func (e *ErrQuestionFetch) Unwrap() error { return e.Err }

// ErrSubmission wraps a failure to submit answers for scoring. The
// session returns to Ready with all answers preserved, so retrying does
// not require re-answering.
type ErrSubmission struct {
	Err error
}

func (e *ErrSubmission) Error() string {
	return fmt.Sprintf("submit quiz: %v", e.Err)
}

func (e *ErrSubmission) Unwrap() error { return e.Err }
