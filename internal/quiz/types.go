package quiz

import "fmt"

// Question is one open-ended quiz question. The remote service keys
// questions as "question-<n>"; the key and its ordinal are parsed once
// at the API boundary so nothing downstream re-derives relationships
// from string keys.
type Question struct {
	Key  string // wire key, e.g. "question-3"
	Ord  int    // ordinal parsed from the key
	Text string
}

// AnswerKey returns the wire key pairing this question with its answer.
func (q Question) AnswerKey() string {
	return fmt.Sprintf("answer-%d", q.Ord)
}

// Feedback is the scored verdict for a single answered question.
type Feedback struct {
	QuestionKey  string
	QuestionText string
	AnswerText   string
	MatchScore   int // 0-100
	Comment      string
}

// Result is the outcome of a scored quiz submission.
type Result struct {
	Score    int // 0-100
	Feedback []Feedback
}
