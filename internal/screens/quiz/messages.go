package quiz

import (
	"time"

	qz "github.com/abhisek/skillpath/internal/quiz"
)

// questionsLoadedMsg is sent when the question fetch finishes. Attempt
// ties the response to the session attempt that issued it.
type questionsLoadedMsg struct {
	Attempt   int
	Questions []qz.Question
	Err       error
}

// verdictMsg is sent when the scoring call finishes.
type verdictMsg struct {
	Attempt int
	Result  *qz.Result
	Err     error
}

// spinnerTickMsg is sent at short intervals to animate the loading spinner.
type spinnerTickMsg time.Time
