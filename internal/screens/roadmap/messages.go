package roadmap

import (
	"time"

	rm "github.com/abhisek/skillpath/internal/roadmap"
)

// roadmapLoadedMsg is sent when a roadmap fetch finishes. Gen ties the
// response to the load that issued it; stale generations are dropped.
type roadmapLoadedMsg struct {
	Gen  int
	Tree *rm.Roadmap
	Err  error
}

// spinnerTickMsg is sent at short intervals to animate the loading spinner.
type spinnerTickMsg time.Time
