package roadmap

// MergeOutcome folds a completed quiz's result back into the tree: the
// topic with the given ID is marked completed with the score. Other
// topics are untouched and the topic count never changes, so applying
// the same outcome twice is a no-op the second time.
//
// A topicID that matches nothing leaves the tree unchanged; the
// canonical tree lives server-side and will disagree at next fetch, so
// this is deliberately silent rather than an error.
func MergeOutcome(r *Roadmap, topicID string, score int) {
	if r == nil {
		return
	}
	for i := range r.Skills {
		topics := r.Skills[i].Topics
		for j := range topics {
			if topics[j].ID != topicID {
				continue
			}
			s := score
			topics[j].Completed = true
			topics[j].Score = &s
		}
	}
}
