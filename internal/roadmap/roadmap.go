package roadmap

import "github.com/google/uuid"

// Roadmap is the per-user tree of skills and topics leading toward a
// target role. It is fetched once per run, mutated in place by quiz
// outcome merges, and discarded when the app exits.
type Roadmap struct {
	ID        string
	DreamRole string
	Skills    []Skill
}

// Skill groups a set of topics under one named competency.
type Skill struct {
	ID     string
	Name   string
	Topics []Topic
}

// Topic is the smallest gated unit of the roadmap. Completed and Score
// are written only by a quiz outcome merge; Score stays nil until the
// first merge and is never cleared afterward.
type Topic struct {
	ID          string
	Name        string
	Description string
	Completed   bool
	Score       *int
}

// TopicRef carries the live routing identifiers for one quiz attempt.
// The scoring service needs to know which roadmap/skill/topic a
// submission belongs to, so these are threaded from the selected tree
// nodes rather than hardcoded.
type TopicRef struct {
	RoadmapID   string
	SkillID     string
	TopicID     string
	Name        string
	Description string
}

// AssignIDs fills in a generated UUID for every node that arrived
// without a server-side identifier. Topic names are not unique across
// skills, so IDs are the only safe merge key.
func AssignIDs(r *Roadmap) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	for i := range r.Skills {
		s := &r.Skills[i]
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		for j := range s.Topics {
			if s.Topics[j].ID == "" {
				s.Topics[j].ID = uuid.NewString()
			}
		}
	}
}

// Ref builds the TopicRef for the topic at (skillIdx, topicIdx).
func (r *Roadmap) Ref(skillIdx, topicIdx int) (TopicRef, bool) {
	if skillIdx < 0 || skillIdx >= len(r.Skills) {
		return TopicRef{}, false
	}
	s := r.Skills[skillIdx]
	if topicIdx < 0 || topicIdx >= len(s.Topics) {
		return TopicRef{}, false
	}
	t := s.Topics[topicIdx]
	return TopicRef{
		RoadmapID:   r.ID,
		SkillID:     s.ID,
		TopicID:     t.ID,
		Name:        t.Name,
		Description: t.Description,
	}, true
}
