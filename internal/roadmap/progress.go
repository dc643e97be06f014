package roadmap

// Progress summarizes topic completion across the whole tree.
type Progress struct {
	Completed  int
	Total      int
	Percentage float64
}

// ComputeProgress recounts completion from the current tree. Callers
// must not cache the result across merges; it is cheap to recompute and
// caching is how the counts drift out of sync with Topic.Completed.
func ComputeProgress(r *Roadmap) Progress {
	var p Progress
	if r == nil {
		return p
	}
	for _, s := range r.Skills {
		p.Total += len(s.Topics)
		for _, t := range s.Topics {
			if t.Completed {
				p.Completed++
			}
		}
	}
	if p.Total > 0 {
		p.Percentage = float64(p.Completed) / float64(p.Total) * 100
	}
	return p
}

// SkillProgress recounts completion for a single skill.
func SkillProgress(s Skill) Progress {
	var p Progress
	p.Total = len(s.Topics)
	for _, t := range s.Topics {
		if t.Completed {
			p.Completed++
		}
	}
	if p.Total > 0 {
		p.Percentage = float64(p.Completed) / float64(p.Total) * 100
	}
	return p
}
