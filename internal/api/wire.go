package api

import (
	"encoding/json"
	"math"
	"sort"
	"strings"

	"github.com/abhisek/skillpath/internal/quiz"
	"github.com/abhisek/skillpath/internal/roadmap"
)

// Wire representations of the service payloads. Server-side identifiers
// are optional; roadmap.AssignIDs fills in the gaps after conversion so
// every node ends up with a stable merge key either way.

type wireRoadmap struct {
	ID        string      `json:"_id"`
	DreamRole string      `json:"dreamRole"`
	Skills    []wireSkill `json:"skills"`
}

type wireSkill struct {
	ID     string      `json:"_id"`
	Name   string      `json:"name"`
	Topics []wireTopic `json:"topics"`
}

type wireTopic struct {
	ID          string   `json:"_id"`
	Name        string   `json:"topicName"`
	Description string   `json:"description"`
	Completed   bool     `json:"completed"`
	Score       *float64 `json:"score"`
}

func (w wireRoadmap) toDomain() *roadmap.Roadmap {
	r := &roadmap.Roadmap{
		ID:        w.ID,
		DreamRole: w.DreamRole,
		Skills:    make([]roadmap.Skill, 0, len(w.Skills)),
	}
	for _, ws := range w.Skills {
		s := roadmap.Skill{
			ID:     ws.ID,
			Name:   ws.Name,
			Topics: make([]roadmap.Topic, 0, len(ws.Topics)),
		}
		for _, wt := range ws.Topics {
			// Scores arrive as JSON numbers and may be fractional;
			// the domain keeps whole scores, rounded here.
			var score *int
			if wt.Score != nil {
				n := int(math.Round(*wt.Score))
				score = &n
			}
			s.Topics = append(s.Topics, roadmap.Topic{
				ID:          wt.ID,
				Name:        wt.Name,
				Description: wt.Description,
				Completed:   wt.Completed,
				Score:       score,
			})
		}
		r.Skills = append(r.Skills, s)
	}
	return r
}

type wireVerdict struct {
	Score    float64           `json:"score"`
	Response []json.RawMessage `json:"response"`
}

// toDomain converts the verdict's loosely keyed feedback items into
// typed records, pairing "question-<n>" / "answer-<n>" keys here so no
// caller ever parses them again. Items are ordered by question ordinal.
func (w wireVerdict) toDomain() *quiz.Result {
	res := &quiz.Result{
		Score:    int(w.Score),
		Feedback: make([]quiz.Feedback, 0, len(w.Response)),
	}

	for _, raw := range w.Response {
		var item map[string]any
		if err := json.Unmarshal(raw, &item); err != nil {
			continue
		}

		var fb quiz.Feedback
		for key, val := range item {
			switch {
			case strings.HasPrefix(key, "question-"):
				fb.QuestionKey = key
				fb.QuestionText, _ = val.(string)
			case strings.HasPrefix(key, "answer-"):
				fb.AnswerText, _ = val.(string)
			case key == "match_score":
				if n, ok := val.(float64); ok {
					fb.MatchScore = int(math.Round(n))
				}
			case key == "comment":
				fb.Comment, _ = val.(string)
			}
		}
		res.Feedback = append(res.Feedback, fb)
	}

	sort.SliceStable(res.Feedback, func(i, j int) bool {
		oi, erri := questionOrd(res.Feedback[i].QuestionKey)
		oj, errj := questionOrd(res.Feedback[j].QuestionKey)
		if erri != nil || errj != nil {
			return false
		}
		return oi < oj
	})

	return res
}
