package quiz

// AnswerRecord pairs one question with its submitted answer under the
// wire keys the scoring service expects. Unanswered questions carry an
// empty AnswerText; submission is never blocked on completeness.
type AnswerRecord struct {
	QuestionKey  string
	AnswerKey    string
	QuestionText string
	AnswerText   string
}

// Submission is the full payload for one scoring call, routed with the
// live identifiers of the roadmap node the quiz belongs to.
type Submission struct {
	UserID    string
	RoadmapID string
	SkillID   string
	TopicID   string
	Answers   []AnswerRecord
}

// buildSubmission assembles the ordered answer records from the current
// answer map.
func (s *Session) buildSubmission(userID string) *Submission {
	records := make([]AnswerRecord, 0, len(s.questions))
	for _, q := range s.questions {
		records = append(records, AnswerRecord{
			QuestionKey:  q.Key,
			AnswerKey:    q.AnswerKey(),
			QuestionText: q.Text,
			AnswerText:   s.answers[q.Key],
		})
	}
	return &Submission{
		UserID:    userID,
		RoadmapID: s.topic.RoadmapID,
		SkillID:   s.topic.SkillID,
		TopicID:   s.topic.TopicID,
		Answers:   records,
	}
}
